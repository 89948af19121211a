// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pantryflow/receipt-ingest/gen/ent/ingestjob"
	"github.com/pantryflow/receipt-ingest/gen/ent/predicate"
	"github.com/pantryflow/receipt-ingest/gen/ent/receiptfile"
)

// IngestJobUpdate is the builder for updating IngestJob entities.
type IngestJobUpdate struct {
	config
	hooks    []Hook
	mutation *IngestJobMutation
}

// Where appends a list predicates to the IngestJobUpdate builder.
func (_u *IngestJobUpdate) Where(ps ...predicate.IngestJob) *IngestJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *IngestJobUpdate) SetFileID(v uuid.UUID) *IngestJobUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableFileID(v *uuid.UUID) *IngestJobUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *IngestJobUpdate) SetFormat(v string) *IngestJobUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableFormat(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *IngestJobUpdate) SetStartedAt(v time.Time) *IngestJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableStartedAt(v *time.Time) *IngestJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *IngestJobUpdate) SetFinishedAt(v time.Time) *IngestJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableFinishedAt(v *time.Time) *IngestJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *IngestJobUpdate) ClearFinishedAt() *IngestJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngestJobUpdate) SetStatus(v string) *IngestJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableStatus(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *IngestJobUpdate) ClearStatus() *IngestJobUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *IngestJobUpdate) SetErrorMessage(v string) *IngestJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableErrorMessage(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *IngestJobUpdate) ClearErrorMessage() *IngestJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *IngestJobUpdate) SetConfidence(v float32) *IngestJobUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableConfidence(v *float32) *IngestJobUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *IngestJobUpdate) AddConfidence(v float32) *IngestJobUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *IngestJobUpdate) ClearConfidence() *IngestJobUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetUsedFallback sets the "used_fallback" field.
func (_u *IngestJobUpdate) SetUsedFallback(v bool) *IngestJobUpdate {
	_u.mutation.SetUsedFallback(v)
	return _u
}

// SetNillableUsedFallback sets the "used_fallback" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableUsedFallback(v *bool) *IngestJobUpdate {
	if v != nil {
		_u.SetUsedFallback(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *IngestJobUpdate) SetNeedsReview(v bool) *IngestJobUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableNeedsReview(v *bool) *IngestJobUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *IngestJobUpdate) SetOcrText(v string) *IngestJobUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableOcrText(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *IngestJobUpdate) ClearOcrText() *IngestJobUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// SetResultJSON sets the "result_json" field.
func (_u *IngestJobUpdate) SetResultJSON(v json.RawMessage) *IngestJobUpdate {
	_u.mutation.SetResultJSON(v)
	return _u
}

// AppendResultJSON appends value to the "result_json" field.
func (_u *IngestJobUpdate) AppendResultJSON(v json.RawMessage) *IngestJobUpdate {
	_u.mutation.AppendResultJSON(v)
	return _u
}

// ClearResultJSON clears the value of the "result_json" field.
func (_u *IngestJobUpdate) ClearResultJSON() *IngestJobUpdate {
	_u.mutation.ClearResultJSON()
	return _u
}

// SetModelParams sets the "model_params" field.
func (_u *IngestJobUpdate) SetModelParams(v json.RawMessage) *IngestJobUpdate {
	_u.mutation.SetModelParams(v)
	return _u
}

// AppendModelParams appends value to the "model_params" field.
func (_u *IngestJobUpdate) AppendModelParams(v json.RawMessage) *IngestJobUpdate {
	_u.mutation.AppendModelParams(v)
	return _u
}

// ClearModelParams clears the value of the "model_params" field.
func (_u *IngestJobUpdate) ClearModelParams() *IngestJobUpdate {
	_u.mutation.ClearModelParams()
	return _u
}

// SetFile sets the "file" edge to the ReceiptFile entity.
func (_u *IngestJobUpdate) SetFile(v *ReceiptFile) *IngestJobUpdate {
	return _u.SetFileID(v.ID)
}

// Mutation returns the IngestJobMutation object of the builder.
func (_u *IngestJobUpdate) Mutation() *IngestJobMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the ReceiptFile entity.
func (_u *IngestJobUpdate) ClearFile() *IngestJobUpdate {
	_u.mutation.ClearFile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IngestJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IngestJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestJobUpdate) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := ingestjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "IngestJob.format": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IngestJob.file"`)
	}
	return nil
}

func (_u *IngestJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestjob.Table, ingestjob.Columns, sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(ingestjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(ingestjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(ingestjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(ingestjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(ingestjob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(ingestjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(ingestjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(ingestjob.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(ingestjob.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(ingestjob.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.UsedFallback(); ok {
		_spec.SetField(ingestjob.FieldUsedFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(ingestjob.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(ingestjob.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(ingestjob.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.ResultJSON(); ok {
		_spec.SetField(ingestjob.FieldResultJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResultJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ingestjob.FieldResultJSON, value)
		})
	}
	if _u.mutation.ResultJSONCleared() {
		_spec.ClearField(ingestjob.FieldResultJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelParams(); ok {
		_spec.SetField(ingestjob.FieldModelParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModelParams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ingestjob.FieldModelParams, value)
		})
	}
	if _u.mutation.ModelParamsCleared() {
		_spec.ClearField(ingestjob.FieldModelParams, field.TypeJSON)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ingestjob.FileTable,
			Columns: []string{ingestjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ingestjob.FileTable,
			Columns: []string{ingestjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IngestJobUpdateOne is the builder for updating a single IngestJob entity.
type IngestJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IngestJobMutation
}

// SetFileID sets the "file_id" field.
func (_u *IngestJobUpdateOne) SetFileID(v uuid.UUID) *IngestJobUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableFileID(v *uuid.UUID) *IngestJobUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *IngestJobUpdateOne) SetFormat(v string) *IngestJobUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableFormat(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *IngestJobUpdateOne) SetStartedAt(v time.Time) *IngestJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableStartedAt(v *time.Time) *IngestJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *IngestJobUpdateOne) SetFinishedAt(v time.Time) *IngestJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableFinishedAt(v *time.Time) *IngestJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *IngestJobUpdateOne) ClearFinishedAt() *IngestJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngestJobUpdateOne) SetStatus(v string) *IngestJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableStatus(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *IngestJobUpdateOne) ClearStatus() *IngestJobUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *IngestJobUpdateOne) SetErrorMessage(v string) *IngestJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableErrorMessage(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *IngestJobUpdateOne) ClearErrorMessage() *IngestJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *IngestJobUpdateOne) SetConfidence(v float32) *IngestJobUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableConfidence(v *float32) *IngestJobUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *IngestJobUpdateOne) AddConfidence(v float32) *IngestJobUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *IngestJobUpdateOne) ClearConfidence() *IngestJobUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetUsedFallback sets the "used_fallback" field.
func (_u *IngestJobUpdateOne) SetUsedFallback(v bool) *IngestJobUpdateOne {
	_u.mutation.SetUsedFallback(v)
	return _u
}

// SetNillableUsedFallback sets the "used_fallback" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableUsedFallback(v *bool) *IngestJobUpdateOne {
	if v != nil {
		_u.SetUsedFallback(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *IngestJobUpdateOne) SetNeedsReview(v bool) *IngestJobUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableNeedsReview(v *bool) *IngestJobUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *IngestJobUpdateOne) SetOcrText(v string) *IngestJobUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableOcrText(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *IngestJobUpdateOne) ClearOcrText() *IngestJobUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// SetResultJSON sets the "result_json" field.
func (_u *IngestJobUpdateOne) SetResultJSON(v json.RawMessage) *IngestJobUpdateOne {
	_u.mutation.SetResultJSON(v)
	return _u
}

// AppendResultJSON appends value to the "result_json" field.
func (_u *IngestJobUpdateOne) AppendResultJSON(v json.RawMessage) *IngestJobUpdateOne {
	_u.mutation.AppendResultJSON(v)
	return _u
}

// ClearResultJSON clears the value of the "result_json" field.
func (_u *IngestJobUpdateOne) ClearResultJSON() *IngestJobUpdateOne {
	_u.mutation.ClearResultJSON()
	return _u
}

// SetModelParams sets the "model_params" field.
func (_u *IngestJobUpdateOne) SetModelParams(v json.RawMessage) *IngestJobUpdateOne {
	_u.mutation.SetModelParams(v)
	return _u
}

// AppendModelParams appends value to the "model_params" field.
func (_u *IngestJobUpdateOne) AppendModelParams(v json.RawMessage) *IngestJobUpdateOne {
	_u.mutation.AppendModelParams(v)
	return _u
}

// ClearModelParams clears the value of the "model_params" field.
func (_u *IngestJobUpdateOne) ClearModelParams() *IngestJobUpdateOne {
	_u.mutation.ClearModelParams()
	return _u
}

// SetFile sets the "file" edge to the ReceiptFile entity.
func (_u *IngestJobUpdateOne) SetFile(v *ReceiptFile) *IngestJobUpdateOne {
	return _u.SetFileID(v.ID)
}

// Mutation returns the IngestJobMutation object of the builder.
func (_u *IngestJobUpdateOne) Mutation() *IngestJobMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the ReceiptFile entity.
func (_u *IngestJobUpdateOne) ClearFile() *IngestJobUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// Where appends a list predicates to the IngestJobUpdate builder.
func (_u *IngestJobUpdateOne) Where(ps ...predicate.IngestJob) *IngestJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IngestJobUpdateOne) Select(field string, fields ...string) *IngestJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IngestJob entity.
func (_u *IngestJobUpdateOne) Save(ctx context.Context) (*IngestJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestJobUpdateOne) SaveX(ctx context.Context) *IngestJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IngestJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestJobUpdateOne) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := ingestjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "IngestJob.format": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IngestJob.file"`)
	}
	return nil
}

func (_u *IngestJobUpdateOne) sqlSave(ctx context.Context) (_node *IngestJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestjob.Table, ingestjob.Columns, sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IngestJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ingestjob.FieldID)
		for _, f := range fields {
			if !ingestjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ingestjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(ingestjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(ingestjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(ingestjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(ingestjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(ingestjob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(ingestjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(ingestjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(ingestjob.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(ingestjob.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(ingestjob.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.UsedFallback(); ok {
		_spec.SetField(ingestjob.FieldUsedFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(ingestjob.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(ingestjob.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(ingestjob.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.ResultJSON(); ok {
		_spec.SetField(ingestjob.FieldResultJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResultJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ingestjob.FieldResultJSON, value)
		})
	}
	if _u.mutation.ResultJSONCleared() {
		_spec.ClearField(ingestjob.FieldResultJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelParams(); ok {
		_spec.SetField(ingestjob.FieldModelParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModelParams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ingestjob.FieldModelParams, value)
		})
	}
	if _u.mutation.ModelParamsCleared() {
		_spec.ClearField(ingestjob.FieldModelParams, field.TypeJSON)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ingestjob.FileTable,
			Columns: []string{ingestjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ingestjob.FileTable,
			Columns: []string{ingestjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &IngestJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
