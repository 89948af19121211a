// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pantryflow/receipt-ingest/gen/ent/ingestjob"
	"github.com/pantryflow/receipt-ingest/gen/ent/receiptfile"
)

// IngestJobCreate is the builder for creating a IngestJob entity.
type IngestJobCreate struct {
	config
	mutation *IngestJobMutation
	hooks    []Hook
}

// SetFileID sets the "file_id" field.
func (_c *IngestJobCreate) SetFileID(v uuid.UUID) *IngestJobCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *IngestJobCreate) SetFormat(v string) *IngestJobCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *IngestJobCreate) SetStartedAt(v time.Time) *IngestJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableStartedAt(v *time.Time) *IngestJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *IngestJobCreate) SetFinishedAt(v time.Time) *IngestJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableFinishedAt(v *time.Time) *IngestJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *IngestJobCreate) SetStatus(v string) *IngestJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableStatus(v *string) *IngestJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *IngestJobCreate) SetErrorMessage(v string) *IngestJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableErrorMessage(v *string) *IngestJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *IngestJobCreate) SetConfidence(v float32) *IngestJobCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableConfidence(v *float32) *IngestJobCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetUsedFallback sets the "used_fallback" field.
func (_c *IngestJobCreate) SetUsedFallback(v bool) *IngestJobCreate {
	_c.mutation.SetUsedFallback(v)
	return _c
}

// SetNillableUsedFallback sets the "used_fallback" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableUsedFallback(v *bool) *IngestJobCreate {
	if v != nil {
		_c.SetUsedFallback(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *IngestJobCreate) SetNeedsReview(v bool) *IngestJobCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableNeedsReview(v *bool) *IngestJobCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetOcrText sets the "ocr_text" field.
func (_c *IngestJobCreate) SetOcrText(v string) *IngestJobCreate {
	_c.mutation.SetOcrText(v)
	return _c
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableOcrText(v *string) *IngestJobCreate {
	if v != nil {
		_c.SetOcrText(*v)
	}
	return _c
}

// SetResultJSON sets the "result_json" field.
func (_c *IngestJobCreate) SetResultJSON(v json.RawMessage) *IngestJobCreate {
	_c.mutation.SetResultJSON(v)
	return _c
}

// SetModelParams sets the "model_params" field.
func (_c *IngestJobCreate) SetModelParams(v json.RawMessage) *IngestJobCreate {
	_c.mutation.SetModelParams(v)
	return _c
}

// SetID sets the "id" field.
func (_c *IngestJobCreate) SetID(v uuid.UUID) *IngestJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableID(v *uuid.UUID) *IngestJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFile sets the "file" edge to the ReceiptFile entity.
func (_c *IngestJobCreate) SetFile(v *ReceiptFile) *IngestJobCreate {
	return _c.SetFileID(v.ID)
}

// Mutation returns the IngestJobMutation object of the builder.
func (_c *IngestJobCreate) Mutation() *IngestJobMutation {
	return _c.mutation
}

// Save creates the IngestJob in the database.
func (_c *IngestJobCreate) Save(ctx context.Context) (*IngestJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IngestJobCreate) SaveX(ctx context.Context) *IngestJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IngestJobCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := ingestjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.UsedFallback(); !ok {
		v := ingestjob.DefaultUsedFallback
		_c.mutation.SetUsedFallback(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := ingestjob.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ingestjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IngestJobCreate) check() error {
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "IngestJob.file_id"`)}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "IngestJob.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := ingestjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "IngestJob.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "IngestJob.started_at"`)}
	}
	if _, ok := _c.mutation.UsedFallback(); !ok {
		return &ValidationError{Name: "used_fallback", err: errors.New(`ent: missing required field "IngestJob.used_fallback"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "IngestJob.needs_review"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "IngestJob.file"`)}
	}
	return nil
}

func (_c *IngestJobCreate) sqlSave(ctx context.Context) (*IngestJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IngestJobCreate) createSpec() (*IngestJob, *sqlgraph.CreateSpec) {
	var (
		_node = &IngestJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ingestjob.Table, sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(ingestjob.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(ingestjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(ingestjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ingestjob.FieldStatus, field.TypeString, value)
		_node.Status = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(ingestjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(ingestjob.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.UsedFallback(); ok {
		_spec.SetField(ingestjob.FieldUsedFallback, field.TypeBool, value)
		_node.UsedFallback = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(ingestjob.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.OcrText(); ok {
		_spec.SetField(ingestjob.FieldOcrText, field.TypeString, value)
		_node.OcrText = &value
	}
	if value, ok := _c.mutation.ResultJSON(); ok {
		_spec.SetField(ingestjob.FieldResultJSON, field.TypeJSON, value)
		_node.ResultJSON = value
	}
	if value, ok := _c.mutation.ModelParams(); ok {
		_spec.SetField(ingestjob.FieldModelParams, field.TypeJSON, value)
		_node.ModelParams = value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
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
		_node.FileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// IngestJobCreateBulk is the builder for creating many IngestJob entities in bulk.
type IngestJobCreateBulk struct {
	config
	err      error
	builders []*IngestJobCreate
}

// Save creates the IngestJob entities in the database.
func (_c *IngestJobCreateBulk) Save(ctx context.Context) ([]*IngestJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IngestJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IngestJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *IngestJobCreateBulk) SaveX(ctx context.Context) []*IngestJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
