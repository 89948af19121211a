// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pantryflow/receipt-ingest/gen/ent/ingestjob"
	"github.com/pantryflow/receipt-ingest/gen/ent/predicate"
	"github.com/pantryflow/receipt-ingest/gen/ent/receiptfile"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeIngestJob   = "IngestJob"
	TypeReceiptFile = "ReceiptFile"
)

// IngestJobMutation represents an operation that mutates the IngestJob nodes in the graph.
type IngestJobMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	format             *string
	started_at         *time.Time
	finished_at        *time.Time
	status             *string
	error_message      *string
	confidence         *float32
	addconfidence      *float32
	used_fallback      *bool
	needs_review       *bool
	ocr_text           *string
	result_json        *json.RawMessage
	appendresult_json  json.RawMessage
	model_params       *json.RawMessage
	appendmodel_params json.RawMessage
	clearedFields      map[string]struct{}
	file               *uuid.UUID
	clearedfile        bool
	done               bool
	oldValue           func(context.Context) (*IngestJob, error)
	predicates         []predicate.IngestJob
}

var _ ent.Mutation = (*IngestJobMutation)(nil)

// ingestjobOption allows management of the mutation configuration using functional options.
type ingestjobOption func(*IngestJobMutation)

// newIngestJobMutation creates new mutation for the IngestJob entity.
func newIngestJobMutation(c config, op Op, opts ...ingestjobOption) *IngestJobMutation {
	m := &IngestJobMutation{
		config:        c,
		op:            op,
		typ:           TypeIngestJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIngestJobID sets the ID field of the mutation.
func withIngestJobID(id uuid.UUID) ingestjobOption {
	return func(m *IngestJobMutation) {
		var (
			err   error
			once  sync.Once
			value *IngestJob
		)
		m.oldValue = func(ctx context.Context) (*IngestJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IngestJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIngestJob sets the old IngestJob of the mutation.
func withIngestJob(node *IngestJob) ingestjobOption {
	return func(m *IngestJobMutation) {
		m.oldValue = func(context.Context) (*IngestJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IngestJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IngestJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IngestJob entities.
func (m *IngestJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IngestJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IngestJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IngestJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *IngestJobMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *IngestJobMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *IngestJobMutation) ResetFileID() {
	m.file = nil
}

// SetFormat sets the "format" field.
func (m *IngestJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *IngestJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *IngestJobMutation) ResetFormat() {
	m.format = nil
}

// SetStartedAt sets the "started_at" field.
func (m *IngestJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *IngestJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *IngestJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *IngestJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *IngestJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *IngestJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[ingestjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *IngestJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[ingestjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *IngestJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, ingestjob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *IngestJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *IngestJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *IngestJobMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[ingestjob.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *IngestJobMutation) StatusCleared() bool {
	_, ok := m.clearedFields[ingestjob.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *IngestJobMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, ingestjob.FieldStatus)
}

// SetErrorMessage sets the "error_message" field.
func (m *IngestJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *IngestJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *IngestJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[ingestjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *IngestJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[ingestjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *IngestJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, ingestjob.FieldErrorMessage)
}

// SetConfidence sets the "confidence" field.
func (m *IngestJobMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *IngestJobMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *IngestJobMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *IngestJobMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *IngestJobMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[ingestjob.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *IngestJobMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[ingestjob.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *IngestJobMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, ingestjob.FieldConfidence)
}

// SetUsedFallback sets the "used_fallback" field.
func (m *IngestJobMutation) SetUsedFallback(b bool) {
	m.used_fallback = &b
}

// UsedFallback returns the value of the "used_fallback" field in the mutation.
func (m *IngestJobMutation) UsedFallback() (r bool, exists bool) {
	v := m.used_fallback
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedFallback returns the old "used_fallback" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldUsedFallback(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedFallback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedFallback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedFallback: %w", err)
	}
	return oldValue.UsedFallback, nil
}

// ResetUsedFallback resets all changes to the "used_fallback" field.
func (m *IngestJobMutation) ResetUsedFallback() {
	m.used_fallback = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *IngestJobMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *IngestJobMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *IngestJobMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetOcrText sets the "ocr_text" field.
func (m *IngestJobMutation) SetOcrText(s string) {
	m.ocr_text = &s
}

// OcrText returns the value of the "ocr_text" field in the mutation.
func (m *IngestJobMutation) OcrText() (r string, exists bool) {
	v := m.ocr_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrText returns the old "ocr_text" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldOcrText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrText: %w", err)
	}
	return oldValue.OcrText, nil
}

// ClearOcrText clears the value of the "ocr_text" field.
func (m *IngestJobMutation) ClearOcrText() {
	m.ocr_text = nil
	m.clearedFields[ingestjob.FieldOcrText] = struct{}{}
}

// OcrTextCleared returns if the "ocr_text" field was cleared in this mutation.
func (m *IngestJobMutation) OcrTextCleared() bool {
	_, ok := m.clearedFields[ingestjob.FieldOcrText]
	return ok
}

// ResetOcrText resets all changes to the "ocr_text" field.
func (m *IngestJobMutation) ResetOcrText() {
	m.ocr_text = nil
	delete(m.clearedFields, ingestjob.FieldOcrText)
}

// SetResultJSON sets the "result_json" field.
func (m *IngestJobMutation) SetResultJSON(jm json.RawMessage) {
	m.result_json = &jm
	m.appendresult_json = nil
}

// ResultJSON returns the value of the "result_json" field in the mutation.
func (m *IngestJobMutation) ResultJSON() (r json.RawMessage, exists bool) {
	v := m.result_json
	if v == nil {
		return
	}
	return *v, true
}

// OldResultJSON returns the old "result_json" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldResultJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultJSON: %w", err)
	}
	return oldValue.ResultJSON, nil
}

// AppendResultJSON adds jm to the "result_json" field.
func (m *IngestJobMutation) AppendResultJSON(jm json.RawMessage) {
	m.appendresult_json = append(m.appendresult_json, jm...)
}

// AppendedResultJSON returns the list of values that were appended to the "result_json" field in this mutation.
func (m *IngestJobMutation) AppendedResultJSON() (json.RawMessage, bool) {
	if len(m.appendresult_json) == 0 {
		return nil, false
	}
	return m.appendresult_json, true
}

// ClearResultJSON clears the value of the "result_json" field.
func (m *IngestJobMutation) ClearResultJSON() {
	m.result_json = nil
	m.appendresult_json = nil
	m.clearedFields[ingestjob.FieldResultJSON] = struct{}{}
}

// ResultJSONCleared returns if the "result_json" field was cleared in this mutation.
func (m *IngestJobMutation) ResultJSONCleared() bool {
	_, ok := m.clearedFields[ingestjob.FieldResultJSON]
	return ok
}

// ResetResultJSON resets all changes to the "result_json" field.
func (m *IngestJobMutation) ResetResultJSON() {
	m.result_json = nil
	m.appendresult_json = nil
	delete(m.clearedFields, ingestjob.FieldResultJSON)
}

// SetModelParams sets the "model_params" field.
func (m *IngestJobMutation) SetModelParams(jm json.RawMessage) {
	m.model_params = &jm
	m.appendmodel_params = nil
}

// ModelParams returns the value of the "model_params" field in the mutation.
func (m *IngestJobMutation) ModelParams() (r json.RawMessage, exists bool) {
	v := m.model_params
	if v == nil {
		return
	}
	return *v, true
}

// OldModelParams returns the old "model_params" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldModelParams(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelParams: %w", err)
	}
	return oldValue.ModelParams, nil
}

// AppendModelParams adds jm to the "model_params" field.
func (m *IngestJobMutation) AppendModelParams(jm json.RawMessage) {
	m.appendmodel_params = append(m.appendmodel_params, jm...)
}

// AppendedModelParams returns the list of values that were appended to the "model_params" field in this mutation.
func (m *IngestJobMutation) AppendedModelParams() (json.RawMessage, bool) {
	if len(m.appendmodel_params) == 0 {
		return nil, false
	}
	return m.appendmodel_params, true
}

// ClearModelParams clears the value of the "model_params" field.
func (m *IngestJobMutation) ClearModelParams() {
	m.model_params = nil
	m.appendmodel_params = nil
	m.clearedFields[ingestjob.FieldModelParams] = struct{}{}
}

// ModelParamsCleared returns if the "model_params" field was cleared in this mutation.
func (m *IngestJobMutation) ModelParamsCleared() bool {
	_, ok := m.clearedFields[ingestjob.FieldModelParams]
	return ok
}

// ResetModelParams resets all changes to the "model_params" field.
func (m *IngestJobMutation) ResetModelParams() {
	m.model_params = nil
	m.appendmodel_params = nil
	delete(m.clearedFields, ingestjob.FieldModelParams)
}

// ClearFile clears the "file" edge to the ReceiptFile entity.
func (m *IngestJobMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[ingestjob.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the ReceiptFile entity was cleared.
func (m *IngestJobMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *IngestJobMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *IngestJobMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// Where appends a list predicates to the IngestJobMutation builder.
func (m *IngestJobMutation) Where(ps ...predicate.IngestJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IngestJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IngestJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IngestJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IngestJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IngestJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IngestJob).
func (m *IngestJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IngestJobMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.file != nil {
		fields = append(fields, ingestjob.FieldFileID)
	}
	if m.format != nil {
		fields = append(fields, ingestjob.FieldFormat)
	}
	if m.started_at != nil {
		fields = append(fields, ingestjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, ingestjob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, ingestjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, ingestjob.FieldErrorMessage)
	}
	if m.confidence != nil {
		fields = append(fields, ingestjob.FieldConfidence)
	}
	if m.used_fallback != nil {
		fields = append(fields, ingestjob.FieldUsedFallback)
	}
	if m.needs_review != nil {
		fields = append(fields, ingestjob.FieldNeedsReview)
	}
	if m.ocr_text != nil {
		fields = append(fields, ingestjob.FieldOcrText)
	}
	if m.result_json != nil {
		fields = append(fields, ingestjob.FieldResultJSON)
	}
	if m.model_params != nil {
		fields = append(fields, ingestjob.FieldModelParams)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IngestJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ingestjob.FieldFileID:
		return m.FileID()
	case ingestjob.FieldFormat:
		return m.Format()
	case ingestjob.FieldStartedAt:
		return m.StartedAt()
	case ingestjob.FieldFinishedAt:
		return m.FinishedAt()
	case ingestjob.FieldStatus:
		return m.Status()
	case ingestjob.FieldErrorMessage:
		return m.ErrorMessage()
	case ingestjob.FieldConfidence:
		return m.Confidence()
	case ingestjob.FieldUsedFallback:
		return m.UsedFallback()
	case ingestjob.FieldNeedsReview:
		return m.NeedsReview()
	case ingestjob.FieldOcrText:
		return m.OcrText()
	case ingestjob.FieldResultJSON:
		return m.ResultJSON()
	case ingestjob.FieldModelParams:
		return m.ModelParams()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IngestJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ingestjob.FieldFileID:
		return m.OldFileID(ctx)
	case ingestjob.FieldFormat:
		return m.OldFormat(ctx)
	case ingestjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case ingestjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case ingestjob.FieldStatus:
		return m.OldStatus(ctx)
	case ingestjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case ingestjob.FieldConfidence:
		return m.OldConfidence(ctx)
	case ingestjob.FieldUsedFallback:
		return m.OldUsedFallback(ctx)
	case ingestjob.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case ingestjob.FieldOcrText:
		return m.OldOcrText(ctx)
	case ingestjob.FieldResultJSON:
		return m.OldResultJSON(ctx)
	case ingestjob.FieldModelParams:
		return m.OldModelParams(ctx)
	}
	return nil, fmt.Errorf("unknown IngestJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ingestjob.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case ingestjob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case ingestjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case ingestjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case ingestjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ingestjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case ingestjob.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case ingestjob.FieldUsedFallback:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedFallback(v)
		return nil
	case ingestjob.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case ingestjob.FieldOcrText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrText(v)
		return nil
	case ingestjob.FieldResultJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultJSON(v)
		return nil
	case ingestjob.FieldModelParams:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelParams(v)
		return nil
	}
	return fmt.Errorf("unknown IngestJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IngestJobMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, ingestjob.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IngestJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ingestjob.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ingestjob.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown IngestJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IngestJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ingestjob.FieldFinishedAt) {
		fields = append(fields, ingestjob.FieldFinishedAt)
	}
	if m.FieldCleared(ingestjob.FieldStatus) {
		fields = append(fields, ingestjob.FieldStatus)
	}
	if m.FieldCleared(ingestjob.FieldErrorMessage) {
		fields = append(fields, ingestjob.FieldErrorMessage)
	}
	if m.FieldCleared(ingestjob.FieldConfidence) {
		fields = append(fields, ingestjob.FieldConfidence)
	}
	if m.FieldCleared(ingestjob.FieldOcrText) {
		fields = append(fields, ingestjob.FieldOcrText)
	}
	if m.FieldCleared(ingestjob.FieldResultJSON) {
		fields = append(fields, ingestjob.FieldResultJSON)
	}
	if m.FieldCleared(ingestjob.FieldModelParams) {
		fields = append(fields, ingestjob.FieldModelParams)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IngestJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IngestJobMutation) ClearField(name string) error {
	switch name {
	case ingestjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case ingestjob.FieldStatus:
		m.ClearStatus()
		return nil
	case ingestjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case ingestjob.FieldConfidence:
		m.ClearConfidence()
		return nil
	case ingestjob.FieldOcrText:
		m.ClearOcrText()
		return nil
	case ingestjob.FieldResultJSON:
		m.ClearResultJSON()
		return nil
	case ingestjob.FieldModelParams:
		m.ClearModelParams()
		return nil
	}
	return fmt.Errorf("unknown IngestJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IngestJobMutation) ResetField(name string) error {
	switch name {
	case ingestjob.FieldFileID:
		m.ResetFileID()
		return nil
	case ingestjob.FieldFormat:
		m.ResetFormat()
		return nil
	case ingestjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case ingestjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case ingestjob.FieldStatus:
		m.ResetStatus()
		return nil
	case ingestjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case ingestjob.FieldConfidence:
		m.ResetConfidence()
		return nil
	case ingestjob.FieldUsedFallback:
		m.ResetUsedFallback()
		return nil
	case ingestjob.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case ingestjob.FieldOcrText:
		m.ResetOcrText()
		return nil
	case ingestjob.FieldResultJSON:
		m.ResetResultJSON()
		return nil
	case ingestjob.FieldModelParams:
		m.ResetModelParams()
		return nil
	}
	return fmt.Errorf("unknown IngestJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IngestJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.file != nil {
		edges = append(edges, ingestjob.EdgeFile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IngestJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ingestjob.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IngestJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IngestJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IngestJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfile {
		edges = append(edges, ingestjob.EdgeFile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IngestJobMutation) EdgeCleared(name string) bool {
	switch name {
	case ingestjob.EdgeFile:
		return m.clearedfile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IngestJobMutation) ClearEdge(name string) error {
	switch name {
	case ingestjob.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown IngestJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IngestJobMutation) ResetEdge(name string) error {
	switch name {
	case ingestjob.EdgeFile:
		m.ResetFile()
		return nil
	}
	return fmt.Errorf("unknown IngestJob edge %s", name)
}

// ReceiptFileMutation represents an operation that mutates the ReceiptFile nodes in the graph.
type ReceiptFileMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	source_path   *string
	content_hash  *[]byte
	filename      *string
	file_ext      *string
	file_size     *int
	addfile_size  *int
	uploaded_at   *time.Time
	clearedFields map[string]struct{}
	jobs          map[uuid.UUID]struct{}
	removedjobs   map[uuid.UUID]struct{}
	clearedjobs   bool
	done          bool
	oldValue      func(context.Context) (*ReceiptFile, error)
	predicates    []predicate.ReceiptFile
}

var _ ent.Mutation = (*ReceiptFileMutation)(nil)

// receiptfileOption allows management of the mutation configuration using functional options.
type receiptfileOption func(*ReceiptFileMutation)

// newReceiptFileMutation creates new mutation for the ReceiptFile entity.
func newReceiptFileMutation(c config, op Op, opts ...receiptfileOption) *ReceiptFileMutation {
	m := &ReceiptFileMutation{
		config:        c,
		op:            op,
		typ:           TypeReceiptFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReceiptFileID sets the ID field of the mutation.
func withReceiptFileID(id uuid.UUID) receiptfileOption {
	return func(m *ReceiptFileMutation) {
		var (
			err   error
			once  sync.Once
			value *ReceiptFile
		)
		m.oldValue = func(ctx context.Context) (*ReceiptFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReceiptFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReceiptFile sets the old ReceiptFile of the mutation.
func withReceiptFile(node *ReceiptFile) receiptfileOption {
	return func(m *ReceiptFileMutation) {
		m.oldValue = func(context.Context) (*ReceiptFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReceiptFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReceiptFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReceiptFile entities.
func (m *ReceiptFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReceiptFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReceiptFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReceiptFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourcePath sets the "source_path" field.
func (m *ReceiptFileMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *ReceiptFileMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the ReceiptFile entity.
// If the ReceiptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptFileMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *ReceiptFileMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *ReceiptFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *ReceiptFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the ReceiptFile entity.
// If the ReceiptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *ReceiptFileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *ReceiptFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ReceiptFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the ReceiptFile entity.
// If the ReceiptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ReceiptFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *ReceiptFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *ReceiptFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the ReceiptFile entity.
// If the ReceiptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *ReceiptFileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *ReceiptFileMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *ReceiptFileMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the ReceiptFile entity.
// If the ReceiptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptFileMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *ReceiptFileMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *ReceiptFileMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *ReceiptFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *ReceiptFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *ReceiptFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the ReceiptFile entity.
// If the ReceiptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *ReceiptFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddJobIDs adds the "jobs" edge to the IngestJob entity by ids.
func (m *ReceiptFileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the IngestJob entity.
func (m *ReceiptFileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the IngestJob entity was cleared.
func (m *ReceiptFileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the IngestJob entity by IDs.
func (m *ReceiptFileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the IngestJob entity.
func (m *ReceiptFileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ReceiptFileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ReceiptFileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the ReceiptFileMutation builder.
func (m *ReceiptFileMutation) Where(ps ...predicate.ReceiptFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReceiptFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReceiptFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReceiptFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReceiptFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReceiptFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReceiptFile).
func (m *ReceiptFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReceiptFileMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.source_path != nil {
		fields = append(fields, receiptfile.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, receiptfile.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, receiptfile.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, receiptfile.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, receiptfile.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, receiptfile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReceiptFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case receiptfile.FieldSourcePath:
		return m.SourcePath()
	case receiptfile.FieldContentHash:
		return m.ContentHash()
	case receiptfile.FieldFilename:
		return m.Filename()
	case receiptfile.FieldFileExt:
		return m.FileExt()
	case receiptfile.FieldFileSize:
		return m.FileSize()
	case receiptfile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReceiptFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case receiptfile.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case receiptfile.FieldContentHash:
		return m.OldContentHash(ctx)
	case receiptfile.FieldFilename:
		return m.OldFilename(ctx)
	case receiptfile.FieldFileExt:
		return m.OldFileExt(ctx)
	case receiptfile.FieldFileSize:
		return m.OldFileSize(ctx)
	case receiptfile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReceiptFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case receiptfile.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case receiptfile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case receiptfile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case receiptfile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case receiptfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case receiptfile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReceiptFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReceiptFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, receiptfile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReceiptFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case receiptfile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case receiptfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown ReceiptFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReceiptFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReceiptFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReceiptFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReceiptFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReceiptFileMutation) ResetField(name string) error {
	switch name {
	case receiptfile.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case receiptfile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case receiptfile.FieldFilename:
		m.ResetFilename()
		return nil
	case receiptfile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case receiptfile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case receiptfile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown ReceiptFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReceiptFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, receiptfile.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReceiptFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case receiptfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReceiptFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, receiptfile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReceiptFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case receiptfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReceiptFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, receiptfile.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReceiptFileMutation) EdgeCleared(name string) bool {
	switch name {
	case receiptfile.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReceiptFileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ReceiptFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReceiptFileMutation) ResetEdge(name string) error {
	switch name {
	case receiptfile.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown ReceiptFile edge %s", name)
}
