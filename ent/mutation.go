// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eligius-health/eligius/ent/auditlog"
	"github.com/eligius-health/eligius/ent/checkpoint"
	"github.com/eligius-health/eligius/ent/criteriabatch"
	"github.com/eligius-health/eligius/ent/criterion"
	"github.com/eligius-health/eligius/ent/entity"
	"github.com/eligius-health/eligius/ent/outboxevent"
	"github.com/eligius-health/eligius/ent/predicate"
	"github.com/eligius-health/eligius/ent/protocol"
	"github.com/eligius-health/eligius/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditLog      = "AuditLog"
	TypeCheckpoint    = "Checkpoint"
	TypeCriteriaBatch = "CriteriaBatch"
	TypeCriterion     = "Criterion"
	TypeEntity        = "Entity"
	TypeOutboxEvent   = "OutboxEvent"
	TypeProtocol      = "Protocol"
)

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	actor         *string
	event_kind    *string
	target_kind   *string
	target_id     *string
	before        *map[string]interface{}
	after         *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id int) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActor sets the "actor" field.
func (m *AuditLogMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditLogMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditLogMutation) ResetActor() {
	m.actor = nil
}

// SetEventKind sets the "event_kind" field.
func (m *AuditLogMutation) SetEventKind(s string) {
	m.event_kind = &s
}

// EventKind returns the value of the "event_kind" field in the mutation.
func (m *AuditLogMutation) EventKind() (r string, exists bool) {
	v := m.event_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldEventKind returns the old "event_kind" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEventKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventKind: %w", err)
	}
	return oldValue.EventKind, nil
}

// ResetEventKind resets all changes to the "event_kind" field.
func (m *AuditLogMutation) ResetEventKind() {
	m.event_kind = nil
}

// SetTargetKind sets the "target_kind" field.
func (m *AuditLogMutation) SetTargetKind(s string) {
	m.target_kind = &s
}

// TargetKind returns the value of the "target_kind" field in the mutation.
func (m *AuditLogMutation) TargetKind() (r string, exists bool) {
	v := m.target_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetKind returns the old "target_kind" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldTargetKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetKind: %w", err)
	}
	return oldValue.TargetKind, nil
}

// ResetTargetKind resets all changes to the "target_kind" field.
func (m *AuditLogMutation) ResetTargetKind() {
	m.target_kind = nil
}

// SetTargetID sets the "target_id" field.
func (m *AuditLogMutation) SetTargetID(s string) {
	m.target_id = &s
}

// TargetID returns the value of the "target_id" field in the mutation.
func (m *AuditLogMutation) TargetID() (r string, exists bool) {
	v := m.target_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetID returns the old "target_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldTargetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetID: %w", err)
	}
	return oldValue.TargetID, nil
}

// ResetTargetID resets all changes to the "target_id" field.
func (m *AuditLogMutation) ResetTargetID() {
	m.target_id = nil
}

// SetBefore sets the "before" field.
func (m *AuditLogMutation) SetBefore(value map[string]interface{}) {
	m.before = &value
}

// Before returns the value of the "before" field in the mutation.
func (m *AuditLogMutation) Before() (r map[string]interface{}, exists bool) {
	v := m.before
	if v == nil {
		return
	}
	return *v, true
}

// OldBefore returns the old "before" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldBefore(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBefore: %w", err)
	}
	return oldValue.Before, nil
}

// ClearBefore clears the value of the "before" field.
func (m *AuditLogMutation) ClearBefore() {
	m.before = nil
	m.clearedFields[auditlog.FieldBefore] = struct{}{}
}

// BeforeCleared returns if the "before" field was cleared in this mutation.
func (m *AuditLogMutation) BeforeCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldBefore]
	return ok
}

// ResetBefore resets all changes to the "before" field.
func (m *AuditLogMutation) ResetBefore() {
	m.before = nil
	delete(m.clearedFields, auditlog.FieldBefore)
}

// SetAfter sets the "after" field.
func (m *AuditLogMutation) SetAfter(value map[string]interface{}) {
	m.after = &value
}

// After returns the value of the "after" field in the mutation.
func (m *AuditLogMutation) After() (r map[string]interface{}, exists bool) {
	v := m.after
	if v == nil {
		return
	}
	return *v, true
}

// OldAfter returns the old "after" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAfter(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAfter: %w", err)
	}
	return oldValue.After, nil
}

// ClearAfter clears the value of the "after" field.
func (m *AuditLogMutation) ClearAfter() {
	m.after = nil
	m.clearedFields[auditlog.FieldAfter] = struct{}{}
}

// AfterCleared returns if the "after" field was cleared in this mutation.
func (m *AuditLogMutation) AfterCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldAfter]
	return ok
}

// ResetAfter resets all changes to the "after" field.
func (m *AuditLogMutation) ResetAfter() {
	m.after = nil
	delete(m.clearedFields, auditlog.FieldAfter)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.actor != nil {
		fields = append(fields, auditlog.FieldActor)
	}
	if m.event_kind != nil {
		fields = append(fields, auditlog.FieldEventKind)
	}
	if m.target_kind != nil {
		fields = append(fields, auditlog.FieldTargetKind)
	}
	if m.target_id != nil {
		fields = append(fields, auditlog.FieldTargetID)
	}
	if m.before != nil {
		fields = append(fields, auditlog.FieldBefore)
	}
	if m.after != nil {
		fields = append(fields, auditlog.FieldAfter)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldActor:
		return m.Actor()
	case auditlog.FieldEventKind:
		return m.EventKind()
	case auditlog.FieldTargetKind:
		return m.TargetKind()
	case auditlog.FieldTargetID:
		return m.TargetID()
	case auditlog.FieldBefore:
		return m.Before()
	case auditlog.FieldAfter:
		return m.After()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldActor:
		return m.OldActor(ctx)
	case auditlog.FieldEventKind:
		return m.OldEventKind(ctx)
	case auditlog.FieldTargetKind:
		return m.OldTargetKind(ctx)
	case auditlog.FieldTargetID:
		return m.OldTargetID(ctx)
	case auditlog.FieldBefore:
		return m.OldBefore(ctx)
	case auditlog.FieldAfter:
		return m.OldAfter(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditlog.FieldEventKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventKind(v)
		return nil
	case auditlog.FieldTargetKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetKind(v)
		return nil
	case auditlog.FieldTargetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetID(v)
		return nil
	case auditlog.FieldBefore:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBefore(v)
		return nil
	case auditlog.FieldAfter:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAfter(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldBefore) {
		fields = append(fields, auditlog.FieldBefore)
	}
	if m.FieldCleared(auditlog.FieldAfter) {
		fields = append(fields, auditlog.FieldAfter)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldBefore:
		m.ClearBefore()
		return nil
	case auditlog.FieldAfter:
		m.ClearAfter()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldActor:
		m.ResetActor()
		return nil
	case auditlog.FieldEventKind:
		m.ResetEventKind()
		return nil
	case auditlog.FieldTargetKind:
		m.ResetTargetKind()
		return nil
	case auditlog.FieldTargetID:
		m.ResetTargetID()
		return nil
	case auditlog.FieldBefore:
		m.ResetBefore()
		return nil
	case auditlog.FieldAfter:
		m.ResetAfter()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op            Op
	typ           string
	id            *int
	thread_id     *string
	step          *int
	addstep       *int
	node          *string
	state         *[]byte
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Checkpoint, error)
	predicates    []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id int) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetThreadID sets the "thread_id" field.
func (m *CheckpointMutation) SetThreadID(s string) {
	m.thread_id = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *CheckpointMutation) ThreadID() (r string, exists bool) {
	v := m.thread_id
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldThreadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *CheckpointMutation) ResetThreadID() {
	m.thread_id = nil
}

// SetStep sets the "step" field.
func (m *CheckpointMutation) SetStep(i int) {
	m.step = &i
	m.addstep = nil
}

// Step returns the value of the "step" field in the mutation.
func (m *CheckpointMutation) Step() (r int, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStep returns the old "step" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldStep(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStep: %w", err)
	}
	return oldValue.Step, nil
}

// AddStep adds i to the "step" field.
func (m *CheckpointMutation) AddStep(i int) {
	if m.addstep != nil {
		*m.addstep += i
	} else {
		m.addstep = &i
	}
}

// AddedStep returns the value that was added to the "step" field in this mutation.
func (m *CheckpointMutation) AddedStep() (r int, exists bool) {
	v := m.addstep
	if v == nil {
		return
	}
	return *v, true
}

// ResetStep resets all changes to the "step" field.
func (m *CheckpointMutation) ResetStep() {
	m.step = nil
	m.addstep = nil
}

// SetNode sets the "node" field.
func (m *CheckpointMutation) SetNode(s string) {
	m.node = &s
}

// Node returns the value of the "node" field in the mutation.
func (m *CheckpointMutation) Node() (r string, exists bool) {
	v := m.node
	if v == nil {
		return
	}
	return *v, true
}

// OldNode returns the old "node" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldNode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNode: %w", err)
	}
	return oldValue.Node, nil
}

// ResetNode resets all changes to the "node" field.
func (m *CheckpointMutation) ResetNode() {
	m.node = nil
}

// SetState sets the "state" field.
func (m *CheckpointMutation) SetState(b []byte) {
	m.state = &b
}

// State returns the value of the "state" field in the mutation.
func (m *CheckpointMutation) State() (r []byte, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldState(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *CheckpointMutation) ResetState() {
	m.state = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.thread_id != nil {
		fields = append(fields, checkpoint.FieldThreadID)
	}
	if m.step != nil {
		fields = append(fields, checkpoint.FieldStep)
	}
	if m.node != nil {
		fields = append(fields, checkpoint.FieldNode)
	}
	if m.state != nil {
		fields = append(fields, checkpoint.FieldState)
	}
	if m.created_at != nil {
		fields = append(fields, checkpoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldThreadID:
		return m.ThreadID()
	case checkpoint.FieldStep:
		return m.Step()
	case checkpoint.FieldNode:
		return m.Node()
	case checkpoint.FieldState:
		return m.State()
	case checkpoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldThreadID:
		return m.OldThreadID(ctx)
	case checkpoint.FieldStep:
		return m.OldStep(ctx)
	case checkpoint.FieldNode:
		return m.OldNode(ctx)
	case checkpoint.FieldState:
		return m.OldState(ctx)
	case checkpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case checkpoint.FieldStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStep(v)
		return nil
	case checkpoint.FieldNode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNode(v)
		return nil
	case checkpoint.FieldState:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case checkpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	var fields []string
	if m.addstep != nil {
		fields = append(fields, checkpoint.FieldStep)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldStep:
		return m.AddedStep()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStep(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldThreadID:
		m.ResetThreadID()
		return nil
	case checkpoint.FieldStep:
		m.ResetStep()
		return nil
	case checkpoint.FieldNode:
		m.ResetNode()
		return nil
	case checkpoint.FieldState:
		m.ResetState()
		return nil
	case checkpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// CriteriaBatchMutation represents an operation that mutates the CriteriaBatch nodes in the graph.
type CriteriaBatchMutation struct {
	config
	op                Op
	typ               string
	id                *string
	is_archived       *bool
	reviewed_count    *int
	addreviewed_count *int
	total_count       *int
	addtotal_count    *int
	extraction_model  *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	protocol          *string
	clearedprotocol   bool
	criteria          map[string]struct{}
	removedcriteria   map[string]struct{}
	clearedcriteria   bool
	done              bool
	oldValue          func(context.Context) (*CriteriaBatch, error)
	predicates        []predicate.CriteriaBatch
}

var _ ent.Mutation = (*CriteriaBatchMutation)(nil)

// criteriabatchOption allows management of the mutation configuration using functional options.
type criteriabatchOption func(*CriteriaBatchMutation)

// newCriteriaBatchMutation creates new mutation for the CriteriaBatch entity.
func newCriteriaBatchMutation(c config, op Op, opts ...criteriabatchOption) *CriteriaBatchMutation {
	m := &CriteriaBatchMutation{
		config:        c,
		op:            op,
		typ:           TypeCriteriaBatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCriteriaBatchID sets the ID field of the mutation.
func withCriteriaBatchID(id string) criteriabatchOption {
	return func(m *CriteriaBatchMutation) {
		var (
			err   error
			once  sync.Once
			value *CriteriaBatch
		)
		m.oldValue = func(ctx context.Context) (*CriteriaBatch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CriteriaBatch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCriteriaBatch sets the old CriteriaBatch of the mutation.
func withCriteriaBatch(node *CriteriaBatch) criteriabatchOption {
	return func(m *CriteriaBatchMutation) {
		m.oldValue = func(context.Context) (*CriteriaBatch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CriteriaBatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CriteriaBatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CriteriaBatch entities.
func (m *CriteriaBatchMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CriteriaBatchMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CriteriaBatchMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CriteriaBatch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProtocolID sets the "protocol_id" field.
func (m *CriteriaBatchMutation) SetProtocolID(s string) {
	m.protocol = &s
}

// ProtocolID returns the value of the "protocol_id" field in the mutation.
func (m *CriteriaBatchMutation) ProtocolID() (r string, exists bool) {
	v := m.protocol
	if v == nil {
		return
	}
	return *v, true
}

// OldProtocolID returns the old "protocol_id" field's value of the CriteriaBatch entity.
// If the CriteriaBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriteriaBatchMutation) OldProtocolID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProtocolID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProtocolID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProtocolID: %w", err)
	}
	return oldValue.ProtocolID, nil
}

// ResetProtocolID resets all changes to the "protocol_id" field.
func (m *CriteriaBatchMutation) ResetProtocolID() {
	m.protocol = nil
}

// SetIsArchived sets the "is_archived" field.
func (m *CriteriaBatchMutation) SetIsArchived(b bool) {
	m.is_archived = &b
}

// IsArchived returns the value of the "is_archived" field in the mutation.
func (m *CriteriaBatchMutation) IsArchived() (r bool, exists bool) {
	v := m.is_archived
	if v == nil {
		return
	}
	return *v, true
}

// OldIsArchived returns the old "is_archived" field's value of the CriteriaBatch entity.
// If the CriteriaBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriteriaBatchMutation) OldIsArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsArchived: %w", err)
	}
	return oldValue.IsArchived, nil
}

// ResetIsArchived resets all changes to the "is_archived" field.
func (m *CriteriaBatchMutation) ResetIsArchived() {
	m.is_archived = nil
}

// SetReviewedCount sets the "reviewed_count" field.
func (m *CriteriaBatchMutation) SetReviewedCount(i int) {
	m.reviewed_count = &i
	m.addreviewed_count = nil
}

// ReviewedCount returns the value of the "reviewed_count" field in the mutation.
func (m *CriteriaBatchMutation) ReviewedCount() (r int, exists bool) {
	v := m.reviewed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedCount returns the old "reviewed_count" field's value of the CriteriaBatch entity.
// If the CriteriaBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriteriaBatchMutation) OldReviewedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedCount: %w", err)
	}
	return oldValue.ReviewedCount, nil
}

// AddReviewedCount adds i to the "reviewed_count" field.
func (m *CriteriaBatchMutation) AddReviewedCount(i int) {
	if m.addreviewed_count != nil {
		*m.addreviewed_count += i
	} else {
		m.addreviewed_count = &i
	}
}

// AddedReviewedCount returns the value that was added to the "reviewed_count" field in this mutation.
func (m *CriteriaBatchMutation) AddedReviewedCount() (r int, exists bool) {
	v := m.addreviewed_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReviewedCount resets all changes to the "reviewed_count" field.
func (m *CriteriaBatchMutation) ResetReviewedCount() {
	m.reviewed_count = nil
	m.addreviewed_count = nil
}

// SetTotalCount sets the "total_count" field.
func (m *CriteriaBatchMutation) SetTotalCount(i int) {
	m.total_count = &i
	m.addtotal_count = nil
}

// TotalCount returns the value of the "total_count" field in the mutation.
func (m *CriteriaBatchMutation) TotalCount() (r int, exists bool) {
	v := m.total_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCount returns the old "total_count" field's value of the CriteriaBatch entity.
// If the CriteriaBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriteriaBatchMutation) OldTotalCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCount: %w", err)
	}
	return oldValue.TotalCount, nil
}

// AddTotalCount adds i to the "total_count" field.
func (m *CriteriaBatchMutation) AddTotalCount(i int) {
	if m.addtotal_count != nil {
		*m.addtotal_count += i
	} else {
		m.addtotal_count = &i
	}
}

// AddedTotalCount returns the value that was added to the "total_count" field in this mutation.
func (m *CriteriaBatchMutation) AddedTotalCount() (r int, exists bool) {
	v := m.addtotal_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCount resets all changes to the "total_count" field.
func (m *CriteriaBatchMutation) ResetTotalCount() {
	m.total_count = nil
	m.addtotal_count = nil
}

// SetExtractionModel sets the "extraction_model" field.
func (m *CriteriaBatchMutation) SetExtractionModel(s string) {
	m.extraction_model = &s
}

// ExtractionModel returns the value of the "extraction_model" field in the mutation.
func (m *CriteriaBatchMutation) ExtractionModel() (r string, exists bool) {
	v := m.extraction_model
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionModel returns the old "extraction_model" field's value of the CriteriaBatch entity.
// If the CriteriaBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriteriaBatchMutation) OldExtractionModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionModel: %w", err)
	}
	return oldValue.ExtractionModel, nil
}

// ResetExtractionModel resets all changes to the "extraction_model" field.
func (m *CriteriaBatchMutation) ResetExtractionModel() {
	m.extraction_model = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CriteriaBatchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CriteriaBatchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CriteriaBatch entity.
// If the CriteriaBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriteriaBatchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CriteriaBatchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CriteriaBatchMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CriteriaBatchMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CriteriaBatch entity.
// If the CriteriaBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriteriaBatchMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CriteriaBatchMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProtocol clears the "protocol" edge to the Protocol entity.
func (m *CriteriaBatchMutation) ClearProtocol() {
	m.clearedprotocol = true
	m.clearedFields[criteriabatch.FieldProtocolID] = struct{}{}
}

// ProtocolCleared reports if the "protocol" edge to the Protocol entity was cleared.
func (m *CriteriaBatchMutation) ProtocolCleared() bool {
	return m.clearedprotocol
}

// ProtocolIDs returns the "protocol" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProtocolID instead. It exists only for internal usage by the builders.
func (m *CriteriaBatchMutation) ProtocolIDs() (ids []string) {
	if id := m.protocol; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProtocol resets all changes to the "protocol" edge.
func (m *CriteriaBatchMutation) ResetProtocol() {
	m.protocol = nil
	m.clearedprotocol = false
}

// AddCriteriumIDs adds the "criteria" edge to the Criterion entity by ids.
func (m *CriteriaBatchMutation) AddCriteriumIDs(ids ...string) {
	if m.criteria == nil {
		m.criteria = make(map[string]struct{})
	}
	for i := range ids {
		m.criteria[ids[i]] = struct{}{}
	}
}

// ClearCriteria clears the "criteria" edge to the Criterion entity.
func (m *CriteriaBatchMutation) ClearCriteria() {
	m.clearedcriteria = true
}

// CriteriaCleared reports if the "criteria" edge to the Criterion entity was cleared.
func (m *CriteriaBatchMutation) CriteriaCleared() bool {
	return m.clearedcriteria
}

// RemoveCriteriumIDs removes the "criteria" edge to the Criterion entity by IDs.
func (m *CriteriaBatchMutation) RemoveCriteriumIDs(ids ...string) {
	if m.removedcriteria == nil {
		m.removedcriteria = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.criteria, ids[i])
		m.removedcriteria[ids[i]] = struct{}{}
	}
}

// RemovedCriteria returns the removed IDs of the "criteria" edge to the Criterion entity.
func (m *CriteriaBatchMutation) RemovedCriteriaIDs() (ids []string) {
	for id := range m.removedcriteria {
		ids = append(ids, id)
	}
	return
}

// CriteriaIDs returns the "criteria" edge IDs in the mutation.
func (m *CriteriaBatchMutation) CriteriaIDs() (ids []string) {
	for id := range m.criteria {
		ids = append(ids, id)
	}
	return
}

// ResetCriteria resets all changes to the "criteria" edge.
func (m *CriteriaBatchMutation) ResetCriteria() {
	m.criteria = nil
	m.clearedcriteria = false
	m.removedcriteria = nil
}

// Where appends a list predicates to the CriteriaBatchMutation builder.
func (m *CriteriaBatchMutation) Where(ps ...predicate.CriteriaBatch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CriteriaBatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CriteriaBatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CriteriaBatch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CriteriaBatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CriteriaBatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CriteriaBatch).
func (m *CriteriaBatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CriteriaBatchMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.protocol != nil {
		fields = append(fields, criteriabatch.FieldProtocolID)
	}
	if m.is_archived != nil {
		fields = append(fields, criteriabatch.FieldIsArchived)
	}
	if m.reviewed_count != nil {
		fields = append(fields, criteriabatch.FieldReviewedCount)
	}
	if m.total_count != nil {
		fields = append(fields, criteriabatch.FieldTotalCount)
	}
	if m.extraction_model != nil {
		fields = append(fields, criteriabatch.FieldExtractionModel)
	}
	if m.created_at != nil {
		fields = append(fields, criteriabatch.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, criteriabatch.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CriteriaBatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case criteriabatch.FieldProtocolID:
		return m.ProtocolID()
	case criteriabatch.FieldIsArchived:
		return m.IsArchived()
	case criteriabatch.FieldReviewedCount:
		return m.ReviewedCount()
	case criteriabatch.FieldTotalCount:
		return m.TotalCount()
	case criteriabatch.FieldExtractionModel:
		return m.ExtractionModel()
	case criteriabatch.FieldCreatedAt:
		return m.CreatedAt()
	case criteriabatch.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CriteriaBatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case criteriabatch.FieldProtocolID:
		return m.OldProtocolID(ctx)
	case criteriabatch.FieldIsArchived:
		return m.OldIsArchived(ctx)
	case criteriabatch.FieldReviewedCount:
		return m.OldReviewedCount(ctx)
	case criteriabatch.FieldTotalCount:
		return m.OldTotalCount(ctx)
	case criteriabatch.FieldExtractionModel:
		return m.OldExtractionModel(ctx)
	case criteriabatch.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case criteriabatch.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CriteriaBatch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CriteriaBatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case criteriabatch.FieldProtocolID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProtocolID(v)
		return nil
	case criteriabatch.FieldIsArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsArchived(v)
		return nil
	case criteriabatch.FieldReviewedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedCount(v)
		return nil
	case criteriabatch.FieldTotalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCount(v)
		return nil
	case criteriabatch.FieldExtractionModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionModel(v)
		return nil
	case criteriabatch.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case criteriabatch.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CriteriaBatch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CriteriaBatchMutation) AddedFields() []string {
	var fields []string
	if m.addreviewed_count != nil {
		fields = append(fields, criteriabatch.FieldReviewedCount)
	}
	if m.addtotal_count != nil {
		fields = append(fields, criteriabatch.FieldTotalCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CriteriaBatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case criteriabatch.FieldReviewedCount:
		return m.AddedReviewedCount()
	case criteriabatch.FieldTotalCount:
		return m.AddedTotalCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CriteriaBatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case criteriabatch.FieldReviewedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReviewedCount(v)
		return nil
	case criteriabatch.FieldTotalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCount(v)
		return nil
	}
	return fmt.Errorf("unknown CriteriaBatch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CriteriaBatchMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CriteriaBatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CriteriaBatchMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CriteriaBatch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CriteriaBatchMutation) ResetField(name string) error {
	switch name {
	case criteriabatch.FieldProtocolID:
		m.ResetProtocolID()
		return nil
	case criteriabatch.FieldIsArchived:
		m.ResetIsArchived()
		return nil
	case criteriabatch.FieldReviewedCount:
		m.ResetReviewedCount()
		return nil
	case criteriabatch.FieldTotalCount:
		m.ResetTotalCount()
		return nil
	case criteriabatch.FieldExtractionModel:
		m.ResetExtractionModel()
		return nil
	case criteriabatch.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case criteriabatch.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CriteriaBatch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CriteriaBatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.protocol != nil {
		edges = append(edges, criteriabatch.EdgeProtocol)
	}
	if m.criteria != nil {
		edges = append(edges, criteriabatch.EdgeCriteria)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CriteriaBatchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case criteriabatch.EdgeProtocol:
		if id := m.protocol; id != nil {
			return []ent.Value{*id}
		}
	case criteriabatch.EdgeCriteria:
		ids := make([]ent.Value, 0, len(m.criteria))
		for id := range m.criteria {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CriteriaBatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcriteria != nil {
		edges = append(edges, criteriabatch.EdgeCriteria)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CriteriaBatchMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case criteriabatch.EdgeCriteria:
		ids := make([]ent.Value, 0, len(m.removedcriteria))
		for id := range m.removedcriteria {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CriteriaBatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedprotocol {
		edges = append(edges, criteriabatch.EdgeProtocol)
	}
	if m.clearedcriteria {
		edges = append(edges, criteriabatch.EdgeCriteria)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CriteriaBatchMutation) EdgeCleared(name string) bool {
	switch name {
	case criteriabatch.EdgeProtocol:
		return m.clearedprotocol
	case criteriabatch.EdgeCriteria:
		return m.clearedcriteria
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CriteriaBatchMutation) ClearEdge(name string) error {
	switch name {
	case criteriabatch.EdgeProtocol:
		m.ClearProtocol()
		return nil
	}
	return fmt.Errorf("unknown CriteriaBatch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CriteriaBatchMutation) ResetEdge(name string) error {
	switch name {
	case criteriabatch.EdgeProtocol:
		m.ResetProtocol()
		return nil
	case criteriabatch.EdgeCriteria:
		m.ResetCriteria()
		return nil
	}
	return fmt.Errorf("unknown CriteriaBatch edge %s", name)
}

// CriterionMutation represents an operation that mutates the Criterion nodes in the graph.
type CriterionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	text             *string
	kind             *models.CriterionKind
	category         *string
	confidence       *float64
	addconfidence    *float64
	page             *int
	addpage          *int
	thresholds       *[]models.NumericThreshold
	appendthresholds []models.NumericThreshold
	temporal         **models.TemporalConstraint
	conditions       *[]string
	appendconditions []string
	assertion_status *models.AssertionStatus
	review_decision  *models.ReviewDecision
	modification     *map[string]interface{}
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	batch            *string
	clearedbatch     bool
	entities         map[string]struct{}
	removedentities  map[string]struct{}
	clearedentities  bool
	done             bool
	oldValue         func(context.Context) (*Criterion, error)
	predicates       []predicate.Criterion
}

var _ ent.Mutation = (*CriterionMutation)(nil)

// criterionOption allows management of the mutation configuration using functional options.
type criterionOption func(*CriterionMutation)

// newCriterionMutation creates new mutation for the Criterion entity.
func newCriterionMutation(c config, op Op, opts ...criterionOption) *CriterionMutation {
	m := &CriterionMutation{
		config:        c,
		op:            op,
		typ:           TypeCriterion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCriterionID sets the ID field of the mutation.
func withCriterionID(id string) criterionOption {
	return func(m *CriterionMutation) {
		var (
			err   error
			once  sync.Once
			value *Criterion
		)
		m.oldValue = func(ctx context.Context) (*Criterion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Criterion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCriterion sets the old Criterion of the mutation.
func withCriterion(node *Criterion) criterionOption {
	return func(m *CriterionMutation) {
		m.oldValue = func(context.Context) (*Criterion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CriterionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CriterionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Criterion entities.
func (m *CriterionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CriterionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CriterionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Criterion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBatchID sets the "batch_id" field.
func (m *CriterionMutation) SetBatchID(s string) {
	m.batch = &s
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *CriterionMutation) BatchID() (r string, exists bool) {
	v := m.batch
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the Criterion entity.
// If the Criterion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriterionMutation) OldBatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *CriterionMutation) ResetBatchID() {
	m.batch = nil
}

// SetText sets the "text" field.
func (m *CriterionMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *CriterionMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Criterion entity.
// If the Criterion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriterionMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *CriterionMutation) ResetText() {
	m.text = nil
}

// SetKind sets the "kind" field.
func (m *CriterionMutation) SetKind(mk models.CriterionKind) {
	m.kind = &mk
}

// Kind returns the value of the "kind" field in the mutation.
func (m *CriterionMutation) Kind() (r models.CriterionKind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Criterion entity.
// If the Criterion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriterionMutation) OldKind(ctx context.Context) (v models.CriterionKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *CriterionMutation) ResetKind() {
	m.kind = nil
}

// SetCategory sets the "category" field.
func (m *CriterionMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *CriterionMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Criterion entity.
// If the Criterion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriterionMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *CriterionMutation) ResetCategory() {
	m.category = nil
}

// SetConfidence sets the "confidence" field.
func (m *CriterionMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *CriterionMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Criterion entity.
// If the Criterion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriterionMutation) OldConfidence(ctx context.Context) (v float64, err error) {
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
func (m *CriterionMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *CriterionMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *CriterionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetPage sets the "page" field.
func (m *CriterionMutation) SetPage(i int) {
	m.page = &i
	m.addpage = nil
}

// Page returns the value of the "page" field in the mutation.
func (m *CriterionMutation) Page() (r int, exists bool) {
	v := m.page
	if v == nil {
		return
	}
	return *v, true
}

// OldPage returns the old "page" field's value of the Criterion entity.
// If the Criterion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriterionMutation) OldPage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPage: %w", err)
	}
	return oldValue.Page, nil
}

// AddPage adds i to the "page" field.
func (m *CriterionMutation) AddPage(i int) {
	if m.addpage != nil {
		*m.addpage += i
	} else {
		m.addpage = &i
	}
}

// AddedPage returns the value that was added to the "page" field in this mutation.
func (m *CriterionMutation) AddedPage() (r int, exists bool) {
	v := m.addpage
	if v == nil {
		return
	}
	return *v, true
}

// ResetPage resets all changes to the "page" field.
func (m *CriterionMutation) ResetPage() {
	m.page = nil
	m.addpage = nil
}

// SetThresholds sets the "thresholds" field.
func (m *CriterionMutation) SetThresholds(mt []models.NumericThreshold) {
	m.thresholds = &mt
	m.appendthresholds = nil
}

// Thresholds returns the value of the "thresholds" field in the mutation.
func (m *CriterionMutation) Thresholds() (r []models.NumericThreshold, exists bool) {
	v := m.thresholds
	if v == nil {
		return
	}
	return *v, true
}

// OldThresholds returns the old "thresholds" field's value of the Criterion entity.
// If the Criterion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriterionMutation) OldThresholds(ctx context.Context) (v []models.NumericThreshold, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThresholds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThresholds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThresholds: %w", err)
	}
	return oldValue.Thresholds, nil
}

// AppendThresholds adds mt to the "thresholds" field.
func (m *CriterionMutation) AppendThresholds(mt []models.NumericThreshold) {
	m.appendthresholds = append(m.appendthresholds, mt...)
}

// AppendedThresholds returns the list of values that were appended to the "thresholds" field in this mutation.
func (m *CriterionMutation) AppendedThresholds() ([]models.NumericThreshold, bool) {
	if len(m.appendthresholds) == 0 {
		return nil, false
	}
	return m.appendthresholds, true
}

// ClearThresholds clears the value of the "thresholds" field.
func (m *CriterionMutation) ClearThresholds() {
	m.thresholds = nil
	m.appendthresholds = nil
	m.clearedFields[criterion.FieldThresholds] = struct{}{}
}

// ThresholdsCleared returns if the "thresholds" field was cleared in this mutation.
func (m *CriterionMutation) ThresholdsCleared() bool {
	_, ok := m.clearedFields[criterion.FieldThresholds]
	return ok
}

// ResetThresholds resets all changes to the "thresholds" field.
func (m *CriterionMutation) ResetThresholds() {
	m.thresholds = nil
	m.appendthresholds = nil
	delete(m.clearedFields, criterion.FieldThresholds)
}

// SetTemporal sets the "temporal" field.
func (m *CriterionMutation) SetTemporal(mc *models.TemporalConstraint) {
	m.temporal = &mc
}

// Temporal returns the value of the "temporal" field in the mutation.
func (m *CriterionMutation) Temporal() (r *models.TemporalConstraint, exists bool) {
	v := m.temporal
	if v == nil {
		return
	}
	return *v, true
}

// OldTemporal returns the old "temporal" field's value of the Criterion entity.
// If the Criterion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriterionMutation) OldTemporal(ctx context.Context) (v *models.TemporalConstraint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemporal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemporal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemporal: %w", err)
	}
	return oldValue.Temporal, nil
}

// ClearTemporal clears the value of the "temporal" field.
func (m *CriterionMutation) ClearTemporal() {
	m.temporal = nil
	m.clearedFields[criterion.FieldTemporal] = struct{}{}
}

// TemporalCleared returns if the "temporal" field was cleared in this mutation.
func (m *CriterionMutation) TemporalCleared() bool {
	_, ok := m.clearedFields[criterion.FieldTemporal]
	return ok
}

// ResetTemporal resets all changes to the "temporal" field.
func (m *CriterionMutation) ResetTemporal() {
	m.temporal = nil
	delete(m.clearedFields, criterion.FieldTemporal)
}

// SetConditions sets the "conditions" field.
func (m *CriterionMutation) SetConditions(s []string) {
	m.conditions = &s
	m.appendconditions = nil
}

// Conditions returns the value of the "conditions" field in the mutation.
func (m *CriterionMutation) Conditions() (r []string, exists bool) {
	v := m.conditions
	if v == nil {
		return
	}
	return *v, true
}

// OldConditions returns the old "conditions" field's value of the Criterion entity.
// If the Criterion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriterionMutation) OldConditions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConditions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConditions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConditions: %w", err)
	}
	return oldValue.Conditions, nil
}

// AppendConditions adds s to the "conditions" field.
func (m *CriterionMutation) AppendConditions(s []string) {
	m.appendconditions = append(m.appendconditions, s...)
}

// AppendedConditions returns the list of values that were appended to the "conditions" field in this mutation.
func (m *CriterionMutation) AppendedConditions() ([]string, bool) {
	if len(m.appendconditions) == 0 {
		return nil, false
	}
	return m.appendconditions, true
}

// ClearConditions clears the value of the "conditions" field.
func (m *CriterionMutation) ClearConditions() {
	m.conditions = nil
	m.appendconditions = nil
	m.clearedFields[criterion.FieldConditions] = struct{}{}
}

// ConditionsCleared returns if the "conditions" field was cleared in this mutation.
func (m *CriterionMutation) ConditionsCleared() bool {
	_, ok := m.clearedFields[criterion.FieldConditions]
	return ok
}

// ResetConditions resets all changes to the "conditions" field.
func (m *CriterionMutation) ResetConditions() {
	m.conditions = nil
	m.appendconditions = nil
	delete(m.clearedFields, criterion.FieldConditions)
}

// SetAssertionStatus sets the "assertion_status" field.
func (m *CriterionMutation) SetAssertionStatus(ms models.AssertionStatus) {
	m.assertion_status = &ms
}

// AssertionStatus returns the value of the "assertion_status" field in the mutation.
func (m *CriterionMutation) AssertionStatus() (r models.AssertionStatus, exists bool) {
	v := m.assertion_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAssertionStatus returns the old "assertion_status" field's value of the Criterion entity.
// If the Criterion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriterionMutation) OldAssertionStatus(ctx context.Context) (v models.AssertionStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssertionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssertionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssertionStatus: %w", err)
	}
	return oldValue.AssertionStatus, nil
}

// ClearAssertionStatus clears the value of the "assertion_status" field.
func (m *CriterionMutation) ClearAssertionStatus() {
	m.assertion_status = nil
	m.clearedFields[criterion.FieldAssertionStatus] = struct{}{}
}

// AssertionStatusCleared returns if the "assertion_status" field was cleared in this mutation.
func (m *CriterionMutation) AssertionStatusCleared() bool {
	_, ok := m.clearedFields[criterion.FieldAssertionStatus]
	return ok
}

// ResetAssertionStatus resets all changes to the "assertion_status" field.
func (m *CriterionMutation) ResetAssertionStatus() {
	m.assertion_status = nil
	delete(m.clearedFields, criterion.FieldAssertionStatus)
}

// SetReviewDecision sets the "review_decision" field.
func (m *CriterionMutation) SetReviewDecision(md models.ReviewDecision) {
	m.review_decision = &md
}

// ReviewDecision returns the value of the "review_decision" field in the mutation.
func (m *CriterionMutation) ReviewDecision() (r models.ReviewDecision, exists bool) {
	v := m.review_decision
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewDecision returns the old "review_decision" field's value of the Criterion entity.
// If the Criterion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriterionMutation) OldReviewDecision(ctx context.Context) (v *models.ReviewDecision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewDecision: %w", err)
	}
	return oldValue.ReviewDecision, nil
}

// ClearReviewDecision clears the value of the "review_decision" field.
func (m *CriterionMutation) ClearReviewDecision() {
	m.review_decision = nil
	m.clearedFields[criterion.FieldReviewDecision] = struct{}{}
}

// ReviewDecisionCleared returns if the "review_decision" field was cleared in this mutation.
func (m *CriterionMutation) ReviewDecisionCleared() bool {
	_, ok := m.clearedFields[criterion.FieldReviewDecision]
	return ok
}

// ResetReviewDecision resets all changes to the "review_decision" field.
func (m *CriterionMutation) ResetReviewDecision() {
	m.review_decision = nil
	delete(m.clearedFields, criterion.FieldReviewDecision)
}

// SetModification sets the "modification" field.
func (m *CriterionMutation) SetModification(value map[string]interface{}) {
	m.modification = &value
}

// Modification returns the value of the "modification" field in the mutation.
func (m *CriterionMutation) Modification() (r map[string]interface{}, exists bool) {
	v := m.modification
	if v == nil {
		return
	}
	return *v, true
}

// OldModification returns the old "modification" field's value of the Criterion entity.
// If the Criterion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriterionMutation) OldModification(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModification: %w", err)
	}
	return oldValue.Modification, nil
}

// ClearModification clears the value of the "modification" field.
func (m *CriterionMutation) ClearModification() {
	m.modification = nil
	m.clearedFields[criterion.FieldModification] = struct{}{}
}

// ModificationCleared returns if the "modification" field was cleared in this mutation.
func (m *CriterionMutation) ModificationCleared() bool {
	_, ok := m.clearedFields[criterion.FieldModification]
	return ok
}

// ResetModification resets all changes to the "modification" field.
func (m *CriterionMutation) ResetModification() {
	m.modification = nil
	delete(m.clearedFields, criterion.FieldModification)
}

// SetCreatedAt sets the "created_at" field.
func (m *CriterionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CriterionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Criterion entity.
// If the Criterion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriterionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CriterionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CriterionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CriterionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Criterion entity.
// If the Criterion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriterionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CriterionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearBatch clears the "batch" edge to the CriteriaBatch entity.
func (m *CriterionMutation) ClearBatch() {
	m.clearedbatch = true
	m.clearedFields[criterion.FieldBatchID] = struct{}{}
}

// BatchCleared reports if the "batch" edge to the CriteriaBatch entity was cleared.
func (m *CriterionMutation) BatchCleared() bool {
	return m.clearedbatch
}

// BatchIDs returns the "batch" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BatchID instead. It exists only for internal usage by the builders.
func (m *CriterionMutation) BatchIDs() (ids []string) {
	if id := m.batch; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBatch resets all changes to the "batch" edge.
func (m *CriterionMutation) ResetBatch() {
	m.batch = nil
	m.clearedbatch = false
}

// AddEntityIDs adds the "entities" edge to the Entity entity by ids.
func (m *CriterionMutation) AddEntityIDs(ids ...string) {
	if m.entities == nil {
		m.entities = make(map[string]struct{})
	}
	for i := range ids {
		m.entities[ids[i]] = struct{}{}
	}
}

// ClearEntities clears the "entities" edge to the Entity entity.
func (m *CriterionMutation) ClearEntities() {
	m.clearedentities = true
}

// EntitiesCleared reports if the "entities" edge to the Entity entity was cleared.
func (m *CriterionMutation) EntitiesCleared() bool {
	return m.clearedentities
}

// RemoveEntityIDs removes the "entities" edge to the Entity entity by IDs.
func (m *CriterionMutation) RemoveEntityIDs(ids ...string) {
	if m.removedentities == nil {
		m.removedentities = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.entities, ids[i])
		m.removedentities[ids[i]] = struct{}{}
	}
}

// RemovedEntities returns the removed IDs of the "entities" edge to the Entity entity.
func (m *CriterionMutation) RemovedEntitiesIDs() (ids []string) {
	for id := range m.removedentities {
		ids = append(ids, id)
	}
	return
}

// EntitiesIDs returns the "entities" edge IDs in the mutation.
func (m *CriterionMutation) EntitiesIDs() (ids []string) {
	for id := range m.entities {
		ids = append(ids, id)
	}
	return
}

// ResetEntities resets all changes to the "entities" edge.
func (m *CriterionMutation) ResetEntities() {
	m.entities = nil
	m.clearedentities = false
	m.removedentities = nil
}

// Where appends a list predicates to the CriterionMutation builder.
func (m *CriterionMutation) Where(ps ...predicate.Criterion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CriterionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CriterionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Criterion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CriterionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CriterionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Criterion).
func (m *CriterionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CriterionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.batch != nil {
		fields = append(fields, criterion.FieldBatchID)
	}
	if m.text != nil {
		fields = append(fields, criterion.FieldText)
	}
	if m.kind != nil {
		fields = append(fields, criterion.FieldKind)
	}
	if m.category != nil {
		fields = append(fields, criterion.FieldCategory)
	}
	if m.confidence != nil {
		fields = append(fields, criterion.FieldConfidence)
	}
	if m.page != nil {
		fields = append(fields, criterion.FieldPage)
	}
	if m.thresholds != nil {
		fields = append(fields, criterion.FieldThresholds)
	}
	if m.temporal != nil {
		fields = append(fields, criterion.FieldTemporal)
	}
	if m.conditions != nil {
		fields = append(fields, criterion.FieldConditions)
	}
	if m.assertion_status != nil {
		fields = append(fields, criterion.FieldAssertionStatus)
	}
	if m.review_decision != nil {
		fields = append(fields, criterion.FieldReviewDecision)
	}
	if m.modification != nil {
		fields = append(fields, criterion.FieldModification)
	}
	if m.created_at != nil {
		fields = append(fields, criterion.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, criterion.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CriterionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case criterion.FieldBatchID:
		return m.BatchID()
	case criterion.FieldText:
		return m.Text()
	case criterion.FieldKind:
		return m.Kind()
	case criterion.FieldCategory:
		return m.Category()
	case criterion.FieldConfidence:
		return m.Confidence()
	case criterion.FieldPage:
		return m.Page()
	case criterion.FieldThresholds:
		return m.Thresholds()
	case criterion.FieldTemporal:
		return m.Temporal()
	case criterion.FieldConditions:
		return m.Conditions()
	case criterion.FieldAssertionStatus:
		return m.AssertionStatus()
	case criterion.FieldReviewDecision:
		return m.ReviewDecision()
	case criterion.FieldModification:
		return m.Modification()
	case criterion.FieldCreatedAt:
		return m.CreatedAt()
	case criterion.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CriterionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case criterion.FieldBatchID:
		return m.OldBatchID(ctx)
	case criterion.FieldText:
		return m.OldText(ctx)
	case criterion.FieldKind:
		return m.OldKind(ctx)
	case criterion.FieldCategory:
		return m.OldCategory(ctx)
	case criterion.FieldConfidence:
		return m.OldConfidence(ctx)
	case criterion.FieldPage:
		return m.OldPage(ctx)
	case criterion.FieldThresholds:
		return m.OldThresholds(ctx)
	case criterion.FieldTemporal:
		return m.OldTemporal(ctx)
	case criterion.FieldConditions:
		return m.OldConditions(ctx)
	case criterion.FieldAssertionStatus:
		return m.OldAssertionStatus(ctx)
	case criterion.FieldReviewDecision:
		return m.OldReviewDecision(ctx)
	case criterion.FieldModification:
		return m.OldModification(ctx)
	case criterion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case criterion.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Criterion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CriterionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case criterion.FieldBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case criterion.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case criterion.FieldKind:
		v, ok := value.(models.CriterionKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case criterion.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case criterion.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case criterion.FieldPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPage(v)
		return nil
	case criterion.FieldThresholds:
		v, ok := value.([]models.NumericThreshold)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThresholds(v)
		return nil
	case criterion.FieldTemporal:
		v, ok := value.(*models.TemporalConstraint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemporal(v)
		return nil
	case criterion.FieldConditions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConditions(v)
		return nil
	case criterion.FieldAssertionStatus:
		v, ok := value.(models.AssertionStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssertionStatus(v)
		return nil
	case criterion.FieldReviewDecision:
		v, ok := value.(models.ReviewDecision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewDecision(v)
		return nil
	case criterion.FieldModification:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModification(v)
		return nil
	case criterion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case criterion.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Criterion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CriterionMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, criterion.FieldConfidence)
	}
	if m.addpage != nil {
		fields = append(fields, criterion.FieldPage)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CriterionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case criterion.FieldConfidence:
		return m.AddedConfidence()
	case criterion.FieldPage:
		return m.AddedPage()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CriterionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case criterion.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case criterion.FieldPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPage(v)
		return nil
	}
	return fmt.Errorf("unknown Criterion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CriterionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(criterion.FieldThresholds) {
		fields = append(fields, criterion.FieldThresholds)
	}
	if m.FieldCleared(criterion.FieldTemporal) {
		fields = append(fields, criterion.FieldTemporal)
	}
	if m.FieldCleared(criterion.FieldConditions) {
		fields = append(fields, criterion.FieldConditions)
	}
	if m.FieldCleared(criterion.FieldAssertionStatus) {
		fields = append(fields, criterion.FieldAssertionStatus)
	}
	if m.FieldCleared(criterion.FieldReviewDecision) {
		fields = append(fields, criterion.FieldReviewDecision)
	}
	if m.FieldCleared(criterion.FieldModification) {
		fields = append(fields, criterion.FieldModification)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CriterionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CriterionMutation) ClearField(name string) error {
	switch name {
	case criterion.FieldThresholds:
		m.ClearThresholds()
		return nil
	case criterion.FieldTemporal:
		m.ClearTemporal()
		return nil
	case criterion.FieldConditions:
		m.ClearConditions()
		return nil
	case criterion.FieldAssertionStatus:
		m.ClearAssertionStatus()
		return nil
	case criterion.FieldReviewDecision:
		m.ClearReviewDecision()
		return nil
	case criterion.FieldModification:
		m.ClearModification()
		return nil
	}
	return fmt.Errorf("unknown Criterion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CriterionMutation) ResetField(name string) error {
	switch name {
	case criterion.FieldBatchID:
		m.ResetBatchID()
		return nil
	case criterion.FieldText:
		m.ResetText()
		return nil
	case criterion.FieldKind:
		m.ResetKind()
		return nil
	case criterion.FieldCategory:
		m.ResetCategory()
		return nil
	case criterion.FieldConfidence:
		m.ResetConfidence()
		return nil
	case criterion.FieldPage:
		m.ResetPage()
		return nil
	case criterion.FieldThresholds:
		m.ResetThresholds()
		return nil
	case criterion.FieldTemporal:
		m.ResetTemporal()
		return nil
	case criterion.FieldConditions:
		m.ResetConditions()
		return nil
	case criterion.FieldAssertionStatus:
		m.ResetAssertionStatus()
		return nil
	case criterion.FieldReviewDecision:
		m.ResetReviewDecision()
		return nil
	case criterion.FieldModification:
		m.ResetModification()
		return nil
	case criterion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case criterion.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Criterion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CriterionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.batch != nil {
		edges = append(edges, criterion.EdgeBatch)
	}
	if m.entities != nil {
		edges = append(edges, criterion.EdgeEntities)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CriterionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case criterion.EdgeBatch:
		if id := m.batch; id != nil {
			return []ent.Value{*id}
		}
	case criterion.EdgeEntities:
		ids := make([]ent.Value, 0, len(m.entities))
		for id := range m.entities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CriterionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedentities != nil {
		edges = append(edges, criterion.EdgeEntities)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CriterionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case criterion.EdgeEntities:
		ids := make([]ent.Value, 0, len(m.removedentities))
		for id := range m.removedentities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CriterionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbatch {
		edges = append(edges, criterion.EdgeBatch)
	}
	if m.clearedentities {
		edges = append(edges, criterion.EdgeEntities)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CriterionMutation) EdgeCleared(name string) bool {
	switch name {
	case criterion.EdgeBatch:
		return m.clearedbatch
	case criterion.EdgeEntities:
		return m.clearedentities
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CriterionMutation) ClearEdge(name string) error {
	switch name {
	case criterion.EdgeBatch:
		m.ClearBatch()
		return nil
	}
	return fmt.Errorf("unknown Criterion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CriterionMutation) ResetEdge(name string) error {
	switch name {
	case criterion.EdgeBatch:
		m.ResetBatch()
		return nil
	case criterion.EdgeEntities:
		m.ResetEntities()
		return nil
	}
	return fmt.Errorf("unknown Criterion edge %s", name)
}

// EntityMutation represents an operation that mutates the Entity nodes in the graph.
type EntityMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	text                    *string
	entity_type             *models.EntityType
	context                 *string
	grounding_confidence    *float64
	addgrounding_confidence *float64
	grounding_method        *string
	grounding_error         *string
	grounding_system        *models.TerminologySystem
	rxnorm_code             *string
	icd10_code              *string
	snomed_code             *string
	loinc_code              *string
	hpo_code                *string
	umls_cui                *string
	preferred_term          *string
	needs_review            *bool
	created_at              *time.Time
	clearedFields           map[string]struct{}
	criterion               *string
	clearedcriterion        bool
	done                    bool
	oldValue                func(context.Context) (*Entity, error)
	predicates              []predicate.Entity
}

var _ ent.Mutation = (*EntityMutation)(nil)

// entityOption allows management of the mutation configuration using functional options.
type entityOption func(*EntityMutation)

// newEntityMutation creates new mutation for the Entity entity.
func newEntityMutation(c config, op Op, opts ...entityOption) *EntityMutation {
	m := &EntityMutation{
		config:        c,
		op:            op,
		typ:           TypeEntity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityID sets the ID field of the mutation.
func withEntityID(id string) entityOption {
	return func(m *EntityMutation) {
		var (
			err   error
			once  sync.Once
			value *Entity
		)
		m.oldValue = func(ctx context.Context) (*Entity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Entity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntity sets the old Entity of the mutation.
func withEntity(node *Entity) entityOption {
	return func(m *EntityMutation) {
		m.oldValue = func(context.Context) (*Entity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Entity entities.
func (m *EntityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Entity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCriterionID sets the "criterion_id" field.
func (m *EntityMutation) SetCriterionID(s string) {
	m.criterion = &s
}

// CriterionID returns the value of the "criterion_id" field in the mutation.
func (m *EntityMutation) CriterionID() (r string, exists bool) {
	v := m.criterion
	if v == nil {
		return
	}
	return *v, true
}

// OldCriterionID returns the old "criterion_id" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldCriterionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriterionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriterionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriterionID: %w", err)
	}
	return oldValue.CriterionID, nil
}

// ResetCriterionID resets all changes to the "criterion_id" field.
func (m *EntityMutation) ResetCriterionID() {
	m.criterion = nil
}

// SetText sets the "text" field.
func (m *EntityMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *EntityMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *EntityMutation) ResetText() {
	m.text = nil
}

// SetEntityType sets the "entity_type" field.
func (m *EntityMutation) SetEntityType(mt models.EntityType) {
	m.entity_type = &mt
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *EntityMutation) EntityType() (r models.EntityType, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldEntityType(ctx context.Context) (v models.EntityType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *EntityMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetContext sets the "context" field.
func (m *EntityMutation) SetContext(s string) {
	m.context = &s
}

// Context returns the value of the "context" field in the mutation.
func (m *EntityMutation) Context() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *EntityMutation) ClearContext() {
	m.context = nil
	m.clearedFields[entity.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *EntityMutation) ContextCleared() bool {
	_, ok := m.clearedFields[entity.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *EntityMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, entity.FieldContext)
}

// SetGroundingConfidence sets the "grounding_confidence" field.
func (m *EntityMutation) SetGroundingConfidence(f float64) {
	m.grounding_confidence = &f
	m.addgrounding_confidence = nil
}

// GroundingConfidence returns the value of the "grounding_confidence" field in the mutation.
func (m *EntityMutation) GroundingConfidence() (r float64, exists bool) {
	v := m.grounding_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldGroundingConfidence returns the old "grounding_confidence" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldGroundingConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroundingConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroundingConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroundingConfidence: %w", err)
	}
	return oldValue.GroundingConfidence, nil
}

// AddGroundingConfidence adds f to the "grounding_confidence" field.
func (m *EntityMutation) AddGroundingConfidence(f float64) {
	if m.addgrounding_confidence != nil {
		*m.addgrounding_confidence += f
	} else {
		m.addgrounding_confidence = &f
	}
}

// AddedGroundingConfidence returns the value that was added to the "grounding_confidence" field in this mutation.
func (m *EntityMutation) AddedGroundingConfidence() (r float64, exists bool) {
	v := m.addgrounding_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetGroundingConfidence resets all changes to the "grounding_confidence" field.
func (m *EntityMutation) ResetGroundingConfidence() {
	m.grounding_confidence = nil
	m.addgrounding_confidence = nil
}

// SetGroundingMethod sets the "grounding_method" field.
func (m *EntityMutation) SetGroundingMethod(s string) {
	m.grounding_method = &s
}

// GroundingMethod returns the value of the "grounding_method" field in the mutation.
func (m *EntityMutation) GroundingMethod() (r string, exists bool) {
	v := m.grounding_method
	if v == nil {
		return
	}
	return *v, true
}

// OldGroundingMethod returns the old "grounding_method" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldGroundingMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroundingMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroundingMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroundingMethod: %w", err)
	}
	return oldValue.GroundingMethod, nil
}

// ClearGroundingMethod clears the value of the "grounding_method" field.
func (m *EntityMutation) ClearGroundingMethod() {
	m.grounding_method = nil
	m.clearedFields[entity.FieldGroundingMethod] = struct{}{}
}

// GroundingMethodCleared returns if the "grounding_method" field was cleared in this mutation.
func (m *EntityMutation) GroundingMethodCleared() bool {
	_, ok := m.clearedFields[entity.FieldGroundingMethod]
	return ok
}

// ResetGroundingMethod resets all changes to the "grounding_method" field.
func (m *EntityMutation) ResetGroundingMethod() {
	m.grounding_method = nil
	delete(m.clearedFields, entity.FieldGroundingMethod)
}

// SetGroundingError sets the "grounding_error" field.
func (m *EntityMutation) SetGroundingError(s string) {
	m.grounding_error = &s
}

// GroundingError returns the value of the "grounding_error" field in the mutation.
func (m *EntityMutation) GroundingError() (r string, exists bool) {
	v := m.grounding_error
	if v == nil {
		return
	}
	return *v, true
}

// OldGroundingError returns the old "grounding_error" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldGroundingError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroundingError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroundingError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroundingError: %w", err)
	}
	return oldValue.GroundingError, nil
}

// ClearGroundingError clears the value of the "grounding_error" field.
func (m *EntityMutation) ClearGroundingError() {
	m.grounding_error = nil
	m.clearedFields[entity.FieldGroundingError] = struct{}{}
}

// GroundingErrorCleared returns if the "grounding_error" field was cleared in this mutation.
func (m *EntityMutation) GroundingErrorCleared() bool {
	_, ok := m.clearedFields[entity.FieldGroundingError]
	return ok
}

// ResetGroundingError resets all changes to the "grounding_error" field.
func (m *EntityMutation) ResetGroundingError() {
	m.grounding_error = nil
	delete(m.clearedFields, entity.FieldGroundingError)
}

// SetGroundingSystem sets the "grounding_system" field.
func (m *EntityMutation) SetGroundingSystem(ms models.TerminologySystem) {
	m.grounding_system = &ms
}

// GroundingSystem returns the value of the "grounding_system" field in the mutation.
func (m *EntityMutation) GroundingSystem() (r models.TerminologySystem, exists bool) {
	v := m.grounding_system
	if v == nil {
		return
	}
	return *v, true
}

// OldGroundingSystem returns the old "grounding_system" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldGroundingSystem(ctx context.Context) (v *models.TerminologySystem, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroundingSystem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroundingSystem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroundingSystem: %w", err)
	}
	return oldValue.GroundingSystem, nil
}

// ClearGroundingSystem clears the value of the "grounding_system" field.
func (m *EntityMutation) ClearGroundingSystem() {
	m.grounding_system = nil
	m.clearedFields[entity.FieldGroundingSystem] = struct{}{}
}

// GroundingSystemCleared returns if the "grounding_system" field was cleared in this mutation.
func (m *EntityMutation) GroundingSystemCleared() bool {
	_, ok := m.clearedFields[entity.FieldGroundingSystem]
	return ok
}

// ResetGroundingSystem resets all changes to the "grounding_system" field.
func (m *EntityMutation) ResetGroundingSystem() {
	m.grounding_system = nil
	delete(m.clearedFields, entity.FieldGroundingSystem)
}

// SetRxnormCode sets the "rxnorm_code" field.
func (m *EntityMutation) SetRxnormCode(s string) {
	m.rxnorm_code = &s
}

// RxnormCode returns the value of the "rxnorm_code" field in the mutation.
func (m *EntityMutation) RxnormCode() (r string, exists bool) {
	v := m.rxnorm_code
	if v == nil {
		return
	}
	return *v, true
}

// OldRxnormCode returns the old "rxnorm_code" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldRxnormCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRxnormCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRxnormCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRxnormCode: %w", err)
	}
	return oldValue.RxnormCode, nil
}

// ClearRxnormCode clears the value of the "rxnorm_code" field.
func (m *EntityMutation) ClearRxnormCode() {
	m.rxnorm_code = nil
	m.clearedFields[entity.FieldRxnormCode] = struct{}{}
}

// RxnormCodeCleared returns if the "rxnorm_code" field was cleared in this mutation.
func (m *EntityMutation) RxnormCodeCleared() bool {
	_, ok := m.clearedFields[entity.FieldRxnormCode]
	return ok
}

// ResetRxnormCode resets all changes to the "rxnorm_code" field.
func (m *EntityMutation) ResetRxnormCode() {
	m.rxnorm_code = nil
	delete(m.clearedFields, entity.FieldRxnormCode)
}

// SetIcd10Code sets the "icd10_code" field.
func (m *EntityMutation) SetIcd10Code(s string) {
	m.icd10_code = &s
}

// Icd10Code returns the value of the "icd10_code" field in the mutation.
func (m *EntityMutation) Icd10Code() (r string, exists bool) {
	v := m.icd10_code
	if v == nil {
		return
	}
	return *v, true
}

// OldIcd10Code returns the old "icd10_code" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldIcd10Code(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIcd10Code is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIcd10Code requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIcd10Code: %w", err)
	}
	return oldValue.Icd10Code, nil
}

// ClearIcd10Code clears the value of the "icd10_code" field.
func (m *EntityMutation) ClearIcd10Code() {
	m.icd10_code = nil
	m.clearedFields[entity.FieldIcd10Code] = struct{}{}
}

// Icd10CodeCleared returns if the "icd10_code" field was cleared in this mutation.
func (m *EntityMutation) Icd10CodeCleared() bool {
	_, ok := m.clearedFields[entity.FieldIcd10Code]
	return ok
}

// ResetIcd10Code resets all changes to the "icd10_code" field.
func (m *EntityMutation) ResetIcd10Code() {
	m.icd10_code = nil
	delete(m.clearedFields, entity.FieldIcd10Code)
}

// SetSnomedCode sets the "snomed_code" field.
func (m *EntityMutation) SetSnomedCode(s string) {
	m.snomed_code = &s
}

// SnomedCode returns the value of the "snomed_code" field in the mutation.
func (m *EntityMutation) SnomedCode() (r string, exists bool) {
	v := m.snomed_code
	if v == nil {
		return
	}
	return *v, true
}

// OldSnomedCode returns the old "snomed_code" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldSnomedCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnomedCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnomedCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnomedCode: %w", err)
	}
	return oldValue.SnomedCode, nil
}

// ClearSnomedCode clears the value of the "snomed_code" field.
func (m *EntityMutation) ClearSnomedCode() {
	m.snomed_code = nil
	m.clearedFields[entity.FieldSnomedCode] = struct{}{}
}

// SnomedCodeCleared returns if the "snomed_code" field was cleared in this mutation.
func (m *EntityMutation) SnomedCodeCleared() bool {
	_, ok := m.clearedFields[entity.FieldSnomedCode]
	return ok
}

// ResetSnomedCode resets all changes to the "snomed_code" field.
func (m *EntityMutation) ResetSnomedCode() {
	m.snomed_code = nil
	delete(m.clearedFields, entity.FieldSnomedCode)
}

// SetLoincCode sets the "loinc_code" field.
func (m *EntityMutation) SetLoincCode(s string) {
	m.loinc_code = &s
}

// LoincCode returns the value of the "loinc_code" field in the mutation.
func (m *EntityMutation) LoincCode() (r string, exists bool) {
	v := m.loinc_code
	if v == nil {
		return
	}
	return *v, true
}

// OldLoincCode returns the old "loinc_code" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldLoincCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoincCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoincCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoincCode: %w", err)
	}
	return oldValue.LoincCode, nil
}

// ClearLoincCode clears the value of the "loinc_code" field.
func (m *EntityMutation) ClearLoincCode() {
	m.loinc_code = nil
	m.clearedFields[entity.FieldLoincCode] = struct{}{}
}

// LoincCodeCleared returns if the "loinc_code" field was cleared in this mutation.
func (m *EntityMutation) LoincCodeCleared() bool {
	_, ok := m.clearedFields[entity.FieldLoincCode]
	return ok
}

// ResetLoincCode resets all changes to the "loinc_code" field.
func (m *EntityMutation) ResetLoincCode() {
	m.loinc_code = nil
	delete(m.clearedFields, entity.FieldLoincCode)
}

// SetHpoCode sets the "hpo_code" field.
func (m *EntityMutation) SetHpoCode(s string) {
	m.hpo_code = &s
}

// HpoCode returns the value of the "hpo_code" field in the mutation.
func (m *EntityMutation) HpoCode() (r string, exists bool) {
	v := m.hpo_code
	if v == nil {
		return
	}
	return *v, true
}

// OldHpoCode returns the old "hpo_code" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldHpoCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHpoCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHpoCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHpoCode: %w", err)
	}
	return oldValue.HpoCode, nil
}

// ClearHpoCode clears the value of the "hpo_code" field.
func (m *EntityMutation) ClearHpoCode() {
	m.hpo_code = nil
	m.clearedFields[entity.FieldHpoCode] = struct{}{}
}

// HpoCodeCleared returns if the "hpo_code" field was cleared in this mutation.
func (m *EntityMutation) HpoCodeCleared() bool {
	_, ok := m.clearedFields[entity.FieldHpoCode]
	return ok
}

// ResetHpoCode resets all changes to the "hpo_code" field.
func (m *EntityMutation) ResetHpoCode() {
	m.hpo_code = nil
	delete(m.clearedFields, entity.FieldHpoCode)
}

// SetUmlsCui sets the "umls_cui" field.
func (m *EntityMutation) SetUmlsCui(s string) {
	m.umls_cui = &s
}

// UmlsCui returns the value of the "umls_cui" field in the mutation.
func (m *EntityMutation) UmlsCui() (r string, exists bool) {
	v := m.umls_cui
	if v == nil {
		return
	}
	return *v, true
}

// OldUmlsCui returns the old "umls_cui" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldUmlsCui(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUmlsCui is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUmlsCui requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUmlsCui: %w", err)
	}
	return oldValue.UmlsCui, nil
}

// ClearUmlsCui clears the value of the "umls_cui" field.
func (m *EntityMutation) ClearUmlsCui() {
	m.umls_cui = nil
	m.clearedFields[entity.FieldUmlsCui] = struct{}{}
}

// UmlsCuiCleared returns if the "umls_cui" field was cleared in this mutation.
func (m *EntityMutation) UmlsCuiCleared() bool {
	_, ok := m.clearedFields[entity.FieldUmlsCui]
	return ok
}

// ResetUmlsCui resets all changes to the "umls_cui" field.
func (m *EntityMutation) ResetUmlsCui() {
	m.umls_cui = nil
	delete(m.clearedFields, entity.FieldUmlsCui)
}

// SetPreferredTerm sets the "preferred_term" field.
func (m *EntityMutation) SetPreferredTerm(s string) {
	m.preferred_term = &s
}

// PreferredTerm returns the value of the "preferred_term" field in the mutation.
func (m *EntityMutation) PreferredTerm() (r string, exists bool) {
	v := m.preferred_term
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredTerm returns the old "preferred_term" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldPreferredTerm(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredTerm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredTerm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredTerm: %w", err)
	}
	return oldValue.PreferredTerm, nil
}

// ClearPreferredTerm clears the value of the "preferred_term" field.
func (m *EntityMutation) ClearPreferredTerm() {
	m.preferred_term = nil
	m.clearedFields[entity.FieldPreferredTerm] = struct{}{}
}

// PreferredTermCleared returns if the "preferred_term" field was cleared in this mutation.
func (m *EntityMutation) PreferredTermCleared() bool {
	_, ok := m.clearedFields[entity.FieldPreferredTerm]
	return ok
}

// ResetPreferredTerm resets all changes to the "preferred_term" field.
func (m *EntityMutation) ResetPreferredTerm() {
	m.preferred_term = nil
	delete(m.clearedFields, entity.FieldPreferredTerm)
}

// SetNeedsReview sets the "needs_review" field.
func (m *EntityMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *EntityMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
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
func (m *EntityMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EntityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EntityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EntityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCriterion clears the "criterion" edge to the Criterion entity.
func (m *EntityMutation) ClearCriterion() {
	m.clearedcriterion = true
	m.clearedFields[entity.FieldCriterionID] = struct{}{}
}

// CriterionCleared reports if the "criterion" edge to the Criterion entity was cleared.
func (m *EntityMutation) CriterionCleared() bool {
	return m.clearedcriterion
}

// CriterionIDs returns the "criterion" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CriterionID instead. It exists only for internal usage by the builders.
func (m *EntityMutation) CriterionIDs() (ids []string) {
	if id := m.criterion; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCriterion resets all changes to the "criterion" edge.
func (m *EntityMutation) ResetCriterion() {
	m.criterion = nil
	m.clearedcriterion = false
}

// Where appends a list predicates to the EntityMutation builder.
func (m *EntityMutation) Where(ps ...predicate.Entity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Entity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Entity).
func (m *EntityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.criterion != nil {
		fields = append(fields, entity.FieldCriterionID)
	}
	if m.text != nil {
		fields = append(fields, entity.FieldText)
	}
	if m.entity_type != nil {
		fields = append(fields, entity.FieldEntityType)
	}
	if m.context != nil {
		fields = append(fields, entity.FieldContext)
	}
	if m.grounding_confidence != nil {
		fields = append(fields, entity.FieldGroundingConfidence)
	}
	if m.grounding_method != nil {
		fields = append(fields, entity.FieldGroundingMethod)
	}
	if m.grounding_error != nil {
		fields = append(fields, entity.FieldGroundingError)
	}
	if m.grounding_system != nil {
		fields = append(fields, entity.FieldGroundingSystem)
	}
	if m.rxnorm_code != nil {
		fields = append(fields, entity.FieldRxnormCode)
	}
	if m.icd10_code != nil {
		fields = append(fields, entity.FieldIcd10Code)
	}
	if m.snomed_code != nil {
		fields = append(fields, entity.FieldSnomedCode)
	}
	if m.loinc_code != nil {
		fields = append(fields, entity.FieldLoincCode)
	}
	if m.hpo_code != nil {
		fields = append(fields, entity.FieldHpoCode)
	}
	if m.umls_cui != nil {
		fields = append(fields, entity.FieldUmlsCui)
	}
	if m.preferred_term != nil {
		fields = append(fields, entity.FieldPreferredTerm)
	}
	if m.needs_review != nil {
		fields = append(fields, entity.FieldNeedsReview)
	}
	if m.created_at != nil {
		fields = append(fields, entity.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entity.FieldCriterionID:
		return m.CriterionID()
	case entity.FieldText:
		return m.Text()
	case entity.FieldEntityType:
		return m.EntityType()
	case entity.FieldContext:
		return m.Context()
	case entity.FieldGroundingConfidence:
		return m.GroundingConfidence()
	case entity.FieldGroundingMethod:
		return m.GroundingMethod()
	case entity.FieldGroundingError:
		return m.GroundingError()
	case entity.FieldGroundingSystem:
		return m.GroundingSystem()
	case entity.FieldRxnormCode:
		return m.RxnormCode()
	case entity.FieldIcd10Code:
		return m.Icd10Code()
	case entity.FieldSnomedCode:
		return m.SnomedCode()
	case entity.FieldLoincCode:
		return m.LoincCode()
	case entity.FieldHpoCode:
		return m.HpoCode()
	case entity.FieldUmlsCui:
		return m.UmlsCui()
	case entity.FieldPreferredTerm:
		return m.PreferredTerm()
	case entity.FieldNeedsReview:
		return m.NeedsReview()
	case entity.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entity.FieldCriterionID:
		return m.OldCriterionID(ctx)
	case entity.FieldText:
		return m.OldText(ctx)
	case entity.FieldEntityType:
		return m.OldEntityType(ctx)
	case entity.FieldContext:
		return m.OldContext(ctx)
	case entity.FieldGroundingConfidence:
		return m.OldGroundingConfidence(ctx)
	case entity.FieldGroundingMethod:
		return m.OldGroundingMethod(ctx)
	case entity.FieldGroundingError:
		return m.OldGroundingError(ctx)
	case entity.FieldGroundingSystem:
		return m.OldGroundingSystem(ctx)
	case entity.FieldRxnormCode:
		return m.OldRxnormCode(ctx)
	case entity.FieldIcd10Code:
		return m.OldIcd10Code(ctx)
	case entity.FieldSnomedCode:
		return m.OldSnomedCode(ctx)
	case entity.FieldLoincCode:
		return m.OldLoincCode(ctx)
	case entity.FieldHpoCode:
		return m.OldHpoCode(ctx)
	case entity.FieldUmlsCui:
		return m.OldUmlsCui(ctx)
	case entity.FieldPreferredTerm:
		return m.OldPreferredTerm(ctx)
	case entity.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case entity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Entity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entity.FieldCriterionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriterionID(v)
		return nil
	case entity.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case entity.FieldEntityType:
		v, ok := value.(models.EntityType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case entity.FieldContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case entity.FieldGroundingConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroundingConfidence(v)
		return nil
	case entity.FieldGroundingMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroundingMethod(v)
		return nil
	case entity.FieldGroundingError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroundingError(v)
		return nil
	case entity.FieldGroundingSystem:
		v, ok := value.(models.TerminologySystem)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroundingSystem(v)
		return nil
	case entity.FieldRxnormCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRxnormCode(v)
		return nil
	case entity.FieldIcd10Code:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIcd10Code(v)
		return nil
	case entity.FieldSnomedCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnomedCode(v)
		return nil
	case entity.FieldLoincCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoincCode(v)
		return nil
	case entity.FieldHpoCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHpoCode(v)
		return nil
	case entity.FieldUmlsCui:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUmlsCui(v)
		return nil
	case entity.FieldPreferredTerm:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredTerm(v)
		return nil
	case entity.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case entity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Entity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityMutation) AddedFields() []string {
	var fields []string
	if m.addgrounding_confidence != nil {
		fields = append(fields, entity.FieldGroundingConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entity.FieldGroundingConfidence:
		return m.AddedGroundingConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entity.FieldGroundingConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGroundingConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Entity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entity.FieldContext) {
		fields = append(fields, entity.FieldContext)
	}
	if m.FieldCleared(entity.FieldGroundingMethod) {
		fields = append(fields, entity.FieldGroundingMethod)
	}
	if m.FieldCleared(entity.FieldGroundingError) {
		fields = append(fields, entity.FieldGroundingError)
	}
	if m.FieldCleared(entity.FieldGroundingSystem) {
		fields = append(fields, entity.FieldGroundingSystem)
	}
	if m.FieldCleared(entity.FieldRxnormCode) {
		fields = append(fields, entity.FieldRxnormCode)
	}
	if m.FieldCleared(entity.FieldIcd10Code) {
		fields = append(fields, entity.FieldIcd10Code)
	}
	if m.FieldCleared(entity.FieldSnomedCode) {
		fields = append(fields, entity.FieldSnomedCode)
	}
	if m.FieldCleared(entity.FieldLoincCode) {
		fields = append(fields, entity.FieldLoincCode)
	}
	if m.FieldCleared(entity.FieldHpoCode) {
		fields = append(fields, entity.FieldHpoCode)
	}
	if m.FieldCleared(entity.FieldUmlsCui) {
		fields = append(fields, entity.FieldUmlsCui)
	}
	if m.FieldCleared(entity.FieldPreferredTerm) {
		fields = append(fields, entity.FieldPreferredTerm)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityMutation) ClearField(name string) error {
	switch name {
	case entity.FieldContext:
		m.ClearContext()
		return nil
	case entity.FieldGroundingMethod:
		m.ClearGroundingMethod()
		return nil
	case entity.FieldGroundingError:
		m.ClearGroundingError()
		return nil
	case entity.FieldGroundingSystem:
		m.ClearGroundingSystem()
		return nil
	case entity.FieldRxnormCode:
		m.ClearRxnormCode()
		return nil
	case entity.FieldIcd10Code:
		m.ClearIcd10Code()
		return nil
	case entity.FieldSnomedCode:
		m.ClearSnomedCode()
		return nil
	case entity.FieldLoincCode:
		m.ClearLoincCode()
		return nil
	case entity.FieldHpoCode:
		m.ClearHpoCode()
		return nil
	case entity.FieldUmlsCui:
		m.ClearUmlsCui()
		return nil
	case entity.FieldPreferredTerm:
		m.ClearPreferredTerm()
		return nil
	}
	return fmt.Errorf("unknown Entity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityMutation) ResetField(name string) error {
	switch name {
	case entity.FieldCriterionID:
		m.ResetCriterionID()
		return nil
	case entity.FieldText:
		m.ResetText()
		return nil
	case entity.FieldEntityType:
		m.ResetEntityType()
		return nil
	case entity.FieldContext:
		m.ResetContext()
		return nil
	case entity.FieldGroundingConfidence:
		m.ResetGroundingConfidence()
		return nil
	case entity.FieldGroundingMethod:
		m.ResetGroundingMethod()
		return nil
	case entity.FieldGroundingError:
		m.ResetGroundingError()
		return nil
	case entity.FieldGroundingSystem:
		m.ResetGroundingSystem()
		return nil
	case entity.FieldRxnormCode:
		m.ResetRxnormCode()
		return nil
	case entity.FieldIcd10Code:
		m.ResetIcd10Code()
		return nil
	case entity.FieldSnomedCode:
		m.ResetSnomedCode()
		return nil
	case entity.FieldLoincCode:
		m.ResetLoincCode()
		return nil
	case entity.FieldHpoCode:
		m.ResetHpoCode()
		return nil
	case entity.FieldUmlsCui:
		m.ResetUmlsCui()
		return nil
	case entity.FieldPreferredTerm:
		m.ResetPreferredTerm()
		return nil
	case entity.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case entity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Entity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.criterion != nil {
		edges = append(edges, entity.EdgeCriterion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entity.EdgeCriterion:
		if id := m.criterion; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcriterion {
		edges = append(edges, entity.EdgeCriterion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityMutation) EdgeCleared(name string) bool {
	switch name {
	case entity.EdgeCriterion:
		return m.clearedcriterion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityMutation) ClearEdge(name string) error {
	switch name {
	case entity.EdgeCriterion:
		m.ClearCriterion()
		return nil
	}
	return fmt.Errorf("unknown Entity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityMutation) ResetEdge(name string) error {
	switch name {
	case entity.EdgeCriterion:
		m.ResetCriterion()
		return nil
	}
	return fmt.Errorf("unknown Entity edge %s", name)
}

// OutboxEventMutation represents an operation that mutates the OutboxEvent nodes in the graph.
type OutboxEventMutation struct {
	config
	op              Op
	typ             string
	id              *string
	aggregate_id    *string
	kind            *models.EventKind
	payload         *map[string]interface{}
	status          *outboxevent.Status
	retry_count     *int
	addretry_count  *int
	next_attempt_at *time.Time
	last_error      *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*OutboxEvent, error)
	predicates      []predicate.OutboxEvent
}

var _ ent.Mutation = (*OutboxEventMutation)(nil)

// outboxeventOption allows management of the mutation configuration using functional options.
type outboxeventOption func(*OutboxEventMutation)

// newOutboxEventMutation creates new mutation for the OutboxEvent entity.
func newOutboxEventMutation(c config, op Op, opts ...outboxeventOption) *OutboxEventMutation {
	m := &OutboxEventMutation{
		config:        c,
		op:            op,
		typ:           TypeOutboxEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOutboxEventID sets the ID field of the mutation.
func withOutboxEventID(id string) outboxeventOption {
	return func(m *OutboxEventMutation) {
		var (
			err   error
			once  sync.Once
			value *OutboxEvent
		)
		m.oldValue = func(ctx context.Context) (*OutboxEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OutboxEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOutboxEvent sets the old OutboxEvent of the mutation.
func withOutboxEvent(node *OutboxEvent) outboxeventOption {
	return func(m *OutboxEventMutation) {
		m.oldValue = func(context.Context) (*OutboxEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OutboxEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OutboxEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OutboxEvent entities.
func (m *OutboxEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OutboxEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OutboxEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OutboxEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAggregateID sets the "aggregate_id" field.
func (m *OutboxEventMutation) SetAggregateID(s string) {
	m.aggregate_id = &s
}

// AggregateID returns the value of the "aggregate_id" field in the mutation.
func (m *OutboxEventMutation) AggregateID() (r string, exists bool) {
	v := m.aggregate_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAggregateID returns the old "aggregate_id" field's value of the OutboxEvent entity.
// If the OutboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEventMutation) OldAggregateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAggregateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAggregateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAggregateID: %w", err)
	}
	return oldValue.AggregateID, nil
}

// ResetAggregateID resets all changes to the "aggregate_id" field.
func (m *OutboxEventMutation) ResetAggregateID() {
	m.aggregate_id = nil
}

// SetKind sets the "kind" field.
func (m *OutboxEventMutation) SetKind(mk models.EventKind) {
	m.kind = &mk
}

// Kind returns the value of the "kind" field in the mutation.
func (m *OutboxEventMutation) Kind() (r models.EventKind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the OutboxEvent entity.
// If the OutboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEventMutation) OldKind(ctx context.Context) (v models.EventKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *OutboxEventMutation) ResetKind() {
	m.kind = nil
}

// SetPayload sets the "payload" field.
func (m *OutboxEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *OutboxEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the OutboxEvent entity.
// If the OutboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *OutboxEventMutation) ResetPayload() {
	m.payload = nil
}

// SetStatus sets the "status" field.
func (m *OutboxEventMutation) SetStatus(o outboxevent.Status) {
	m.status = &o
}

// Status returns the value of the "status" field in the mutation.
func (m *OutboxEventMutation) Status() (r outboxevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the OutboxEvent entity.
// If the OutboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEventMutation) OldStatus(ctx context.Context) (v outboxevent.Status, err error) {
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

// ResetStatus resets all changes to the "status" field.
func (m *OutboxEventMutation) ResetStatus() {
	m.status = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *OutboxEventMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *OutboxEventMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the OutboxEvent entity.
// If the OutboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEventMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *OutboxEventMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *OutboxEventMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *OutboxEventMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (m *OutboxEventMutation) SetNextAttemptAt(t time.Time) {
	m.next_attempt_at = &t
}

// NextAttemptAt returns the value of the "next_attempt_at" field in the mutation.
func (m *OutboxEventMutation) NextAttemptAt() (r time.Time, exists bool) {
	v := m.next_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAttemptAt returns the old "next_attempt_at" field's value of the OutboxEvent entity.
// If the OutboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEventMutation) OldNextAttemptAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAttemptAt: %w", err)
	}
	return oldValue.NextAttemptAt, nil
}

// ResetNextAttemptAt resets all changes to the "next_attempt_at" field.
func (m *OutboxEventMutation) ResetNextAttemptAt() {
	m.next_attempt_at = nil
}

// SetLastError sets the "last_error" field.
func (m *OutboxEventMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *OutboxEventMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the OutboxEvent entity.
// If the OutboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEventMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *OutboxEventMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[outboxevent.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *OutboxEventMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[outboxevent.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *OutboxEventMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, outboxevent.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *OutboxEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OutboxEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OutboxEvent entity.
// If the OutboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OutboxEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OutboxEventMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OutboxEventMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the OutboxEvent entity.
// If the OutboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboxEventMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OutboxEventMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the OutboxEventMutation builder.
func (m *OutboxEventMutation) Where(ps ...predicate.OutboxEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OutboxEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OutboxEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OutboxEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OutboxEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OutboxEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OutboxEvent).
func (m *OutboxEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OutboxEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.aggregate_id != nil {
		fields = append(fields, outboxevent.FieldAggregateID)
	}
	if m.kind != nil {
		fields = append(fields, outboxevent.FieldKind)
	}
	if m.payload != nil {
		fields = append(fields, outboxevent.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, outboxevent.FieldStatus)
	}
	if m.retry_count != nil {
		fields = append(fields, outboxevent.FieldRetryCount)
	}
	if m.next_attempt_at != nil {
		fields = append(fields, outboxevent.FieldNextAttemptAt)
	}
	if m.last_error != nil {
		fields = append(fields, outboxevent.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, outboxevent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, outboxevent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OutboxEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case outboxevent.FieldAggregateID:
		return m.AggregateID()
	case outboxevent.FieldKind:
		return m.Kind()
	case outboxevent.FieldPayload:
		return m.Payload()
	case outboxevent.FieldStatus:
		return m.Status()
	case outboxevent.FieldRetryCount:
		return m.RetryCount()
	case outboxevent.FieldNextAttemptAt:
		return m.NextAttemptAt()
	case outboxevent.FieldLastError:
		return m.LastError()
	case outboxevent.FieldCreatedAt:
		return m.CreatedAt()
	case outboxevent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OutboxEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case outboxevent.FieldAggregateID:
		return m.OldAggregateID(ctx)
	case outboxevent.FieldKind:
		return m.OldKind(ctx)
	case outboxevent.FieldPayload:
		return m.OldPayload(ctx)
	case outboxevent.FieldStatus:
		return m.OldStatus(ctx)
	case outboxevent.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case outboxevent.FieldNextAttemptAt:
		return m.OldNextAttemptAt(ctx)
	case outboxevent.FieldLastError:
		return m.OldLastError(ctx)
	case outboxevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case outboxevent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OutboxEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutboxEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case outboxevent.FieldAggregateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAggregateID(v)
		return nil
	case outboxevent.FieldKind:
		v, ok := value.(models.EventKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case outboxevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case outboxevent.FieldStatus:
		v, ok := value.(outboxevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case outboxevent.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case outboxevent.FieldNextAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAttemptAt(v)
		return nil
	case outboxevent.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case outboxevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case outboxevent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OutboxEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OutboxEventMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, outboxevent.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OutboxEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case outboxevent.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutboxEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case outboxevent.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown OutboxEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OutboxEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(outboxevent.FieldLastError) {
		fields = append(fields, outboxevent.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OutboxEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OutboxEventMutation) ClearField(name string) error {
	switch name {
	case outboxevent.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown OutboxEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OutboxEventMutation) ResetField(name string) error {
	switch name {
	case outboxevent.FieldAggregateID:
		m.ResetAggregateID()
		return nil
	case outboxevent.FieldKind:
		m.ResetKind()
		return nil
	case outboxevent.FieldPayload:
		m.ResetPayload()
		return nil
	case outboxevent.FieldStatus:
		m.ResetStatus()
		return nil
	case outboxevent.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case outboxevent.FieldNextAttemptAt:
		m.ResetNextAttemptAt()
		return nil
	case outboxevent.FieldLastError:
		m.ResetLastError()
		return nil
	case outboxevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case outboxevent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown OutboxEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OutboxEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OutboxEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OutboxEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OutboxEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OutboxEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OutboxEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OutboxEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OutboxEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OutboxEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OutboxEvent edge %s", name)
}

// ProtocolMutation represents an operation that mutates the Protocol nodes in the graph.
type ProtocolMutation struct {
	config
	op             Op
	typ            string
	id             *string
	title          *string
	file_pointer   *string
	status         *protocol.Status
	metadata       *map[string]interface{}
	error_reason   *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	batches        map[string]struct{}
	removedbatches map[string]struct{}
	clearedbatches bool
	done           bool
	oldValue       func(context.Context) (*Protocol, error)
	predicates     []predicate.Protocol
}

var _ ent.Mutation = (*ProtocolMutation)(nil)

// protocolOption allows management of the mutation configuration using functional options.
type protocolOption func(*ProtocolMutation)

// newProtocolMutation creates new mutation for the Protocol entity.
func newProtocolMutation(c config, op Op, opts ...protocolOption) *ProtocolMutation {
	m := &ProtocolMutation{
		config:        c,
		op:            op,
		typ:           TypeProtocol,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProtocolID sets the ID field of the mutation.
func withProtocolID(id string) protocolOption {
	return func(m *ProtocolMutation) {
		var (
			err   error
			once  sync.Once
			value *Protocol
		)
		m.oldValue = func(ctx context.Context) (*Protocol, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Protocol.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProtocol sets the old Protocol of the mutation.
func withProtocol(node *Protocol) protocolOption {
	return func(m *ProtocolMutation) {
		m.oldValue = func(context.Context) (*Protocol, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProtocolMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProtocolMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Protocol entities.
func (m *ProtocolMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProtocolMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProtocolMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Protocol.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *ProtocolMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ProtocolMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Protocol entity.
// If the Protocol object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProtocolMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ProtocolMutation) ResetTitle() {
	m.title = nil
}

// SetFilePointer sets the "file_pointer" field.
func (m *ProtocolMutation) SetFilePointer(s string) {
	m.file_pointer = &s
}

// FilePointer returns the value of the "file_pointer" field in the mutation.
func (m *ProtocolMutation) FilePointer() (r string, exists bool) {
	v := m.file_pointer
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePointer returns the old "file_pointer" field's value of the Protocol entity.
// If the Protocol object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProtocolMutation) OldFilePointer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePointer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePointer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePointer: %w", err)
	}
	return oldValue.FilePointer, nil
}

// ResetFilePointer resets all changes to the "file_pointer" field.
func (m *ProtocolMutation) ResetFilePointer() {
	m.file_pointer = nil
}

// SetStatus sets the "status" field.
func (m *ProtocolMutation) SetStatus(pr protocol.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProtocolMutation) Status() (r protocol.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Protocol entity.
// If the Protocol object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProtocolMutation) OldStatus(ctx context.Context) (v protocol.Status, err error) {
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

// ResetStatus resets all changes to the "status" field.
func (m *ProtocolMutation) ResetStatus() {
	m.status = nil
}

// SetMetadata sets the "metadata" field.
func (m *ProtocolMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ProtocolMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Protocol entity.
// If the Protocol object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProtocolMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ProtocolMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[protocol.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ProtocolMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[protocol.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ProtocolMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, protocol.FieldMetadata)
}

// SetErrorReason sets the "error_reason" field.
func (m *ProtocolMutation) SetErrorReason(s string) {
	m.error_reason = &s
}

// ErrorReason returns the value of the "error_reason" field in the mutation.
func (m *ProtocolMutation) ErrorReason() (r string, exists bool) {
	v := m.error_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorReason returns the old "error_reason" field's value of the Protocol entity.
// If the Protocol object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProtocolMutation) OldErrorReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorReason: %w", err)
	}
	return oldValue.ErrorReason, nil
}

// ClearErrorReason clears the value of the "error_reason" field.
func (m *ProtocolMutation) ClearErrorReason() {
	m.error_reason = nil
	m.clearedFields[protocol.FieldErrorReason] = struct{}{}
}

// ErrorReasonCleared returns if the "error_reason" field was cleared in this mutation.
func (m *ProtocolMutation) ErrorReasonCleared() bool {
	_, ok := m.clearedFields[protocol.FieldErrorReason]
	return ok
}

// ResetErrorReason resets all changes to the "error_reason" field.
func (m *ProtocolMutation) ResetErrorReason() {
	m.error_reason = nil
	delete(m.clearedFields, protocol.FieldErrorReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProtocolMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProtocolMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Protocol entity.
// If the Protocol object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProtocolMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProtocolMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProtocolMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProtocolMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Protocol entity.
// If the Protocol object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProtocolMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProtocolMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddBatchIDs adds the "batches" edge to the CriteriaBatch entity by ids.
func (m *ProtocolMutation) AddBatchIDs(ids ...string) {
	if m.batches == nil {
		m.batches = make(map[string]struct{})
	}
	for i := range ids {
		m.batches[ids[i]] = struct{}{}
	}
}

// ClearBatches clears the "batches" edge to the CriteriaBatch entity.
func (m *ProtocolMutation) ClearBatches() {
	m.clearedbatches = true
}

// BatchesCleared reports if the "batches" edge to the CriteriaBatch entity was cleared.
func (m *ProtocolMutation) BatchesCleared() bool {
	return m.clearedbatches
}

// RemoveBatchIDs removes the "batches" edge to the CriteriaBatch entity by IDs.
func (m *ProtocolMutation) RemoveBatchIDs(ids ...string) {
	if m.removedbatches == nil {
		m.removedbatches = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.batches, ids[i])
		m.removedbatches[ids[i]] = struct{}{}
	}
}

// RemovedBatches returns the removed IDs of the "batches" edge to the CriteriaBatch entity.
func (m *ProtocolMutation) RemovedBatchesIDs() (ids []string) {
	for id := range m.removedbatches {
		ids = append(ids, id)
	}
	return
}

// BatchesIDs returns the "batches" edge IDs in the mutation.
func (m *ProtocolMutation) BatchesIDs() (ids []string) {
	for id := range m.batches {
		ids = append(ids, id)
	}
	return
}

// ResetBatches resets all changes to the "batches" edge.
func (m *ProtocolMutation) ResetBatches() {
	m.batches = nil
	m.clearedbatches = false
	m.removedbatches = nil
}

// Where appends a list predicates to the ProtocolMutation builder.
func (m *ProtocolMutation) Where(ps ...predicate.Protocol) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProtocolMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProtocolMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Protocol, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProtocolMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProtocolMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Protocol).
func (m *ProtocolMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProtocolMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.title != nil {
		fields = append(fields, protocol.FieldTitle)
	}
	if m.file_pointer != nil {
		fields = append(fields, protocol.FieldFilePointer)
	}
	if m.status != nil {
		fields = append(fields, protocol.FieldStatus)
	}
	if m.metadata != nil {
		fields = append(fields, protocol.FieldMetadata)
	}
	if m.error_reason != nil {
		fields = append(fields, protocol.FieldErrorReason)
	}
	if m.created_at != nil {
		fields = append(fields, protocol.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, protocol.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProtocolMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case protocol.FieldTitle:
		return m.Title()
	case protocol.FieldFilePointer:
		return m.FilePointer()
	case protocol.FieldStatus:
		return m.Status()
	case protocol.FieldMetadata:
		return m.Metadata()
	case protocol.FieldErrorReason:
		return m.ErrorReason()
	case protocol.FieldCreatedAt:
		return m.CreatedAt()
	case protocol.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProtocolMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case protocol.FieldTitle:
		return m.OldTitle(ctx)
	case protocol.FieldFilePointer:
		return m.OldFilePointer(ctx)
	case protocol.FieldStatus:
		return m.OldStatus(ctx)
	case protocol.FieldMetadata:
		return m.OldMetadata(ctx)
	case protocol.FieldErrorReason:
		return m.OldErrorReason(ctx)
	case protocol.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case protocol.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Protocol field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProtocolMutation) SetField(name string, value ent.Value) error {
	switch name {
	case protocol.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case protocol.FieldFilePointer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePointer(v)
		return nil
	case protocol.FieldStatus:
		v, ok := value.(protocol.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case protocol.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case protocol.FieldErrorReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorReason(v)
		return nil
	case protocol.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case protocol.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Protocol field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProtocolMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProtocolMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProtocolMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Protocol numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProtocolMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(protocol.FieldMetadata) {
		fields = append(fields, protocol.FieldMetadata)
	}
	if m.FieldCleared(protocol.FieldErrorReason) {
		fields = append(fields, protocol.FieldErrorReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProtocolMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProtocolMutation) ClearField(name string) error {
	switch name {
	case protocol.FieldMetadata:
		m.ClearMetadata()
		return nil
	case protocol.FieldErrorReason:
		m.ClearErrorReason()
		return nil
	}
	return fmt.Errorf("unknown Protocol nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProtocolMutation) ResetField(name string) error {
	switch name {
	case protocol.FieldTitle:
		m.ResetTitle()
		return nil
	case protocol.FieldFilePointer:
		m.ResetFilePointer()
		return nil
	case protocol.FieldStatus:
		m.ResetStatus()
		return nil
	case protocol.FieldMetadata:
		m.ResetMetadata()
		return nil
	case protocol.FieldErrorReason:
		m.ResetErrorReason()
		return nil
	case protocol.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case protocol.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Protocol field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProtocolMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.batches != nil {
		edges = append(edges, protocol.EdgeBatches)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProtocolMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case protocol.EdgeBatches:
		ids := make([]ent.Value, 0, len(m.batches))
		for id := range m.batches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProtocolMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedbatches != nil {
		edges = append(edges, protocol.EdgeBatches)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProtocolMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case protocol.EdgeBatches:
		ids := make([]ent.Value, 0, len(m.removedbatches))
		for id := range m.removedbatches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProtocolMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbatches {
		edges = append(edges, protocol.EdgeBatches)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProtocolMutation) EdgeCleared(name string) bool {
	switch name {
	case protocol.EdgeBatches:
		return m.clearedbatches
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProtocolMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Protocol unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProtocolMutation) ResetEdge(name string) error {
	switch name {
	case protocol.EdgeBatches:
		m.ResetBatches()
		return nil
	}
	return fmt.Errorf("unknown Protocol edge %s", name)
}
