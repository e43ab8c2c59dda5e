package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/eligius-health/eligius/ent"
	"github.com/eligius-health/eligius/ent/checkpoint"
)

// EntCheckpointStore persists checkpoints in PostgreSQL through the shared
// Ent client. The unique (thread_id, step) index enforces monotone steps at
// the database level.
type EntCheckpointStore struct {
	client *ent.Client
}

// NewEntCheckpointStore creates a database-backed checkpoint store.
func NewEntCheckpointStore(client *ent.Client) *EntCheckpointStore {
	return &EntCheckpointStore{client: client}
}

// Save implements CheckpointStore.
func (s *EntCheckpointStore) Save(ctx context.Context, cp Checkpoint) error {
	_, err := s.client.Checkpoint.Create().
		SetThreadID(cp.ThreadID).
		SetStep(cp.Step).
		SetNode(cp.Node).
		SetState(cp.State).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to save checkpoint step %d: %w", cp.Step, err)
	}
	return nil
}

// Latest implements CheckpointStore.
func (s *EntCheckpointStore) Latest(ctx context.Context, threadID string) (Checkpoint, error) {
	row, err := s.client.Checkpoint.Query().
		Where(checkpoint.ThreadID(threadID)).
		Order(ent.Desc(checkpoint.FieldStep)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return Checkpoint{}, ErrNoCheckpoint
		}
		return Checkpoint{}, fmt.Errorf("failed to load checkpoint: %w", err)
	}
	return Checkpoint{
		ThreadID: row.ThreadID,
		Step:     row.Step,
		Node:     row.Node,
		State:    row.State,
	}, nil
}

// DeleteThread implements CheckpointStore.
func (s *EntCheckpointStore) DeleteThread(ctx context.Context, threadID string) error {
	_, err := s.client.Checkpoint.Delete().
		Where(checkpoint.ThreadID(threadID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete checkpoints: %w", err)
	}
	return nil
}

// DeleteProtocolThreads removes checkpoints for every thread belonging to a
// protocol. Thread ids are "{protocolID}:{uuid}".
func (s *EntCheckpointStore) DeleteProtocolThreads(ctx context.Context, protocolID string) (int, error) {
	n, err := s.client.Checkpoint.Delete().
		Where(checkpoint.ThreadIDHasPrefix(protocolID + ":")).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete protocol checkpoints: %w", err)
	}
	return n, nil
}

// ProtocolIDFromThread extracts the protocol id prefix from a thread id.
func ProtocolIDFromThread(threadID string) string {
	id, _, _ := strings.Cut(threadID, ":")
	return id
}
