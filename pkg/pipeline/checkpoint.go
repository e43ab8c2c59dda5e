package pipeline

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrNoCheckpoint is returned by Latest when a thread has no committed steps.
var ErrNoCheckpoint = errors.New("no checkpoint for thread")

// Checkpoint is one committed pipeline step.
type Checkpoint struct {
	ThreadID string
	Step     int
	Node     string
	State    []byte
}

// CheckpointStore persists pipeline snapshots. Steps within a thread are
// append-only and strictly monotone; saving a duplicate step is an error.
type CheckpointStore interface {
	Save(ctx context.Context, cp Checkpoint) error
	// Latest returns the highest committed step for the thread, or
	// ErrNoCheckpoint.
	Latest(ctx context.Context, threadID string) (Checkpoint, error)
	// DeleteThread removes every checkpoint for the thread.
	DeleteThread(ctx context.Context, threadID string) error
}

// NoopCheckpointStore is used when no durable database is configured: runs
// are one-shot and cannot resume.
type NoopCheckpointStore struct{}

func (NoopCheckpointStore) Save(context.Context, Checkpoint) error { return nil }

func (NoopCheckpointStore) Latest(context.Context, string) (Checkpoint, error) {
	return Checkpoint{}, ErrNoCheckpoint
}

func (NoopCheckpointStore) DeleteThread(context.Context, string) error { return nil }

// MemoryCheckpointStore is an in-process store for tests.
type MemoryCheckpointStore struct {
	mu      sync.Mutex
	threads map[string][]Checkpoint

	// FailNextSave simulates a checkpoint write failure once.
	FailNextSave bool
}

// NewMemoryCheckpointStore creates an empty in-memory store.
func NewMemoryCheckpointStore() *MemoryCheckpointStore {
	return &MemoryCheckpointStore{threads: make(map[string][]Checkpoint)}
}

func (s *MemoryCheckpointStore) Save(_ context.Context, cp Checkpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailNextSave {
		s.FailNextSave = false
		return errors.New("checkpoint write failed")
	}

	for _, existing := range s.threads[cp.ThreadID] {
		if existing.Step == cp.Step {
			return errors.New("duplicate checkpoint step")
		}
	}
	stored := cp
	stored.State = append([]byte(nil), cp.State...)
	s.threads[cp.ThreadID] = append(s.threads[cp.ThreadID], stored)
	return nil
}

func (s *MemoryCheckpointStore) Latest(_ context.Context, threadID string) (Checkpoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cps := s.threads[threadID]
	if len(cps) == 0 {
		return Checkpoint{}, ErrNoCheckpoint
	}
	sorted := make([]Checkpoint, len(cps))
	copy(sorted, cps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Step > sorted[j].Step })
	return sorted[0], nil
}

func (s *MemoryCheckpointStore) DeleteThread(_ context.Context, threadID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.threads, threadID)
	return nil
}

// Steps returns the committed step count for a thread (test helper).
func (s *MemoryCheckpointStore) Steps(threadID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.threads[threadID])
}
