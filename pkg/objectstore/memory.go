package objectstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/eligius-health/eligius/pkg/models"
)

// MemoryStore is an in-process Store for tests and DB-less local runs.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
}

type memoryObject struct {
	data        []byte
	contentType string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]memoryObject)}
}

// Fetch implements Store.
func (s *MemoryStore) Fetch(_ context.Context, pointer string) ([]byte, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[pointer]
	if !ok {
		return nil, "", models.NewCategorizedError(models.ErrorStorage,
			fmt.Errorf("object %s not found", pointer))
	}
	data := make([]byte, len(obj.data))
	copy(data, obj.data)
	return data, obj.contentType, nil
}

// SignedURL implements Store.
func (s *MemoryStore) SignedURL(_ context.Context, pointer string, _ time.Duration) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.objects[pointer]; !ok {
		return "", models.NewCategorizedError(models.ErrorStorage,
			fmt.Errorf("object %s not found", pointer))
	}
	return pointer + "?signed=1", nil
}

// Put implements Store.
func (s *MemoryStore) Put(_ context.Context, key string, data []byte, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pointer := "mem://" + key
	stored := make([]byte, len(data))
	copy(stored, data)
	s.objects[pointer] = memoryObject{data: stored, contentType: contentType}
	return pointer, nil
}
