package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is a map-backed Store used by unit tests.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]json.RawMessage)}
}

func (s *MemoryStore) Read(_ context.Context, name string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.docs[name]
	if !ok {
		return nil, ErrNotFound
	}
	out := make(json.RawMessage, len(d))
	copy(out, d)
	return out, nil
}

func (s *MemoryStore) Write(_ context.Context, name string, data json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := make(json.RawMessage, len(data))
	copy(d, data)
	s.docs[name] = d
	return nil
}

func (s *MemoryStore) Ensure(_ context.Context, name string, initial interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[name]; ok {
		return nil
	}
	b, err := json.Marshal(initial)
	if err != nil {
		return err
	}
	s.docs[name] = b
	return nil
}
