package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-process DocStore. It backs tests and doubles as a
// reference implementation of the subscribe contract: every Set notifies
// all subscribers for that key, including the writer's own process.
type MemoryStore struct {
	mu     sync.Mutex
	docs   map[string]json.RawMessage
	subs   map[string]map[int]func(json.RawMessage)
	nextID int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string]json.RawMessage),
		subs: make(map[string]map[int]func(json.RawMessage)),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.docs[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value any, _ bool) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	s.mu.Lock()
	s.docs[key] = raw
	fns := make([]func(json.RawMessage), 0, len(s.subs[key]))
	for _, fn := range s.subs[key] {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(raw)
	}
	return nil
}

func (s *MemoryStore) Subscribe(key string, fn func(json.RawMessage)) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	if s.subs[key] == nil {
		s.subs[key] = make(map[int]func(json.RawMessage))
	}
	s.subs[key][id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[key], id)
	}, nil
}
