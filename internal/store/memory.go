package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemStore is an in-memory backing for tests. Slots are held as encoded
// JSON so loads and saves round-trip through the same codec as the file
// backing.
type MemStore struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{slots: make(map[string][]byte)}
}

func (s *MemStore) Load(_ context.Context, kind string, out any) error {
	s.mu.Lock()
	data, ok := s.slots[kind]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return nil
	}
	return nil
}

func (s *MemStore) Save(_ context.Context, kind string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", kind, err)
	}
	s.mu.Lock()
	s.slots[kind] = data
	s.mu.Unlock()
	return nil
}

// Corrupt replaces a slot with bytes that do not decode, for tests that
// exercise the read-failures-are-empty contract.
func (s *MemStore) Corrupt(kind string) {
	s.mu.Lock()
	s.slots[kind] = []byte("{not json")
	s.mu.Unlock()
}
