package save

import (
	"context"
	"maps"
	"sync"
)

// MemoryStore keeps the record in process. Used by headless runs.
type MemoryStore struct {
	mu sync.Mutex
	kv map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{kv: make(map[string]string)}
}

func (s *MemoryStore) Save(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	maps.Copy(s.kv, rec.pairs())
	return nil
}

func (s *MemoryStore) Load(_ context.Context) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return decode(s.kv)
}

func (s *MemoryStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.kv)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// Put writes a raw key, bypassing Record encoding.
func (s *MemoryStore) Put(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kv[key] = value
}
