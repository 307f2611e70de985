package repository

import (
	"context"
	"sync"
)

type memoryStateStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoryStateStore() StateStore {
	return &memoryStateStore{
		entries: make(map[string]string),
	}
}

func (s *memoryStateStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	return value, ok, nil
}

func (s *memoryStateStore) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

func (s *memoryStateStore) Ping(context.Context) error {
	return nil
}
