// Package memory provides an in-process world state. It backs local runs and
// tests; its content is lost when the process exits.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"sync"

	"assettransfer/internal/core/ports"
)

var _ ports.Store = (*Store)(nil)

// Store is a mutex-guarded map. Values are copied on the way in and out.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return bytes.Clone(value), nil
}

func (s *Store) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = bytes.Clone(value)
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

func (s *Store) ScanRange(_ context.Context, start, end string) ([]ports.KeyValue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for key := range s.data {
		if inRange(key, start, end) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	entries := make([]ports.KeyValue, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, ports.KeyValue{Key: key, Value: bytes.Clone(s.data[key])})
	}
	return entries, nil
}

// Apply validates the whole batch before touching the map, so a bad
// mutation leaves the store unchanged.
func (s *Store) Apply(_ context.Context, mutations []ports.Mutation) error {
	for _, m := range mutations {
		if m.Op != ports.OpPut && m.Op != ports.OpDelete {
			return fmt.Errorf("apply %q: unsupported operation %s", m.Key, m.Op)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range mutations {
		if m.Op == ports.OpDelete {
			delete(s.data, m.Key)
			continue
		}
		s.data[m.Key] = bytes.Clone(m.Value)
	}
	return nil
}

func inRange(key, start, end string) bool {
	return (start == "" || key >= start) && (end == "" || key < end)
}
