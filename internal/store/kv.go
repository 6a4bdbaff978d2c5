package store

import (
	"context"
	"sync"
)

// KV is the persistence layer under the store: a flat namespace of string
// keys to JSON-encoded collection snapshots. Backends must make Put atomic
// per key; the Store serializes whole read-modify-write sequences itself.
type KV interface {
	// Get returns the value for key, reporting whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put writes the value for key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
}

// Memory is an in-memory KV for tests and throwaway books.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}
