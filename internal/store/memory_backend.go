package store

import (
	"context"
	"sync"
)

// MemoryBackend keeps documents in a map. Ephemeral; used by tests and
// throwaway runs.
type MemoryBackend struct {
	mu   sync.RWMutex
	docs map[string][]byte
	// WriteErr, when set, is returned by every Write.
	WriteErr error
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{docs: make(map[string][]byte)}
}

func (b *MemoryBackend) Read(_ context.Context, name string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	data, ok := b.docs[name]
	if !ok {
		return nil, ErrNotExist
	}
	return append([]byte(nil), data...), nil
}

func (b *MemoryBackend) Write(_ context.Context, name string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.WriteErr != nil {
		return b.WriteErr
	}
	b.docs[name] = append([]byte(nil), data...)
	return nil
}

func (b *MemoryBackend) Kind() string { return "memory" }

func (b *MemoryBackend) Close() error { return nil }
