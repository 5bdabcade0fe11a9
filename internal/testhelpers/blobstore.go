package testhelpers

import (
	"context"
	"sync"
)

// MemoryBlobStore is an in-process BlobStore for tests
type MemoryBlobStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{Objects: make(map[string][]byte)}
}

func (m *MemoryBlobStore) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Objects[key] = data
	return "https://media.test/" + key, nil
}

func (m *MemoryBlobStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Objects, key)
	return nil
}
