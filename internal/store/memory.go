package store

import (
	"context"
	"sync"
)

type memoryFieldStore struct {
	mu     sync.RWMutex
	fields map[string]string
}

// NewMemoryCache returns a process-local [CredentialCache]. Nothing
// survives a restart; intended for tests and the "memory" backend.
func NewMemoryCache() CredentialCache {
	return newCache(&memoryFieldStore{fields: make(map[string]string)})
}

func (m *memoryFieldStore) set(_ context.Context, name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fields[name] = value
	return nil
}

func (m *memoryFieldStore) get(_ context.Context, name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.fields[name]
	if !ok {
		return "", ErrFieldNotFound
	}
	return value, nil
}

func (m *memoryFieldStore) delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.fields, name)
	return nil
}
