package asset

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MockStore implements Store in memory and records mutations for tests.
type MockStore struct {
	mu      sync.RWMutex
	objects map[string]mockObject

	// Deleted records every key passed to Delete, in order.
	Deleted []string
	// Failures, when set, are returned by the matching operation.
	UploadErr error
	DeleteErr error
	SignErr   error
}

type mockObject struct {
	contentType string
	data        []byte
}

// NewMockStore creates an empty mock store.
func NewMockStore() *MockStore {
	return &MockStore{objects: make(map[string]mockObject)}
}

func (m *MockStore) Upload(_ context.Context, key, contentType string, data []byte) error {
	if m.UploadErr != nil {
		return m.UploadErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.objects[key] = mockObject{contentType: contentType, data: cp}
	return nil
}

func (m *MockStore) Delete(_ context.Context, key string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deleted = append(m.Deleted, key)
	if _, ok := m.objects[key]; !ok {
		return ErrNotFound
	}
	delete(m.objects, key)
	return nil
}

func (m *MockStore) SignedURL(key string, ttl time.Duration) (string, error) {
	if m.SignErr != nil {
		return "", m.SignErr
	}
	return fmt.Sprintf("https://signed.example.com/%s?ttl=%d", key, int(ttl.Seconds())), nil
}

// Has reports whether an object exists under key.
func (m *MockStore) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.objects[key]
	return ok
}

// Object returns the stored payload and content type for key.
func (m *MockStore) Object(key string) ([]byte, string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[key]
	return obj.data, obj.contentType, ok
}

// Len returns the number of stored objects.
func (m *MockStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}

// Compile-time interface check
var _ Store = (*MockStore)(nil)
