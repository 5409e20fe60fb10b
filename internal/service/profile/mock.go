package profile

import (
	"context"
	"sync"
)

// MockProfileService implements Service for unit tests.
type MockProfileService struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
}

// NewMockProfileService creates a new mock service.
func NewMockProfileService() *MockProfileService {
	return &MockProfileService{
		profiles: make(map[string]*Profile),
	}
}

func (m *MockProfileService) GetByOwner(_ context.Context, ownerID string) (*Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, exists := m.profiles[ownerID]
	if !exists {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *MockProfileService) GetByLinkID(_ context.Context, id string) (*Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.profiles {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockProfileService) Insert(_ context.Context, p *Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *p
	m.profiles[p.OwnerID] = &cp
	return nil
}

func (m *MockProfileService) Update(_ context.Context, ownerID string, params UpdateParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, exists := m.profiles[ownerID]
	if !exists {
		return ErrNotFound
	}
	p.Avatar = params.Avatar
	p.FirstName = params.FirstName
	p.LastName = params.LastName
	return nil
}

// Clear removes all profiles (useful for test cleanup).
func (m *MockProfileService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles = make(map[string]*Profile)
}

// Compile-time interface check
var _ Service = (*MockProfileService)(nil)
