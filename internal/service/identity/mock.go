package identity

import (
	"context"
	"sync"
)

// MockService implements Service for unit tests. Each step can be failed
// independently to exercise the no-rollback register sequence.
type MockService struct {
	mu sync.Mutex

	SignInTokens *Tokens
	SignInErr    error

	CreateUID string
	CreateErr error

	SetPasswordErr       error
	MarkEmailVerifiedErr error

	// Calls records the operations performed, in order.
	Calls []string
}

func (m *MockService) record(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, op)
}

func (m *MockService) SignIn(_ context.Context, _, _ string) (*Tokens, error) {
	m.record("signIn")
	if m.SignInErr != nil {
		return nil, m.SignInErr
	}
	if m.SignInTokens != nil {
		return m.SignInTokens, nil
	}
	return &Tokens{IDToken: "id-token", RefreshToken: "refresh-token", ExpiresIn: 3600}, nil
}

func (m *MockService) CreateAccount(_ context.Context, _, _ string) (string, error) {
	m.record("createAccount")
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	if m.CreateUID != "" {
		return m.CreateUID, nil
	}
	return "mock-uid", nil
}

func (m *MockService) SetPassword(_ context.Context, _, _ string) error {
	m.record("setPassword")
	return m.SetPasswordErr
}

func (m *MockService) MarkEmailVerified(_ context.Context, _ string) error {
	m.record("markEmailVerified")
	return m.MarkEmailVerifiedErr
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
