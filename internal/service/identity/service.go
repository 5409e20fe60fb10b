package identity

import (
	"context"
	"errors"
)

// Service errors
var (
	// ErrInvalidCredentials indicates the identity provider rejected the
	// supplied username/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Tokens is the bundle returned by a successful password sign-in.
type Tokens struct {
	IDToken      string
	RefreshToken string
	ExpiresIn    int64 // seconds until IDToken expiry
}

// Service wraps the managed identity provider.
//
// Registration is a four-step sequence owned by the caller: CreateAccount,
// SetPassword, MarkEmailVerified, then SignIn with the same credentials.
// Steps are not compensated; a failure leaves earlier steps in place.
type Service interface {
	// SignIn performs password authentication. The provider keys credentials
	// by email address, so username is the account's sign-in email.
	SignIn(ctx context.Context, username, password string) (*Tokens, error)
	// CreateAccount creates the account with email as the contact attribute
	// and username as the display name. No verification message is sent.
	CreateAccount(ctx context.Context, email, username string) (uid string, err error)
	// SetPassword sets a permanent password on the account.
	SetPassword(ctx context.Context, uid, password string) error
	// MarkEmailVerified flags the contact attribute as verified.
	MarkEmailVerified(ctx context.Context, uid string) error
}
