package profile

import (
	"context"
	"errors"
)

// Service errors
var (
	ErrNotFound = errors.New("profile not found")
)

// Profile is the per-owner links profile.
//
// OwnerID is the identity-provider subject that owns the profile; ID is the
// generated public link identifier used for unauthenticated lookups. Avatar
// holds the raw asset-store key of the active avatar object, or "" when the
// owner has none; it is resolved to a signed URL only at read time.
type Profile struct {
	OwnerID   string
	ID        string
	FirstName string
	LastName  string
	Email     string
	Avatar    string
	Links     []map[string]any
}

// UpdateParams for the partial update path. Only these three fields are
// written on update; links and email persist through the create path only.
type UpdateParams struct {
	Avatar    string
	FirstName string
	LastName  string
}

// Service defines link-profile store operations.
type Service interface {
	// GetByOwner returns the profile owned by ownerID, or ErrNotFound.
	GetByOwner(ctx context.Context, ownerID string) (*Profile, error)
	// GetByLinkID returns the profile with the given public link id, or ErrNotFound.
	GetByLinkID(ctx context.Context, id string) (*Profile, error)
	// Insert stores a brand-new profile with all fields.
	Insert(ctx context.Context, p *Profile) error
	// Update overwrites the avatar and name fields of an existing profile.
	Update(ctx context.Context, ownerID string, params UpdateParams) error
}
