package profile

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/rkarvinen/linkpage/internal/platform/logging"
)

const profilesCollection = "profiles"

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal_error"
	}
}

// firestoreProfile maps to the Firestore document structure. The document id
// is the owner id; the public link id is a queryable field.
type firestoreProfile struct {
	ID        string           `firestore:"id"`
	FirstName string           `firestore:"firstName"`
	LastName  string           `firestore:"lastName"`
	Email     string           `firestore:"email"`
	Avatar    string           `firestore:"avatar"`
	Links     []map[string]any `firestore:"links"`
}

// FirestoreStore implements Service on a Firestore collection.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// GetByOwner retrieves a profile by its owning identity.
func (s *FirestoreStore) GetByOwner(ctx context.Context, ownerID string) (*Profile, error) {
	doc, err := s.client.Collection(profilesCollection).Doc(ownerID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return docToProfile(ownerID, doc)
}

// GetByLinkID retrieves a profile by its public link id via the id field index.
func (s *FirestoreStore) GetByLinkID(ctx context.Context, id string) (*Profile, error) {
	iter := s.client.Collection(profilesCollection).
		Where("id", "==", id).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return docToProfile(doc.Ref.ID, doc)
}

// Insert stores a new profile document keyed by the owner id.
func (s *FirestoreStore) Insert(ctx context.Context, p *Profile) error {
	fp := firestoreProfile{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Avatar:    p.Avatar,
		Links:     p.Links,
	}
	_, err := s.client.Collection(profilesCollection).Doc(p.OwnerID).Set(ctx, fp)
	if err != nil {
		applog.LogAuditEvent(ctx, "create", p.OwnerID, "profile", p.OwnerID, "failure",
			map[string]any{"error": categorizeError(err)})
		return err
	}

	applog.LogAuditEvent(ctx, "create", p.OwnerID, "profile", p.OwnerID, "success", nil)
	return nil
}

// Update overwrites only avatar, firstName and lastName on the existing document.
func (s *FirestoreStore) Update(ctx context.Context, ownerID string, params UpdateParams) error {
	_, err := s.client.Collection(profilesCollection).Doc(ownerID).Update(ctx, []firestore.Update{
		{Path: "avatar", Value: params.Avatar},
		{Path: "firstName", Value: params.FirstName},
		{Path: "lastName", Value: params.LastName},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			err = ErrNotFound
		}
		applog.LogAuditEvent(ctx, "update", ownerID, "profile", ownerID, "failure",
			map[string]any{"error": categorizeError(err)})
		return err
	}

	applog.LogAuditEvent(ctx, "update", ownerID, "profile", ownerID, "success", nil)
	return nil
}

func docToProfile(ownerID string, doc *firestore.DocumentSnapshot) (*Profile, error) {
	var fp firestoreProfile
	if err := doc.DataTo(&fp); err != nil {
		return nil, err
	}
	return &Profile{
		OwnerID:   ownerID,
		ID:        fp.ID,
		FirstName: fp.FirstName,
		LastName:  fp.LastName,
		Email:     fp.Email,
		Avatar:    fp.Avatar,
		Links:     fp.Links,
	}, nil
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
