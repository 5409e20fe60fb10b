package profile

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/firestore"

	"github.com/rkarvinen/linkpage/internal/testutil"
)

func setupFirestoreTest(t *testing.T) (*FirestoreStore, func()) {
	t.Helper()

	testutil.SkipIfFirestoreUnavailable(t)
	testutil.SetupEmulator(t)
	testutil.ClearFirestore(t)

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, testutil.ProjectID)
	if err != nil {
		t.Fatalf("failed to create Firestore client: %v", err)
	}

	store := NewFirestoreStore(client)
	cleanup := func() {
		testutil.ClearFirestore(t)
		_ = client.Close()
	}

	return store, cleanup
}

func TestFirestoreInsertAndGetByOwner(t *testing.T) {
	store, cleanup := setupFirestoreTest(t)
	defer cleanup()

	ctx := context.Background()
	in := &Profile{
		OwnerID:   "owner-123",
		ID:        "link-abc",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Avatar:    "owner-123/a.png",
		Links: []map[string]any{
			{"title": "Site", "url": "https://example.com"},
			{"title": "Blog", "url": "https://blog.example.com"},
		},
	}

	if err := store.Insert(ctx, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetByOwner(ctx, "owner-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.OwnerID != "owner-123" || got.ID != "link-abc" {
		t.Errorf("unexpected identifiers: %+v", got)
	}
	if got.FirstName != "John" || got.LastName != "Doe" || got.Email != "john@example.com" {
		t.Errorf("unexpected fields: %+v", got)
	}
	if got.Avatar != "owner-123/a.png" {
		t.Errorf("unexpected avatar: %s", got.Avatar)
	}
	if len(got.Links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(got.Links))
	}
	// Link order is part of the contract.
	if got.Links[0]["title"] != "Site" || got.Links[1]["title"] != "Blog" {
		t.Errorf("link order not preserved: %+v", got.Links)
	}
}

func TestFirestoreGetByOwnerNotFound(t *testing.T) {
	store, cleanup := setupFirestoreTest(t)
	defer cleanup()

	_, err := store.GetByOwner(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFirestoreGetByLinkID(t *testing.T) {
	store, cleanup := setupFirestoreTest(t)
	defer cleanup()

	ctx := context.Background()
	if err := store.Insert(ctx, &Profile{OwnerID: "owner-123", ID: "link-abc"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetByLinkID(ctx, "link-abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.OwnerID != "owner-123" {
		t.Errorf("expected owner-123, got %s", got.OwnerID)
	}

	if _, err := store.GetByLinkID(ctx, "unknown"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFirestoreUpdatePreservesLinksAndEmail(t *testing.T) {
	store, cleanup := setupFirestoreTest(t)
	defer cleanup()

	ctx := context.Background()
	if err := store.Insert(ctx, &Profile{
		OwnerID:   "owner-123",
		ID:        "link-abc",
		FirstName: "John",
		Email:     "john@example.com",
		Links:     []map[string]any{{"url": "https://example.com"}},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := store.Update(ctx, "owner-123", UpdateParams{
		Avatar:    "owner-123/new.png",
		FirstName: "Johnny",
		LastName:  "Doe",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetByOwner(ctx, "owner-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FirstName != "Johnny" || got.LastName != "Doe" || got.Avatar != "owner-123/new.png" {
		t.Errorf("update not applied: %+v", got)
	}
	if got.ID != "link-abc" {
		t.Errorf("public id must not change on update, got %s", got.ID)
	}
	if got.Email != "john@example.com" || len(got.Links) != 1 {
		t.Errorf("update must not touch email or links: %+v", got)
	}
}

func TestFirestoreUpdateMissingProfile(t *testing.T) {
	store, cleanup := setupFirestoreTest(t)
	defer cleanup()

	err := store.Update(context.Background(), "missing", UpdateParams{FirstName: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
