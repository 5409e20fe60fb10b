package profile

import (
	"context"
	"errors"
	"testing"
)

func sampleProfile(ownerID, id string) *Profile {
	return &Profile{
		OwnerID:   ownerID,
		ID:        id,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Avatar:    "",
		Links: []map[string]any{
			{"title": "Blog", "url": "https://example.com"},
		},
	}
}

func TestMockInsertAndGetByOwner(t *testing.T) {
	svc := NewMockProfileService()
	ctx := context.Background()

	if err := svc.Insert(ctx, sampleProfile("owner-1", "link-1")); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	got, err := svc.GetByOwner(ctx, "owner-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ID != "link-1" {
		t.Fatalf("unexpected id: %s", got.ID)
	}
	if got.FirstName != "Ada" || got.Email != "ada@example.com" {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if len(got.Links) != 1 || got.Links[0]["url"] != "https://example.com" {
		t.Fatalf("links not preserved: %+v", got.Links)
	}
}

func TestMockGetByLinkID(t *testing.T) {
	svc := NewMockProfileService()
	ctx := context.Background()

	if err := svc.Insert(ctx, sampleProfile("owner-1", "link-1")); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	got, err := svc.GetByLinkID(ctx, "link-1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got.OwnerID != "owner-1" {
		t.Fatalf("unexpected owner: %s", got.OwnerID)
	}

	if _, err := svc.GetByLinkID(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMockGetByOwnerNotFound(t *testing.T) {
	svc := NewMockProfileService()

	if _, err := svc.GetByOwner(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMockUpdateWritesPartialFieldsOnly(t *testing.T) {
	svc := NewMockProfileService()
	ctx := context.Background()

	if err := svc.Insert(ctx, sampleProfile("owner-1", "link-1")); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	err := svc.Update(ctx, "owner-1", UpdateParams{
		Avatar:    "owner-1/avatar.png",
		FirstName: "Ada L.",
		LastName:  "Lovelace",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := svc.GetByOwner(ctx, "owner-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.FirstName != "Ada L." {
		t.Fatalf("firstName not updated: %s", got.FirstName)
	}
	if got.Avatar != "owner-1/avatar.png" {
		t.Fatalf("avatar not updated: %s", got.Avatar)
	}
	// id, email and links survive the partial update untouched.
	if got.ID != "link-1" || got.Email != "ada@example.com" || len(got.Links) != 1 {
		t.Fatalf("partial update touched immutable fields: %+v", got)
	}
}

func TestMockUpdateMissingProfile(t *testing.T) {
	svc := NewMockProfileService()

	err := svc.Update(context.Background(), "missing", UpdateParams{FirstName: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMockClear(t *testing.T) {
	svc := NewMockProfileService()
	ctx := context.Background()

	if err := svc.Insert(ctx, sampleProfile("owner-1", "link-1")); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	svc.Clear()

	if _, err := svc.GetByOwner(ctx, "owner-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after clear, got %v", err)
	}
}
