package link

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rkarvinen/linkpage/internal/platform/auth"
	applog "github.com/rkarvinen/linkpage/internal/platform/logging"
	assetsvc "github.com/rkarvinen/linkpage/internal/service/asset"
	profilesvc "github.com/rkarvinen/linkpage/internal/service/profile"
)

// Register registers the link-profile endpoints. signedURLTTL bounds the
// lifetime of avatar download URLs issued on reads.
func Register(api huma.API, profiles profilesvc.Service, assets assetsvc.Store, signedURLTTL time.Duration) {
	huma.Register(api, huma.Operation{
		OperationID: "upsert-link",
		Method:      http.MethodPost,
		Path:        "/link",
		Summary:     "Create or update the caller's links profile",
		Description: "Creates the profile on first submission (generating its public id) or updates " +
			"the existing one. An embedded avatar image replaces the previous one.",
		Tags:          []string{"Link"},
		DefaultStatus: http.StatusOK,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *UpsertInput) (*UpsertOutput, error) {
		user := auth.UserFromContext(ctx)
		if user == nil {
			return nil, huma.Error401Unauthorized("missing caller identity")
		}

		avatarData, avatarExt, err := decodeAvatar(input.Body.Avatar)
		if err != nil {
			return nil, err
		}

		existing, err := profiles.GetByOwner(ctx, user.UID)
		if err != nil && !errors.Is(err, profilesvc.ErrNotFound) {
			return nil, huma.Error500InternalServerError("link profile lookup failed", err)
		}

		id := uuid.NewString()
		avatarKey := ""
		if existing != nil {
			id = existing.ID
			avatarKey = existing.Avatar
		}

		if avatarData != nil {
			newKey := user.UID + "/" + uuid.NewString() + avatarExt

			// Replace, don't accumulate: drop the previous object first. A
			// failed delete is logged and does not block the new upload; the
			// profile record is repointed below either way.
			if avatarKey != "" {
				if err := assets.Delete(ctx, avatarKey); err != nil {
					applog.LogWarn(ctx, "failed to delete previous avatar",
						zap.String("key", avatarKey), zap.Error(err))
				}
			}

			if err := assets.Upload(ctx, newKey, input.Body.Avatar.ContentType, avatarData); err != nil {
				return nil, huma.Error500InternalServerError("avatar upload failed", err)
			}
			avatarKey = newKey
		}

		entity := profilesvc.Profile{
			OwnerID:   user.UID,
			ID:        id,
			FirstName: input.Body.FirstName,
			LastName:  input.Body.LastName,
			Email:     input.Body.Email,
			Avatar:    avatarKey,
			Links:     input.Body.Links,
		}

		if existing == nil {
			if err := profiles.Insert(ctx, &entity); err != nil {
				return nil, huma.Error500InternalServerError("link profile create failed", err)
			}
			return &UpsertOutput{Status: http.StatusCreated, Body: toWireProfile(&entity)}, nil
		}

		// Update writes only avatar and name fields; links and email persist
		// from creation time. The response still echoes the submission.
		err = profiles.Update(ctx, user.UID, profilesvc.UpdateParams{
			Avatar:    avatarKey,
			FirstName: input.Body.FirstName,
			LastName:  input.Body.LastName,
		})
		if err != nil {
			return nil, huma.Error500InternalServerError("link profile update failed", err)
		}
		return &UpsertOutput{Status: http.StatusOK, Body: toWireProfile(&entity)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-link",
		Method:      http.MethodGet,
		Path:        "/link",
		Summary:     "Fetch a links profile by its public id",
		Description: "Unauthenticated lookup by the shareable link id. The avatar reference is " +
			"resolved to a time-limited signed URL.",
		Tags: []string{"Link"},
	}, func(ctx context.Context, input *PublicGetInput) (*PublicGetOutput, error) {
		if input.ID == "" {
			return nil, huma.Error400BadRequest("id is required")
		}

		p, err := profiles.GetByLinkID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, profilesvc.ErrNotFound) {
				return nil, huma.Error404NotFound("link profile not found")
			}
			return nil, huma.Error500InternalServerError("link profile lookup failed", err)
		}

		body, err := resolveAvatar(assets, toWireProfile(p), signedURLTTL)
		if err != nil {
			return nil, huma.Error500InternalServerError("avatar URL signing failed", err)
		}
		return &PublicGetOutput{Body: body}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-private-link",
		Method:      http.MethodGet,
		Path:        "/privateLink",
		Summary:     "Fetch the caller's own links profile",
		Description: "Returns an empty-shaped profile when the caller has not created one yet.",
		Tags:        []string{"Link"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *PrivateGetInput) (*PrivateGetOutput, error) {
		user := auth.UserFromContext(ctx)
		if user == nil {
			return nil, huma.Error401Unauthorized("missing caller identity")
		}

		p, err := profiles.GetByOwner(ctx, user.UID)
		if err != nil {
			if errors.Is(err, profilesvc.ErrNotFound) {
				// A freshly registered caller has no profile yet; hand back
				// the empty shape instead of a 404.
				return &PrivateGetOutput{Body: emptyProfile()}, nil
			}
			return nil, huma.Error500InternalServerError("link profile lookup failed", err)
		}

		body, err := resolveAvatar(assets, toWireProfile(p), signedURLTTL)
		if err != nil {
			return nil, huma.Error500InternalServerError("avatar URL signing failed", err)
		}
		return &PrivateGetOutput{Body: body}, nil
	})
}

// decodeAvatar validates and decodes an embedded avatar submission. It
// returns the raw bytes and the filename extension for key generation.
func decodeAvatar(a *AvatarUpload) ([]byte, string, error) {
	if a == nil {
		return nil, "", nil
	}
	if !strings.HasPrefix(a.ContentType, "image/") {
		return nil, "", huma.Error422UnprocessableEntity("avatar must be an image")
	}
	data, err := base64.StdEncoding.DecodeString(a.Content)
	if err != nil {
		return nil, "", huma.Error422UnprocessableEntity("avatar content is not valid base64", err)
	}
	return data, path.Ext(a.Filename), nil
}

// resolveAvatar swaps the stored asset key for a signed download URL.
func resolveAvatar(assets assetsvc.Store, p LinkProfile, ttl time.Duration) (LinkProfile, error) {
	if p.Avatar == nil || *p.Avatar == "" {
		return p, nil
	}
	url, err := assets.SignedURL(*p.Avatar, ttl)
	if err != nil {
		return p, err
	}
	p.Avatar = &url
	return p, nil
}

func toWireProfile(p *profilesvc.Profile) LinkProfile {
	avatar := p.Avatar
	links := p.Links
	if links == nil {
		links = []map[string]any{}
	}
	return LinkProfile{
		OwnerID:   p.OwnerID,
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Avatar:    &avatar,
		Links:     links,
	}
}

// emptyProfile is the fixed shape returned before first creation.
func emptyProfile() LinkProfile {
	return LinkProfile{
		FirstName: "",
		LastName:  "",
		Email:     "",
		Avatar:    nil,
		Links:     []map[string]any{},
	}
}
