package routes

import (
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/rkarvinen/linkpage/internal/http/v1/account"
	"github.com/rkarvinen/linkpage/internal/http/v1/link"
	"github.com/rkarvinen/linkpage/internal/platform/auth"
	assetsvc "github.com/rkarvinen/linkpage/internal/service/asset"
	identitysvc "github.com/rkarvinen/linkpage/internal/service/identity"
	profilesvc "github.com/rkarvinen/linkpage/internal/service/profile"
)

// Register wires all HTTP routes into the provided API router.
func Register(
	api huma.API,
	verifier auth.Verifier,
	identityService identitysvc.Service,
	profileService profilesvc.Service,
	assetStore assetsvc.Store,
	signedURLTTL time.Duration,
) {
	// Apply auth middleware for protected endpoints
	api.UseMiddleware(auth.NewAuthMiddleware(api, verifier))

	account.Register(api, identityService)
	link.Register(api, profileService, assetStore, signedURLTTL)
}
