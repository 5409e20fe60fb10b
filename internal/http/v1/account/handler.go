package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/rkarvinen/linkpage/internal/platform/logging"
	identitysvc "github.com/rkarvinen/linkpage/internal/service/identity"
)

// Register registers the login and register endpoints.
func Register(api huma.API, svc identitysvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/login",
		Summary:     "Sign in with username and password",
		Description: "Delegates password authentication to the identity provider and returns its token bundle.",
		Tags:        []string{"Account"},
	}, func(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
		tokens, err := svc.SignIn(ctx, input.Body.Username, input.Body.Password)
		if err != nil {
			// Generic message regardless of cause; the provider detail rides
			// along only as a diagnostic.
			return nil, huma.Error401Unauthorized("invalid username or password", err)
		}
		return &LoginOutput{Body: toTokenBundle(tokens)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "register",
		Method:      http.MethodPost,
		Path:        "/register",
		Summary:     "Register a new account",
		Description: "Creates the account, sets a permanent password, marks the email verified and signs in. " +
			"Steps run in order with no rollback on failure.",
		Tags: []string{"Account"},
	}, func(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
		uid, err := svc.CreateAccount(ctx, input.Body.Email, input.Body.Username)
		if err != nil {
			return nil, huma.Error500InternalServerError("registration failed", err)
		}

		if err := svc.SetPassword(ctx, uid, input.Body.Password); err != nil {
			return nil, huma.Error500InternalServerError("registration failed", err)
		}

		if err := svc.MarkEmailVerified(ctx, uid); err != nil {
			return nil, huma.Error500InternalServerError("registration failed", err)
		}

		tokens, err := svc.SignIn(ctx, input.Body.Email, input.Body.Password)
		if err != nil {
			return nil, huma.Error500InternalServerError("registration failed", err)
		}

		applog.LogInfo(ctx, "account registered", zap.String("uid", uid))

		return &RegisterOutput{Body: RegisterData{
			Message:     "account registered and email verified",
			TokenBundle: toTokenBundle(tokens),
		}}, nil
	})
}

func toTokenBundle(t *identitysvc.Tokens) TokenBundle {
	return TokenBundle{
		IDToken:      t.IDToken,
		RefreshToken: t.RefreshToken,
		ExpiresIn:    t.ExpiresIn,
	}
}
