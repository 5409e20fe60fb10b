package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	applog "github.com/rkarvinen/linkpage/internal/platform/logging"
)

const defaultBaseURL = "https://identitytoolkit.googleapis.com"

// Gateway implements Service using the Firebase Admin SDK for account
// management and the Identity Toolkit REST API for password sign-in (the
// Admin SDK has no password-auth surface).
type Gateway struct {
	admin      *fbauth.Client
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithBaseURL sets a custom Identity Toolkit base URL (useful for the
// emulator and for tests).
func WithBaseURL(url string) Option {
	return func(g *Gateway) {
		g.baseURL = strings.TrimRight(url, "/")
	}
}

// NewGateway creates a gateway over the given admin client and web API key.
func NewGateway(admin *fbauth.Client, httpClient *http.Client, apiKey string, opts ...Option) *Gateway {
	g := &Gateway{
		admin:      admin,
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Identity Toolkit wire types (camelCase JSON matching the REST API).

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

type toolkitError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn performs USER_PASSWORD-style authentication via accounts:signInWithPassword.
func (g *Gateway) SignIn(ctx context.Context, username, password string) (*Tokens, error) {
	payload, err := json.Marshal(signInRequest{
		Email:             username,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding sign-in request: %w", err)
	}

	u := g.baseURL + "/v1/accounts:signInWithPassword?key=" + g.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling identity provider: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, g.signInError(ctx, resp)
	}

	var body signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding sign-in response: %w", err)
	}

	expires, err := strconv.ParseInt(body.ExpiresIn, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("decoding token expiry %q: %w", body.ExpiresIn, err)
	}

	return &Tokens{
		IDToken:      body.IDToken,
		RefreshToken: body.RefreshToken,
		ExpiresIn:    expires,
	}, nil
}

// signInError maps an Identity Toolkit error response to a service error.
func (g *Gateway) signInError(ctx context.Context, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var te toolkitError
	msg := ""
	if err := json.Unmarshal(raw, &te); err == nil {
		msg = te.Error.Message
	}

	switch {
	case strings.HasPrefix(msg, "EMAIL_NOT_FOUND"),
		strings.HasPrefix(msg, "INVALID_PASSWORD"),
		strings.HasPrefix(msg, "INVALID_LOGIN_CREDENTIALS"),
		strings.HasPrefix(msg, "USER_DISABLED"):
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, msg)
	}

	applog.LogWarn(ctx, "identity provider sign-in failed with unexpected status")
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}
	return fmt.Errorf("identity provider error (status=%d): %s", resp.StatusCode, msg)
}

// CreateAccount creates the user record. The username is kept as the display
// name; the provider's generated uid becomes the profile owner id.
func (g *Gateway) CreateAccount(ctx context.Context, email, username string) (string, error) {
	params := (&fbauth.UserToCreate{}).
		Email(email).
		DisplayName(username)

	user, err := g.admin.CreateUser(ctx, params)
	if err != nil {
		return "", fmt.Errorf("creating account: %w", err)
	}
	return user.UID, nil
}

// SetPassword sets a permanent password; no reset is forced.
func (g *Gateway) SetPassword(ctx context.Context, uid, password string) error {
	params := (&fbauth.UserToUpdate{}).Password(password)
	if _, err := g.admin.UpdateUser(ctx, uid, params); err != nil {
		return fmt.Errorf("setting password: %w", err)
	}
	return nil
}

// MarkEmailVerified flags the email attribute as verified.
func (g *Gateway) MarkEmailVerified(ctx context.Context, uid string) error {
	params := (&fbauth.UserToUpdate{}).EmailVerified(true)
	if _, err := g.admin.UpdateUser(ctx, uid, params); err != nil {
		return fmt.Errorf("marking email verified: %w", err)
	}
	return nil
}

// Compile-time interface check
var _ Service = (*Gateway)(nil)
