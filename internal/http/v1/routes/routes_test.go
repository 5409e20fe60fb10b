package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/rkarvinen/linkpage/internal/platform/auth"
	applog "github.com/rkarvinen/linkpage/internal/platform/logging"
	appmiddleware "github.com/rkarvinen/linkpage/internal/platform/middleware"
	"github.com/rkarvinen/linkpage/internal/platform/respond"
	assetsvc "github.com/rkarvinen/linkpage/internal/service/asset"
	identitysvc "github.com/rkarvinen/linkpage/internal/service/identity"
	profilesvc "github.com/rkarvinen/linkpage/internal/service/profile"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("RoutesTest", "test"))
	Register(
		api,
		&auth.MockVerifier{User: auth.TestUser()},
		&identitysvc.MockService{},
		profilesvc.NewMockProfileService(),
		assetsvc.NewMockStore(),
		600*time.Second,
	)
	return router
}

func TestRegisterRoutesLogin(t *testing.T) {
	router := newTestRouter()

	body := `{"username":"ada@example.com","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(chimiddleware.RequestIDHeader, "routes-login")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRegisterRoutesRegister(t *testing.T) {
	router := newTestRouter()

	body := `{"email":"ada@example.com","username":"ada","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(chimiddleware.RequestIDHeader, "routes-register")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRegisterRoutesPublicLinkWithoutToken(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/link?id=unknown", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "routes-link")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Public lookup requires no token; an unknown id is simply absent.
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRegisterRoutesPrivateLinkRequiresToken(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/privateLink", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "routes-private-link")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}
