package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/rkarvinen/linkpage/internal/http/health"
	"github.com/rkarvinen/linkpage/internal/http/v1/routes"
	"github.com/rkarvinen/linkpage/internal/platform/auth"
	"github.com/rkarvinen/linkpage/internal/platform/config"
	"github.com/rkarvinen/linkpage/internal/platform/firebase"
	applog "github.com/rkarvinen/linkpage/internal/platform/logging"
	appmiddleware "github.com/rkarvinen/linkpage/internal/platform/middleware"
	"github.com/rkarvinen/linkpage/internal/platform/respond"
	assetsvc "github.com/rkarvinen/linkpage/internal/service/asset"
	identitysvc "github.com/rkarvinen/linkpage/internal/service/identity"
	profilesvc "github.com/rkarvinen/linkpage/internal/service/profile"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogError(context.Background(), "config load failed", err)
		os.Exit(1)
	}

	ctx := context.Background()
	clients, err := firebase.InitializeClients(ctx, firebase.Config{
		ProjectID:                    cfg.ProjectID,
		GoogleApplicationCredentials: cfg.GoogleApplicationCredentials,
	})
	if err != nil {
		applog.LogError(ctx, "client initialization failed", err)
		os.Exit(1)
	}
	defer func() {
		if err := clients.Close(); err != nil {
			applog.LogError(context.Background(), "client close error", err)
		}
	}()

	verifier := auth.NewFirebaseVerifier(clients.Auth)
	identityService := identitysvc.NewGateway(clients.Auth, http.DefaultClient, cfg.WebAPIKey)
	profileService := profilesvc.NewFirestoreStore(clients.Firestore)
	assetStore := assetsvc.NewGCSStore(clients.Storage, cfg.AvatarBucket)
	signedURLTTL := time.Duration(cfg.SignedURLTTL) * time.Second

	respond.Install()

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		// Without a trusted proxy, clients can spoof their IP address.
		chimiddleware.RealIP,
		// RequestSize limits request body size to prevent memory exhaustion
		// from large payloads; avatar uploads ride inside the JSON body.
		chimiddleware.RequestSize(6<<20), // 6 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	// Plain liveness probe, outside the OpenAPI surface.
	router.Get("/healthz", health.Handler)

	apiCfg := huma.DefaultConfig("Linkpage API", Version)
	apiCfg.DocsPath = "/api-docs"
	api := humachi.New(router, apiCfg)

	// Add CBOR content type to OpenAPI requests and responses
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)

	// Register routes
	routes.Register(api, verifier, identityService, profileService, assetStore, signedURLTTL)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}
