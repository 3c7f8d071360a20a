// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

Access control is declared here, once, as a route policy table. Handlers
never gate themselves: a route is protected because this file says so, and
an unlisted route is public by definition.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tranducminh/shopline/internal/auth"
	"github.com/tranducminh/shopline/internal/cart"
	"github.com/tranducminh/shopline/internal/catalog"
	"github.com/tranducminh/shopline/internal/platform/config"
	"github.com/tranducminh/shopline/internal/platform/constants"
	"github.com/tranducminh/shopline/internal/platform/middleware"
	"github.com/tranducminh/shopline/internal/platform/policy"
	"github.com/tranducminh/shopline/internal/platform/sec"
	"github.com/tranducminh/shopline/internal/wishlist"
)

// # Route Policy

// PolicyTable declares who may reach which prefix. The most specific
// matching pattern wins; everything unlisted falls through to the public
// catch-all.
//
// Login, signup, product discovery, and the health probes stay public
// precisely by NOT appearing here.
func PolicyTable() *policy.Table {
	return policy.NewTable(
		policy.RequireRoles("/api/v1/admin", sec.RoleAdmin),
		policy.Authenticated("/api/v1/auth/me"),
		policy.Authenticated("/api/v1/cart"),
		policy.Authenticated("/api/v1/wishlist"),
		policy.Public("/"),
	)
}

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here; no other change to server.go is required
// beyond a Mount call and, when protected, a policy rule.
type Handlers struct {
	// Liveness is the /health handler. Always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. Returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles login, signup, and the identity echo endpoint.
	Auth *auth.Handler

	// Catalog handles public product discovery and the admin lifecycle.
	Catalog *catalog.Handler

	// Cart handles the per-user shopping cart.
	Cart *cart.Handler

	// Wishlist handles the per-user saved products set.
	Wishlist *wishlist.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// # Pipeline Order
//
// Identity resolution runs before authorization and never denies anything
// itself; the policy check is the single stage that can turn a request away
// with 401 or 403. Everything after it can assume the caller is allowed.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, parser middleware.TokenParser, loader middleware.PrincipalLoader, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution. CleanPath runs before
	// the policy gate so routing never dispatches a path the gate did not
	// evaluate; CORS runs before it so browser preflights, which carry no
	// Authorization header, are answered instead of denied.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(chimw.CleanPath)
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.ResolveIdentity(parser, loader))
	r.Use(middleware.Authorize(PolicyTable()))

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/products", h.Catalog.Routes())
		api.Mount("/admin/products", h.Catalog.AdminRoutes())
		api.Mount("/cart", h.Cart.Routes())
		api.Mount("/wishlist", h.Wishlist.Routes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Router exposes the underlying handler for integration tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
