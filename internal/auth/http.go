// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/tranducminh/shopline/internal/platform/request"
	"github.com/tranducminh/shopline/internal/platform/respond"
	"github.com/tranducminh/shopline/internal/platform/sec"
	"github.com/tranducminh/shopline/internal/platform/validate"
)

// Handler implements the authentication HTTP endpoints.
//
// # Scope
//
// This handler covers the account lifecycle entry points (signup, login)
// and the identity echo endpoint. It contains no business logic or
// database queries.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication routes.
//
// # Endpoints
//   - POST /signup : Creates a new account.
//   - POST /login  : Exchanges credentials for a bearer token.
//   - GET  /me     : Echoes the caller's resolved identity.
//
// The /me route is gated by the route policy table, not by this handler:
// by the time the request arrives here, a principal is guaranteed present.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/signup", handler.signup)
	router.Post("/login", handler.login)
	router.Get("/me", handler.me)

	return router
}

// signupRequest represents the JSON payload expected for account creation.
type signupRequest struct {
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// signupResponse is the public view of a freshly created account.
// The ID and password hash never leave the server on this path.
type signupResponse struct {
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Email     string `json:"email"`
}

// signup handles POST /api/v1/auth/signup requests.
//
// # Returns
//   - Writes HTTP 201 Created on success with the public profile.
//   - Writes HTTP 400 Bad Request if validation fails or the email is
//     already registered.
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input signupRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	err := validate.New().
		Required("username", input.Username).
		Required("email", input.Email).
		Email("email", input.Email).
		Required("password", input.Password).
		MinLen("password", input.Password, 6).
		Err()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	user, err := handler.authService.Signup(request.Context(), SignupInput{
		Username:  input.Username,
		Firstname: input.Firstname,
		Email:     input.Email,
		Password:  input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.Created(writer, signupResponse{
		Username:  user.Username,
		Firstname: user.Firstname,
		Email:     user.Email,
	})
}

// loginRequest represents the JSON payload expected for authentication.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse carries the signed token and its lifetime.
type loginResponse struct {
	Token           string `json:"token"`
	ExpiresInMillis int64  `json:"expiresInMillis"`
}

// login handles POST /api/v1/auth/login requests.
//
// # Returns
//   - Writes HTTP 200 OK on success with the bearer token.
//   - Writes HTTP 401 Unauthorized for bad credentials, never revealing
//     whether the email or the password was wrong.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	if input.Email == "" || input.Password == "" {
		respond.Error(writer, request, validate.RequiredError("email/password", "are required"))
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	result, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.OK(writer, loginResponse{
		Token:           result.Token,
		ExpiresInMillis: result.ExpiresIn.Milliseconds(),
	})
}

// meResponse is the identity echo payload.
type meResponse struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// me handles GET /api/v1/auth/me requests.
//
// The policy table requires an authenticated caller here, so a missing
// principal indicates a routing misconfiguration rather than a client error.
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, meResponse{
		Email: principal.Email,
		Roles: sec.RoleStrings(principal.Roles),
	})
}
