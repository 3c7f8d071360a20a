// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package auth_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranducminh/shopline/internal/auth"
	"github.com/tranducminh/shopline/internal/platform/middleware"
	"github.com/tranducminh/shopline/internal/platform/policy"
	"github.com/tranducminh/shopline/internal/platform/sec"
	"github.com/tranducminh/shopline/internal/platform/seed"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newAuthRouter assembles the real gateway pipeline around the auth handler:
// token service, identity resolution, policy enforcement, routes.
func newAuthRouter(t *testing.T) (http.Handler, *auth.Service) {
	t.Helper()

	tokenService, err := sec.NewTokenService("http-test-secret", "shopline.dev")
	require.NoError(t, err)

	repo := newMemoryUserRepository()
	service := auth.NewService(repo, tokenService, 15*time.Minute)
	require.NoError(t, seed.EnsureAdmin(context.Background(), repo, discardLogger()))

	table := policy.NewTable(
		policy.Authenticated("/api/v1/auth/me"),
		policy.Public("/"),
	)

	router := chi.NewRouter()
	router.Use(middleware.ResolveIdentity(tokenService, service))
	router.Use(middleware.Authorize(table))
	router.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", auth.NewHandler(service).Routes())
	})

	return router, service
}

func postJSON(t *testing.T, handler http.Handler, path, payload string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func dataOf(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope.Data
}

/*
TestHTTP_AdminBootstrapFlow walks the seeded-admin scenario end to end:
login with the bootstrap credentials, then present the returned token to
/me and find both roles.
*/
func TestHTTP_AdminBootstrapFlow(t *testing.T) {
	router, _ := newAuthRouter(t)

	// ── 1. Login ──────────────────────────────────────────────────────────

	recorder := postJSON(t, router, "/api/v1/auth/login",
		`{"email":"admin@admin.com","password":"123456"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	data := dataOf(t, recorder)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)
	assert.EqualValues(t, (15 * time.Minute).Milliseconds(), data["expiresInMillis"])

	// ── 2. Identity Echo ──────────────────────────────────────────────────

	request := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	meRecorder := httptest.NewRecorder()
	router.ServeHTTP(meRecorder, request)

	require.Equal(t, http.StatusOK, meRecorder.Code)
	me := dataOf(t, meRecorder)
	assert.Equal(t, "admin@admin.com", me["email"])
	assert.ElementsMatch(t, []any{"USER", "ADMIN"}, me["roles"])
}

/*
TestHTTP_Login_BadCredentials expects 401 regardless of which half of the
credentials was wrong.
*/
func TestHTTP_Login_BadCredentials(t *testing.T) {
	router, _ := newAuthRouter(t)

	for name, payload := range map[string]string{
		"wrong_password": `{"email":"admin@admin.com","password":"nope"}`,
		"unknown_email":  `{"email":"nobody@shop.test","password":"123456"}`,
	} {
		t.Run(name, func(t *testing.T) {
			recorder := postJSON(t, router, "/api/v1/auth/login", payload)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

/*
TestHTTP_Login_MalformedJSON expects a 400 validation error, not a panic or
a 500.
*/
func TestHTTP_Login_MalformedJSON(t *testing.T) {
	router, _ := newAuthRouter(t)

	recorder := postJSON(t, router, "/api/v1/auth/login", `{"email": `)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

/*
TestHTTP_Signup creates an account and checks the 201 body carries the
public profile only.
*/
func TestHTTP_Signup(t *testing.T) {
	router, _ := newAuthRouter(t)

	recorder := postJSON(t, router, "/api/v1/auth/signup",
		`{"username":"minh","firstname":"Minh","email":"minh@shop.test","password":"s3cret-pw"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	data := dataOf(t, recorder)
	assert.Equal(t, "minh", data["username"])
	assert.Equal(t, "minh@shop.test", data["email"])
	assert.NotContains(t, data, "password")
	assert.NotContains(t, data, "id")
}

/*
TestHTTP_Signup_DuplicateEmail expects 400 (not 409) with the email echoed
in the localized message.
*/
func TestHTTP_Signup_DuplicateEmail(t *testing.T) {
	router, _ := newAuthRouter(t)

	payload := `{"username":"minh","email":"minh@shop.test","password":"s3cret-pw"}`
	first := postJSON(t, router, "/api/v1/auth/signup", payload)
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(t, router, "/api/v1/auth/signup", payload)
	assert.Equal(t, http.StatusBadRequest, second.Code)

	var body struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &body))
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", body.Code)
	assert.Contains(t, body.Message, "minh@shop.test")
}

/*
TestHTTP_Me_Anonymous expects the policy table to reject an unauthenticated
/me request before the handler runs.
*/
func TestHTTP_Me_Anonymous(t *testing.T) {
	router, _ := newAuthRouter(t)

	request := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
