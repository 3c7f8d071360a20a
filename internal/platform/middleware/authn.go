// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tranducminh/shopline/internal/platform/ctxkey"
	"github.com/tranducminh/shopline/internal/platform/ctxutil"
	"github.com/tranducminh/shopline/internal/platform/sec"
)

// TokenParser validates a compact token string and recovers its claims.
//
// # Why an interface?
//
// Defining TokenParser here decouples the middleware from the concrete
// [sec.TokenService], allowing mocks to be injected during unit testing.
type TokenParser interface {
	Parse(tokenString string) (*sec.TokenClaims, error)
}

// PrincipalLoader materializes the current principal for a token subject.
//
// Implementations re-load the account from storage so that role changes
// since token issuance take effect immediately.
type PrincipalLoader interface {
	LoadPrincipal(ctx context.Context, subject string) (*sec.Principal, error)
}

// AuthFailure records why identity resolution produced no principal.
//
// The distinction exists for observability and the 401 message text; at the
// policy layer every failure uniformly means "anonymous".
type AuthFailure int

const (
	// FailureNone: a principal was resolved (or resolution never ran).
	FailureNone AuthFailure = iota

	// FailureTokenMissing: no Authorization header, or a non-Bearer scheme.
	FailureTokenMissing

	// FailureTokenExpired: well-formed token past its expiry instant.
	FailureTokenExpired

	// FailureTokenInvalid: malformed payload or bad signature.
	FailureTokenInvalid

	// FailureSubjectUnknown: valid token whose subject no longer resolves
	// to an account. Never surfaced distinctly to clients.
	FailureSubjectUnknown
)

// GetAuthFailure retrieves the recorded resolution failure, if any.
func GetAuthFailure(ctx context.Context) AuthFailure {
	failure, _ := ctx.Value(ctxkey.KeyAuthFailure).(AuthFailure)
	return failure
}

// withAuthFailure records the resolution failure for the authorization stage.
func withAuthFailure(ctx context.Context, failure AuthFailure) context.Context {
	return context.WithValue(ctx, ctxkey.KeyAuthFailure, failure)
}

// ResolveIdentity is the per-request identity resolution stage.
//
// # Flow
//
//  1. Look for 'Authorization: Bearer <token>'. Absence is not an error —
//     the request simply proceeds anonymous.
//  2. Parse and verify the token via [TokenParser].
//  3. Re-load the account by the token subject via [PrincipalLoader] and
//     attach the resulting [sec.Principal] to the request context.
//
// Every failure at any step is swallowed into "no principal": this stage
// never writes a response and never aborts the pipeline. Whether anonymity
// is acceptable is decided later, uniformly, by [Authorize] — so public
// routes keep working even when a bad or expired token is presented.
func ResolveIdentity(parser TokenParser, loader PrincipalLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			tokenString, ok := bearerToken(request)
			if !ok {
				ctx := withAuthFailure(request.Context(), FailureTokenMissing)
				next.ServeHTTP(writer, request.WithContext(ctx))
				return
			}

			claims, err := parser.Parse(tokenString)
			if err != nil {
				failure := FailureTokenInvalid
				if errors.Is(err, sec.ErrTokenExpired) {
					failure = FailureTokenExpired
				}
				ctx := withAuthFailure(request.Context(), failure)
				next.ServeHTTP(writer, request.WithContext(ctx))
				return
			}

			// Fresh lookup: the token proves identity, storage provides the
			// current roles. A deleted account yields anonymous.
			principal, err := loader.LoadPrincipal(request.Context(), claims.Subject)
			if err != nil {
				ctx := withAuthFailure(request.Context(), FailureSubjectUnknown)
				next.ServeHTTP(writer, request.WithContext(ctx))
				return
			}

			ctx := ctxutil.WithPrincipal(request.Context(), principal)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header.
// A missing header or a non-Bearer scheme yields ok=false.
func bearerToken(request *http.Request) (string, bool) {
	authHeader := request.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
