// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package middleware

import (
	"net/http"
	"path"

	"github.com/tranducminh/shopline/internal/platform/apperr"
	"github.com/tranducminh/shopline/internal/platform/ctxutil"
	"github.com/tranducminh/shopline/internal/platform/i18n"
	"github.com/tranducminh/shopline/internal/platform/policy"
	"github.com/tranducminh/shopline/internal/platform/respond"
)

// Authorize enforces the route-protection table.
//
// # Usage
//
// Must be registered in the router AFTER [ResolveIdentity]. It is the only
// stage that converts identity problems into client-visible failures.
//
// # Responses
//
//   - DenyUnauthenticated → 401, message explains the specific
//     authentication failure (missing, expired, or unverifiable token).
//   - DenyForbidden → 403, deliberately generic message that never reveals
//     which role the route required.
func Authorize(table *policy.Table) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			principal := ctxutil.GetPrincipal(request.Context())

			// Evaluate the same normalized path the router will dispatch.
			// Raw paths with empty or dot segments ("//", "..") must not
			// slip past a declared prefix into its handlers.
			requestPath := path.Clean(request.URL.Path)

			switch table.Evaluate(requestPath, principal) {
			case policy.Allow:
				next.ServeHTTP(writer, request)

			case policy.DenyUnauthenticated:
				failure := GetAuthFailure(request.Context())
				respond.Error(writer, request,
					apperr.Unauthorized("Authentication required").Localize(messageKeyFor(failure)))

			case policy.DenyForbidden:
				respond.Error(writer, request,
					apperr.Forbidden("Not permitted").Localize(i18n.KeyAuthNotPermitted))
			}
		})
	}
}

// messageKeyFor maps a resolution failure to the 401 message key.
//
// An unknown subject deliberately reads the same as an invalid token so the
// response never reveals whether an account exists.
func messageKeyFor(failure AuthFailure) string {
	switch failure {
	case FailureTokenExpired:
		return i18n.KeyAuthTokenExpired
	case FailureTokenInvalid, FailureSubjectUnknown:
		return i18n.KeyAuthTokenInvalid
	default:
		return i18n.KeyAuthTokenRequired
	}
}
