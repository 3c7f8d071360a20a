// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package sec

// Principal is the identity resolved for a single in-flight request.
//
// # Lifecycle
//
// It is constructed once by the identity-resolution middleware, stored in the
// request context, and discarded when the request completes. It is never
// shared across requests and never persisted. Roles are the account's roles
// at resolution time, freshly loaded from storage, so role changes take
// effect on the very next request regardless of what an old token says.
type Principal struct {
	// UserID is the account's primary key.
	UserID string `json:"-"`

	// Email is the login identifier the token's subject resolved to.
	Email string `json:"email"`

	// Roles is the account's current role set. Never empty for a valid account.
	Roles []Role `json:"roles"`
}

// HasAnyRole reports whether the principal holds at least one of the
// required roles. An empty requirement matches nothing.
func (p *Principal) HasAnyRole(required ...Role) bool {
	for _, want := range required {
		for _, have := range p.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
