// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package auth

import (
	"time"

	"github.com/tranducminh/shopline/internal/platform/sec"
)

// User represents a registered Shopline account.
//
// # Rules
//   - Email is the unique, case-insensitive login identifier: the store's
//     unique index is on lower(email), so no two accounts can share an email
//     in any casing. Lookups are exact-match against the stored form.
//   - PasswordHash is generated via bcrypt exclusively by [Service]; the
//     plaintext is never stored or logged.
//   - Roles is never empty; the default at signup is [sec.RoleUser].
//   - Accounts are never hard-deleted here; administrative deletion is a
//     collaborator concern.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Username     string     `json:"username"`
	Firstname    string     `json:"firstname"`
	PasswordHash string     `json:"-"` // Explicitly omitted from JSON for security.
	Roles        []sec.Role `json:"roles"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Principal materializes the request-scoped identity view of this account.
func (u *User) Principal() *sec.Principal {
	roles := make([]sec.Role, len(u.Roles))
	copy(roles, u.Roles)

	return &sec.Principal{
		UserID: u.ID,
		Email:  u.Email,
		Roles:  roles,
	}
}
