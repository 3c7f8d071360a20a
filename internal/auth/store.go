// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package auth

import (
	"context"
	"errors"
)

// ErrDuplicateEmail is returned by [UserRepository.Create] when the store's
// email uniqueness constraint rejects the insert. It is how the loser of a
// concurrent signup race learns it lost.
var ErrDuplicateEmail = errors.New("auth: email already registered")

// UserRepository defines the data access contract for credential records.
//
// # Implementations
//
// The canonical implementation is PostgreSQL ([PostgresUserRepository]).
// Tests substitute an in-memory fake.
//
// # Concurrency
//
// The store is a shared, concurrently accessed resource. Uniqueness of
// emails is enforced here, at the storage boundary, not by callers: the
// service's existence check before Create is optimistic and can race.
type UserRepository interface {
	// FindByEmail returns the account with the given email, matched exactly
	// as stored.
	//
	// Returns [apperr.NotFound] if no account is registered with this email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID returns the account with the given ID.
	//
	// Returns [apperr.NotFound] if the account does not exist.
	FindByID(ctx context.Context, id string) (*User, error)

	// Create persists a brand-new account.
	//
	// Returns [ErrDuplicateEmail] if the email's unique constraint fails.
	Create(ctx context.Context, user *User) error

	// UpdateRoles replaces the account's role set. Administrative operation.
	UpdateRoles(ctx context.Context, userID string, roles []string) error
}
