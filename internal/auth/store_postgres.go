// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tranducminh/shopline/internal/platform/apperr"
	"github.com/tranducminh/shopline/internal/platform/dberr"
	"github.com/tranducminh/shopline/internal/platform/sec"
)

// PostgresUserRepository implements the UserRepository interface using pgx.
//
// # Error Mapping
//
// Storage-specific errors (pgx.ErrNoRows, SQLSTATE 23505) are mapped to
// domain-friendly errors so callers never see driver internals.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// Create persists a new credential record into the account table.
//
// The unique index on lower(email) is the authority that prevents duplicate
// accounts; a violation surfaces as [ErrDuplicateEmail].
func (repository *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	const query = `
		INSERT INTO account (
			id, email, username, firstname, passwordhash, roles, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := repository.pool.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Username,
		user.Firstname,
		user.PasswordHash,
		sec.RoleStrings(user.Roles),
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("postgres_user_repo_create_failed: %w", err)
	}

	return nil
}

// FindByEmail retrieves a credential record by its unique email address.
//
// # Returns
//
// Returns [*User] if found, or [apperr.NotFound] if no account exists.
func (repository *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	const query = `
		SELECT id, email, username, firstname, passwordhash, roles, createdat, updatedat
		FROM account
		WHERE email = $1`

	return repository.scanOne(repository.pool.QueryRow(ctx, query, email), "find_by_email")
}

// FindByID retrieves a credential record by its primary key.
func (repository *PostgresUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	const query = `
		SELECT id, email, username, firstname, passwordhash, roles, createdat, updatedat
		FROM account
		WHERE id = $1`

	return repository.scanOne(repository.pool.QueryRow(ctx, query, id), "find_by_id")
}

// UpdateRoles replaces the role set of an account.
func (repository *PostgresUserRepository) UpdateRoles(ctx context.Context, userID string, roles []string) error {
	const query = `
		UPDATE account
		SET roles = $2, updatedat = $3
		WHERE id = $1`

	_, err := repository.pool.Exec(ctx, query, userID, roles, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_user_repo_update_roles_failed: %w", err)
	}

	return nil
}

// scanOne maps a single account row, converting stored role strings back
// into the closed [sec.Role] enumeration.
func (repository *PostgresUserRepository) scanOne(row pgx.Row, operation string) (*User, error) {
	user := &User{}
	var roleValues []string

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.Firstname,
		&user.PasswordHash,
		&roleValues,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_repo_%s_failed: %w", operation, err)
	}

	roles, err := sec.ParseRoles(roleValues)
	if err != nil {
		return nil, fmt.Errorf("postgres_user_repo_%s_failed: %w", operation, err)
	}
	user.Roles = roles

	return user, nil
}
