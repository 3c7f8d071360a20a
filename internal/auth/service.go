// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

// Package auth implements account enrollment and the credential exchange
// that turns an email/password pair into a signed bearer token.
//
// # Architecture
//
// The service orchestrates domain entities and talks to storage through the
// [UserRepository] interface. It is technology-agnostic and does not know
// about HTTP or SQL.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tranducminh/shopline/internal/platform/apperr"
	"github.com/tranducminh/shopline/internal/platform/sec"
	"github.com/tranducminh/shopline/pkg/uuidv7"
)

// TokenIssuer defines the contract for minting signed access tokens.
type TokenIssuer interface {
	// Issue creates a signed token asserting the given subject.
	//
	// # Returns
	//   - The compact token string and its time to live, or an error if
	//     signing fails.
	Issue(subject string, timeToLive time.Duration) (string, time.Duration, error)
}

// Service implements the authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, signup,
// or login logic must be reviewed by the security team.
type Service struct {
	userRepository UserRepository
	tokenIssuer    TokenIssuer
	tokenTTL       time.Duration
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, issuer TokenIssuer, tokenTTL time.Duration) *Service {
	return &Service{
		userRepository: userRepo,
		tokenIssuer:    issuer,
		tokenTTL:       tokenTTL,
	}
}

// SignupInput holds the data required to enroll a new account.
type SignupInput struct {
	Username  string
	Firstname string
	Email     string
	Password  string
}

// Signup validates, hashes, and persists a brand new account.
//
// # Parameters
//   - context: Context for the database operation.
//   - input: The user-provided registration details.
//
// # Returns
//   - A pointer to the newly created [*User].
//   - Returns [apperr.EmailExists] if the email is already registered.
//
// # Business Rules
//   - Emails must be unique.
//   - Default role is always 'USER'.
//
// # Concurrency
//
// The early existence check gives a fast answer in the common case, but the
// database unique index is the authority: when two signups race on the same
// email, exactly one insert wins and the loser gets the same EmailExists
// answer as if the account had been there all along.
func (service *Service) Signup(context context.Context, input SignupInput) (*User, error) {
	// ── 1. Uniqueness Check ───────────────────────────────────────────────

	// Optimistic email check. The real guarantee comes from the unique
	// index enforced at insert time below.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.EmailExists(input.Email)
	}

	// ── 2. Security ───────────────────────────────────────────────────────

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// ── 3. Entity Construction ────────────────────────────────────────────

	user := &User{
		ID:           uuidv7.New(), // Time-sortable ID to prevent PG index fragmentation.
		Email:        input.Email,
		Username:     input.Username,
		Firstname:    input.Firstname,
		PasswordHash: hashedPassword,
		Roles:        []sec.Role{sec.RoleUser}, // Rule: Default role is always USER
	}

	// ── 4. Persistence ────────────────────────────────────────────────────

	if err := service.userRepository.Create(context, user); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			// Lost a concurrent signup race after the check above passed.
			return nil, apperr.EmailExists(input.Email)
		}
		return nil, fmt.Errorf("auth_service_signup_failed: %w", err)
	}

	return user, nil
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult represents a successfully completed credential exchange.
type LoginResult struct {
	Token     string
	ExpiresIn time.Duration
	User      *User
}

// Login validates user credentials and issues a signed access token.
//
// # Parameters
//   - context: Context for the database operation.
//   - input: Contains Email and plain-text Password.
//
// # Returns
//   - A pointer to [LoginResult] containing the signed token.
//   - Returns [apperr.AuthFailed] if credentials do not match.
//
// # Flow
//  1. Lookup account by email.
//  2. Verify password hash using Bcrypt.
//  3. Sign an access token with the account email as its subject.
//
// Unknown email and wrong password produce the identical error so the
// response never reveals whether an account exists.
func (service *Service) Login(context context.Context, input LoginInput) (*LoginResult, error) {
	// ── 1. Fetch Account ──────────────────────────────────────────────────

	// Only a missing account collapses into the credential failure; a
	// storage outage must surface as a server error, not a 401.
	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.AuthFailed()
		}
		return nil, fmt.Errorf("auth_service_login_lookup_failed: %w", err)
	}

	// ── 2. Security Verification ──────────────────────────────────────────

	// Bcrypt comparison is constant-time against the stored hash.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.AuthFailed()
	}

	// ── 3. Token Issuance ─────────────────────────────────────────────────

	token, timeToLive, err := service.tokenIssuer.Issue(user.Email, service.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_issuance_failed: %w", err)
	}

	return &LoginResult{
		Token:     token,
		ExpiresIn: timeToLive,
		User:      user,
	}, nil
}

// LoadPrincipal materializes the current principal for a verified token
// subject. Roles come from storage, not from the token, so grants and
// revocations apply from the very next request.
//
// It satisfies the identity resolution middleware's PrincipalLoader contract.
func (service *Service) LoadPrincipal(context context.Context, subject string) (*sec.Principal, error) {
	user, err := service.userRepository.FindByEmail(context, subject)
	if err != nil {
		return nil, fmt.Errorf("auth_service_principal_load_failed: %w", err)
	}

	return user.Principal(), nil
}
