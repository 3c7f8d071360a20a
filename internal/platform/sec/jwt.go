// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token parse outcomes. Expired tokens are syntactically valid but
// temporally rejected; the two cases are deliberately distinct so callers
// can tell them apart even though both collapse to "anonymous" at the
// authorization layer.
var (
	// ErrTokenExpired is returned for a well-formed, correctly signed token
	// whose expiry instant has passed (expiry is inclusive: a token is
	// expired at exactly expiresAt).
	ErrTokenExpired = errors.New("sec: token expired")

	// ErrTokenInvalid is returned for malformed payloads, forged or
	// mismatched signatures, and unexpected signing algorithms.
	ErrTokenInvalid = errors.New("sec: token invalid")
)

// TokenClaims is the validated payload recovered from an access token.
type TokenClaims struct {
	// Subject is the account email the token asserts.
	Subject string

	// IssuedAt is the issuance instant, second precision.
	IssuedAt time.Time

	// ExpiresAt is the expiry instant, second precision.
	ExpiresAt time.Time
}

// TokenService signs and parses compact, self-contained bearer tokens.
//
// # Key Handling
//
// The signing secret is loaded once at process start from configuration and
// held immutably for the process lifetime. Tokens are signed with HS256, a
// symmetric MAC, and verified with a constant-time comparison inside the
// jwt library. The service is safe for unsynchronized concurrent use.
type TokenService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewTokenService creates a TokenService around the process-wide secret.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: signing secret must not be empty")
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// WithClock returns a copy of the service using the given time source. The
// receiver is left untouched, so a service shared by concurrent requests
// never observes a clock swap. Intended for tests that need to sit exactly
// on the expiry boundary.
func (service *TokenService) WithClock(now func() time.Time) *TokenService {
	derived := *service
	derived.now = now
	return &derived
}

// Issue builds, signs, and serializes a token asserting the given subject.
//
// # Claims
//
// The payload carries subject, issuer, issuedAt=now, and expiresAt=now+ttl.
// All timestamps are truncated to whole seconds on the wire. The ttl is
// returned alongside the token so callers can report expiry to clients.
func (service *TokenService) Issue(subject string, ttl time.Duration) (string, time.Duration, error) {
	currentTime := service.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    service.issuer,
		IssuedAt:  jwt.NewNumericDate(currentTime),
		ExpiresAt: jwt.NewNumericDate(currentTime.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", 0, fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, ttl, nil
}

// Parse verifies the signature and temporal validity of a token string.
//
// # Outcomes
//
//   - Valid, unexpired token: the recovered [TokenClaims].
//   - Correctly signed but past expiry: [ErrTokenExpired].
//   - Anything else (tampered payload, bad signature, wrong algorithm,
//     malformed string): [ErrTokenInvalid].
//
// A token is expired iff now >= expiresAt, compared at second precision.
func (service *TokenService) Parse(tokenString string) (*TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
			}
			return service.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(service.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return service.now() }),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}

	result := &TokenClaims{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}
