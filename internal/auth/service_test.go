// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package auth_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranducminh/shopline/internal/auth"
	"github.com/tranducminh/shopline/internal/platform/apperr"
	"github.com/tranducminh/shopline/internal/platform/sec"
)

// memoryUserRepository is the in-memory UserRepository fake. A mutex plus a
// single uniqueness check inside the lock mimics the database's atomic
// unique-index behavior, so the concurrent signup race is testable.
type memoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*auth.User // keyed by email
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]*auth.User)}
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (r *memoryUserRepository) Create(_ context.Context, user *auth.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Email]; exists {
		return auth.ErrDuplicateEmail
	}
	copied := *user
	r.users[user.Email] = &copied
	return nil
}

func (r *memoryUserRepository) UpdateRoles(_ context.Context, userID string, roles []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == userID {
			parsed, err := sec.ParseRoles(roles)
			if err != nil {
				return err
			}
			user.Roles = parsed
			return nil
		}
	}
	return apperr.NotFound("User")
}

func newTestService(t *testing.T) (*auth.Service, *memoryUserRepository) {
	t.Helper()

	tokenService, err := sec.NewTokenService("service-test-secret", "shopline.dev")
	require.NoError(t, err)

	repo := newMemoryUserRepository()
	return auth.NewService(repo, tokenService, 15*time.Minute), repo
}

func signupFixture(t *testing.T, service *auth.Service) *auth.User {
	t.Helper()

	user, err := service.Signup(context.Background(), auth.SignupInput{
		Username:  "minh",
		Firstname: "Minh",
		Email:     "minh@shop.test",
		Password:  "s3cret-pw",
	})
	require.NoError(t, err)
	return user
}

/*
TestService_Signup covers the happy path: hashed password, default USER
role, and a usable login afterwards.
*/
func TestService_Signup(t *testing.T) {
	service, _ := newTestService(t)

	user := signupFixture(t, service)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "minh@shop.test", user.Email)
	assert.Equal(t, []sec.Role{sec.RoleUser}, user.Roles)

	// Plaintext must never be stored.
	assert.NotEqual(t, "s3cret-pw", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("s3cret-pw", user.PasswordHash))
}

/*
TestService_Signup_DuplicateEmail expects the EMAIL_ALREADY_EXISTS error
with HTTP 400 and the offending email in the message.
*/
func TestService_Signup_DuplicateEmail(t *testing.T) {
	service, _ := newTestService(t)
	signupFixture(t, service)

	_, err := service.Signup(context.Background(), auth.SignupInput{
		Username: "other",
		Email:    "minh@shop.test",
		Password: "another-pw",
	})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", appError.Code)
	assert.Equal(t, 400, appError.HTTPStatus)
}

/*
TestService_Signup_ConcurrentRace runs many simultaneous signups for one
email; exactly one must win and every loser must get the duplicate answer.
*/
func TestService_Signup_ConcurrentRace(t *testing.T) {
	service, repo := newTestService(t)

	const attempts = 16
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			_, errs[slot] = service.Signup(context.Background(), auth.SignupInput{
				Username: "racer",
				Email:    "race@shop.test",
				Password: "race-pw",
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "EMAIL_ALREADY_EXISTS", appError.Code)
	}
	assert.Equal(t, 1, winners)

	_, err := repo.FindByEmail(context.Background(), "race@shop.test")
	assert.NoError(t, err)
}

/*
TestService_Login exchanges valid credentials for a parsable token whose
subject is the account email.
*/
func TestService_Login(t *testing.T) {
	service, _ := newTestService(t)
	signupFixture(t, service)

	result, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "minh@shop.test",
		Password: "s3cret-pw",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, 15*time.Minute, result.ExpiresIn)
	assert.Equal(t, "minh@shop.test", result.User.Email)
}

/*
TestService_Login_Undifferentiated verifies that an unknown email and a
wrong password produce byte-identical errors, so responses cannot be used
to enumerate accounts.
*/
func TestService_Login_Undifferentiated(t *testing.T) {
	service, _ := newTestService(t)
	signupFixture(t, service)

	_, unknownErr := service.Login(context.Background(), auth.LoginInput{
		Email:    "nobody@shop.test",
		Password: "s3cret-pw",
	})
	_, wrongPassErr := service.Login(context.Background(), auth.LoginInput{
		Email:    "minh@shop.test",
		Password: "wrong-pw",
	})

	unknown := apperr.As(unknownErr)
	wrongPass := apperr.As(wrongPassErr)
	require.NotNil(t, unknown)
	require.NotNil(t, wrongPass)

	assert.Equal(t, 401, unknown.HTTPStatus)
	assert.Equal(t, unknown.Code, wrongPass.Code)
	assert.Equal(t, unknown.Message, wrongPass.Message)
	assert.Equal(t, unknown.MessageKey, wrongPass.MessageKey)
}

/*
TestService_LoadPrincipal verifies the fresh-roles contract: a role granted
after token issuance is visible on the very next principal load.
*/
func TestService_LoadPrincipal(t *testing.T) {
	service, repo := newTestService(t)
	user := signupFixture(t, service)

	principal, err := service.LoadPrincipal(context.Background(), "minh@shop.test")
	require.NoError(t, err)
	assert.Equal(t, []sec.Role{sec.RoleUser}, principal.Roles)

	// Promote the account; no new token is issued.
	require.NoError(t, repo.UpdateRoles(context.Background(), user.ID, []string{"USER", "ADMIN"}))

	principal, err = service.LoadPrincipal(context.Background(), "minh@shop.test")
	require.NoError(t, err)
	assert.True(t, principal.HasAnyRole(sec.RoleAdmin))
}

/*
TestService_LoadPrincipal_UnknownSubject fails for deleted accounts, which
the identity resolver then collapses into anonymity.
*/
func TestService_LoadPrincipal_UnknownSubject(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.LoadPrincipal(context.Background(), "ghost@shop.test")
	assert.Error(t, err)
}

// outageUserRepository simulates a storage backend that is down: every
// lookup fails with an infrastructure error, never a not-found.
type outageUserRepository struct {
	memoryUserRepository
}

func (r *outageUserRepository) FindByEmail(context.Context, string) (*auth.User, error) {
	return nil, errors.New("pg: connection refused")
}

/*
TestService_Login_StorageOutageIsNotA401 checks that a repository failure
during login surfaces as a server error instead of hiding behind the
undifferentiated credential failure. Only a missing account earns the 401.
*/
func TestService_Login_StorageOutageIsNotA401(t *testing.T) {
	tokenService, err := sec.NewTokenService("service-test-secret", "shopline.dev")
	require.NoError(t, err)
	service := auth.NewService(&outageUserRepository{}, tokenService, 15*time.Minute)

	_, err = service.Login(context.Background(), auth.LoginInput{
		Email:    "admin@admin.com",
		Password: "123456",
	})

	require.Error(t, err)
	assert.Nil(t, apperr.As(err), "infrastructure failure must not map to an AppError 401")
	assert.ErrorContains(t, err, "auth_service_login_lookup_failed")
}
