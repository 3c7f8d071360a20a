// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

// Package seed bootstraps the initial administrator account.
//
// A fresh deployment has no users, and the admin surface requires one, so
// without a seed there would be no way in. The seed runs at startup, after
// migrations, and is idempotent: once the account exists it does nothing.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tranducminh/shopline/internal/auth"
	"github.com/tranducminh/shopline/internal/platform/sec"
	"github.com/tranducminh/shopline/pkg/uuidv7"
)

// Default bootstrap credentials. Deployments are expected to log in and
// change the password immediately; the account is for first contact only.
const (
	AdminEmail    = "admin@admin.com"
	adminPassword = "123456"
	AdminUsername = "admin"
)

// EnsureAdmin creates the bootstrap administrator when absent.
//
// The admin carries both roles: ADMIN alone would lock it out of the
// customer-facing authenticated surface.
func EnsureAdmin(ctx context.Context, users auth.UserRepository, logger *slog.Logger) error {
	_, err := users.FindByEmail(ctx, AdminEmail)
	if err == nil {
		logger.Debug("seed_admin_present", slog.String("email", AdminEmail))
		return nil
	}

	passwordHash, err := sec.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("seed_admin_hash_failed: %w", err)
	}

	admin := &auth.User{
		ID:           uuidv7.New(),
		Email:        AdminEmail,
		Username:     AdminUsername,
		Firstname:    "Admin",
		PasswordHash: passwordHash,
		Roles:        []sec.Role{sec.RoleUser, sec.RoleAdmin},
	}

	if err := users.Create(ctx, admin); err != nil {
		// Another replica seeded concurrently; the account exists, which is
		// all this function promises.
		if errors.Is(err, auth.ErrDuplicateEmail) {
			return nil
		}
		return fmt.Errorf("seed_admin_create_failed: %w", err)
	}

	logger.Info("seed_admin_created", slog.String("email", AdminEmail))
	return nil
}
