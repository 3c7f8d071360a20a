// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tranducminh/shopline/internal/platform/policy"
	"github.com/tranducminh/shopline/internal/platform/sec"
)

func gatewayTable() *policy.Table {
	return policy.NewTable(
		policy.RequireRoles("/api/v1/admin", sec.RoleAdmin),
		policy.Authenticated("/api/v1/auth/me"),
		policy.Authenticated("/api/v1/cart"),
		policy.Authenticated("/api/v1/wishlist"),
		policy.Public("/"),
	)
}

/*
TestTable_Match_Specificity verifies that the most specific (longest) pattern
governs a path, regardless of rule declaration order.
*/
func TestTable_Match_Specificity(t *testing.T) {
	table := policy.NewTable(
		policy.Public("/"),
		policy.Authenticated("/api"),
		policy.RequireRoles("/api/admin", sec.RoleAdmin),
	)

	tests := []struct {
		name    string
		path    string
		pattern string
	}{
		{"deepest_prefix_wins", "/api/admin/products", "/api/admin"},
		{"middle_prefix", "/api/orders", "/api"},
		{"catch_all", "/health", "/"},
		{"exact_pattern_match", "/api/admin", "/api/admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.pattern, table.Match(tt.path).Pattern)
		})
	}
}

/*
TestTable_Match_SegmentBoundary ensures prefix matching respects path segment
boundaries: a rule for /api/v1/cart must not capture /api/v1/cartoons.
*/
func TestTable_Match_SegmentBoundary(t *testing.T) {
	table := gatewayTable()

	assert.Equal(t, policy.LevelAuthenticated, table.Match("/api/v1/cart").Level)
	assert.Equal(t, policy.LevelAuthenticated, table.Match("/api/v1/cart/items").Level)
	assert.Equal(t, policy.LevelPublic, table.Match("/api/v1/cartoons").Level)
}

/*
TestTable_Match_TieBreak checks that when two patterns of equal length match,
the more restrictive rule wins.
*/
func TestTable_Match_TieBreak(t *testing.T) {
	table := policy.NewTable(
		policy.Public("/api/v1/x"),
		policy.RequireRoles("/api/v1/x", sec.RoleAdmin),
	)

	rule := table.Match("/api/v1/x/anything")
	assert.Equal(t, policy.LevelAuthenticated, rule.Level)
	assert.NotEmpty(t, rule.Roles)
}

/*
TestTable_Match_UnmatchedIsPublic verifies the implicit public catch-all for
paths no rule covers, even without an explicit "/" rule.
*/
func TestTable_Match_UnmatchedIsPublic(t *testing.T) {
	table := policy.NewTable(
		policy.Authenticated("/api/v1/cart"),
	)

	rule := table.Match("/totally/elsewhere")
	assert.Equal(t, policy.LevelPublic, rule.Level)
}

/*
TestTable_Evaluate runs the decision state machine across the
anonymous/user/admin principal matrix.
*/
func TestTable_Evaluate(t *testing.T) {
	table := gatewayTable()

	anonymous := (*sec.Principal)(nil)
	user := &sec.Principal{UserID: "u1", Email: "user@shop.test", Roles: []sec.Role{sec.RoleUser}}
	admin := &sec.Principal{UserID: "a1", Email: "admin@shop.test", Roles: []sec.Role{sec.RoleUser, sec.RoleAdmin}}

	tests := []struct {
		name      string
		path      string
		principal *sec.Principal
		decision  policy.Decision
	}{
		{"public_anonymous", "/api/v1/products", anonymous, policy.Allow},
		{"public_authenticated", "/api/v1/products", user, policy.Allow},
		{"me_anonymous", "/api/v1/auth/me", anonymous, policy.DenyUnauthenticated},
		{"me_authenticated", "/api/v1/auth/me", user, policy.Allow},
		{"cart_anonymous", "/api/v1/cart/items", anonymous, policy.DenyUnauthenticated},
		{"cart_user", "/api/v1/cart/items", user, policy.Allow},
		{"admin_anonymous_is_401_not_403", "/api/v1/admin/products", anonymous, policy.DenyUnauthenticated},
		{"admin_user_is_403", "/api/v1/admin/products", user, policy.DenyForbidden},
		{"admin_admin", "/api/v1/admin/products", admin, policy.Allow},
		{"login_stays_public", "/api/v1/auth/login", anonymous, policy.Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.decision, table.Evaluate(tt.path, tt.principal))
		})
	}
}

/*
TestTable_Evaluate_RoleIntersection verifies that holding any one of the
required roles is sufficient.
*/
func TestTable_Evaluate_RoleIntersection(t *testing.T) {
	table := policy.NewTable(
		policy.RequireRoles("/ops", sec.RoleAdmin, sec.RoleUser),
	)

	userOnly := &sec.Principal{UserID: "u1", Roles: []sec.Role{sec.RoleUser}}
	assert.Equal(t, policy.Allow, table.Evaluate("/ops/anything", userOnly))
}
