// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package sec

import "fmt"

// # User Roles

// Role represents an authorization grant held by an account.
//
// The set of roles is closed and flat: there is no hierarchy, and no role
// implies another. Every protected route declares the exact roles it accepts.
type Role string

const (
	// RoleUser is the default role assigned at signup.
	RoleUser Role = "USER"

	// RoleAdmin grants access to catalog administration routes.
	RoleAdmin Role = "ADMIN"
)

// ParseRole converts a stored string into a [Role].
//
// The switch is exhaustive over the closed enumeration; anything else is a
// data error, not a new role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("sec: unknown role %q", s)
	}
}

// ParseRoles converts a slice of stored strings into roles, rejecting the
// whole set on the first unknown value.
func ParseRoles(values []string) ([]Role, error) {
	roles := make([]Role, 0, len(values))
	for _, v := range values {
		role, err := ParseRole(v)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

// RoleStrings converts roles back to their stored string form.
func RoleStrings(roles []Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}
