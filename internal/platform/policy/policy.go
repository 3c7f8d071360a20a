// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

/*
Package policy decides whether a request may reach its handler.

It evaluates a static, process-wide table of route rules against the
principal resolved for the current request. The table is built once at
startup and is read-only afterwards, so unsynchronized concurrent reads are
safe.

Model:

  - PUBLIC routes always pass, principal or not.
  - AUTHENTICATED routes require a principal.
  - AUTHENTICATED + roles additionally require the principal's role set to
    intersect the rule's role set. The authentication check always runs
    before the role check, so a missing principal is 401, never 403.

Protection is declared, not assumed: any path no rule matches falls back to
PUBLIC. Callers must enumerate every prefix that needs protection.
*/
package policy

import (
	"sort"
	"strings"

	"github.com/tranducminh/shopline/internal/platform/sec"
)

// Level is the required authentication level of a route rule.
type Level int

const (
	// LevelPublic requires nothing.
	LevelPublic Level = iota

	// LevelAuthenticated requires a resolved principal.
	LevelAuthenticated
)

// Decision is the outcome of evaluating the table for one request.
type Decision int

const (
	// Allow passes the request through to its handler.
	Allow Decision = iota

	// DenyUnauthenticated rejects with HTTP 401: no valid identity.
	DenyUnauthenticated

	// DenyForbidden rejects with HTTP 403: valid identity, wrong role.
	DenyForbidden
)

// Rule binds a path prefix pattern to a requirement.
type Rule struct {
	// Pattern is a path prefix. "/" is the catch-all.
	Pattern string

	// Level is the required authentication level.
	Level Level

	// Roles, when non-empty, is the set of roles of which the principal
	// must hold at least one. Only meaningful with LevelAuthenticated.
	Roles []sec.Role
}

// Public declares a rule that always allows.
func Public(pattern string) Rule {
	return Rule{Pattern: pattern, Level: LevelPublic}
}

// Authenticated declares a rule requiring any valid principal.
func Authenticated(pattern string) Rule {
	return Rule{Pattern: pattern, Level: LevelAuthenticated}
}

// RequireRoles declares a rule requiring a principal holding at least one
// of the given roles.
func RequireRoles(pattern string, roles ...sec.Role) Rule {
	return Rule{Pattern: pattern, Level: LevelAuthenticated, Roles: roles}
}

// Table is the immutable route-protection table.
type Table struct {
	rules []Rule
}

// NewTable builds a Table from the given rules.
//
// Rules are ordered by descending pattern specificity (longer prefix first);
// among equally specific patterns the more restrictive rule comes first, so
// a lookup can simply take the first match.
func NewTable(rules ...Rule) *Table {
	ordered := make([]Rule, len(rules))
	copy(ordered, rules)

	sort.SliceStable(ordered, func(i, j int) bool {
		if len(ordered[i].Pattern) != len(ordered[j].Pattern) {
			return len(ordered[i].Pattern) > len(ordered[j].Pattern)
		}
		return strictness(ordered[i]) > strictness(ordered[j])
	})

	return &Table{rules: ordered}
}

// strictness ranks a rule's requirement for tie-breaking: protection wins
// over convenience when two patterns match with equal specificity.
func strictness(rule Rule) int {
	switch {
	case rule.Level == LevelAuthenticated && len(rule.Roles) > 0:
		return 2
	case rule.Level == LevelAuthenticated:
		return 1
	default:
		return 0
	}
}

// Match returns the rule governing the given request path.
//
// Unmatched paths yield the implicit PUBLIC catch-all.
func (t *Table) Match(path string) Rule {
	for _, rule := range t.rules {
		if matchesPrefix(path, rule.Pattern) {
			return rule
		}
	}
	return Public("/")
}

// matchesPrefix reports whether path falls under the pattern prefix on a
// path-segment boundary, so "/api/v1/cart" governs "/api/v1/cart/items"
// but not "/api/v1/cartoons".
func matchesPrefix(path, pattern string) bool {
	if pattern == "/" {
		return true
	}

	pattern = strings.TrimSuffix(pattern, "/")
	if !strings.HasPrefix(path, pattern) {
		return false
	}

	return len(path) == len(pattern) || path[len(pattern)] == '/'
}

// Evaluate runs the per-request decision state machine.
//
// The principal may be nil (anonymous). The presence check strictly precedes
// the role check.
func (t *Table) Evaluate(path string, principal *sec.Principal) Decision {
	rule := t.Match(path)

	switch rule.Level {
	case LevelPublic:
		return Allow

	case LevelAuthenticated:
		if principal == nil {
			return DenyUnauthenticated
		}
		if len(rule.Roles) > 0 && !principal.HasAnyRole(rule.Roles...) {
			return DenyForbidden
		}
		return Allow

	default:
		// Unreachable with the closed Level set; deny rather than leak.
		return DenyUnauthenticated
	}
}
