// Package gate decides whether a viewer may see a protected page.
//
// The gate is a UX control only. It trusts the session store it is given and
// enforces nothing at the data layer; anything sensitive must be re-checked
// by whatever serves the data.
package gate

import (
	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/domain"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/ports"
)

// Outcome is what the caller should do with the protected page.
type Outcome uint8

const (
	OutcomeRender Outcome = iota
	OutcomeLoading
	OutcomeRedirect
	OutcomeFallback
	OutcomeUnauthorized
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRender:
		return "render"
	case OutcomeLoading:
		return "loading"
	case OutcomeRedirect:
		return "redirect"
	case OutcomeFallback:
		return "fallback"
	case OutcomeUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// Reason explains a non-render outcome.
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonUnauthenticated   Reason = "unauthenticated"
	ReasonRoleMismatch      Reason = "role_mismatch"
	ReasonMissingPermission Reason = "missing_permission"
)

// Requirement describes who may see a page. A zero Role means any role.
type Requirement struct {
	Role        domain.Role
	Permissions []domain.Permission
}

// Options controls how denials are surfaced.
type Options struct {
	// Navigate sends denied viewers to their landing page.
	Navigate bool
	// HasFallback means the caller can render a substitute page.
	HasFallback bool
}

// DefaultOptions redirects on denial and has no fallback.
func DefaultOptions() Options {
	return Options{Navigate: true}
}

// Decision is the result of evaluating a requirement. Path is the
// destination for redirects and the intended destination for fallbacks.
type Decision struct {
	Outcome Outcome
	Reason  Reason
	Path    string
}

// Evaluate applies req to the viewer's current session state.
//
// Multiple required permissions are combined with OR: holding any one of them
// is enough.
func Evaluate(v ports.SessionViewer, req Requirement, opts Options) Decision {
	if v.Loading() {
		return Decision{Outcome: OutcomeLoading}
	}

	identity, ok := v.Identity()
	if !ok {
		if opts.HasFallback {
			return Decision{Outcome: OutcomeFallback, Reason: ReasonUnauthenticated, Path: domain.PathLogin}
		}
		return Decision{Outcome: OutcomeRedirect, Reason: ReasonUnauthenticated, Path: domain.PathLogin}
	}

	if req.Role != domain.RoleUnknown && identity.Role != req.Role {
		return deny(identity.Role, ReasonRoleMismatch, opts)
	}

	if len(req.Permissions) > 0 && !identity.Permissions.GrantsAny(req.Permissions...) {
		return deny(identity.Role, ReasonMissingPermission, opts)
	}

	return Decision{Outcome: OutcomeRender}
}

func deny(role domain.Role, reason Reason, opts Options) Decision {
	path := domain.LandingPath(role)
	switch {
	case opts.Navigate:
		return Decision{Outcome: OutcomeRedirect, Reason: reason, Path: path}
	case opts.HasFallback:
		return Decision{Outcome: OutcomeFallback, Reason: reason, Path: path}
	default:
		return Decision{Outcome: OutcomeUnauthorized, Reason: reason, Path: path}
	}
}

// Guard binds a requirement to its options so it can be applied per request.
type Guard struct {
	Requirement Requirement
	Options     Options
}

// RequireRole guards a page for a single role.
func RequireRole(r domain.Role) Guard {
	return Guard{Requirement: Requirement{Role: r}, Options: DefaultOptions()}
}

// RequireAnyPermission guards a page for holders of any of perms.
func RequireAnyPermission(perms ...domain.Permission) Guard {
	return Guard{Requirement: Requirement{Permissions: perms}, Options: DefaultOptions()}
}

// RequireAuthenticated guards a page for any logged-in viewer.
func RequireAuthenticated() Guard {
	return Guard{Options: DefaultOptions()}
}

// WithFallback returns a copy of g that renders a fallback instead of blocking.
func (g Guard) WithFallback() Guard {
	g.Options.HasFallback = true
	return g
}

// WithoutNavigation returns a copy of g that never redirects on role or
// permission denial.
func (g Guard) WithoutNavigation() Guard {
	g.Options.Navigate = false
	return g
}

// Apply evaluates the guard and navigates when the decision is a redirect.
// A navigation error is returned alongside the decision.
func (g Guard) Apply(v ports.SessionViewer, nav ports.Navigator) (Decision, error) {
	d := Evaluate(v, g.Requirement, g.Options)
	if d.Outcome == OutcomeRedirect && nav != nil {
		return d, nav.Navigate(d.Path)
	}
	return d, nil
}
