package domain

import (
	"encoding/json"
	"sort"
)

// Permission is a capability string such as "candidates.read".
type Permission string

// PermissionWildcard grants every capability. Only admin holds it.
const PermissionWildcard Permission = "*"

const (
	PermCandidatesRead  Permission = "candidates.read"
	PermCandidatesWrite Permission = "candidates.write"
	PermJobsRead        Permission = "jobs.read"
	PermJobsWrite       Permission = "jobs.write"
	PermClientsRead     Permission = "clients.read"
	PermOnboardingRead  Permission = "onboarding.read"
	PermOnboardingWrite Permission = "onboarding.write"
	PermBillingRead     Permission = "billing.read"
	PermProfileRead     Permission = "profile.read"
	PermProfileWrite    Permission = "profile.write"
)

// rolePermissions is the static role → capability table. Identities never
// carry permissions that did not come from here.
var rolePermissions = map[Role][]Permission{
	RoleAdmin: {PermissionWildcard},
	RoleRecruiter: {
		PermCandidatesRead, PermCandidatesWrite,
		PermJobsRead, PermJobsWrite,
		PermClientsRead,
		PermOnboardingRead, PermOnboardingWrite,
	},
	RoleClient:    {PermCandidatesRead, PermJobsRead, PermJobsWrite, PermBillingRead},
	RoleVendor:    {PermCandidatesRead, PermCandidatesWrite, PermJobsRead, PermBillingRead},
	RoleCandidate: {PermProfileRead, PermProfileWrite, PermJobsRead, PermOnboardingRead},
}

// PermissionsFor returns a fresh copy of the permission set for role.
// Unknown roles get an empty set.
func PermissionsFor(r Role) PermissionSet {
	return NewPermissionSet(rolePermissions[r]...)
}

// PermissionSet is an unordered set of permissions.
type PermissionSet map[Permission]struct{}

func NewPermissionSet(perms ...Permission) PermissionSet {
	set := make(PermissionSet, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

// Has reports literal membership, without wildcard expansion.
func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// IsWildcard reports whether the set grants every capability.
func (s PermissionSet) IsWildcard() bool {
	return s.Has(PermissionWildcard)
}

// Grants reports whether p is allowed by the set.
func (s PermissionSet) Grants(p Permission) bool {
	return s.IsWildcard() || s.Has(p)
}

// GrantsAny reports whether at least one of perms is allowed. Supplying more
// permissions makes the check easier to pass, not harder.
func (s PermissionSet) GrantsAny(perms ...Permission) bool {
	if s.IsWildcard() {
		return true
	}
	for _, p := range perms {
		if s.Has(p) {
			return true
		}
	}
	return false
}

// Equal reports whether both sets hold exactly the same permissions.
func (s PermissionSet) Equal(other PermissionSet) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if !other.Has(p) {
			return false
		}
	}
	return true
}

// Slice returns the permissions sorted lexically.
func (s PermissionSet) Slice() []Permission {
	out := make([]Permission, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s PermissionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

func (s *PermissionSet) UnmarshalJSON(b []byte) error {
	var perms []Permission
	if err := json.Unmarshal(b, &perms); err != nil {
		return err
	}
	*s = NewPermissionSet(perms...)
	return nil
}
