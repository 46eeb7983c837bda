package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRole is returned when a role name is not part of the closed set.
var ErrUnknownRole = errors.New("unknown role")

// Role is the closed set of back-office roles. The zero value is RoleUnknown.
type Role uint8

const (
	RoleUnknown Role = iota
	RoleAdmin
	RoleRecruiter
	RoleClient
	RoleVendor
	RoleCandidate
)

// Roles lists every known role in declaration order.
var Roles = []Role{RoleAdmin, RoleRecruiter, RoleClient, RoleVendor, RoleCandidate}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleRecruiter:
		return "recruiter"
	case RoleClient:
		return "client"
	case RoleVendor:
		return "vendor"
	case RoleCandidate:
		return "candidate"
	default:
		return "unknown"
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r >= RoleAdmin && r <= RoleCandidate
}

// ParseRole maps a role name to its Role. Matching ignores case and
// surrounding whitespace.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, nil
	case "recruiter":
		return RoleRecruiter, nil
	case "client":
		return RoleClient, nil
	case "vendor":
		return RoleVendor, nil
	case "candidate":
		return RoleCandidate, nil
	}
	return RoleUnknown, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, uint8(r))
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	parsed, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
