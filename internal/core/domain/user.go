package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrSnapshotNotFound   = errors.New("session snapshot not found")
	ErrMalformedSnapshot  = errors.New("malformed session snapshot")
)

// Identity is the authenticated viewer held in memory by a session store.
type Identity struct {
	ID          string        `json:"id"`
	Email       string        `json:"email"`
	Name        string        `json:"name"`
	Role        Role          `json:"role"`
	Permissions PermissionSet `json:"permissions"`
}

// NewIdentity builds an Identity whose permissions come from the role table.
func NewIdentity(id, email, name string, role Role) Identity {
	return Identity{
		ID:          id,
		Email:       email,
		Name:        name,
		Role:        role,
		Permissions: PermissionsFor(role),
	}
}

// SessionSnapshot is the persisted, restorable copy of an Identity.
// ExpiresAt is advisory; restoring never compares it to the clock.
type SessionSnapshot struct {
	Identity    Identity  `json:"identity"`
	IssuedToken string    `json:"issuedToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Validate checks the structural fields a restored snapshot must carry.
func (s SessionSnapshot) Validate() error {
	switch {
	case s.Identity.ID == "":
		return errors.New("identity id is empty")
	case s.Identity.Email == "":
		return errors.New("identity email is empty")
	case !s.Identity.Role.Valid():
		return ErrUnknownRole
	}
	return nil
}
