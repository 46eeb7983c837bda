package ports

import (
	"context"

	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/domain"
)

// SessionViewer is the read-only view of a session store that access checks
// depend on.
type SessionViewer interface {
	Loading() bool
	IsAuthenticated() bool
	Identity() (domain.Identity, bool)
}

// SessionStore is the source of truth for who is logged in on one device.
type SessionStore interface {
	SessionViewer
	RestoreSession(ctx context.Context)
	Login(ctx context.Context, email, password string) (bool, error)
	VerifyTwoFactor(ctx context.Context, code string) bool
	Logout(ctx context.Context) error
	// Snapshot returns the last snapshot written or restored, if any.
	Snapshot() (domain.SessionSnapshot, bool)
}

// Navigator moves the viewer to another page by path.
type Navigator interface {
	Navigate(path string) error
}

// SessionFactory builds the session store for a device.
type SessionFactory interface {
	For(deviceID string) SessionStore
}
