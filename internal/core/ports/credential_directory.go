package ports

import (
	"context"

	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/domain"
)

// DirectoryEntry is an account known to the credential directory.
type DirectoryEntry struct {
	ID    string
	Email string
	Name  string
	Role  domain.Role
}

// CredentialDirectory stands in for an identity provider.
type CredentialDirectory interface {
	// Lookup returns domain.ErrUserNotFound for unknown emails.
	Lookup(ctx context.Context, email string) (DirectoryEntry, error)
	VerifyPassword(entry DirectoryEntry, password string) bool
}
