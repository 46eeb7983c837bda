// Package directory holds the in-source credential directory used in place of
// a real identity provider. It is demo data, not a production account store.
package directory

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/domain"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/ports"
)

// DefaultPassword is shared by every demo account unless configured otherwise.
const DefaultPassword = "password123"

// Canonical demo accounts, one per role.
var accounts = []ports.DirectoryEntry{
	{ID: "usr_admin_001", Email: "admin@prorecruit.com", Name: "Avery Admin", Role: domain.RoleAdmin},
	{ID: "usr_recruiter_001", Email: "recruiter@prorecruit.com", Name: "Riley Recruiter", Role: domain.RoleRecruiter},
	{ID: "usr_client_001", Email: "client@prorecruit.com", Name: "Casey Client", Role: domain.RoleClient},
	{ID: "usr_vendor_001", Email: "vendor@prorecruit.com", Name: "Val Vendor", Role: domain.RoleVendor},
	{ID: "usr_candidate_001", Email: "candidate@prorecruit.com", Name: "Cam Candidate", Role: domain.RoleCandidate},
}

// Accounts returns a copy of the canonical demo accounts.
func Accounts() []ports.DirectoryEntry {
	out := make([]ports.DirectoryEntry, len(accounts))
	copy(out, accounts)
	return out
}

// Static is a fixed email → account mapping with one shared password.
type Static struct {
	byEmail      map[string]ports.DirectoryEntry
	passwordHash []byte
}

// NewStatic hashes the shared password once. An empty password falls back to
// DefaultPassword.
func NewStatic(sharedPassword string) (*Static, error) {
	if sharedPassword == "" {
		sharedPassword = DefaultPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(sharedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash shared password: %w", err)
	}

	byEmail := make(map[string]ports.DirectoryEntry, len(accounts))
	for _, a := range accounts {
		byEmail[normalizeEmail(a.Email)] = a
	}
	return &Static{byEmail: byEmail, passwordHash: hash}, nil
}

func (d *Static) Lookup(_ context.Context, email string) (ports.DirectoryEntry, error) {
	entry, ok := d.byEmail[normalizeEmail(email)]
	if !ok {
		return ports.DirectoryEntry{}, domain.ErrUserNotFound
	}
	return entry, nil
}

func (d *Static) VerifyPassword(_ ports.DirectoryEntry, password string) bool {
	return bcrypt.CompareHashAndPassword(d.passwordHash, []byte(password)) == nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ ports.CredentialDirectory = (*Static)(nil)
