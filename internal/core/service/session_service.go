package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/asaf-cyber/ProRecruit-sub003/internal/api/metrics"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/domain"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/ports"
)

const (
	defaultSessionTTL = 24 * time.Hour
	twoFactorCodeLen  = 6
)

// SessionStore holds the identity logged in on one device and mirrors it to
// that device's session slot. Operations are not coordinated with each other:
// overlapping logins race and the last completed write wins.
type SessionStore struct {
	slot   ports.SessionSlot
	dir    ports.CredentialDirectory
	tokens TokenIssuer
	ttl    time.Duration
	now    func() time.Time
	log    zerolog.Logger

	mu       sync.RWMutex
	identity *domain.Identity
	snapshot *domain.SessionSnapshot
	loading  bool
}

// NewSessionStore returns a store in the loading state. Call RestoreSession
// once before consulting it.
func NewSessionStore(
	slot ports.SessionSlot,
	dir ports.CredentialDirectory,
	tokens TokenIssuer,
	ttl time.Duration,
	log zerolog.Logger,
) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{
		slot:    slot,
		dir:     dir,
		tokens:  tokens,
		ttl:     ttl,
		now:     func() time.Time { return time.Now().UTC() },
		log:     log,
		loading: true,
	}
}

// RestoreSession loads the persisted snapshot into memory. A missing or
// unusable snapshot leaves the store logged out; it never fails.
func (s *SessionStore) RestoreSession(ctx context.Context) {
	snap, err := s.readSnapshot(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	switch {
	case errors.Is(err, domain.ErrSnapshotNotFound):
		metrics.SessionRestoresTotal.WithLabelValues("absent").Inc()
		s.identity, s.snapshot = nil, nil
		return
	case err != nil:
		metrics.SessionRestoresTotal.WithLabelValues("corrupt").Inc()
		s.log.Warn().Err(err).Msg("discarding unusable session snapshot")
		s.identity, s.snapshot = nil, nil
		return
	}

	// Permissions always follow the role table, whatever the slot held.
	identity := domain.NewIdentity(snap.Identity.ID, snap.Identity.Email, snap.Identity.Name, snap.Identity.Role)
	snap.Identity = identity

	s.identity = &identity
	s.snapshot = &snap
	metrics.SessionRestoresTotal.WithLabelValues("restored").Inc()
	s.log.Debug().Str("user_id", identity.ID).Str("role", identity.Role.String()).Msg("session restored")
}

func (s *SessionStore) readSnapshot(ctx context.Context) (domain.SessionSnapshot, error) {
	var snap domain.SessionSnapshot

	data, err := s.slot.Load(ctx)
	if err != nil {
		return snap, err
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("%w: %v", domain.ErrMalformedSnapshot, err)
	}
	if err := snap.Validate(); err != nil {
		return snap, fmt.Errorf("%w: %v", domain.ErrMalformedSnapshot, err)
	}
	return snap, nil
}

// Login checks the credentials against the directory. A mismatch returns
// false with a nil error and leaves the store untouched; an error means the
// snapshot could not be issued or persisted.
func (s *SessionStore) Login(ctx context.Context, email, password string) (bool, error) {
	entry, err := s.dir.Lookup(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			s.log.Info().Str("email", email).Msg("login rejected: unknown email")
			return false, nil
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("login: lookup: %w", err)
	}

	if !s.dir.VerifyPassword(entry, password) {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		s.log.Info().Str("email", email).Msg("login rejected: password mismatch")
		return false, nil
	}

	identity := domain.NewIdentity(entry.ID, entry.Email, entry.Name, entry.Role)
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	token, err := s.tokens.Issue(identity, issuedAt, expiresAt)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("login: %w", err)
	}

	snap := domain.SessionSnapshot{
		Identity:    identity,
		IssuedToken: token,
		ExpiresAt:   expiresAt,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("login: encode snapshot: %w", err)
	}
	if err := s.slot.Save(ctx, data); err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("login: save snapshot: %w", err)
	}

	s.mu.Lock()
	s.identity = &identity
	s.snapshot = &snap
	s.loading = false
	s.mu.Unlock()

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().
		Str("user_id", identity.ID).
		Str("role", identity.Role.String()).
		Time("expires_at", expiresAt).
		Msg("login succeeded")

	return true, nil
}

// VerifyTwoFactor accepts any code of exactly six characters. This is a
// placeholder policy, not a second factor.
func (s *SessionStore) VerifyTwoFactor(_ context.Context, code string) bool {
	ok := utf8.RuneCountInString(code) == twoFactorCodeLen
	result := "rejected"
	if ok {
		result = "accepted"
	}
	metrics.TwoFactorChecksTotal.WithLabelValues(result).Inc()
	return ok
}

// Logout forgets the identity and empties the slot. Repeated calls are fine.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.identity = nil
	s.snapshot = nil
	s.mu.Unlock()

	metrics.LogoutsTotal.Inc()
	if err := s.slot.Delete(ctx); err != nil {
		return fmt.Errorf("logout: delete snapshot: %w", err)
	}
	return nil
}

func (s *SessionStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

// Identity returns a copy of the current identity.
func (s *SessionStore) Identity() (domain.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return domain.Identity{}, false
	}
	id := *s.identity
	id.Permissions = domain.NewPermissionSet(s.identity.Permissions.Slice()...)
	return id, true
}

func (s *SessionStore) Snapshot() (domain.SessionSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return domain.SessionSnapshot{}, false
	}
	return *s.snapshot, true
}

// SessionFactory builds per-device session stores sharing one backend.
type SessionFactory struct {
	slots  ports.SlotProvider
	dir    ports.CredentialDirectory
	tokens TokenIssuer
	ttl    time.Duration
	log    zerolog.Logger
}

func NewSessionFactory(
	slots ports.SlotProvider,
	dir ports.CredentialDirectory,
	tokens TokenIssuer,
	ttl time.Duration,
	log zerolog.Logger,
) *SessionFactory {
	return &SessionFactory{slots: slots, dir: dir, tokens: tokens, ttl: ttl, log: log}
}

// For returns a new, not yet restored store bound to deviceID's slot.
func (f *SessionFactory) For(deviceID string) ports.SessionStore {
	return NewSessionStore(
		f.slots.Slot(deviceID),
		f.dir,
		f.tokens,
		f.ttl,
		f.log.With().Str("device_id", deviceID).Logger(),
	)
}

var (
	_ ports.SessionStore   = (*SessionStore)(nil)
	_ ports.SessionFactory = (*SessionFactory)(nil)
)
