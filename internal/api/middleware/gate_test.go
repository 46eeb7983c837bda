package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/domain"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/gate"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/ports"
)

type stubStore struct {
	ports.SessionStore
	loading  bool
	identity *domain.Identity
}

func (s *stubStore) Loading() bool         { return s.loading }
func (s *stubStore) IsAuthenticated() bool { return s.identity != nil }
func (s *stubStore) Identity() (domain.Identity, bool) {
	if s.identity == nil {
		return domain.Identity{}, false
	}
	return *s.identity, true
}

func storeAs(role domain.Role) *stubStore {
	id := domain.NewIdentity("usr_1", "x@prorecruit.com", "X", role)
	return &stubStore{identity: &id}
}

func runProtected(t *testing.T, store ports.SessionStore, mw echo.MiddlewareFunc) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/protected", nil), rec)
	c.Set(ContextKeySession, store)

	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestProtect_RendersForMatchingRole(t *testing.T) {
	rec, called := runProtected(t, storeAs(domain.RoleClient), Protect(gate.RequireRole(domain.RoleClient), nil, zerolog.Nop()))
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected protected handler to run, code=%d", rec.Code)
	}
}

func TestProtect_RedirectsUnauthenticatedToLogin(t *testing.T) {
	rec, called := runProtected(t, &stubStore{}, Protect(gate.RequireAuthenticated(), nil, zerolog.Nop()))
	if called {
		t.Fatalf("should not reach protected handler")
	}
	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != domain.PathLogin {
		t.Fatalf("expected 302 to /login, got %d %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
}

func TestProtect_RedirectsRecruiterAwayFromAdminPage(t *testing.T) {
	rec, called := runProtected(t, storeAs(domain.RoleRecruiter), Protect(gate.RequireRole(domain.RoleAdmin), nil, zerolog.Nop()))
	if called {
		t.Fatalf("should not reach protected handler")
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != domain.PathCandidates {
		t.Fatalf("expected redirect to %s, got %q", domain.PathCandidates, loc)
	}
}

func TestProtect_FallbackRendered(t *testing.T) {
	fallback := func(c echo.Context) error {
		return c.String(http.StatusOK, "fallback:"+c.Get(ContextKeyGateRedirect).(string))
	}
	rec, called := runProtected(t, &stubStore{}, Protect(gate.RequireAuthenticated(), fallback, zerolog.Nop()))
	if called {
		t.Fatalf("should not reach protected handler")
	}
	if rec.Body.String() != "fallback:/login" {
		t.Fatalf("unexpected fallback body %q", rec.Body.String())
	}
}

func TestProtect_UnauthorizedWithoutNavigation(t *testing.T) {
	g := gate.RequireAnyPermission(domain.PermBillingRead).WithoutNavigation()
	rec, called := runProtected(t, storeAs(domain.RoleCandidate), Protect(g, nil, zerolog.Nop()))
	if called {
		t.Fatalf("should not reach protected handler")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestProtect_Loading(t *testing.T) {
	rec, called := runProtected(t, &stubStore{loading: true}, Protect(gate.RequireAuthenticated(), nil, zerolog.Nop()))
	if called || rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 while loading, got %d (called=%v)", rec.Code, called)
	}
}

func TestProtect_MissingSessionIsAnError(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := Protect(gate.RequireAuthenticated(), nil, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach protected handler")
		return nil
	})(c)
	if err == nil {
		t.Fatalf("expected error when session middleware is missing")
	}
}
