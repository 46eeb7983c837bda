package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/ports"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/service"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/infrastructure/directory"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/infrastructure/memory"
)

func newFactory(t *testing.T, slots *memory.SlotStore) *service.SessionFactory {
	t.Helper()
	dir, err := directory.NewStatic("")
	if err != nil {
		t.Fatalf("directory: %v", err)
	}
	return service.NewSessionFactory(slots, dir, service.NewJWTIssuer("secret"), time.Hour, zerolog.Nop())
}

func TestSession_IssuesDeviceCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Session(newFactory(t, memory.NewSlotStore()), SessionOptions{CookieName: "dev"})
	handler := mw(func(c echo.Context) error {
		store, err := SessionFrom(c)
		if err != nil {
			t.Fatalf("SessionFrom: %v", err)
		}
		if store.Loading() {
			t.Fatalf("store should be restored before the handler runs")
		}
		if store.IsAuthenticated() {
			t.Fatalf("a new device has no session")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "dev" || cookies[0].Value == "" {
		t.Fatalf("expected device cookie, got %v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Fatalf("device cookie must be HttpOnly")
	}
	if c.Get(ContextKeyDeviceID) != cookies[0].Value {
		t.Fatalf("device id in context does not match cookie")
	}
}

func TestSession_ReusesValidCookieAndRestores(t *testing.T) {
	slots := memory.NewSlotStore()
	factory := newFactory(t, slots)
	const deviceID = "2f1c8a52-3b7e-4c69-9d0e-0a3f5b7c9d11"

	// Log in out-of-band for this device.
	if ok, err := factory.For(deviceID).Login(context.Background(), "vendor@prorecruit.com", directory.DefaultPassword); !ok || err != nil {
		t.Fatalf("seed login failed: %v %v", ok, err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "dev", Value: deviceID})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen ports.SessionStore
	mw := Session(factory, SessionOptions{CookieName: "dev"})
	_ = mw(func(c echo.Context) error {
		seen, _ = SessionFrom(c)
		return nil
	})(c)

	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("a valid cookie must not be reissued")
	}
	if seen == nil || !seen.IsAuthenticated() {
		t.Fatalf("expected restored session for the device")
	}
}

func TestSession_ReplacesMalformedCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "dev", Value: "../../etc/passwd"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Session(newFactory(t, memory.NewSlotStore()), SessionOptions{CookieName: "dev"})
	_ = mw(func(c echo.Context) error { return nil })(c)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value == "../../etc/passwd" {
		t.Fatalf("expected malformed cookie to be replaced, got %v", cookies)
	}
}

func TestSessionFrom_MissingMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if _, err := SessionFrom(c); err == nil {
		t.Fatalf("expected error without session middleware")
	}
}
