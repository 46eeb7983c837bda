package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/ports"
)

const (
	ContextKeySession  = "session"
	ContextKeyDeviceID = "device_id"
)

var errNoSession = errors.New("session middleware not installed")

// SessionOptions configures the device cookie that addresses a session slot.
type SessionOptions struct {
	CookieName string
	Secure     bool
	MaxAge     time.Duration
}

// Session resolves the caller's device id from its cookie, issuing a new one
// when absent or malformed, then builds and restores that device's session
// store and places it in the echo context.
func Session(factory ports.SessionFactory, opts SessionOptions) echo.MiddlewareFunc {
	if opts.CookieName == "" {
		opts.CookieName = "prorecruit_device"
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deviceID := ""
			if ck, err := c.Cookie(opts.CookieName); err == nil {
				if id, err := uuid.Parse(ck.Value); err == nil {
					deviceID = id.String()
				}
			}
			if deviceID == "" {
				deviceID = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     opts.CookieName,
					Value:    deviceID,
					Path:     "/",
					MaxAge:   int(opts.MaxAge.Seconds()),
					HttpOnly: true,
					Secure:   opts.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			store := factory.For(deviceID)
			store.RestoreSession(c.Request().Context())

			c.Set(ContextKeyDeviceID, deviceID)
			c.Set(ContextKeySession, store)
			return next(c)
		}
	}
}

// SessionFrom returns the store installed by Session.
func SessionFrom(c echo.Context) (ports.SessionStore, error) {
	store, ok := c.Get(ContextKeySession).(ports.SessionStore)
	if !ok || store == nil {
		return nil, errNoSession
	}
	return store, nil
}
