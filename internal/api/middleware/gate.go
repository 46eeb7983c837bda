package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/asaf-cyber/ProRecruit-sub003/internal/api/metrics"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/gate"
)

// ContextKeyGateRedirect holds the destination a fallback page should point at.
const ContextKeyGateRedirect = "gate_redirect"

// echoNavigator redirects the current request.
type echoNavigator struct {
	c echo.Context
}

func (n echoNavigator) Navigate(path string) error {
	return n.c.Redirect(http.StatusFound, path)
}

// Protect guards a route with g. A non-nil fallback is rendered instead of
// blocking, with the intended destination stored under ContextKeyGateRedirect.
func Protect(g gate.Guard, fallback echo.HandlerFunc, log zerolog.Logger) echo.MiddlewareFunc {
	if fallback != nil {
		g = g.WithFallback()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			store, err := SessionFrom(c)
			if err != nil {
				return err
			}

			d, err := g.Apply(store, echoNavigator{c: c})
			metrics.GateDecisionsTotal.WithLabelValues(d.Outcome.String(), string(d.Reason)).Inc()
			if err != nil {
				return err
			}

			if d.Outcome != gate.OutcomeRender {
				ev := log.Info().
					Str("path", c.Request().URL.Path).
					Str("outcome", d.Outcome.String()).
					Str("reason", string(d.Reason)).
					Str("destination", d.Path)
				if id, ok := store.Identity(); ok {
					ev = ev.Str("user_id", id.ID).Str("role", id.Role.String())
				}
				ev.Msg("access gate denied page")
			}

			switch d.Outcome {
			case gate.OutcomeRender:
				return next(c)
			case gate.OutcomeRedirect:
				return nil
			case gate.OutcomeFallback:
				c.Set(ContextKeyGateRedirect, d.Path)
				return fallback(c)
			case gate.OutcomeLoading:
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "loading"})
			default:
				return c.JSON(http.StatusForbidden, map[string]string{
					"error":    "you don't have permission to access this page",
					"redirect": d.Path,
				})
			}
		}
	}
}
