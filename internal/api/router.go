package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/asaf-cyber/ProRecruit-sub003/docs"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/api/handler"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/api/middleware"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/domain"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/gate"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/ports"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Sessions ports.SessionFactory
	Session  middleware.SessionOptions
	// Readiness lists the dependencies checked by GET /health/ready.
	Readiness map[string]handler.Pinger
	Log       zerolog.Logger
	// Registry receives the HTTP request metrics. Nil means the default
	// Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	promMW := echoprometheus.MiddlewareConfig{Subsystem: "prorecruit"}
	promHandler := echoprometheus.HandlerConfig{}
	if d.Registry != nil {
		promMW.Registerer = d.Registry
		promHandler.Gatherer = d.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(promMW))

	// --- Infrastructure routes (no session) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – is the slot backend up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(promHandler))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Session-aware routes ---
	// Route middleware runs in order, so the session is restored before any gate.
	sess := middleware.Session(d.Sessions, d.Session)
	guarded := func(g gate.Guard) []echo.MiddlewareFunc {
		return []echo.MiddlewareFunc{sess, middleware.Protect(g, nil, d.Log)}
	}

	sessionHandler := handler.NewSessionHandler()
	e.POST("/login", sessionHandler.Login, sess)
	e.POST("/login/2fa", sessionHandler.VerifyTwoFactor, sess)
	e.POST("/logout", sessionHandler.Logout, sess)
	e.GET("/session", sessionHandler.Current, sess)

	portal := handler.NewPortalHandler()
	e.GET(domain.PathHome, portal.Home, sess)
	e.GET(domain.PathLogin, portal.LoginPage, sess)

	e.GET(domain.PathExecutiveDashboard, portal.ExecutiveDashboard, guarded(gate.RequireRole(domain.RoleAdmin))...)
	e.GET(domain.PathCandidates, portal.Candidates, guarded(gate.RequireAnyPermission(domain.PermCandidatesRead))...)
	e.GET("/jobs", portal.Jobs, guarded(gate.RequireAnyPermission(domain.PermJobsRead, domain.PermJobsWrite))...)
	// Billing answers 403 instead of bouncing the viewer elsewhere.
	e.GET("/billing", portal.Billing, guarded(gate.RequireAnyPermission(domain.PermBillingRead).WithoutNavigation())...)
	// Onboarding shows an access notice in place instead of redirecting.
	onboarding := gate.RequireAnyPermission(domain.PermOnboardingRead, domain.PermOnboardingWrite).WithoutNavigation()
	e.GET("/onboarding", portal.Onboarding, sess, middleware.Protect(onboarding, portal.AccessNotice, d.Log))

	e.GET(domain.PathClientPortal, portal.ClientPortal, guarded(gate.RequireRole(domain.RoleClient))...)
	e.GET(domain.PathVendorPortal, portal.VendorPortal, guarded(gate.RequireRole(domain.RoleVendor))...)
	e.GET(domain.PathCandidatePortal, portal.CandidatePortal, guarded(gate.RequireRole(domain.RoleCandidate))...)

	return e
}
