package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/asaf-cyber/ProRecruit-sub003/internal/api/middleware"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/domain"
)

// PortalHandler renders the back-office pages. Access checks happen in the
// gate middleware in front of each route; these handlers only render.
type PortalHandler struct{}

func NewPortalHandler() *PortalHandler {
	return &PortalHandler{}
}

func (h *PortalHandler) render(c echo.Context, page, title string, data any) error {
	resp := pageResponse{Page: page, Title: title, Data: data}
	if store, err := middleware.SessionFrom(c); err == nil {
		if id, ok := store.Identity(); ok {
			resp.Viewer = &viewerResponse{ID: id.ID, Name: id.Name, Role: id.Role.String()}
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// Home is public.
//
// @Summary  Home page
// @Tags     portal
// @Produce  json
// @Success  200  {object}  pageResponse
// @Router   / [get]
func (h *PortalHandler) Home(c echo.Context) error {
	return h.render(c, "home", "ProRecruit", map[string]string{"login": domain.PathLogin})
}

// LoginPage describes the login form. Signed-in viewers are sent to their
// landing page.
//
// @Summary  Login page
// @Tags     portal
// @Produce  json
// @Success  200  {object}  pageResponse
// @Success  302
// @Router   /login [get]
func (h *PortalHandler) LoginPage(c echo.Context) error {
	if store, err := middleware.SessionFrom(c); err == nil {
		if id, ok := store.Identity(); ok {
			return c.Redirect(http.StatusFound, domain.LandingPath(id.Role))
		}
	}
	return h.render(c, "login", "Sign in", map[string]any{
		"fields":     []string{"email", "password"},
		"two_factor": "/login/2fa",
	})
}

// ExecutiveDashboard is admin only.
//
// @Summary  Executive dashboard
// @Tags     portal
// @Produce  json
// @Success  200  {object}  pageResponse
// @Success  302
// @Router   /dashboard/executive [get]
func (h *PortalHandler) ExecutiveDashboard(c echo.Context) error {
	return h.render(c, "executive_dashboard", "Executive dashboard", mockKPIs)
}

// Candidates lists candidates.
//
// @Summary  Candidates list
// @Tags     portal
// @Produce  json
// @Success  200  {object}  pageResponse
// @Success  302
// @Router   /candidates [get]
func (h *PortalHandler) Candidates(c echo.Context) error {
	stage := c.QueryParam("stage")
	items := make([]candidateItem, 0, len(mockCandidates))
	for _, cand := range mockCandidates {
		if stage == "" || cand.Stage == stage {
			items = append(items, cand)
		}
	}
	return h.render(c, "candidates", "Candidates", items)
}

// Jobs lists open requisitions.
//
// @Summary  Jobs list
// @Tags     portal
// @Produce  json
// @Success  200  {object}  pageResponse
// @Success  302
// @Router   /jobs [get]
func (h *PortalHandler) Jobs(c echo.Context) error {
	return h.render(c, "jobs", "Jobs", mockJobs)
}

// Billing lists invoices.
//
// @Summary  Billing
// @Tags     portal
// @Produce  json
// @Success  200  {object}  pageResponse
// @Failure  403  {object}  errorResponse
// @Router   /billing [get]
func (h *PortalHandler) Billing(c echo.Context) error {
	return h.render(c, "billing", "Billing", mockInvoices)
}

// Onboarding shows the onboarding checklist.
//
// @Summary  Onboarding checklist
// @Tags     portal
// @Produce  json
// @Success  200  {object}  pageResponse
// @Router   /onboarding [get]
func (h *PortalHandler) Onboarding(c echo.Context) error {
	return h.render(c, "onboarding", "Onboarding", mockOnboarding)
}

// ClientPortal is the client landing page.
//
// @Summary  Client portal
// @Tags     portal
// @Produce  json
// @Success  200  {object}  pageResponse
// @Success  302
// @Router   /portal/client [get]
func (h *PortalHandler) ClientPortal(c echo.Context) error {
	return h.render(c, "client_portal", "Client portal", map[string]any{
		"jobs":     mockJobs,
		"invoices": mockInvoices,
	})
}

// VendorPortal is the vendor landing page.
//
// @Summary  Vendor portal
// @Tags     portal
// @Produce  json
// @Success  200  {object}  pageResponse
// @Success  302
// @Router   /portal/vendor [get]
func (h *PortalHandler) VendorPortal(c echo.Context) error {
	return h.render(c, "vendor_portal", "Vendor portal", map[string]any{
		"jobs":       mockJobs,
		"submitted":  mockCandidates[:2],
	})
}

// CandidatePortal is the candidate landing page.
//
// @Summary  Candidate portal
// @Tags     portal
// @Produce  json
// @Success  200  {object}  pageResponse
// @Success  302
// @Router   /portal/candidate [get]
func (h *PortalHandler) CandidatePortal(c echo.Context) error {
	return h.render(c, "candidate_portal", "Candidate portal", map[string]any{
		"applications": mockJobs[:1],
		"onboarding":   mockOnboarding,
	})
}

// AccessNotice is the fallback shown instead of a page the viewer may not see.
func (h *PortalHandler) AccessNotice(c echo.Context) error {
	redirect, _ := c.Get(middleware.ContextKeyGateRedirect).(string)
	if redirect == domain.PathLogin {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "redirecting to login", Redirect: redirect})
	}
	return c.JSON(http.StatusForbidden, errorResponse{Error: "you don't have permission to access this page", Redirect: redirect})
}
