package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/asaf-cyber/ProRecruit-sub003/internal/api/middleware"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/domain"
)

func TestPortalHandler_RenderIncludesViewer(t *testing.T) {
	store := &stubSessionStore{}
	store.signIn(domain.NewIdentity("usr_client_001", "client@prorecruit.com", "Casey Client", domain.RoleClient))

	c, rec := newSessionContext(http.MethodGet, "/portal/client", "", store)
	if err := NewPortalHandler().ClientPortal(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp pageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Page != "client_portal" || resp.Viewer == nil || resp.Viewer.Role != "client" {
		t.Fatalf("unexpected page: %+v", resp)
	}
}

func TestPortalHandler_HomeIsPublic(t *testing.T) {
	c, rec := newSessionContext(http.MethodGet, "/", "", nil)
	if err := NewPortalHandler().Home(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp pageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Page != "home" || resp.Viewer != nil {
		t.Fatalf("unexpected page: %+v", resp)
	}
}

func TestPortalHandler_LoginPageRedirectsSignedInViewer(t *testing.T) {
	store := &stubSessionStore{}
	store.signIn(domain.NewIdentity("usr_candidate_001", "candidate@prorecruit.com", "Cam Candidate", domain.RoleCandidate))

	c, rec := newSessionContext(http.MethodGet, "/login", "", store)
	if err := NewPortalHandler().LoginPage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != domain.PathCandidatePortal {
		t.Fatalf("expected redirect to candidate portal, got %q", loc)
	}
}

func TestPortalHandler_LoginPageForAnonymous(t *testing.T) {
	c, rec := newSessionContext(http.MethodGet, "/login", "", &stubSessionStore{})
	if err := NewPortalHandler().LoginPage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPortalHandler_CandidatesFilterByStage(t *testing.T) {
	c, rec := newSessionContext(http.MethodGet, "/candidates?stage=offer", "", &stubSessionStore{})
	if err := NewPortalHandler().Candidates(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Data []candidateItem `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Stage != "offer" {
		t.Fatalf("unexpected candidates: %+v", resp.Data)
	}
}

func TestPortalHandler_AccessNotice(t *testing.T) {
	cases := []struct {
		name     string
		redirect string
		wantCode int
	}{
		{name: "unauthenticated", redirect: domain.PathLogin, wantCode: http.StatusUnauthorized},
		{name: "wrong role", redirect: domain.PathCandidatePortal, wantCode: http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newSessionContext(http.MethodGet, "/onboarding", "", &stubSessionStore{})
			c.Set(middleware.ContextKeyGateRedirect, tc.redirect)
			if err := NewPortalHandler().AccessNotice(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Redirect != tc.redirect {
				t.Fatalf("expected redirect %q, got %q", tc.redirect, resp.Redirect)
			}
		})
	}
}
