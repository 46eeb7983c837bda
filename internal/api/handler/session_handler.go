package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/asaf-cyber/ProRecruit-sub003/internal/api/middleware"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/domain"
)

// SessionHandler exposes the session store operations over HTTP.
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type twoFactorRequest struct {
	Code string `json:"code" validate:"required"`
}

type sessionUserResponse struct {
	ID          string              `json:"id"`
	Email       string              `json:"email"`
	Name        string              `json:"name"`
	Role        string              `json:"role"`
	Permissions []domain.Permission `json:"permissions"`
}

type loginResponse struct {
	User      sessionUserResponse `json:"user"`
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expires_at"`
	Redirect  string              `json:"redirect"`
}

type twoFactorResponse struct {
	Verified bool   `json:"verified"`
	Redirect string `json:"redirect"`
}

type sessionResponse struct {
	Authenticated bool                 `json:"authenticated"`
	User          *sessionUserResponse `json:"user,omitempty"`
	ExpiresAt     *time.Time           `json:"expires_at,omitempty"`
	Landing       string               `json:"landing"`
}

func toSessionUser(id domain.Identity) sessionUserResponse {
	return sessionUserResponse{
		ID:          id.ID,
		Email:       id.Email,
		Name:        id.Name,
		Role:        id.Role.String(),
		Permissions: id.Permissions.Slice(),
	}
}

// Login authenticates against the credential directory and persists the
// device's session snapshot.
//
// @Summary      Log in
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	store, err := middleware.SessionFrom(c)
	if err != nil {
		return err
	}

	ok, err := store.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
	}

	id, _ := store.Identity()
	snap, _ := store.Snapshot()
	return c.JSON(http.StatusOK, loginResponse{
		User:      toSessionUser(id),
		Token:     snap.IssuedToken,
		ExpiresAt: snap.ExpiresAt.UTC(),
		Redirect:  domain.LandingPath(id.Role),
	})
}

// VerifyTwoFactor checks a verification code. Any six-character code passes.
//
// @Summary      Verify a two-factor code
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      twoFactorRequest  true  "Verification code"
// @Success      200   {object}  twoFactorResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /login/2fa [post]
func (h *SessionHandler) VerifyTwoFactor(c echo.Context) error {
	var req twoFactorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	store, err := middleware.SessionFrom(c)
	if err != nil {
		return err
	}

	if !store.VerifyTwoFactor(c.Request().Context(), req.Code) {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid verification code"})
	}

	redirect := domain.PathLogin
	if id, ok := store.Identity(); ok {
		redirect = domain.LandingPath(id.Role)
	}
	return c.JSON(http.StatusOK, twoFactorResponse{Verified: true, Redirect: redirect})
}

// Logout clears the device's session. Calling it without a session is fine.
//
// @Summary      Log out
// @Tags         session
// @Success      204
// @Failure      500  {object}  errorResponse
// @Router       /logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	store, err := middleware.SessionFrom(c)
	if err != nil {
		return err
	}
	if err := store.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Current describes the device's session.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	store, err := middleware.SessionFrom(c)
	if err != nil {
		return err
	}

	id, ok := store.Identity()
	if !ok {
		return c.JSON(http.StatusOK, sessionResponse{Landing: domain.PathLogin})
	}

	user := toSessionUser(id)
	resp := sessionResponse{Authenticated: true, User: &user, Landing: domain.LandingPath(id.Role)}
	if snap, ok := store.Snapshot(); ok {
		exp := snap.ExpiresAt.UTC()
		resp.ExpiresAt = &exp
	}
	return c.JSON(http.StatusOK, resp)
}
