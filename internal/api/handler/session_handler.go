package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hafaksurgicals/portal/internal/api/middleware"
	"github.com/hafaksurgicals/portal/internal/core/domain"
	"github.com/hafaksurgicals/portal/internal/core/ports"
	"github.com/hafaksurgicals/portal/internal/session"
)

// SessionHandler exposes the portal's session operations over HTTP. It is a
// thin shell around the single session manager instance.
type SessionHandler struct {
	session      ports.Session
	cookieSecret string
	cookieTTL    time.Duration
}

func NewSessionHandler(s ports.Session, cookieSecret string, cookieTTL time.Duration) *SessionHandler {
	return &SessionHandler{session: s, cookieSecret: cookieSecret, cookieTTL: cookieTTL}
}

// Login authenticates against the catalog backend and, on success, issues the
// portal-local browser cookie.
//
// @Summary      Log in
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Admin credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.session.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		var le *session.LoginError
		if errors.As(err, &le) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: le.Message})
		}
		if errors.Is(err, domain.ErrNoToken) {
			return c.JSON(http.StatusBadGateway, errorResponse{Error: err.Error()})
		}
		return err
	}

	cookie, err := middleware.MintCookie(h.cookieSecret, user.Username, user.Role, h.cookieTTL)
	if err != nil {
		return err
	}
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, sessionResponse{State: ports.SessionAuthenticated, User: user})
}

// Logout drops the backend session and expires the browser cookie.
// Idempotent.
//
// @Summary      Log out
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/session/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.session.Logout(c.Request().Context()); err != nil {
		return err
	}
	c.SetCookie(middleware.ClearedCookie())

	return c.JSON(http.StatusOK, sessionResponse{State: ports.SessionUnauthenticated})
}

// Current reports the session state without touching the backend.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	state, user := h.session.Current()
	return c.JSON(http.StatusOK, sessionResponse{State: state, User: user})
}

// Check triggers a token validation. A no-op while one is already in flight.
//
// @Summary      Validate the stored token
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/session/check [post]
func (h *SessionHandler) Check(c echo.Context) error {
	if err := h.session.CheckAuth(c.Request().Context()); err != nil {
		return err
	}
	state, user := h.session.Current()
	return c.JSON(http.StatusOK, sessionResponse{State: state, User: user})
}

// Refresh unconditionally resets and revalidates the session: the escape
// hatch for a session stuck pending.
//
// @Summary      Force-refresh the session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/session/refresh [post]
func (h *SessionHandler) Refresh(c echo.Context) error {
	if err := h.session.ForceRefresh(c.Request().Context()); err != nil {
		return err
	}
	state, user := h.session.Current()
	return c.JSON(http.StatusOK, sessionResponse{State: state, User: user})
}
