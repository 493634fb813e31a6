package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hafaksurgicals/portal/internal/core/domain"
	"github.com/hafaksurgicals/portal/internal/core/ports"
)

type stubSession struct {
	state ports.SessionState
	user  *domain.AuthenticatedUser
}

func (s *stubSession) Current() (ports.SessionState, *domain.AuthenticatedUser) {
	return s.state, s.user
}

func (s *stubSession) Login(ctx context.Context, username, password string) (*domain.AuthenticatedUser, error) {
	panic("not used")
}

func (s *stubSession) Logout(ctx context.Context) error       { return nil }
func (s *stubSession) CheckAuth(ctx context.Context) error    { return nil }
func (s *stubSession) ForceRefresh(ctx context.Context) error { return nil }

func runGuard(t *testing.T, state ports.SessionState, user *domain.AuthenticatedUser) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/equipment", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	if err := Guard(&stubSession{state: state, user: user})(next)(c); err != nil {
		t.Fatalf("guard error: %v", err)
	}
	return rec
}

func TestGuard_AuthenticatedAdminPassesThrough(t *testing.T) {
	for _, role := range []string{domain.RoleAdmin, domain.RoleSuperAdmin} {
		rec := runGuard(t, ports.SessionAuthenticated, &domain.AuthenticatedUser{Username: "alice", Role: role})
		if rec.Code != http.StatusOK {
			t.Fatalf("role %s: status = %d", role, rec.Code)
		}
	}
}

func TestGuard_NonAdminRoleIsForbidden(t *testing.T) {
	rec := runGuard(t, ports.SessionAuthenticated, &domain.AuthenticatedUser{Username: "bob", Role: "viewer"})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGuard_UnknownIsServiceUnavailable(t *testing.T) {
	rec := runGuard(t, ports.SessionUnknown, nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/api/session/refresh") {
		t.Fatalf("missing refresh hint: %s", rec.Body.String())
	}
}

func TestGuard_UnauthenticatedIsUnauthorized(t *testing.T) {
	rec := runGuard(t, ports.SessionUnauthenticated, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/api/session/login") {
		t.Fatalf("missing login hint: %s", rec.Body.String())
	}
}
