package ports

import (
	"context"

	"github.com/hafaksurgicals/portal/internal/core/domain"
)

// SessionState is the tri-state the route guard branches on.
type SessionState string

const (
	// SessionUnknown means the initial validation has not resolved yet.
	SessionUnknown         SessionState = "unknown"
	SessionAuthenticated   SessionState = "authenticated"
	SessionUnauthenticated SessionState = "unauthenticated"
)

// Session is the process-wide authority on who is logged in. There is one
// owning instance per running portal; handlers and middleware hold it by
// reference and never duplicate its state.
type Session interface {
	// Current returns the session state and, when authenticated, the user.
	Current() (SessionState, *domain.AuthenticatedUser)
	// Login authenticates against the backend, persists the token and sets
	// the user. On failure the session is left unchanged and the returned
	// error carries the backend-supplied message.
	Login(ctx context.Context, username, password string) (*domain.AuthenticatedUser, error)
	// Logout clears the token and the user. Idempotent.
	Logout(ctx context.Context) error
	// CheckAuth validates the stored token against the backend. A call made
	// while a check is already in flight is a no-op.
	CheckAuth(ctx context.Context) error
	// ForceRefresh unconditionally resets the session and re-runs validation.
	ForceRefresh(ctx context.Context) error
}
