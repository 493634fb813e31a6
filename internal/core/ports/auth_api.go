package ports

import (
	"context"

	"github.com/hafaksurgicals/portal/internal/core/domain"
)

// LoginCredentials are the admin credentials forwarded to the backend.
type LoginCredentials struct {
	Username string
	Password string
}

// RegisterInput creates a new admin account on the backend.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// ProfileUpdateInput carries the mutable profile fields. Empty fields are
// omitted from the request body entirely.
type ProfileUpdateInput struct {
	Username string
	Email    string
}

// ChangePasswordInput rotates the admin password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	UserID          string
}

// AuthAPI is the facade over the backend /auth endpoints.
//
// Login and Profile return the raw envelope rather than a decoded user:
// the backend has shipped both flat and nested payload shapes for these two
// endpoints and the session manager owns the normalization step.
type AuthAPI interface {
	Login(ctx context.Context, creds LoginCredentials) (*Envelope, error)
	Register(ctx context.Context, input RegisterInput) (*Envelope, error)
	Profile(ctx context.Context) (*Envelope, error)
	UpdateProfile(ctx context.Context, input ProfileUpdateInput) (*domain.AuthenticatedUser, error)
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
}
