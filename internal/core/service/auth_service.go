package service

import (
	"context"
	"fmt"

	"github.com/hafaksurgicals/portal/internal/core/domain"
	"github.com/hafaksurgicals/portal/internal/core/ports"
)

// AuthService is the facade over the backend /auth endpoints. No local
// validation, no retries; failures surface unchanged.
type AuthService struct {
	backend ports.Backend
	store   ports.TokenStore
}

func NewAuthService(backend ports.Backend, store ports.TokenStore) *AuthService {
	return &AuthService{backend: backend, store: store}
}

// Login posts credentials. Bad credentials come back as a failure envelope,
// not an error; the session manager branches on Success.
func (s *AuthService) Login(ctx context.Context, creds ports.LoginCredentials) (*ports.Envelope, error) {
	body := map[string]string{
		"username": creds.Username,
		"password": creds.Password,
	}
	return s.backend.Post(ctx, "/auth/login", body, nil)
}

// Register creates a new admin account.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.Envelope, error) {
	body := map[string]string{
		"username": input.Username,
		"email":    input.Email,
		"password": input.Password,
	}
	if input.Role != "" {
		body["role"] = input.Role
	}
	return s.backend.Post(ctx, "/auth/register", body, nil)
}

// Profile fetches the current user with the stored token. The raw envelope is
// returned so the session manager can normalize the dual payload shape.
func (s *AuthService) Profile(ctx context.Context) (*ports.Envelope, error) {
	opts, err := bearerOptions(ctx, s.store)
	if err != nil {
		return nil, err
	}
	return s.backend.Get(ctx, "/auth/me", opts)
}

// UpdateProfile mutates username/email. Empty fields are omitted.
func (s *AuthService) UpdateProfile(ctx context.Context, input ports.ProfileUpdateInput) (*domain.AuthenticatedUser, error) {
	body := map[string]string{}
	if input.Username != "" {
		body["username"] = input.Username
	}
	if input.Email != "" {
		body["email"] = input.Email
	}

	opts, err := bearerOptions(ctx, s.store)
	if err != nil {
		return nil, err
	}
	env, err := s.backend.Put(ctx, "/auth/me", body, opts)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("update profile: %s", env.Message)
	}

	var user domain.AuthenticatedUser
	if err := decodeData(env.Data, "user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword rotates the admin password.
func (s *AuthService) ChangePassword(ctx context.Context, input ports.ChangePasswordInput) error {
	body := map[string]string{
		"currentPassword": input.CurrentPassword,
		"newPassword":     input.NewPassword,
		"userId":          input.UserID,
	}

	opts, err := bearerOptions(ctx, s.store)
	if err != nil {
		return err
	}
	env, err := s.backend.Put(ctx, "/auth/change-password", body, opts)
	if err != nil {
		return err
	}
	if !env.Success {
		return fmt.Errorf("change password: %s", env.Message)
	}
	return nil
}
