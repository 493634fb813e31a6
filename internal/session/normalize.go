package session

import (
	"encoding/json"
	"fmt"

	"github.com/hafaksurgicals/portal/internal/core/domain"
	"github.com/hafaksurgicals/portal/internal/core/ports"
)

// The backend has shipped two shapes for auth payloads over time: the user
// sometimes sits directly under data, sometimes nested as data.user, and the
// login token likewise appears either inside data or at the envelope's top
// level. The functions below are the single normalization point; precedence
// is fixed: nested wins, else flat.

// LoginError carries the backend-supplied message on a rejected login.
type LoginError struct {
	Message string
}

func (e *LoginError) Error() string { return e.Message }

func (e *LoginError) Unwrap() error { return domain.ErrLoginFailed }

// ExtractToken returns the bearer token from a login envelope, or "" when
// neither shape carries one. data.token wins over the top-level token.
func ExtractToken(env *ports.Envelope) string {
	var nested struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &nested); err == nil && nested.Token != "" {
		return nested.Token
	}
	return env.Token
}

// ExtractUser decodes the user from an auth payload. data.user wins over the
// flat shape; a payload that decodes to a user with no identity at all is
// rejected as malformed.
func ExtractUser(data json.RawMessage) (*domain.AuthenticatedUser, error) {
	var nested struct {
		User *domain.AuthenticatedUser `json:"user"`
	}
	if err := json.Unmarshal(data, &nested); err == nil && nested.User != nil {
		return nested.User, nil
	}

	var flat domain.AuthenticatedUser
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("decode user payload: %w", err)
	}
	if flat.ID == "" && flat.Username == "" {
		return nil, fmt.Errorf("user payload carries no identity")
	}
	return &flat, nil
}
