package ports

import "context"

// TokenStore persists the single opaque bearer token under one well-known
// key. It is read by every authenticated facade call, written by login and
// cleared by logout or a failed validation. Single writer by convention; no
// cross-process locking.
type TokenStore interface {
	// Token returns the stored token, or "" when none is present.
	Token(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
