package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hafaksurgicals/portal/internal/core/ports"
)

// decodeData unmarshals an envelope's data field into out, preferring the
// named wrapper key when the backend nested the payload (e.g. {"equipment":
// {...}}). Nested wins, else the flat shape is used, the same precedence the
// session manager applies to user payloads.
func decodeData(data json.RawMessage, key string, out any) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err == nil {
		if inner, ok := probe[key]; ok {
			return json.Unmarshal(inner, out)
		}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s payload: %w", key, err)
	}
	return nil
}

// bearerOptions builds request options with the stored token attached, or no
// Authorization header at all when no token is present. Facades attach the
// token themselves; the transport does not inject it on JSON calls.
func bearerOptions(ctx context.Context, store ports.TokenStore) (*ports.RequestOptions, error) {
	token, err := store.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}

	opts := &ports.RequestOptions{Header: http.Header{}}
	if token != "" {
		opts.Header.Set("Authorization", "Bearer "+token)
	}
	return opts, nil
}
