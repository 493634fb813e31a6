// Package backend implements the outbound HTTP client for the catalog API.
// All portal data fetching funnels through Client; it is the only place that
// speaks the backend's JSON envelope on the wire.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hafaksurgicals/portal/internal/api/metrics"
	"github.com/hafaksurgicals/portal/internal/core/ports"
)

// APIError is a non-2xx response outside the auth special case. Message is
// the backend's own message when it sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", e.Status)
}

// Client implements ports.Backend over net/http.
//
// No retries and no client-side timeout: the session manager applies its own
// deadline to validation calls, everything else relies on the transport.
type Client struct {
	baseURL string
	http    *http.Client
	store   ports.TokenStore
	log     zerolog.Logger
}

// NewClient builds a Client for the given base URL. httpClient may be nil, in
// which case http.DefaultClient is used.
func NewClient(baseURL string, store ports.TokenStore, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		store:   store,
		log:     log,
	}
}

func (c *Client) Get(ctx context.Context, endpoint string, opts *ports.RequestOptions) (*ports.Envelope, error) {
	return c.do(ctx, http.MethodGet, endpoint, nil, opts)
}

func (c *Client) Post(ctx context.Context, endpoint string, body any, opts *ports.RequestOptions) (*ports.Envelope, error) {
	return c.do(ctx, http.MethodPost, endpoint, body, opts)
}

func (c *Client) Put(ctx context.Context, endpoint string, body any, opts *ports.RequestOptions) (*ports.Envelope, error) {
	return c.do(ctx, http.MethodPut, endpoint, body, opts)
}

func (c *Client) Delete(ctx context.Context, endpoint string, opts *ports.RequestOptions) (*ports.Envelope, error) {
	return c.do(ctx, http.MethodDelete, endpoint, nil, opts)
}

// do sends one JSON call and decodes the envelope regardless of status code.
//
// Error contract:
//   - 401 on an /auth/ endpoint returns a failure envelope, not an error, so
//     callers can branch on bad credentials without error handling.
//   - any other non-2xx returns *APIError with the backend's message.
//   - transport and decode failures return a plain error.
func (c *Client) do(ctx context.Context, method, endpoint string, body any, opts *ports.RequestOptions) (*ports.Envelope, error) {
	url := c.baseURL + endpoint
	if opts != nil && len(opts.Query) > 0 {
		url += "?" + opts.Query.Encode()
	}

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if opts != nil {
		// Caller-supplied headers (Authorization included) win verbatim.
		for k, vs := range opts.Header {
			req.Header[k] = vs
		}
	}

	return c.send(req, endpoint)
}

// PostForm uploads a multipart payload. Unlike JSON calls, form requests
// always attach the stored token themselves.
func (c *Client) PostForm(ctx context.Context, endpoint string, form *ports.Form) (*ports.Envelope, error) {
	return c.doForm(ctx, http.MethodPost, endpoint, form)
}

// PutForm is PostForm with the PUT verb.
func (c *Client) PutForm(ctx context.Context, endpoint string, form *ports.Form) (*ports.Envelope, error) {
	return c.doForm(ctx, http.MethodPut, endpoint, form)
}

func (c *Client) doForm(ctx context.Context, method, endpoint string, form *ports.Form) (*ports.Envelope, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range form.Files {
		part, err := w.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return nil, fmt.Errorf("build form file: %w", err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, fmt.Errorf("copy form file: %w", err)
		}
	}
	for k, v := range form.Fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("write form field: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("X-Request-ID", uuid.NewString())

	token, err := c.store.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return c.send(req, endpoint)
}

func (c *Client) send(req *http.Request, endpoint string) (*ports.Envelope, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("backend request: %w", err)
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	// The backend wraps every response, success or failure, in the same
	// envelope. Parse first, branch on status after.
	var env ports.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.log.Error().Err(err).Str("endpoint", endpoint).Int("status", resp.StatusCode).
			Msg("malformed backend response")
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized && strings.HasPrefix(endpoint, "/auth/") {
			msg := env.Message
			if msg == "" {
				msg = "Authentication failed"
			}
			return &ports.Envelope{Success: false, Data: raw, Message: msg, Errors: env.Errors}, nil
		}
		return nil, &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	return &env, nil
}
