package ports

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
)

// Envelope is the uniform response wrapper every backend endpoint returns:
// {success, data, message, errors, pagination}. Data is kept raw so each
// facade can decode it into its own shape.
//
// Token exists because the login endpoint has historically placed the bearer
// token either at the top level or nested inside data; see session.Normalize
// for the precedence rule.
type Envelope struct {
	Success    bool              `json:"success"`
	Data       json.RawMessage   `json:"data"`
	Message    string            `json:"message,omitempty"`
	Token      string            `json:"token,omitempty"`
	Count      int               `json:"count,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
	Pagination *Pagination       `json:"pagination,omitempty"`
}

// Pagination is the backend's page descriptor on list responses.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// RequestOptions carries the per-call extras a facade may attach. A nil
// options value means a plain JSON call with no query string and no
// Authorization header.
type RequestOptions struct {
	// Header entries are forwarded verbatim; the transport never injects an
	// Authorization header on its own for JSON calls.
	Header http.Header
	Query  url.Values
}

// FormFile is one file part of a multipart upload.
type FormFile struct {
	Field   string
	Name    string
	Content io.Reader
}

// Form is a multipart payload for the upload endpoints.
type Form struct {
	Files  []FormFile
	Fields map[string]string
}

// Backend is the single choke point for outbound calls to the catalog API.
// Every resource facade funnels through it.
type Backend interface {
	Get(ctx context.Context, endpoint string, opts *RequestOptions) (*Envelope, error)
	Post(ctx context.Context, endpoint string, body any, opts *RequestOptions) (*Envelope, error)
	Put(ctx context.Context, endpoint string, body any, opts *RequestOptions) (*Envelope, error)
	Delete(ctx context.Context, endpoint string, opts *RequestOptions) (*Envelope, error)
	// PostForm and PutForm bypass JSON encoding for binary uploads and always
	// attach the stored token.
	PostForm(ctx context.Context, endpoint string, form *Form) (*Envelope, error)
	PutForm(ctx context.Context, endpoint string, form *Form) (*Envelope, error)
}
