package domain

import "errors"

var (
	// ErrUnauthenticated is returned when a guarded operation runs without an
	// authenticated session.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrSessionPending is returned while the initial session validation is
	// still outstanding.
	ErrSessionPending = errors.New("session validation pending")
	// ErrLoginFailed wraps the backend-supplied message on a rejected login.
	ErrLoginFailed = errors.New("login failed")
	// ErrNoToken is returned when a login response carries no token in either
	// accepted shape.
	ErrNoToken = errors.New("no token received from server")

	// ErrForbidden is returned when the session's role does not permit the
	// requested operation.
	ErrForbidden = errors.New("access forbidden")
)
