// Package session owns the portal's process-wide backend session: who is
// logged in, the persisted bearer token, and the periodic revalidation loop.
// There is exactly one Manager per running portal; everything that needs the
// current user holds it by reference.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hafaksurgicals/portal/internal/api/metrics"
	"github.com/hafaksurgicals/portal/internal/core/domain"
	"github.com/hafaksurgicals/portal/internal/core/ports"
)

const (
	defaultValidateTimeout = 10 * time.Second
	defaultRevalidateEvery = 5 * time.Minute
)

// errValidateTimeout marks a validation call that outlived its deadline.
// Treated identically to an invalid token.
var errValidateTimeout = errors.New("authentication check timeout")

// Options tunes the manager's two clocks.
type Options struct {
	// ValidateTimeout bounds a single validation call. The deadline is
	// advisory: the manager stops waiting, the underlying call may still
	// complete and is discarded.
	ValidateTimeout time.Duration
	// RevalidateEvery is the background refresh interval while a token is
	// present.
	RevalidateEvery time.Duration
}

// Manager implements ports.Session.
//
// Concurrency model: all state mutations happen under mu; the loading flag
// doubles as the re-entrancy guard, so a manual CheckAuth and the periodic
// timer can never run two validations at once: whichever starts first wins,
// the other becomes a no-op.
type Manager struct {
	auth  ports.AuthAPI
	store ports.TokenStore
	log   zerolog.Logger

	validateTimeout time.Duration
	revalidateEvery time.Duration

	mu       sync.Mutex
	user     *domain.AuthenticatedUser
	loading  bool
	resolved bool

	cancel context.CancelFunc
	done   chan struct{}
}

// NewManager builds the single session authority. Zero-valued Options fall
// back to the 10s validation deadline and 5m refresh interval.
func NewManager(auth ports.AuthAPI, store ports.TokenStore, log zerolog.Logger, opts Options) *Manager {
	if opts.ValidateTimeout <= 0 {
		opts.ValidateTimeout = defaultValidateTimeout
	}
	if opts.RevalidateEvery <= 0 {
		opts.RevalidateEvery = defaultRevalidateEvery
	}
	return &Manager{
		auth:            auth,
		store:           store,
		log:             log,
		validateTimeout: opts.ValidateTimeout,
		revalidateEvery: opts.RevalidateEvery,
	}
}

// Start runs the initial validation and launches the revalidation loop. The
// loop is owned by the manager's lifetime, not by any HTTP handler; Stop
// tears it down.
func (m *Manager) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})
	go m.run(runCtx)
}

// Stop cancels the revalidation loop and waits for it to exit.
func (m *Manager) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}

func (m *Manager) run(ctx context.Context) {
	defer close(m.done)

	if err := m.check(ctx, false); err != nil {
		m.log.Error().Err(err).Msg("initial session check failed")
	}

	ticker := time.NewTicker(m.revalidateEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.revalidate(ctx)
		}
	}
}

// revalidate is the passive background refresh: it only runs while a token is
// present and a user is set, and it bypasses the already-authenticated
// short-circuit so a revoked token actually drops the session.
func (m *Manager) revalidate(ctx context.Context) {
	token, err := m.store.Token(ctx)
	if err != nil {
		m.log.Error().Err(err).Msg("token read failed during revalidation")
		return
	}

	m.mu.Lock()
	authenticated := m.user != nil
	m.mu.Unlock()

	if token == "" || !authenticated {
		return
	}
	if err := m.check(ctx, true); err != nil {
		m.log.Error().Err(err).Msg("periodic session check failed")
	}
}

// Current returns the session state and, when authenticated, the user.
func (m *Manager) Current() (ports.SessionState, *domain.AuthenticatedUser) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case m.user != nil:
		return ports.SessionAuthenticated, m.user
	case !m.resolved:
		return ports.SessionUnknown, nil
	default:
		return ports.SessionUnauthenticated, nil
	}
}

// CheckAuth validates the stored token. A call made while a check is already
// in flight is a no-op; an authenticated session with a token present is not
// re-checked (the periodic loop handles that).
func (m *Manager) CheckAuth(ctx context.Context) error {
	return m.check(ctx, false)
}

// ForceRefresh unconditionally resets the session state and re-runs the
// validation flow. Escape hatch for a session stuck in the pending state.
func (m *Manager) ForceRefresh(ctx context.Context) error {
	m.mu.Lock()
	m.loading = false
	m.resolved = false
	m.user = nil
	m.mu.Unlock()
	metrics.SessionAuthenticated.Set(0)

	return m.check(ctx, false)
}

func (m *Manager) check(ctx context.Context, force bool) error {
	m.mu.Lock()
	if m.loading {
		m.mu.Unlock()
		metrics.AuthChecksTotal.WithLabelValues("skipped").Inc()
		return nil
	}
	m.loading = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.loading = false
		m.resolved = true
		m.mu.Unlock()
	}()

	token, err := m.store.Token(ctx)
	if err != nil {
		m.log.Error().Err(err).Msg("token read failed")
		m.setUser(nil)
		return err
	}
	if token == "" {
		// No token, nothing to validate: unauthenticated without a network
		// call.
		metrics.AuthChecksTotal.WithLabelValues("no_token").Inc()
		m.setUser(nil)
		return nil
	}

	m.mu.Lock()
	authenticated := m.user != nil
	m.mu.Unlock()
	if authenticated && !force {
		// Already authenticated with a token present: skip the round trip.
		metrics.AuthChecksTotal.WithLabelValues("skipped").Inc()
		return nil
	}

	env, err := m.validate(ctx)
	switch {
	case errors.Is(err, errValidateTimeout):
		m.log.Warn().Dur("deadline", m.validateTimeout).Msg("session validation timed out")
		metrics.AuthChecksTotal.WithLabelValues("timeout").Inc()
		m.drop(ctx)
	case err != nil:
		// Network failure, malformed response: treated as validation failure.
		m.log.Warn().Err(err).Msg("session validation failed")
		metrics.AuthChecksTotal.WithLabelValues("invalid").Inc()
		m.drop(ctx)
	case env.Success && len(env.Data) > 0:
		user, uerr := ExtractUser(env.Data)
		if uerr != nil {
			m.log.Warn().Err(uerr).Msg("unusable profile payload")
			metrics.AuthChecksTotal.WithLabelValues("invalid").Inc()
			m.drop(ctx)
			return nil
		}
		metrics.AuthChecksTotal.WithLabelValues("valid").Inc()
		m.setUser(user)
	default:
		metrics.AuthChecksTotal.WithLabelValues("invalid").Inc()
		m.drop(ctx)
	}

	return nil
}

// validate runs the profile call with the advisory deadline. On timeout the
// result is abandoned; the underlying request is not guaranteed to be
// aborted.
func (m *Manager) validate(ctx context.Context) (*ports.Envelope, error) {
	type result struct {
		env *ports.Envelope
		err error
	}
	ch := make(chan result, 1)
	go func() {
		env, err := m.auth.Profile(ctx)
		ch <- result{env: env, err: err}
	}()

	timer := time.NewTimer(m.validateTimeout)
	defer timer.Stop()

	select {
	case r := <-ch:
		return r.env, r.err
	case <-timer.C:
		return nil, errValidateTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Login authenticates against the backend. On any failure path the session
// state is left untouched and the returned error carries the backend message.
func (m *Manager) Login(ctx context.Context, username, password string) (*domain.AuthenticatedUser, error) {
	env, err := m.auth.Login(ctx, ports.LoginCredentials{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	if !env.Success || len(env.Data) == 0 {
		msg := env.Message
		if msg == "" {
			msg = "Login failed"
		}
		return nil, &LoginError{Message: msg}
	}

	token := ExtractToken(env)
	if token == "" {
		return nil, domain.ErrNoToken
	}

	user, err := ExtractUser(env.Data)
	if err != nil {
		return nil, err
	}

	if err := m.store.Save(ctx, token); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.user = user
	m.resolved = true
	m.mu.Unlock()
	metrics.SessionAuthenticated.Set(1)

	m.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("session established")
	return user, nil
}

// Logout clears the token and the user. Safe to call when already
// unauthenticated.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	m.user = nil
	m.resolved = true
	m.mu.Unlock()
	metrics.SessionAuthenticated.Set(0)
	return nil
}

// drop purges the token and clears the user: every validation failure path
// converges here.
func (m *Manager) drop(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.log.Error().Err(err).Msg("token purge failed")
	}
	m.setUser(nil)
}

func (m *Manager) setUser(user *domain.AuthenticatedUser) {
	m.mu.Lock()
	m.user = user
	m.mu.Unlock()

	if user != nil {
		metrics.SessionAuthenticated.Set(1)
	} else {
		metrics.SessionAuthenticated.Set(0)
	}
}
