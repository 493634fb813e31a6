package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hafaksurgicals/portal/internal/core/domain"
	"github.com/hafaksurgicals/portal/internal/core/ports"
)

type stubAuth struct {
	loginFn   func(ctx context.Context, creds ports.LoginCredentials) (*ports.Envelope, error)
	profileFn func(ctx context.Context) (*ports.Envelope, error)
}

func (s *stubAuth) Login(ctx context.Context, creds ports.LoginCredentials) (*ports.Envelope, error) {
	return s.loginFn(ctx, creds)
}

func (s *stubAuth) Profile(ctx context.Context) (*ports.Envelope, error) {
	return s.profileFn(ctx)
}

func (s *stubAuth) Register(ctx context.Context, input ports.RegisterInput) (*ports.Envelope, error) {
	panic("not used")
}

func (s *stubAuth) UpdateProfile(ctx context.Context, input ports.ProfileUpdateInput) (*domain.AuthenticatedUser, error) {
	panic("not used")
}

func (s *stubAuth) ChangePassword(ctx context.Context, input ports.ChangePasswordInput) error {
	panic("not used")
}

type memStore struct {
	mu     sync.Mutex
	token  string
	saves  int
	clears int
}

func (s *memStore) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *memStore) Save(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.saves++
	return nil
}

func (s *memStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.clears++
	return nil
}

func newTestManager(auth ports.AuthAPI, store ports.TokenStore, opts Options) *Manager {
	return NewManager(auth, store, zerolog.Nop(), opts)
}

func TestInitialStateUnknown(t *testing.T) {
	m := newTestManager(&stubAuth{}, &memStore{}, Options{})

	state, user := m.Current()
	if state != ports.SessionUnknown {
		t.Fatalf("expected unknown, got %s", state)
	}
	if user != nil {
		t.Fatalf("expected no user, got %+v", user)
	}
}

func TestCheckAuth_NoToken_NoNetworkCall(t *testing.T) {
	auth := &stubAuth{
		profileFn: func(ctx context.Context) (*ports.Envelope, error) {
			t.Fatal("validation call issued without a token")
			return nil, nil
		},
	}
	m := newTestManager(auth, &memStore{}, Options{})

	if err := m.CheckAuth(context.Background()); err != nil {
		t.Fatalf("check error: %v", err)
	}

	state, _ := m.Current()
	if state != ports.SessionUnauthenticated {
		t.Fatalf("expected unauthenticated, got %s", state)
	}
}

func TestCheckAuth_Success_FlatShape(t *testing.T) {
	auth := &stubAuth{
		profileFn: func(ctx context.Context) (*ports.Envelope, error) {
			return &ports.Envelope{
				Success: true,
				Data:    json.RawMessage(`{"_id":"u1","username":"alice","email":"a@x.com","role":"admin"}`),
			}, nil
		},
	}
	m := newTestManager(auth, &memStore{token: "tok"}, Options{})

	if err := m.CheckAuth(context.Background()); err != nil {
		t.Fatalf("check error: %v", err)
	}

	state, user := m.Current()
	if state != ports.SessionAuthenticated {
		t.Fatalf("expected authenticated, got %s", state)
	}
	if user.ID != "u1" || user.Username != "alice" || user.Role != "admin" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestCheckAuth_Success_NestedShape(t *testing.T) {
	auth := &stubAuth{
		profileFn: func(ctx context.Context) (*ports.Envelope, error) {
			return &ports.Envelope{
				Success: true,
				Data:    json.RawMessage(`{"user":{"_id":"u2","username":"bob","role":"super_admin"}}`),
			}, nil
		},
	}
	m := newTestManager(auth, &memStore{token: "tok"}, Options{})

	_ = m.CheckAuth(context.Background())

	_, user := m.Current()
	if user == nil || user.ID != "u2" || user.Role != "super_admin" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestCheckAuth_ReentrancyGuard(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	auth := &stubAuth{
		profileFn: func(ctx context.Context) (*ports.Envelope, error) {
			atomic.AddInt32(&calls, 1)
			<-release
			return &ports.Envelope{
				Success: true,
				Data:    json.RawMessage(`{"username":"alice","role":"admin"}`),
			}, nil
		},
	}
	m := newTestManager(auth, &memStore{token: "tok"}, Options{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = m.CheckAuth(context.Background())
	}()

	// Wait for the first validation to be in flight.
	deadline := time.After(2 * time.Second)
	for atomic.LoadInt32(&calls) == 0 {
		select {
		case <-deadline:
			t.Fatal("first validation never started")
		case <-time.After(time.Millisecond):
		}
	}

	// Overlapping calls must be no-ops.
	for i := 0; i < 5; i++ {
		if err := m.CheckAuth(context.Background()); err != nil {
			t.Fatalf("overlapping check error: %v", err)
		}
	}

	close(release)
	<-done

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("expected exactly one validation call, got %d", n)
	}
}

func TestCheckAuth_DeadlinePurgesToken(t *testing.T) {
	auth := &stubAuth{
		profileFn: func(ctx context.Context) (*ports.Envelope, error) {
			time.Sleep(200 * time.Millisecond)
			return &ports.Envelope{
				Success: true,
				Data:    json.RawMessage(`{"username":"alice","role":"admin"}`),
			}, nil
		},
	}
	store := &memStore{token: "slow-but-valid"}
	m := newTestManager(auth, store, Options{ValidateTimeout: 20 * time.Millisecond})

	if err := m.CheckAuth(context.Background()); err != nil {
		t.Fatalf("check error: %v", err)
	}

	state, _ := m.Current()
	if state != ports.SessionUnauthenticated {
		t.Fatalf("expected unauthenticated after deadline, got %s", state)
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if store.token != "" || store.clears == 0 {
		t.Fatalf("expected token purged, got %q (clears=%d)", store.token, store.clears)
	}
}

func TestCheckAuth_NetworkFailurePurgesToken(t *testing.T) {
	auth := &stubAuth{
		profileFn: func(ctx context.Context) (*ports.Envelope, error) {
			return nil, errors.New("connection refused")
		},
	}
	store := &memStore{token: "tok"}
	m := newTestManager(auth, store, Options{})

	_ = m.CheckAuth(context.Background())

	state, _ := m.Current()
	if state != ports.SessionUnauthenticated {
		t.Fatalf("expected unauthenticated, got %s", state)
	}
	if store.token != "" {
		t.Fatalf("expected token purged, got %q", store.token)
	}
}

func TestLogin_Failure_StateUnchanged(t *testing.T) {
	auth := &stubAuth{
		loginFn: func(ctx context.Context, creds ports.LoginCredentials) (*ports.Envelope, error) {
			return &ports.Envelope{Success: false, Message: "Invalid credentials"}, nil
		},
	}
	store := &memStore{}
	m := newTestManager(auth, store, Options{})

	_, err := m.Login(context.Background(), "user", "bad-password")
	if err == nil {
		t.Fatal("expected login failure")
	}
	var le *LoginError
	if !errors.As(err, &le) || le.Message != "Invalid credentials" {
		t.Fatalf("expected backend message, got %v", err)
	}
	if !errors.Is(err, domain.ErrLoginFailed) {
		t.Fatalf("expected ErrLoginFailed, got %v", err)
	}

	if store.saves != 0 {
		t.Fatalf("token must not be persisted on failure (saves=%d)", store.saves)
	}
	if _, user := m.Current(); user != nil {
		t.Fatalf("state changed on failed login: %+v", user)
	}
}

func TestLogin_Success_TokenTopLevel(t *testing.T) {
	auth := &stubAuth{
		loginFn: func(ctx context.Context, creds ports.LoginCredentials) (*ports.Envelope, error) {
			if creds.Username != "alice" || creds.Password != "secret" {
				t.Fatalf("unexpected credentials: %+v", creds)
			}
			return &ports.Envelope{
				Success: true,
				Token:   "top-level-token",
				Data:    json.RawMessage(`{"_id":"u1","username":"alice","role":"admin"}`),
			}, nil
		},
	}
	store := &memStore{}
	m := newTestManager(auth, store, Options{})

	user, err := m.Login(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if store.token != "top-level-token" {
		t.Fatalf("expected token persisted, got %q", store.token)
	}

	state, _ := m.Current()
	if state != ports.SessionAuthenticated {
		t.Fatalf("expected authenticated, got %s", state)
	}
}

func TestLogin_Success_NestedTokenWins(t *testing.T) {
	auth := &stubAuth{
		loginFn: func(ctx context.Context, creds ports.LoginCredentials) (*ports.Envelope, error) {
			return &ports.Envelope{
				Success: true,
				Token:   "top-level-token",
				Data:    json.RawMessage(`{"token":"nested-token","user":{"_id":"u1","username":"alice","role":"admin"}}`),
			}, nil
		},
	}
	store := &memStore{}
	m := newTestManager(auth, store, Options{})

	if _, err := m.Login(context.Background(), "alice", "secret"); err != nil {
		t.Fatalf("login error: %v", err)
	}
	if store.token != "nested-token" {
		t.Fatalf("nested token must win, got %q", store.token)
	}
}

func TestLogin_MissingToken(t *testing.T) {
	auth := &stubAuth{
		loginFn: func(ctx context.Context, creds ports.LoginCredentials) (*ports.Envelope, error) {
			return &ports.Envelope{
				Success: true,
				Data:    json.RawMessage(`{"_id":"u1","username":"alice","role":"admin"}`),
			}, nil
		},
	}
	store := &memStore{}
	m := newTestManager(auth, store, Options{})

	_, err := m.Login(context.Background(), "alice", "secret")
	if !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
	if store.saves != 0 {
		t.Fatal("token persisted despite missing token")
	}
}

func TestLogin_ThenCheckAuth_ShortCircuits(t *testing.T) {
	auth := &stubAuth{
		loginFn: func(ctx context.Context, creds ports.LoginCredentials) (*ports.Envelope, error) {
			return &ports.Envelope{
				Success: true,
				Token:   "tok",
				Data:    json.RawMessage(`{"_id":"u1","username":"alice","role":"admin"}`),
			}, nil
		},
		profileFn: func(ctx context.Context) (*ports.Envelope, error) {
			t.Fatal("authenticated session must not be re-validated by a manual check")
			return nil, nil
		},
	}
	m := newTestManager(auth, &memStore{}, Options{})

	loggedIn, err := m.Login(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}

	if err := m.CheckAuth(context.Background()); err != nil {
		t.Fatalf("check error: %v", err)
	}

	state, user := m.Current()
	if state != ports.SessionAuthenticated || user != loggedIn {
		t.Fatalf("session downgraded: state=%s user=%+v", state, user)
	}
}

func TestLogout_Idempotent(t *testing.T) {
	store := &memStore{token: "tok"}
	m := newTestManager(&stubAuth{}, store, Options{})

	for i := 0; i < 3; i++ {
		if err := m.Logout(context.Background()); err != nil {
			t.Fatalf("logout %d: %v", i, err)
		}
	}

	state, user := m.Current()
	if state != ports.SessionUnauthenticated || user != nil {
		t.Fatalf("expected clean unauthenticated state, got %s %+v", state, user)
	}
	if store.token != "" {
		t.Fatalf("token still present: %q", store.token)
	}
}

func TestForceRefresh_ResetsStuckSession(t *testing.T) {
	auth := &stubAuth{
		profileFn: func(ctx context.Context) (*ports.Envelope, error) {
			return &ports.Envelope{
				Success: true,
				Data:    json.RawMessage(`{"username":"alice","role":"admin"}`),
			}, nil
		},
	}
	m := newTestManager(auth, &memStore{token: "tok"}, Options{})

	// Simulate a session wedged in the loading state.
	m.mu.Lock()
	m.loading = true
	m.mu.Unlock()

	if err := m.ForceRefresh(context.Background()); err != nil {
		t.Fatalf("force refresh error: %v", err)
	}

	state, _ := m.Current()
	if state != ports.SessionAuthenticated {
		t.Fatalf("expected authenticated after refresh, got %s", state)
	}
}

func TestRevalidate_DropsRevokedSession(t *testing.T) {
	valid := true
	auth := &stubAuth{
		loginFn: func(ctx context.Context, creds ports.LoginCredentials) (*ports.Envelope, error) {
			return &ports.Envelope{
				Success: true,
				Token:   "tok",
				Data:    json.RawMessage(`{"username":"alice","role":"admin"}`),
			}, nil
		},
		profileFn: func(ctx context.Context) (*ports.Envelope, error) {
			if valid {
				return &ports.Envelope{
					Success: true,
					Data:    json.RawMessage(`{"username":"alice","role":"admin"}`),
				}, nil
			}
			return &ports.Envelope{Success: false, Message: "token expired"}, nil
		},
	}
	store := &memStore{}
	m := newTestManager(auth, store, Options{})

	if _, err := m.Login(context.Background(), "alice", "secret"); err != nil {
		t.Fatalf("login error: %v", err)
	}

	// A passive refresh against a still-valid token keeps the session.
	m.revalidate(context.Background())
	if state, _ := m.Current(); state != ports.SessionAuthenticated {
		t.Fatalf("session dropped on valid revalidation: %s", state)
	}

	// Once the backend rejects the token the session is dropped and the
	// token purged.
	valid = false
	m.revalidate(context.Background())
	if state, _ := m.Current(); state != ports.SessionUnauthenticated {
		t.Fatalf("expected unauthenticated after revoked token, got %s", state)
	}
	if store.token != "" {
		t.Fatalf("expected token purged, got %q", store.token)
	}
}
