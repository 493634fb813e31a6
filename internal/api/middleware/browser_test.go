package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func runBrowserAuth(t *testing.T, cookie *http.Cookie, secret string) (int, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/equipment", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	err := BrowserAuth(secret)(next)(c)
	if err != nil {
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) {
			t.Fatalf("unexpected error type: %v", err)
		}
		return httpErr.Code, c
	}
	return rec.Code, c
}

func TestBrowserAuth_ValidCookie(t *testing.T) {
	cookie, err := MintCookie(testSecret, "alice", "admin", time.Hour)
	if err != nil {
		t.Fatalf("mint cookie: %v", err)
	}

	code, c := runBrowserAuth(t, cookie, testSecret)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if got, _ := c.Get("username").(string); got != "alice" {
		t.Errorf("username = %q", got)
	}
	if got, _ := c.Get("role").(string); got != "admin" {
		t.Errorf("role = %q", got)
	}
}

func TestBrowserAuth_MissingCookie(t *testing.T) {
	code, _ := runBrowserAuth(t, nil, testSecret)
	if code != http.StatusUnauthorized {
		t.Fatalf("status = %d", code)
	}
}

func TestBrowserAuth_WrongSecret(t *testing.T) {
	cookie, err := MintCookie("other-secret", "alice", "admin", time.Hour)
	if err != nil {
		t.Fatalf("mint cookie: %v", err)
	}

	code, _ := runBrowserAuth(t, cookie, testSecret)
	if code != http.StatusUnauthorized {
		t.Fatalf("status = %d", code)
	}
}

func TestBrowserAuth_ExpiredCookie(t *testing.T) {
	cookie, err := MintCookie(testSecret, "alice", "admin", -time.Minute)
	if err != nil {
		t.Fatalf("mint cookie: %v", err)
	}

	code, _ := runBrowserAuth(t, cookie, testSecret)
	if code != http.StatusUnauthorized {
		t.Fatalf("status = %d", code)
	}
}

func TestClearedCookie(t *testing.T) {
	cookie := ClearedCookie()
	if cookie.Name != CookieName || cookie.MaxAge != -1 || cookie.Value != "" {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}
}
