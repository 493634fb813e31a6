package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hafaksurgicals/portal/internal/core/ports"
)

// guardResponse tells the caller why the request was rejected and what to do
// about it.
type guardResponse struct {
	Error string `json:"error"`
	// Hint names the session endpoint that can unblock the caller.
	Hint string `json:"hint,omitempty"`
}

// Guard gates admin routes on the session state. It consults the manager and
// never mutates it:
//   - unknown (initial validation still outstanding) → 503, retry via
//     POST /api/session/refresh
//   - unauthenticated → 401, log in via POST /api/session/login
//   - authenticated without an admin role → 403
//   - authenticated admin → pass through unchanged
func Guard(session ports.Session) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state, user := session.Current()
			switch state {
			case ports.SessionAuthenticated:
				if !user.IsAdmin() {
					return c.JSON(http.StatusForbidden, guardResponse{
						Error: "admin role required",
					})
				}
				return next(c)
			case ports.SessionUnknown:
				return c.JSON(http.StatusServiceUnavailable, guardResponse{
					Error: "session validation pending",
					Hint:  "POST /api/session/refresh",
				})
			default:
				return c.JSON(http.StatusUnauthorized, guardResponse{
					Error: "authentication required",
					Hint:  "POST /api/session/login",
				})
			}
		}
	}
}
