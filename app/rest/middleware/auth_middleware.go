package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"blog-service/app/port"
)

// AuthMiddleware gates write endpoints on the ambient session state
type AuthMiddleware struct {
	sessions port.SessionPublisher
	logger   *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(sessions port.SessionPublisher, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		logger:   logger,
	}
}

// RequireSignIn rejects requests while no identity is signed in. Before the
// initial session fetch has resolved the service answers 503 rather than
// guessing at the session state.
func (m *AuthMiddleware) RequireSignIn() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state := m.sessions.Current()

			if !state.Ready {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "session state not resolved yet")
			}
			if state.Identity == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			c.Set("identity_id", state.Identity.ID)
			c.Set("identity_email", state.Identity.Email)

			return next(c)
		}
	}
}

// OptionalSignIn attaches the identity when one is signed in and lets the
// request through either way
func (m *AuthMiddleware) OptionalSignIn() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state := m.sessions.Current()

			if state.Ready && state.Identity != nil {
				c.Set("identity_id", state.Identity.ID)
				c.Set("identity_email", state.Identity.Email)
			}

			return next(c)
		}
	}
}
