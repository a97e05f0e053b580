package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cookouthq/cookout-api/internal/core/ports"
)

// Provider extracts the request-bound AuthProvider installed by Session.
func Provider(c echo.Context) (ports.AuthProvider, bool) {
	provider, ok := c.Get(ProviderKey).(ports.AuthProvider)
	return provider, ok
}

// RequireAuth rejects requests with no signed-in user. The message mirrors
// the error body the event endpoints historically returned for this case.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			provider, ok := Provider(c)
			if !ok || !provider.IsLoggedIn() {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
			}
			return next(c)
		}
	}
}

// RequireRole enforces role-based access control on top of RequireAuth.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			provider, ok := Provider(c)
			if !ok || !provider.IsLoggedIn() {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
			}
			if !provider.HasRole(allowedRoles...) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
