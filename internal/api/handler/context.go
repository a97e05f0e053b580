package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cookouthq/cookout-api/internal/core/domain"
	"github.com/cookouthq/cookout-api/internal/core/ports"

	"github.com/cookouthq/cookout-api/internal/api/middleware"
)

// authProvider extracts the request-bound AuthProvider installed by the
// session middleware. Its absence means the route was wired without that
// middleware, which is a server bug, not a client error.
func authProvider(c echo.Context) (ports.AuthProvider, error) {
	provider, ok := middleware.Provider(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "auth provider not bound")
	}
	return provider, nil
}

// currentUser returns the signed-in user or the canonical 401.
func currentUser(c echo.Context) (*domain.User, error) {
	provider, err := authProvider(c)
	if err != nil {
		return nil, err
	}
	user := provider.CurrentUser()
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
	}
	return user, nil
}
