package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cookouthq/cookout-api/internal/api/metrics"
	"github.com/cookouthq/cookout-api/internal/core/domain"
)

// AuthHandler exposes the account endpoints. It carries no state of its own:
// the AuthProvider it talks to is rebound to every request by the session
// middleware.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  response
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	provider, err := authProvider(c)
	if err != nil {
		return err
	}

	user, err := provider.Register(c.Request().Context(), req.Username, req.Password, req.Role, req.Email)
	if err != nil {
		if err == domain.ErrUserExists {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, response{Data: user})
}

// Login signs the user in and binds them to the session.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  response
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	provider, err := authProvider(c)
	if err != nil {
		return err
	}

	ok, err := provider.SignIn(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	if !ok {
		metrics.SignInsTotal.WithLabelValues("failure").Inc()
		return domain.ErrInvalidCredentials
	}

	metrics.SignInsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, response{Data: provider.CurrentUser()})
}

// Logout clears the session. Safe to call when nobody is signed in.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	provider, err := authProvider(c)
	if err != nil {
		return err
	}

	provider.LogOut()
	return c.JSON(http.StatusOK, response{Data: map[string]string{"message": "logged out"}})
}

// ChangePassword updates the signed-in user's password. A missing session
// and a wrong current password both yield the same 400; callers are not
// told which check failed.
//
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  response
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	provider, err := authProvider(c)
	if err != nil {
		return err
	}

	ok, err := provider.ChangePassword(c.Request().Context(), req.CurrentPassword, req.NewPassword)
	if err != nil {
		return err
	}
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "password change failed")
	}

	return c.JSON(http.StatusOK, response{Data: map[string]string{"message": "password updated"}})
}

// Me returns the signed-in user.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Data: user})
}
