package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cookouthq/cookout-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not the JSON envelope: %v", err)
	}
	return rec, body.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"event not found", domain.ErrEventNotFound, http.StatusBadRequest, "event not found"},
		{"address not found", domain.ErrAddressNotFound, http.StatusBadRequest, "invalid address"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"duplicate entry", domain.ErrDuplicateEntry, http.StatusBadRequest, "duplicate entry"},
		{"invite not found", domain.ErrInviteNotFound, http.StatusNotFound, "invite not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, msg := renderError(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if msg != tc.message {
				t.Fatalf("expected %q, got %q", tc.message, msg)
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("lookup failed"), domain.ErrEventNotFound)
	rec, msg := renderError(t, wrapped)
	if rec.Code != http.StatusBadRequest || msg != "event not found" {
		t.Fatalf("wrapped error not resolved: %d %q", rec.Code, msg)
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	rec, msg := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "unknown user"))
	if rec.Code != http.StatusUnauthorized || msg != "unknown user" {
		t.Fatalf("echo error not passed through: %d %q", rec.Code, msg)
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	rec, msg := renderError(t, errors.New("mongo exploded"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal details leaked: %q", msg)
	}
}
