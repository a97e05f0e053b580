package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cookouthq/cookout-api/internal/api/middleware"
	"github.com/cookouthq/cookout-api/internal/core/domain"
)

// stubProvider records calls and returns whatever the test configured.
type stubProvider struct {
	user *domain.User

	signInOK   bool
	signInErr  error
	registered *domain.User
	regErr     error
	changeOK   bool
	changeErr  error

	signInUsername string
	signInPassword string
	loggedOut      bool
	changeCurrent  string
	changeNew      string
}

func (s *stubProvider) IsLoggedIn() bool          { return s.user != nil }
func (s *stubProvider) CurrentUser() *domain.User { return s.user }
func (s *stubProvider) LogOut()                   { s.loggedOut = true; s.user = nil }

func (s *stubProvider) SignIn(_ context.Context, username, password string) (bool, error) {
	s.signInUsername = username
	s.signInPassword = password
	if s.signInOK {
		s.user = &domain.User{Username: username}
	}
	return s.signInOK, s.signInErr
}

func (s *stubProvider) Register(_ context.Context, username, password, role, email string) (*domain.User, error) {
	return s.registered, s.regErr
}

func (s *stubProvider) ChangePassword(_ context.Context, current, newPassword string) (bool, error) {
	s.changeCurrent = current
	s.changeNew = newPassword
	return s.changeOK, s.changeErr
}

func (s *stubProvider) HasRole(roles ...string) bool { return false }

func newAuthContext(t *testing.T, method, body string, provider *stubProvider) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if provider != nil {
		c.Set(middleware.ProviderKey, provider)
	}
	return c, rec
}

func TestAuthHandler_Register(t *testing.T) {
	provider := &stubProvider{registered: &domain.User{ID: "u1", Username: "alice", Role: domain.RoleUser}}
	body := `{"username":"alice","password":"longenough","role":"user","email":"alice@example.org"}`
	c, rec := newAuthContext(t, http.MethodPost, body, provider)

	if err := NewAuthHandler().Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var got struct {
		Data domain.User `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if got.Data.Username != "alice" {
		t.Fatalf("unexpected user in response: %+v", got.Data)
	}
}

func TestAuthHandler_RegisterDuplicate(t *testing.T) {
	provider := &stubProvider{regErr: domain.ErrUserExists}
	body := `{"username":"alice","password":"longenough","role":"user","email":"alice@example.org"}`
	c, _ := newAuthContext(t, http.MethodPost, body, provider)

	err := NewAuthHandler().Register(c)
	if err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"short password", `{"username":"alice","password":"short","role":"user","email":"a@b.org"}`},
		{"bad email", `{"username":"alice","password":"longenough","role":"user","email":"nope"}`},
		{"missing role", `{"username":"alice","password":"longenough","email":"a@b.org"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newAuthContext(t, http.MethodPost, tc.body, &stubProvider{})
			err := NewAuthHandler().Register(c)
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	provider := &stubProvider{signInOK: true}
	c, rec := newAuthContext(t, http.MethodPost, `{"username":"alice","password":"pw"}`, provider)

	if err := NewAuthHandler().Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if provider.signInUsername != "alice" || provider.signInPassword != "pw" {
		t.Fatalf("credentials not forwarded: %q/%q", provider.signInUsername, provider.signInPassword)
	}
}

func TestAuthHandler_LoginRejected(t *testing.T) {
	provider := &stubProvider{signInOK: false}
	c, _ := newAuthContext(t, http.MethodPost, `{"username":"alice","password":"wrong"}`, provider)

	err := NewAuthHandler().Login(c)
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	provider := &stubProvider{user: &domain.User{Username: "alice"}}
	c, rec := newAuthContext(t, http.MethodPost, "", provider)

	if err := NewAuthHandler().Logout(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !provider.loggedOut {
		t.Fatal("LogOut not called")
	}
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	provider := &stubProvider{changeOK: true}
	body := `{"current_password":"oldpass","new_password":"newlongpass"}`
	c, rec := newAuthContext(t, http.MethodPut, body, provider)

	if err := NewAuthHandler().ChangePassword(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if provider.changeCurrent != "oldpass" || provider.changeNew != "newlongpass" {
		t.Fatalf("passwords not forwarded: %q/%q", provider.changeCurrent, provider.changeNew)
	}
}

func TestAuthHandler_ChangePasswordRefused(t *testing.T) {
	// Anonymous callers and wrong current passwords both land here; the
	// response does not say which check failed.
	provider := &stubProvider{changeOK: false}
	body := `{"current_password":"wrong","new_password":"newlongpass"}`
	c, _ := newAuthContext(t, http.MethodPut, body, provider)

	err := NewAuthHandler().ChangePassword(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	provider := &stubProvider{user: &domain.User{Username: "alice"}}
	c, rec := newAuthContext(t, http.MethodGet, "", provider)

	if err := NewAuthHandler().Me(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_MeAnonymous(t *testing.T) {
	c, _ := newAuthContext(t, http.MethodGet, "", &stubProvider{})

	err := NewAuthHandler().Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
