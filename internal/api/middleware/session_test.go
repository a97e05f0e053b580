package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cookouthq/cookout-api/internal/core/domain"
)

type stubUserStore struct {
	users map[string]*domain.User
}

func newStubUserStore(users ...*domain.User) *stubUserStore {
	s := &stubUserStore{users: make(map[string]*domain.User)}
	for _, u := range users {
		s.users[u.Username] = u
	}
	return s
}

func (s *stubUserStore) FindByCredentials(_ context.Context, username, password string) (*domain.User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if password != "correct" {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

func (s *stubUserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserStore) Create(_ context.Context, username, password, role, email string) (*domain.User, error) {
	if _, ok := s.users[username]; ok {
		return nil, domain.ErrUserExists
	}
	u := &domain.User{ID: username, Username: username, Role: role, Email: email}
	s.users[username] = u
	return u, nil
}

func (s *stubUserStore) UpdatePassword(_ context.Context, user *domain.User, newPassword string) error {
	return nil
}

func newSessionApp(users *stubUserStore) *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))
	e.Use(Session(users, zerolog.Nop()))

	e.POST("/login", func(c echo.Context) error {
		provider, _ := Provider(c)
		ok, err := provider.SignIn(c.Request().Context(), "alice", c.QueryParam("password"))
		if err != nil {
			return err
		}
		if !ok {
			return c.NoContent(http.StatusUnauthorized)
		}
		return c.NoContent(http.StatusOK)
	})
	e.POST("/logout", func(c echo.Context) error {
		provider, _ := Provider(c)
		provider.LogOut()
		return c.NoContent(http.StatusOK)
	})
	e.GET("/me", func(c echo.Context) error {
		provider, _ := Provider(c)
		user := provider.CurrentUser()
		if user == nil {
			return c.NoContent(http.StatusUnauthorized)
		}
		return c.String(http.StatusOK, user.Username)
	})
	return e
}

func TestSessionMiddleware_AnonymousRequest(t *testing.T) {
	e := newSessionApp(newStubUserStore())

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with no prior sign-in, got %d", rec.Code)
	}
}

func TestSessionMiddleware_SignInRoundTrip(t *testing.T) {
	alice := &domain.User{ID: "u1", Username: "alice", Role: domain.RoleUser}
	e := newSessionApp(newStubUserStore(alice))

	// Sign in; the response must carry the session cookie.
	req := httptest.NewRequest(http.MethodPost, "/login?password=correct", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("expected a session cookie")
	}

	// Replay the cookie: the next request rehydrates the user.
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected rehydrated session, got %d", rec.Code)
	}
	if rec.Body.String() != "alice" {
		t.Fatalf("unexpected user: %q", rec.Body.String())
	}
}

func TestSessionMiddleware_FailedSignInSetsNoIdentity(t *testing.T) {
	alice := &domain.User{ID: "u1", Username: "alice"}
	e := newSessionApp(newStubUserStore(alice))

	req := httptest.NewRequest(http.MethodPost, "/login?password=wrong", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	// Whatever cookies came back, they must not resolve to a user.
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after failed sign-in, got %d", rec.Code)
	}
}

func TestSessionMiddleware_LogoutClearsSession(t *testing.T) {
	alice := &domain.User{ID: "u1", Username: "alice"}
	e := newSessionApp(newStubUserStore(alice))

	req := httptest.NewRequest(http.MethodPost, "/login?password=correct", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	loginCookies := rec.Result().Cookies()

	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	for _, c := range loginCookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout failed: %d", rec.Code)
	}

	// The logout response replaces the cookie with an expired one.
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge > 0 {
			req.AddCookie(c)
		}
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected logged out, got %d", rec.Code)
	}
}
