package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cookouthq/cookout-api/internal/core/domain"
)

type fakeProvider struct {
	user *domain.User
}

func (f *fakeProvider) IsLoggedIn() bool              { return f.user != nil }
func (f *fakeProvider) CurrentUser() *domain.User     { return f.user }
func (f *fakeProvider) LogOut()                       { f.user = nil }
func (f *fakeProvider) SignIn(context.Context, string, string) (bool, error) { return false, nil }
func (f *fakeProvider) Register(context.Context, string, string, string, string) (*domain.User, error) {
	return nil, nil
}
func (f *fakeProvider) ChangePassword(context.Context, string, string) (bool, error) {
	return false, nil
}
func (f *fakeProvider) HasRole(roles ...string) bool {
	if f.user == nil {
		return false
	}
	for _, role := range roles {
		if role == f.user.Role {
			return true
		}
	}
	return false
}

func runGuarded(t *testing.T, mw echo.MiddlewareFunc, provider *fakeProvider) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	e.GET("/guarded", handler, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if provider != nil {
				c.Set(ProviderKey, provider)
			}
			return next(c)
		}
	}, mw)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	cases := []struct {
		name     string
		provider *fakeProvider
		want     int
	}{
		{"no provider bound", nil, http.StatusUnauthorized},
		{"logged out", &fakeProvider{}, http.StatusUnauthorized},
		{"logged in", &fakeProvider{user: &domain.User{Username: "alice", Role: domain.RoleUser}}, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := runGuarded(t, RequireAuth(), tc.provider)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	host := &domain.User{Username: "bob", Role: domain.RoleHost}
	cases := []struct {
		name     string
		provider *fakeProvider
		roles    []string
		want     int
	}{
		{"logged out", &fakeProvider{}, []string{domain.RoleHost}, http.StatusUnauthorized},
		{"wrong role", &fakeProvider{user: host}, []string{domain.RoleChef}, http.StatusForbidden},
		{"matching role", &fakeProvider{user: host}, []string{domain.RoleChef, domain.RoleHost}, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := runGuarded(t, RequireRole(tc.roles...), tc.provider)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}
