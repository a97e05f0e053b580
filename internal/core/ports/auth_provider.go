package ports

import (
	"context"

	"github.com/cookouthq/cookout-api/internal/core/domain"
)

// AuthProvider gates domain operations on "is someone logged in", "who", and
// "do they hold one of these roles", and performs the login/logout/register/
// change-password transitions against the request's SessionContext.
type AuthProvider interface {
	IsLoggedIn() bool
	CurrentUser() *domain.User

	// SignIn validates credentials via the UserStore and, on success, binds
	// the user to the session context. A failed sign-in never mutates the
	// context. The returned error carries storage failures only.
	SignIn(ctx context.Context, username, password string) (bool, error)

	// LogOut removes the bound user unconditionally. Idempotent.
	LogOut()

	// Register creates a new account. domain.ErrUserExists propagates when
	// the username is already taken.
	Register(ctx context.Context, username, password, role, email string) (*domain.User, error)

	// ChangePassword verifies the logged-in user's current password and, only
	// then, stores newPassword. It reports false both when nobody is logged
	// in and when verification fails; callers cannot tell the two apart.
	ChangePassword(ctx context.Context, currentPassword, newPassword string) (bool, error)

	// HasRole reports whether the logged-in user's role exactly matches one
	// of roles. An empty allow list is always false.
	HasRole(roles ...string) bool
}
