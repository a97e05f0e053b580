package service

import (
	"context"
	"errors"

	"github.com/cookouthq/cookout-api/internal/core/domain"
	"github.com/cookouthq/cookout-api/internal/core/ports"
)

// UserKey is the session context key under which the authenticated user is
// stored for the lifetime of a request.
const UserKey = "appCurrentUser"

// AuthProvider binds authentication state to a single request's session
// context. One instance is built per inbound request and never shared, so no
// locking is needed; the UserStore is the only shared collaborator.
type AuthProvider struct {
	session ports.SessionContext
	users   ports.UserStore
}

func NewAuthProvider(session ports.SessionContext, users ports.UserStore) *AuthProvider {
	return &AuthProvider{session: session, users: users}
}

// IsLoggedIn reports whether the session context currently holds a user.
func (p *AuthProvider) IsLoggedIn() bool {
	return p.CurrentUser() != nil
}

// CurrentUser returns the session-bound user, or nil when nobody is signed
// in. Read-only; no side effects.
func (p *AuthProvider) CurrentUser() *domain.User {
	user, _ := p.session.Get(UserKey).(*domain.User)
	return user
}

// SignIn validates the credentials against the user store and binds the
// matched user to the session context. On a credential mismatch the context
// is left untouched and (false, nil) is returned; only storage failures
// surface as errors.
func (p *AuthProvider) SignIn(ctx context.Context, username, password string) (bool, error) {
	user, err := p.users.FindByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	p.session.Set(UserKey, user)
	return true, nil
}

// LogOut removes the user entry from the session context. Idempotent.
func (p *AuthProvider) LogOut() {
	p.session.Remove(UserKey)
}

// Register delegates account creation to the user store. A duplicate
// username surfaces as domain.ErrUserExists and is propagated, not
// swallowed; registration never touches the session context.
func (p *AuthProvider) Register(ctx context.Context, username, password, role, email string) (*domain.User, error) {
	return p.users.Create(ctx, username, password, role, email)
}

// ChangePassword re-validates the logged-in user's current password and, only
// on success, stores the new one. It returns (false, nil) both when nobody
// is logged in and when the current password does not verify; the two cases
// are intentionally indistinguishable to callers.
func (p *AuthProvider) ChangePassword(ctx context.Context, currentPassword, newPassword string) (bool, error) {
	current := p.CurrentUser()
	if current == nil {
		return false, nil
	}

	validated, err := p.users.FindByCredentials(ctx, current.Username, currentPassword)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := p.users.UpdatePassword(ctx, validated, newPassword); err != nil {
		return false, err
	}
	return true, nil
}

// HasRole reports whether a user is logged in and their role exactly matches
// one of roles. A nil or empty allow list always yields false.
func (p *AuthProvider) HasRole(roles ...string) bool {
	user := p.CurrentUser()
	if user == nil {
		return false
	}
	for _, role := range roles {
		if user.Role == role {
			return true
		}
	}
	return false
}
