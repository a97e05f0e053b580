package ports

import (
	"context"

	"github.com/cookouthq/cookout-api/internal/core/domain"
)

// UserStore defines the persistence contract for users. Credential
// validation lives here so callers never see password hashes move.
type UserStore interface {
	// FindByCredentials returns the user matching username whose password
	// verifies against password. ErrInvalidCredentials on mismatch,
	// ErrUserNotFound when no such username exists.
	FindByCredentials(ctx context.Context, username, password string) (*domain.User, error)

	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// Create persists a new user with a freshly hashed credential.
	// ErrUserExists when the username is taken.
	Create(ctx context.Context, username, password, role, email string) (*domain.User, error)

	// UpdatePassword replaces the stored credential for user.
	UpdatePassword(ctx context.Context, user *domain.User, newPassword string) error
}
