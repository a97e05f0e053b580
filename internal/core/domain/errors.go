package domain

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEventNotFound   = errors.New("event not found")
	ErrAddressNotFound = errors.New("address not found")
	ErrInviteNotFound  = errors.New("invite not found")
	ErrDuplicateEntry  = errors.New("duplicate entry")
)
