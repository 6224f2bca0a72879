package domain

import "errors"

var (
	// ErrEmailExists is returned when registering with an email that is
	// already taken.
	ErrEmailExists = errors.New("email already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; login never distinguishes the two.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound covers every token-verification failure: bad
	// signature, expired token, or a user that no longer exists.
	ErrUserNotFound = errors.New("user does not exist")

	// ErrLeadNotFound is returned by any owner-scoped lead lookup that
	// matches no row.
	ErrLeadNotFound = errors.New("lead does not exist")
)
