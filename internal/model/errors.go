package model

import "errors"

var (
	// ErrNotFound is returned when a row does not exist or is not owned
	// by the requesting user.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned when registering an email that already
	// has an account.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidCredentials is returned on login for unknown email and
	// wrong password alike, so accounts cannot be enumerated.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
