// Package common defines shared constants and sentinel errors used across
// credkeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Registration validation errors. Messages are user-facing.
	ErrorEmailPasswordRequired = errors.New("email and password are required")
	ErrorInvalidEmailFormat    = errors.New("email is invalid")
	ErrorInvalidPasswordFormat = errors.New("password must be at least 6 characters")

	// Credential errors. A single sentinel covers both unknown email and
	// wrong password so callers cannot tell the two cases apart.
	ErrorIncorrectCredentials = errors.New("incorrect email or password")

	// Access-guard errors.
	ErrNoToken      = errors.New("no token provided")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
