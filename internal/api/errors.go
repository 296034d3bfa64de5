package api

import "errors"

var (
	// ErrInvalidCredentials means the server rejected the login credentials.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken means the server issued an access token the client
	// cannot decode. This is an integration bug, not user error, and is
	// logged loudly.
	ErrInvalidToken = errors.New("server issued an unreadable access token")

	// ErrValidation means a required argument was missing or empty; no
	// network call was made.
	ErrValidation = errors.New("validation failed")

	// ErrNotAuthenticated means the operation requires a logged-in session.
	ErrNotAuthenticated = errors.New("not logged in")
)
