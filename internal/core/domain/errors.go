package domain

import "errors"

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("access forbidden")
	ErrInternal        = errors.New("internal error")

	// Credential resolution failures. The guard folds all of them into
	// ErrUnauthenticated.
	ErrInvalidToken    = errors.New("invalid token")
	ErrSessionNotFound = errors.New("session not found")
)
