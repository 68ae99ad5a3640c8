// Package common defines shared constants and sentinel errors used across
// the layers of the study-notes server. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Ownership-check failure. Deliberately covers both "row does not exist"
	// and "row belongs to another user" so callers cannot tell them apart.
	ErrorForbidden = errors.New("forbidden")

	// Auth errors. ErrorInvalidCredentials covers unknown email and wrong
	// password alike, so login responses do not enumerate users.
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid token")

	// Token lifecycle errors.
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
