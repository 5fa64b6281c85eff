// Package common defines shared constants and sentinel errors used across
// the caseflow layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorValidation    = errors.New("validation error")

	// Auth errors. ErrInvalidToken covers every token failure sub-case
	// (malformed, bad signature, expired, wrong algorithm) so callers cannot
	// distinguish them; the detailed cause goes to server-side logs only.
	ErrInvalidToken      = errors.New("invalid token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")

	// Credential hashing errors (malformed hash encoding or internal
	// hashing failure). Never carries password content.
	ErrInvalidHash = errors.New("invalid password hash encoding")
)
