// Package apperr defines the sentinel errors shared across store, auth and
// HTTP layers. Callers should use errors.Is to match these values.
package apperr

import "errors"

var (
	// ErrValidation marks a draft or patch with missing or malformed
	// required fields.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an unknown point or suggestion id.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized marks a request without a valid admin session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials marks a failed login. The message never says
	// whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrStorage marks an I/O failure reading or writing a backing file.
	ErrStorage = errors.New("storage failure")
)
