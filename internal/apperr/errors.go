// Package apperr defines sentinel errors shared across the service layers.
package apperr

import "errors"

var (
	// ErrNotFound marks a missing record (news id, service index).
	ErrNotFound = errors.New("not found")
	// ErrInvalid marks client-supplied data that failed validation or
	// serialization. Handlers map it to a 400 response.
	ErrInvalid = errors.New("invalid data")
	// ErrUnauthorized marks a request without a valid admin session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrStorage marks a fatal upload-backend configuration problem, e.g.
	// remote storage required in a managed deployment but unreachable.
	ErrStorage = errors.New("storage unavailable")
)
