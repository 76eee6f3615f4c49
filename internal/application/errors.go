package application

import "errors"

// Request-facing error kinds. Every service failure maps to exactly one of
// these; handlers translate them to HTTP statuses. All are terminal for the
// current request.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login responses cannot be used for account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated covers every bearer-token failure (missing,
	// malformed, bad signature, expired, unknown or inactive subject).
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden means the caller is authenticated but fails an ownership
	// or visibility check against an existing resource.
	ErrForbidden = errors.New("forbidden")

	ErrNotFound = errors.New("not found")

	// ErrConflict covers duplicate registration emails and duplicate RSVPs
	// for the same (user, event) pair.
	ErrConflict = errors.New("conflict")

	// ErrInvalidStatus rejects RSVP statuses outside going/maybe/not_going.
	// Request binding normally catches this first; the service check is the
	// backstop for non-HTTP callers.
	ErrInvalidStatus = errors.New("invalid rsvp status")
)
