package repository

import "errors"

// Sentinel errors shared by all repository implementations. The application
// layer translates these into its request-facing error kinds.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)
