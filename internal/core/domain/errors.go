package domain

import "errors"

// Common errors returned by domain operations. Callers should match these
// with errors.Is rather than comparing message strings.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrIndexingDisabled indicates a write was attempted while the
	// index is switched off. Reads are not affected.
	ErrIndexingDisabled = errors.New("indexing is disabled")

	// ErrInvalidInput indicates a request carried data that cannot be
	// accepted, such as an empty item identifier.
	ErrInvalidInput = errors.New("invalid input")
)
