package bridge

import "errors"

// ErrMissingIndex is returned when the index service is not provided.
var ErrMissingIndex = errors.New("bridge: index service is required")

// ErrMissingImporter is returned when the importer is not provided.
var ErrMissingImporter = errors.New("bridge: importer is required")

// ErrUnknownMethod is returned for method names the bridge does not know.
var ErrUnknownMethod = errors.New("bridge: unknown method")

// ErrBadPayload is returned when a payload cannot be decoded.
var ErrBadPayload = errors.New("bridge: malformed payload")
