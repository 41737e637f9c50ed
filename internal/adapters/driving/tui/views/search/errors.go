package search

import "errors"

// Error definitions for the search view.
var (
	// ErrNoIndexService indicates that no index service was provided.
	ErrNoIndexService = errors.New("index service is required")
)
