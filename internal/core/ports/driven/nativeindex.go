package driven

import (
	"context"

	"github.com/portico-apps/searchkit/internal/core/domain"
)

// NativeIndex mirrors engine contents into the operating system's search
// service so OS-level search surfaces app content. The engine remains the
// source of truth; native registration is best effort and failures never
// roll back engine state.
type NativeIndex interface {
	// Platform reports which native search service this adapter targets.
	Platform() domain.Platform

	// Available reports whether the native service can be reached.
	Available() bool

	// Add registers or updates an item in the native index.
	Add(ctx context.Context, item domain.SearchableItem) error

	// Remove deletes an item from the native index by ID.
	Remove(ctx context.Context, id string) error

	// RemoveDomain deletes every item in a logical grouping from the
	// native index.
	RemoveDomain(ctx context.Context, domainName string) error

	// Clear empties the native index.
	Clear(ctx context.Context) error
}
