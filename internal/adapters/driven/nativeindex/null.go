package nativeindex

import (
	"context"

	"github.com/portico-apps/searchkit/internal/core/domain"
	"github.com/portico-apps/searchkit/internal/core/ports/driven"
)

// Ensure NullIndex implements the NativeIndex interface.
var _ driven.NativeIndex = (*NullIndex)(nil)

// NullIndex is for platforms without a native search service.
// The engine runs self-contained and every mirror call is a no-op.
type NullIndex struct{}

// NewNullIndex creates a native index for platforms with no search service.
func NewNullIndex() *NullIndex {
	return &NullIndex{}
}

// Platform returns PlatformUnknown since there is no service behind it.
func (n *NullIndex) Platform() domain.Platform {
	return domain.PlatformUnknown
}

// Available always returns false so the engine skips mirror calls entirely.
func (n *NullIndex) Available() bool {
	return false
}

// Add does nothing.
func (n *NullIndex) Add(_ context.Context, _ domain.SearchableItem) error {
	return nil
}

// Remove does nothing.
func (n *NullIndex) Remove(_ context.Context, _ string) error {
	return nil
}

// RemoveDomain does nothing.
func (n *NullIndex) RemoveDomain(_ context.Context, _ string) error {
	return nil
}

// Clear does nothing.
func (n *NullIndex) Clear(_ context.Context) error {
	return nil
}
