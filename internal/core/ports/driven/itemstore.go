package driven

import (
	"context"
	"time"

	"github.com/portico-apps/searchkit/internal/core/domain"
)

// ItemStore persists searchable items keyed by ID.
// Implementations must preserve insertion order: List returns items in
// the order they first entered the store, with replacements keeping the
// original position.
type ItemStore interface {
	// Save stores or updates an item keyed by its ID.
	Save(ctx context.Context, item domain.SearchableItem) error

	// Get retrieves an item by ID.
	// Returns domain.ErrNotFound if no item has that ID.
	Get(ctx context.Context, id string) (*domain.SearchableItem, error)

	// Delete removes an item by ID.
	// Returns domain.ErrNotFound if no item has that ID.
	Delete(ctx context.Context, id string) error

	// DeleteByDomain removes every item in a logical grouping.
	// Returns the removed items so callers can adjust derived state.
	DeleteByDomain(ctx context.Context, domainName string) ([]domain.SearchableItem, error)

	// DeleteExpired removes every item expired at the given instant.
	// Returns the removed items so callers can adjust derived state.
	DeleteExpired(ctx context.Context, now time.Time) ([]domain.SearchableItem, error)

	// List returns all items in insertion order.
	List(ctx context.Context) ([]domain.SearchableItem, error)

	// Count returns the number of stored items.
	Count(ctx context.Context) (int, error)

	// Clear removes all items.
	Clear(ctx context.Context) error
}
