package driving

import (
	"context"

	"github.com/portico-apps/searchkit/internal/core/domain"
)

// Index is the engine surface exposed to host applications. It owns the
// item collection and its statistics; hosts only ever receive copies and
// must go through these methods to mutate index state.
type Index interface {
	// IndexItem adds or replaces one item, keyed by its ID.
	// Returns domain.ErrIndexingDisabled when indexing is switched off.
	IndexItem(ctx context.Context, item domain.SearchableItem) error

	// RemoveItem removes the item with the given ID.
	// Reports whether anything was removed; a missing ID is not an error.
	RemoveItem(ctx context.Context, id string) (bool, error)

	// RemoveItemsInDomain removes every item in a logical grouping and
	// returns how many were removed.
	RemoveItemsInDomain(ctx context.Context, domainName string) (int, error)

	// RemoveExpiredItems sweeps out every expired item and returns how
	// many were removed.
	RemoveExpiredItems(ctx context.Context) (int, error)

	// ClearIndex drops all items and resets statistics.
	ClearIndex(ctx context.Context) error

	// GetItem retrieves a copy of an item by ID.
	// Returns domain.ErrNotFound if no item has that ID.
	GetItem(ctx context.Context, id string) (*domain.SearchableItem, error)

	// Search scans the index and returns scored, filtered results.
	// No matches is a normal outcome, never an error. A disabled index
	// returns an empty result set.
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.SearchResult, error)

	// Stats returns a copy of the current index statistics.
	Stats() domain.IndexStats

	// ItemCount returns the number of items currently indexed.
	ItemCount(ctx context.Context) (int, error)

	// ReconcileStats recomputes statistics from the item store and
	// repairs any drift. Reports whether a repair was needed.
	ReconcileStats(ctx context.Context) (bool, error)

	// SetEnabled switches indexing on or off. While off, IndexItem fails
	// and Search reports no results; the stored items are kept.
	SetEnabled(enabled bool)

	// Enabled reports whether indexing is switched on.
	Enabled() bool

	// Platform reports the native search service detected on this host.
	Platform() domain.Platform
}
