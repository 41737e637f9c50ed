package driving

import (
	"context"

	"github.com/portico-apps/searchkit/internal/core/domain"
)

// Importer performs bulk index operations, aggregating per-item outcomes
// into one report instead of aborting at the first bad record.
type Importer interface {
	// Import indexes every item in the batch and reports how it went.
	Import(ctx context.Context, items []domain.SearchableItem) domain.BatchResult
}
