package driving

import "context"

// Maintenance manages background index upkeep, such as the periodic
// sweep that removes expired items.
type Maintenance interface {
	// Start begins running maintenance tasks.
	// Blocks until context is cancelled or an error occurs.
	Start(ctx context.Context) error

	// Stop gracefully stops all running tasks.
	Stop() error
}
