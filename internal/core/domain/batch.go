package domain

import "time"

// BatchStatus represents the lifecycle state of a bulk index operation.
type BatchStatus string

const (
	BatchStatusPending    BatchStatus = "pending"
	BatchStatusInProgress BatchStatus = "in_progress"
	BatchStatusCompleted  BatchStatus = "completed"
	BatchStatusFailed     BatchStatus = "failed"
)

// IsValid checks if the batch status is one of the supported values.
func (b BatchStatus) IsValid() bool {
	switch b {
	case BatchStatusPending, BatchStatusInProgress,
		BatchStatusCompleted, BatchStatusFailed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the batch status.
func (b BatchStatus) String() string {
	return string(b)
}

// IsTerminal reports whether the batch has finished, successfully or not.
func (b BatchStatus) IsTerminal() bool {
	return b == BatchStatusCompleted || b == BatchStatusFailed
}

// BatchResult reports the outcome of a bulk index operation. Individual
// item failures are counted rather than aborting the batch, so a single
// bad record cannot sink a large import.
type BatchResult struct {
	// SuccessCount is the number of items indexed successfully.
	SuccessCount int

	// FailureCount is the number of items that could not be indexed.
	FailureCount int

	// Status is the final lifecycle state of the batch.
	Status BatchStatus

	// ErrorMessage describes the first failure encountered, empty when
	// every item succeeded.
	ErrorMessage string

	// Duration is how long the batch took end to end.
	Duration time.Duration
}

// TotalCount returns the number of items the batch attempted.
func (r BatchResult) TotalCount() int {
	return r.SuccessCount + r.FailureCount
}

// SuccessRate returns the fraction of attempted items that succeeded,
// between 0 and 1. An empty batch reports zero.
func (r BatchResult) SuccessRate() float64 {
	total := r.TotalCount()
	if total == 0 {
		return 0
	}
	return float64(r.SuccessCount) / float64(total)
}
