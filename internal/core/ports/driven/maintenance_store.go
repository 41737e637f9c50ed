package driven

import (
	"context"

	"github.com/portico-apps/searchkit/internal/core/domain"
)

// MaintenanceStore persists maintenance task state and execution history
// so restarts pick up schedules where they left off.
type MaintenanceStore interface {
	// GetTask retrieves a maintenance task by ID.
	// Returns nil and no error if the task does not exist.
	GetTask(ctx context.Context, taskID string) (*domain.MaintenanceTask, error)

	// ListTasks returns all maintenance tasks.
	ListTasks(ctx context.Context) ([]domain.MaintenanceTask, error)

	// SaveTask persists a task's state.
	// Creates or updates the task based on ID.
	SaveTask(ctx context.Context, task *domain.MaintenanceTask) error

	// DeleteTask removes a task from storage.
	DeleteTask(ctx context.Context, taskID string) error

	// RecordResult logs a task execution result.
	RecordResult(ctx context.Context, result *domain.TaskResult) error

	// GetTaskHistory returns recent results for a task.
	// Results are ordered by start time descending (most recent first).
	GetTaskHistory(ctx context.Context, taskID string, limit int) ([]domain.TaskResult, error)

	// PruneHistory removes old task results beyond the retention limit.
	// Keeps the most recent 'keep' results per task.
	PruneHistory(ctx context.Context, keep int) error
}
