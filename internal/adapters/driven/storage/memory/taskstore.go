package memory

import (
	"context"
	"sync"

	"github.com/portico-apps/searchkit/internal/core/domain"
	"github.com/portico-apps/searchkit/internal/core/ports/driven"
)

// Ensure MaintenanceStore implements the interface.
var _ driven.MaintenanceStore = (*MaintenanceStore)(nil)

// MaintenanceStore is an in-memory implementation of driven.MaintenanceStore.
type MaintenanceStore struct {
	mu      sync.RWMutex
	tasks   map[string]domain.MaintenanceTask
	history map[string][]domain.TaskResult
}

// NewMaintenanceStore creates a new in-memory maintenance store.
func NewMaintenanceStore() *MaintenanceStore {
	return &MaintenanceStore{
		tasks:   make(map[string]domain.MaintenanceTask),
		history: make(map[string][]domain.TaskResult),
	}
}

// GetTask retrieves a maintenance task by ID.
func (s *MaintenanceStore) GetTask(_ context.Context, taskID string) (*domain.MaintenanceTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.tasks[taskID]
	if !ok {
		return nil, nil
	}
	return &task, nil
}

// ListTasks returns all maintenance tasks.
func (s *MaintenanceStore) ListTasks(_ context.Context) ([]domain.MaintenanceTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tasks := make([]domain.MaintenanceTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// SaveTask persists a task's state.
func (s *MaintenanceStore) SaveTask(_ context.Context, task *domain.MaintenanceTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID] = *task
	return nil
}

// DeleteTask removes a task from storage.
func (s *MaintenanceStore) DeleteTask(_ context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, taskID)
	delete(s.history, taskID)
	return nil
}

// RecordResult logs a task execution result.
func (s *MaintenanceStore) RecordResult(_ context.Context, result *domain.TaskResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Most recent first
	s.history[result.TaskID] = append([]domain.TaskResult{*result}, s.history[result.TaskID]...)
	return nil
}

// GetTaskHistory returns recent results for a task, most recent first.
func (s *MaintenanceStore) GetTaskHistory(_ context.Context, taskID string, limit int) ([]domain.TaskResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results := s.history[taskID]
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	out := make([]domain.TaskResult, len(results))
	copy(out, results)
	return out, nil
}

// PruneHistory removes old task results beyond the retention limit.
func (s *MaintenanceStore) PruneHistory(_ context.Context, keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if keep < 0 {
		keep = 0
	}
	for taskID, results := range s.history {
		if len(results) > keep {
			s.history[taskID] = results[:keep]
		}
	}
	return nil
}
