package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/portico-apps/searchkit/internal/core/domain"
	"github.com/portico-apps/searchkit/internal/core/ports/driven"
	"github.com/portico-apps/searchkit/internal/core/ports/driving"
)

// Ensure Maintenance implements the interface.
var _ driving.Maintenance = (*Maintenance)(nil)

// Maintenance runs background index upkeep: the periodic sweep that
// drops expired items and a consistency check over the statistics.
type Maintenance struct {
	config domain.MaintenanceConfig
	store  driven.MaintenanceStore
	index  driving.Index

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewMaintenance creates a maintenance runner with configuration.
func NewMaintenance(
	config domain.MaintenanceConfig,
	store driven.MaintenanceStore,
	index driving.Index,
) *Maintenance {
	return &Maintenance{
		config: config,
		store:  store,
		index:  index,
	}
}

// Start begins the maintenance loop. This method blocks until Stop is called.
func (m *Maintenance) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return nil // Already running
	}
	m.running = true
	m.stopCh = make(chan struct{})
	m.mu.Unlock()

	// Initialise tasks in store
	if err := m.initialiseTasks(ctx); err != nil {
		log.Printf("maintenance: failed to initialise tasks: %v", err)
	}

	// Run the main maintenance loop
	return m.run(ctx)
}

// Stop gracefully shuts down the maintenance loop.
func (m *Maintenance) Stop() error {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return nil
	}
	m.running = false
	close(m.stopCh)
	m.mu.Unlock()

	// Wait for running tasks to complete
	m.wg.Wait()

	return nil
}

// initialiseTasks ensures all configured tasks exist in the store.
func (m *Maintenance) initialiseTasks(ctx context.Context) error {
	if taskCfg := m.config.GetTaskConfig(domain.TaskIDExpirySweep); taskCfg.Enabled {
		if err := m.ensureTask(ctx, domain.TaskIDExpirySweep, "Expired item sweep", taskCfg); err != nil {
			return err
		}
	}

	if taskCfg := m.config.GetTaskConfig(domain.TaskIDStatsCheck); taskCfg.Enabled {
		if err := m.ensureTask(ctx, domain.TaskIDStatsCheck, "Statistics consistency check", taskCfg); err != nil {
			return err
		}
	}

	return nil
}

// ensureTask creates or updates a task in the store.
func (m *Maintenance) ensureTask(ctx context.Context, id, name string, cfg domain.TaskConfig) error {
	task, err := m.store.GetTask(ctx, id)
	if err != nil {
		return err
	}

	if task == nil {
		// Create new task
		task = &domain.MaintenanceTask{
			ID:       id,
			Name:     name,
			Interval: cfg.Interval,
			Enabled:  cfg.Enabled,
			NextRun:  time.Now().Add(cfg.Interval),
		}
	} else {
		// Update interval if changed
		if task.Interval != cfg.Interval {
			task.Interval = cfg.Interval
			// Recalculate next run from now
			task.NextRun = time.Now().Add(cfg.Interval)
		}
		task.Enabled = cfg.Enabled
	}

	return m.store.SaveTask(ctx, task)
}

// run is the main maintenance loop.
func (m *Maintenance) run(ctx context.Context) error {
	// Check for due tasks immediately on startup
	m.checkAndRunDueTasks(ctx)

	// Use a 1-minute ticker to check for due tasks
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.stopCh:
			return nil
		case <-ticker.C:
			m.checkAndRunDueTasks(ctx)
		}
	}
}

// checkAndRunDueTasks finds and executes tasks that are due.
func (m *Maintenance) checkAndRunDueTasks(ctx context.Context) {
	tasks, err := m.store.ListTasks(ctx)
	if err != nil {
		log.Printf("maintenance: failed to list tasks: %v", err)
		return
	}

	now := time.Now()
	for i := range tasks {
		task := &tasks[i]
		if !task.Enabled {
			continue
		}
		if task.NextRun.IsZero() || task.NextRun.Before(now) || task.NextRun.Equal(now) {
			m.runTask(ctx, task)
		}
	}
}

// runTask executes a single task.
func (m *Maintenance) runTask(ctx context.Context, task *domain.MaintenanceTask) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		result := &domain.TaskResult{
			ID:        uuid.New().String(),
			TaskID:    task.ID,
			StartedAt: time.Now(),
		}

		var err error
		switch task.ID {
		case domain.TaskIDExpirySweep:
			result.ItemsProcessed, err = m.runExpirySweep(ctx)
		case domain.TaskIDStatsCheck:
			result.ItemsProcessed, err = m.runStatsCheck(ctx)
		default:
			log.Printf("maintenance: unknown task ID: %s", task.ID)
			return
		}

		result.EndedAt = time.Now()
		if err != nil {
			result.Success = false
			result.Error = err.Error()
			task.LastError = err.Error()
		} else {
			result.Success = true
			task.LastError = ""
			task.LastSuccess = result.EndedAt
		}

		// Update task state
		task.LastRun = result.StartedAt
		task.NextRun = result.EndedAt.Add(task.Interval)

		if saveErr := m.store.SaveTask(ctx, task); saveErr != nil {
			log.Printf("maintenance: failed to save task %s: %v", task.ID, saveErr)
		}

		// Record result for history
		if recordErr := m.store.RecordResult(ctx, result); recordErr != nil {
			log.Printf("maintenance: failed to record result for %s: %v", task.ID, recordErr)
		}

		// Prune old history (keep last 100 results per task)
		if pruneErr := m.store.PruneHistory(ctx, 100); pruneErr != nil {
			log.Printf("maintenance: failed to prune history: %v", pruneErr)
		}
	}()
}

// runExpirySweep removes expired items from the index.
func (m *Maintenance) runExpirySweep(ctx context.Context) (int, error) {
	if m.index == nil {
		return 0, nil
	}
	return m.index.RemoveExpiredItems(ctx)
}

// runStatsCheck verifies the statistics counters against the stored
// items and repairs them if they drifted.
func (m *Maintenance) runStatsCheck(ctx context.Context) (int, error) {
	if m.index == nil {
		return 0, nil
	}

	repaired, err := m.index.ReconcileStats(ctx)
	if err != nil {
		return 0, err
	}
	if repaired {
		log.Printf("maintenance: statistics drift repaired")
		return 1, nil
	}
	return 0, nil
}
