package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portico-apps/searchkit/internal/core/domain"
)

func TestNewMaintenanceStore(t *testing.T) {
	store := NewMaintenanceStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.tasks)
	assert.NotNil(t, store.history)
}

func TestMaintenanceStore_SaveAndGetTask(t *testing.T) {
	store := NewMaintenanceStore()
	ctx := context.Background()

	task := &domain.MaintenanceTask{
		ID:       domain.TaskIDExpirySweep,
		Name:     "Expired item sweep",
		Interval: 15 * time.Minute,
		Enabled:  true,
	}

	err := store.SaveTask(ctx, task)
	require.NoError(t, err)

	saved, err := store.GetTask(ctx, domain.TaskIDExpirySweep)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Expired item sweep", saved.Name)
	assert.True(t, saved.Enabled)
}

func TestMaintenanceStore_GetTask_Missing(t *testing.T) {
	store := NewMaintenanceStore()
	ctx := context.Background()

	task, err := store.GetTask(ctx, "nonexistent")
	require.NoError(t, err)
	assert.Nil(t, task)
}

func TestMaintenanceStore_ListTasks(t *testing.T) {
	store := NewMaintenanceStore()
	ctx := context.Background()

	require.NoError(t, store.SaveTask(ctx, &domain.MaintenanceTask{ID: "a"}))
	require.NoError(t, store.SaveTask(ctx, &domain.MaintenanceTask{ID: "b"}))

	tasks, err := store.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestMaintenanceStore_DeleteTask(t *testing.T) {
	store := NewMaintenanceStore()
	ctx := context.Background()

	require.NoError(t, store.SaveTask(ctx, &domain.MaintenanceTask{ID: "a"}))
	require.NoError(t, store.RecordResult(ctx, &domain.TaskResult{TaskID: "a"}))

	err := store.DeleteTask(ctx, "a")
	require.NoError(t, err)

	task, err := store.GetTask(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, task)

	history, err := store.GetTaskHistory(ctx, "a", 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestMaintenanceStore_History_MostRecentFirst(t *testing.T) {
	store := NewMaintenanceStore()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for n := 0; n < 3; n++ {
		result := &domain.TaskResult{
			TaskID:    domain.TaskIDExpirySweep,
			StartedAt: base.Add(time.Duration(n) * time.Minute),
			Success:   true,
		}
		require.NoError(t, store.RecordResult(ctx, result))
	}

	history, err := store.GetTaskHistory(ctx, domain.TaskIDExpirySweep, 10)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, base.Add(2*time.Minute), history[0].StartedAt)
	assert.Equal(t, base, history[2].StartedAt)
}

func TestMaintenanceStore_GetTaskHistory_Limit(t *testing.T) {
	store := NewMaintenanceStore()
	ctx := context.Background()

	for n := 0; n < 5; n++ {
		require.NoError(t, store.RecordResult(ctx, &domain.TaskResult{TaskID: "t"}))
	}

	history, err := store.GetTaskHistory(ctx, "t", 2)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestMaintenanceStore_PruneHistory(t *testing.T) {
	store := NewMaintenanceStore()
	ctx := context.Background()

	for n := 0; n < 10; n++ {
		require.NoError(t, store.RecordResult(ctx, &domain.TaskResult{TaskID: "t"}))
	}

	err := store.PruneHistory(ctx, 4)
	require.NoError(t, err)

	history, err := store.GetTaskHistory(ctx, "t", 100)
	require.NoError(t, err)
	assert.Len(t, history, 4)
}
