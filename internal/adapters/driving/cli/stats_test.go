package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portico-apps/searchkit/internal/adapters/driven/storage/memory"
	"github.com/portico-apps/searchkit/internal/core/domain"
	"github.com/portico-apps/searchkit/internal/core/services"
)

func TestStatsCmd_Use(t *testing.T) {
	assert.Equal(t, "stats", statsCmd.Use)
}

func TestStatsCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"stats"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Index Statistics")
	assert.Contains(t, buf.String(), "Total items: 2")
	assert.Contains(t, buf.String(), "Documents:   1")
	assert.Contains(t, buf.String(), "Other:       1")
	assert.Contains(t, buf.String(), "Indexing enabled: yes")
}

func TestStatsCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"stats", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		statsJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"totalItems": 2`)
	assert.Contains(t, buf.String(), `"documentCount": 1`)
}

func TestStatsCmd_VerifyNoDrift(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"stats", "--verify"})
	defer func() {
		rootCmd.SetArgs(nil)
		statsVerify = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Statistics verified: no drift.")
}

func TestStatsCmd_VerifyRepairsDrift(t *testing.T) {
	// Seed the store behind the service's back so the counters drift.
	store := memory.NewItemStore()
	ghost := domain.NewSearchableItem("ghost-1").WithTitle("Ghost")
	require.NoError(t, store.Save(context.Background(), ghost))

	oldService := indexService
	indexService = services.NewIndexService(store, nil)
	defer func() {
		indexService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"stats", "--verify"})
	defer func() {
		rootCmd.SetArgs(nil)
		statsVerify = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Statistics repaired: counters had drifted from the stored items.")
	assert.Contains(t, buf.String(), "Total items: 1")
}

func TestStatsCmd_ServiceNotConfigured(t *testing.T) {
	oldService := indexService
	indexService = nil
	defer func() {
		indexService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"stats"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "index service not configured")
}

func TestStatsCmd_VerifyServiceError(t *testing.T) {
	oldService := indexService
	indexService = &mockIndexError{}
	defer func() {
		indexService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"stats", "--verify"})
	defer func() {
		rootCmd.SetArgs(nil)
		statsVerify = false
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to verify statistics")
}
