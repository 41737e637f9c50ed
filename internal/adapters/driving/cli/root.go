// Package cli implements the searchkit command line interface. It is a
// development harness around the engine: the same index, search and
// import services a host application embeds, driven from a terminal and
// persisted to a JSON file so items survive between invocations.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/portico-apps/searchkit/internal/adapters/driven/config/file"
	"github.com/portico-apps/searchkit/internal/adapters/driven/nativeindex"
	"github.com/portico-apps/searchkit/internal/adapters/driven/storage/jsonfile"
	"github.com/portico-apps/searchkit/internal/adapters/driven/storage/memory"
	"github.com/portico-apps/searchkit/internal/core/domain"
	"github.com/portico-apps/searchkit/internal/core/ports/driven"
	"github.com/portico-apps/searchkit/internal/core/ports/driving"
	"github.com/portico-apps/searchkit/internal/core/services"
	"github.com/portico-apps/searchkit/internal/logger"
)

// version is stamped at build time via ldflags.
var version = "dev"

// Services the commands run against. Initialise wires the real ones;
// tests swap in their own.
var (
	indexService       driving.Index
	importerService    driving.Importer
	maintenanceService driving.Maintenance
	maintenanceConfig  domain.MaintenanceConfig
	configStore        driven.ConfigStore
)

// verboseFlag enables debug logging for all commands.
var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "searchkit",
	Short: "Embeddable search index for application content",
	Long: `SearchKit maintains a searchable index of application content and
mirrors it to the platform search service where one is available.

Items are registered with an ID, a logical domain and searchable text,
then found again with relevance-ranked substring search. The CLI keeps
its index in ~/.searchkit/index.json so items persist between runs.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Initialise wires the engine services the commands run against:
// file-backed item and config stores, the platform mirror and the
// maintenance scheduler. Must be called before Execute.
func Initialise() error {
	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	settings := file.LoadSettings(store)

	items, err := jsonfile.NewItemStore("")
	if err != nil {
		return fmt.Errorf("opening item store: %w", err)
	}

	// The CLI has no live platform binding, so the mirror chain ends in
	// the null index. Throttling still applies, matching how an embedded
	// build would drive a real platform adapter.
	var native driven.NativeIndex
	if settings.MirrorEnabled {
		native = nativeindex.NewThrottled(nativeindex.NewNullIndex())
	}

	index := services.NewIndexService(items, native)
	index.SetEnabled(settings.IndexEnabled)

	// The file-backed store comes up already populated, so fold its
	// contents into the statistics before any command runs.
	if _, err := index.ReconcileStats(context.Background()); err != nil {
		return fmt.Errorf("reconciling statistics: %w", err)
	}

	indexService = index
	importerService = services.NewImportService(index)
	maintenanceService = services.NewMaintenance(settings.Maintenance, memory.NewMaintenanceStore(), index)
	maintenanceConfig = settings.Maintenance
	configStore = store

	return nil
}

// Execute runs the root command. The context reaches long-running
// commands through cmd.Context so they stop cleanly on cancellation.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
