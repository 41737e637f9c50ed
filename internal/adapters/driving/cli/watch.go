package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/portico-apps/searchkit/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Watch a manifest and re-import on change",
	Long: `Imports a JSON manifest, then keeps watching it and re-imports
whenever it changes. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if importerService == nil {
		return errors.New("importer service not configured")
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve manifest path: %w", err)
	}

	ctx := cmd.Context()

	result, err := importManifest(ctx, path)
	if err != nil {
		return err
	}
	printBatchResult(cmd, result)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck // Best-effort cleanup

	// Watch the directory rather than the file: editors that save via
	// rename would otherwise drop the watch on the first save.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch manifest directory: %w", err)
	}

	cmd.Printf("Watching %s for changes...\n", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			handleManifestEvent(ctx, cmd, path, event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// handleManifestEvent re-imports the manifest when the watched file is
// written or recreated. Split out so tests can drive events directly.
func handleManifestEvent(ctx context.Context, cmd *cobra.Command, path string, event fsnotify.Event) {
	if event.Name != path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	result, err := importManifest(ctx, path)
	if err != nil {
		cmd.Printf("Re-import failed: %v\n", err)
		return
	}

	cmd.Printf("Manifest changed. ")
	printBatchResult(cmd, result)
}
