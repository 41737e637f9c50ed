package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Remove expired items from the index",
	Long: `Removes every item whose expiration date has passed. The background
maintenance scheduler runs the same sweep periodically in long-running
hosts; this command triggers one immediately.`,
	Args: cobra.NoArgs,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	ctx := context.Background()
	removed, err := indexService.RemoveExpiredItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to sweep expired items: %w", err)
	}

	if removed == 0 {
		cmd.Println("No expired items found.")
		return nil
	}

	cmd.Printf("Removed %d expired items.\n", removed)
	return nil
}
