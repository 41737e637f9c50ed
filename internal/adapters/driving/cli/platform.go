package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/portico-apps/searchkit/internal/core/domain"
)

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Show the detected platform search service",
	Args:  cobra.NoArgs,
	RunE:  runPlatform,
}

func init() {
	rootCmd.AddCommand(platformCmd)
}

func runPlatform(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	platform := indexService.Platform()
	cmd.Printf("Platform: %s\n", platform)
	cmd.Printf("  %s\n", platform.Description())
	if platform == domain.PlatformUnknown {
		cmd.Println("  Items are kept in the local index only; no native mirror is available.")
	}

	return nil
}
