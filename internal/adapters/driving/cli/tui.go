package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/portico-apps/searchkit/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for SearchKit.

The TUI provides live search over the index with keyboard navigation.

Controls:
  ↑/k, ↓/j - Navigate results
  Enter    - Search / Select
  Esc      - Back / Clear
  ?        - Toggle help
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	// Start maintenance if enabled (the TUI is long-running, so the
	// periodic expiry sweep is worth having)
	if maintenanceConfig.Enabled && maintenanceService != nil {
		maintenanceCtx, maintenanceCancel := context.WithCancel(context.Background())
		defer maintenanceCancel()

		go func() {
			if err := maintenanceService.Start(maintenanceCtx); err != nil {
				// Log but don't fail - maintenance errors shouldn't block the TUI
				fmt.Fprintf(os.Stderr, "maintenance stopped: %v\n", err)
			}
		}()

		defer func() {
			if err := maintenanceService.Stop(); err != nil {
				fmt.Fprintf(os.Stderr, "maintenance stop error: %v\n", err)
			}
		}()
	}

	ports := &tui.Ports{
		Index: indexService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
