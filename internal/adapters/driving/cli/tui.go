package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/centred-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/centred-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/centred-cli/internal/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive centring preview",
	Long: `Launch the interactive preview for experimenting with field
widths and fill characters.

Controls:
  type     - Edit the content being centred
  ←/→      - Adjust the field width (shift for ±5)
  Tab      - Cycle the fill character
  Esc      - Quit

Changes saved to the config file (e.g. via "centred settings set") are
picked up live while the preview is running.`,
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

	if formatterService == nil {
		return errors.New("formatter service not configured")
	}

	app, err := tui.NewApp(formatterService, settingsService)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	// Watch the config file so settings changes land in the preview.
	if settingsService != nil {
		if watcher, err := newConfigWatcher(); err == nil {
			defer watcher.Close()
			app = app.WithReload(watcher.Watch(cmd.Context()))
		} else {
			logger.Warn("config watcher unavailable: %v", err)
		}
	}

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// configPath is the config file location watched by the TUI; settable for
// wiring in main.
var configPath string

// SetConfigPath records where the config file lives, for live reload.
func SetConfigPath(path string) {
	configPath = path
}

func newConfigWatcher() (*file.Watcher, error) {
	if configPath == "" {
		return nil, errors.New("no config path set")
	}
	return file.NewWatcher(configPath)
}
