package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/centred-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage formatting defaults",
	Long: `View and configure the default field width and fill character
applied when the centre and table commands are run without flags.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <width|fill> <value>",
	Short: "Set a formatting default",
	Long: `Set a formatting default.

  settings set width 12   - centre in 12-character fields by default
  settings set fill =     - pad with '=' by default`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Println("[Format]")
	cmd.Printf("  Width: %d\n", settings.Width)
	cmd.Printf("  Fill:  %q\n", settings.Fill)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	switch key {
	case "width":
		width, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("width must be an integer, got %q", value)
		}
		if err := settingsService.SetWidth(width); err != nil {
			return fmt.Errorf("failed to set width: %w", err)
		}
		cmd.Printf("Default width set to %d\n", width)
	case "fill":
		if err := settingsService.SetFill(value); err != nil {
			return fmt.Errorf("failed to set fill: %w", err)
		}
		cmd.Printf("Default fill set to %q\n", value)
	default:
		return fmt.Errorf("unknown setting %q (expected width or fill)", key)
	}
	return nil
}

// settingsServiceOrDefaults returns the persisted settings, or the
// built-in defaults when no settings service is wired or it fails.
func settingsServiceOrDefaults() domain.FormatSettings {
	if settingsService == nil {
		return domain.DefaultFormatSettings()
	}
	settings, err := settingsService.Get()
	if err != nil {
		return domain.DefaultFormatSettings()
	}
	return settings
}
