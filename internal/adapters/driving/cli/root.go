// Package cli implements the cobra command tree for the centred CLI.
// Commands talk to core services through the driving ports; services are
// injected once at startup via SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/centred-cli/internal/core/ports/driving"
	"github.com/custodia-labs/centred-cli/internal/logger"
)

// version is the build version, set by Execute.
var version = "dev"

// verboseFlag enables debug logging on stderr.
var verboseFlag bool

// Injected services. Nil services make the commands that need them fail
// with a clear error instead of panicking.
var (
	formatterService driving.FormatterService
	settingsService  driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "centred",
	Short: "Centre text in fixed-width output fields",
	Long: `centred is a small toolkit for centring text and numbers in
fixed-width output fields, for lining up terminal tables and banners.

Content is never truncated: a field narrower than its content renders the
content verbatim. When the slack is odd, the extra padding column goes to
the left, so the content sits one column right of true centre.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// SetServices injects the core services used by the commands.
func SetServices(formatter driving.FormatterService, settings driving.SettingsService) {
	formatterService = formatter
	settingsService = settings
}

// Execute runs the root command with the given build version.
func Execute(buildVersion string) error {
	if buildVersion != "" {
		version = buildVersion
	}
	return rootCmd.Execute()
}
