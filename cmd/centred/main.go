// Command centred centres text and numbers in fixed-width output fields.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/centred-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/centred-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/centred-cli/internal/core/services"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	configStore, err := file.NewConfigStore(os.Getenv("CENTRED_CONFIG_DIR"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open config: %v\n", err)
		os.Exit(1)
	}

	cli.SetServices(
		services.NewFormatterService(),
		services.NewSettingsService(configStore),
	)
	cli.SetConfigPath(configStore.Path())

	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
