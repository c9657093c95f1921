package commands

import (
	"os"

	"pagepack/lib/configutil"

	"github.com/spf13/cobra"
)

// Config supplies defaults for the CLI flags from an optional
// pagepack.json5 in the working directory. Flags set on the command
// line always win.
type Config struct {
	Name   string `json:"name"`
	All    bool   `json:"all"`
	NoZip  bool   `json:"no_zip"`
	Output string `json:"output"`
}

func loadConfig(cmd *cobra.Command) Config {
	cfg, err := configutil.ReadConfig[Config]("pagepack.json5")
	if err != nil && !os.IsNotExist(err) {
		fatal("failed to read pagepack.json5", err)
	}

	if cmd.Flags().Changed("name") || cfg.Name == "" {
		cfg.Name = *flagName
	}
	if cmd.Flags().Changed("all") || !cfg.All {
		cfg.All = *flagAll
	}
	if cmd.Flags().Changed("no-zip") || !cfg.NoZip {
		cfg.NoZip = *flagNoZip
	}
	if cmd.Flags().Changed("output") || cfg.Output == "" {
		cfg.Output = *flagOutput
	}
	return cfg
}
