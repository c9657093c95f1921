package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"pagepack/lib/discover"
	"pagepack/lib/fetch"
	"pagepack/lib/packager"
	"pagepack/lib/selection"
	"pagepack/pipeline"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	flagMode   *string
	flagName   *string
	flagAll    *bool
	flagNoZip  *bool
	flagDebug  *bool
	flagOutput *string
)

func init() {
	flagMode = rootCmd.Flags().String("mode", "", "resource class to package: 'css' or 'js' (default: both)")
	flagName = rootCmd.Flags().String("name", "", "display name shared by both resource classes")
	flagAll = rootCmd.Flags().Bool("all", false, "approve every discovered resource without prompting")
	flagNoZip = rootCmd.Flags().Bool("no-zip", false, "skip archiving and leave the staging files in place")
	flagDebug = rootCmd.Flags().Bool("debug", false, "print raw and parsed invocation arguments before running")
	flagOutput = rootCmd.Flags().String("output", "output", "directory packages are written into")

	rootCmd.Flags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "noZip" {
			name = "no-zip"
		}
		return pflag.NormalizedName(name)
	})
}

var rootCmd = &cobra.Command{
	Use:   "pagepack <url>",
	Short: "pagepack repackages a web page's styles and scripts into a client extension.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd.Context(), cmd, args[0])
	},
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fatal(message string, err error) {
	slog.Error(message, "err", err.Error())
	os.Exit(1)
}

func run(ctx context.Context, cmd *cobra.Command, targetURL string) {
	cfg := loadConfig(cmd)

	if *flagDebug {
		slog.Info("raw arguments", "args", os.Args)
		slog.Info("parsed arguments",
			"url", targetURL,
			"mode", *flagMode,
			"name", cfg.Name,
			"all", cfg.All,
			"no_zip", cfg.NoZip,
			"output", cfg.Output,
		)
	}

	var classes []discover.Class
	if *flagMode == "" {
		classes = []discover.Class{discover.Style, discover.Script}
	} else {
		class, err := discover.ParseClass(*flagMode)
		if err != nil {
			fatal("invalid arguments", err)
		}
		classes = []discover.Class{class}
	}

	visibleName := cfg.Name
	if visibleName == "" {
		var err error
		visibleName, err = selection.PromptName(os.Stdin, os.Stdout)
		if err != nil {
			fatal("failed to read package name", err)
		}
	}

	// both classes share one staging root; without archiving the
	// second run overwrites the first's staging tree (see --no-zip
	// advisory emitted by the pipeline)
	runner := pipeline.Runner{
		Fetch:       fetch.NewClient(),
		Selection:   selection.Console{In: os.Stdin, Out: os.Stdout},
		Staging:     packager.NewStaging(cfg.Output),
		ApproveAll:  cfg.All,
		SkipArchive: cfg.NoZip,
	}
	for _, class := range classes {
		if err := runner.Run(ctx, targetURL, class, visibleName); err != nil {
			fatal(fmt.Sprintf("failed to package %s resources", class), err)
		}
	}
}
