// Package commands implements the declgen subcommands.
package commands

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/teranos/declgen/config"
	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/logger"
	"github.com/teranos/declgen/pipeline"
)

// loadConfig resolves the configuration for cmd, applies the overrides
// given as flags and validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, *viper.Viper, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, v, err := config.Load(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load config")
	}
	applyOverrides(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "invalid configuration")
	}

	logger.SetTheme(cfg.Log.Theme)
	if jsonLogs, _ := cmd.Flags().GetBool("json-logs"); cfg.Log.JSON && !jsonLogs {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(true, verbosity); err != nil {
			return nil, nil, errors.Wrap(err, "failed to initialize logger")
		}
	}
	return cfg, v, nil
}

// addGenerationFlags registers the overrides shared by generate, check and watch.
func addGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().String("feed", "", "Metadata feed to read (overrides feed.path)")
	cmd.Flags().StringP("output", "o", "", "Output directory (overrides output.dir)")
	cmd.Flags().Bool("raw", false, "Skip the cleanup post-processor")
	cmd.Flags().String("mode", "", "Correction mode: normal or progressive")
	cmd.Flags().Bool("strict-numbers", false, "Fail on numeric parameters the heuristic cannot classify")
}

func applyOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Lookup("feed") == nil {
		return
	}
	if feed, _ := flags.GetString("feed"); feed != "" {
		cfg.Feed.Path = feed
	}
	if output, _ := flags.GetString("output"); output != "" {
		cfg.Output.Dir = output
	}
	if flags.Changed("raw") {
		cfg.Output.Raw, _ = flags.GetBool("raw")
	}
	if mode, _ := flags.GetString("mode"); mode != "" {
		cfg.Correction.Mode = mode
	}
	if flags.Changed("strict-numbers") {
		cfg.Correction.StrictNumbers, _ = flags.GetBool("strict-numbers")
	}
}

// PrintError writes err with its hints and the locator of the failing
// record, if any.
func PrintError(err error) {
	pterm.Error.WithWriter(os.Stderr).Println(err.Error())
	if locator := errors.Locator(err); locator != "" {
		pterm.Fprintln(os.Stderr, "  "+pterm.Yellow("at:")+" "+locator)
	}
	for _, hint := range errors.GetAllHints(err) {
		pterm.Fprintln(os.Stderr, "  "+pterm.LightCyan("hint:")+" "+hint)
	}
}

func printReport(report *pipeline.Report) {
	pterm.Success.Printf("Generated %s files for %s types in %s (%dms)\n",
		pterm.Green(report.Files),
		pterm.Green(report.Types),
		report.OutputDir,
		report.Duration().Milliseconds())
	pterm.Printf("  %s feed %s, %d of %d passes applied\n",
		pterm.Gray("→"),
		pterm.LightMagenta(report.FeedVersion),
		report.AppliedPasses(),
		len(report.Passes))
}
