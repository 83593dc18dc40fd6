package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teranos/declgen/cmd/declgen/commands"
	"github.com/teranos/declgen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "declgen",
	Short: "declgen - Kotlin/JS declarations from the yFiles API metadata",
	Long: `declgen - Kotlin/JS external declarations generated from the yFiles API metadata feed.

The feed is loaded into a type graph, repaired by an ordered list of
correction passes, converted into an intermediate representation and
rendered as Kotlin source files.

Available commands:
  generate - Generate declarations into the output directory
  check    - Compare the output directory with a fresh generation
  watch    - Regenerate whenever the feed changes
  passes   - List the correction passes in order
  config   - Show and validate configuration
  version  - Show version information

Examples:
  declgen generate                      # Use declgen.toml from the project
  declgen generate --feed api.js -o out # Override feed and output
  declgen check --diff                  # Fail with diffs when out of date
  declgen passes --mode progressive     # Show which passes run in preview mode`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default: declgen.toml searched upwards)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.PassesCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		commands.PrintError(err)
		os.Exit(1)
	}
}
