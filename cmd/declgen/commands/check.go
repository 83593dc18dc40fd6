package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/declgen/display"
	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/pipeline"
	"github.com/teranos/declgen/typegen"
)

// CheckCmd verifies the committed declarations are current.
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that generated declarations are up to date",
	Long: `Generate into a temporary directory and compare the result with the
output directory. Exits non-zero when files are missing, extra or different.

Examples:
  declgen check
  declgen check --diff`,
	RunE: runCheck,
}

var checkShowDiff bool

func init() {
	addGenerationFlags(CheckCmd)
	CheckCmd.Flags().BoolVar(&checkShowDiff, "diff", false, "Print unified diffs of changed files")
	CheckCmd.Flags().Bool("json", false, "Print the check result as JSON")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	result, _, err := pipeline.Check(cmd.Context(), cfg, pipeline.Options{})
	if err != nil {
		return err
	}

	if display.ShouldOutputJSON(cmd) {
		if err := display.WriteJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	} else if result.UpToDate {
		pterm.Success.Printf("Declarations in %s are up to date\n", cfg.Output.Dir)
	} else {
		printCheckResult(result, checkShowDiff)
	}
	if result.UpToDate {
		return nil
	}
	return errors.WithHint(
		errors.Newf("%d declaration files are out of date", len(result.Files())),
		"run declgen generate and commit the result")
}

func printCheckResult(result *typegen.CheckResult, showDiff bool) {
	for _, path := range result.Missing {
		pterm.Printf("  %s %s\n", pterm.Red("missing:  "), path)
	}
	for _, path := range result.Extra {
		pterm.Printf("  %s %s\n", pterm.Yellow("extra:    "), path)
	}
	for _, path := range result.Different {
		pterm.Printf("  %s %s\n", pterm.LightCyan("different:"), path)
	}
	if !showDiff {
		return
	}
	for _, path := range result.Different {
		fmt.Println()
		fmt.Print(result.Diffs[path])
	}
}
