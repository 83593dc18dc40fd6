package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/teranos/declgen/display"
	"github.com/teranos/declgen/pipeline"
)

// GenerateCmd runs the whole pipeline and writes the declarations.
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Kotlin/JS declarations",
	Long: `Load the metadata feed, apply every correction pass, render the
declarations and write them to the output directory.

Nothing is written unless every stage succeeds. With output.clean set the
output directory is emptied first.

Examples:
  declgen generate
  declgen generate --feed api.js --output generated/src/main/kotlin
  declgen generate --raw --mode progressive`,
	RunE: runGenerate,
}

func init() {
	addGenerationFlags(GenerateCmd)
	GenerateCmd.Flags().Bool("json", false, "Print the run report as JSON")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := pipeline.Run(ctx, cfg, pipeline.Options{})
	if err != nil {
		return err
	}
	if display.ShouldOutputJSON(cmd) {
		return display.WriteJSON(cmd.OutOrStdout(), report)
	}
	printReport(report)
	return nil
}
