package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/declgen/pipeline"
)

// WatchCmd regenerates whenever the inputs change.
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate declarations when the feed changes",
	Long: `Run the pipeline once, then again every time the feed, the config file
or the descriptions file changes. A failed run is reported and the watch
continues. Stop with Ctrl+C.

Examples:
  declgen watch
  declgen watch --feed ../yfiles/api.js -v`,
	RunE: runWatch,
}

func init() {
	addGenerationFlags(WatchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var extra []string
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		extra = append(extra, path)
	}
	if cfg.Generator.Descriptions != "" {
		extra = append(extra, cfg.Generator.Descriptions)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pterm.Info.Printf("Watching %s (press Ctrl+C to stop)\n", cfg.Feed.Path)
	err = pipeline.Watch(ctx, cfg, pipeline.Options{}, func(report *pipeline.Report, err error) {
		if err != nil {
			PrintError(err)
			return
		}
		printReport(report)
	}, extra...)
	if ctx.Err() != nil {
		pterm.Info.Println("Watch stopped")
		return nil
	}
	return err
}
