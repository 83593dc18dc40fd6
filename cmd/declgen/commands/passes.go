package commands

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/declgen/correction"
)

// PassesCmd lists the correction passes.
var PassesCmd = &cobra.Command{
	Use:   "passes",
	Short: "List the correction passes in execution order",
	Long: `List every correction pass in the order the engine runs them, with the
graph shapes each pass requires and provides.

Examples:
  declgen passes
  declgen passes --mode progressive`,
	RunE: runPasses,
}

var passesMode string

func init() {
	PassesCmd.Flags().StringVar(&passesMode, "mode", string(correction.ModeNormal), "Mode used to mark skipped passes")
}

func runPasses(cmd *cobra.Command, args []string) error {
	engine := correction.NewEngine(correction.DefaultPasses())
	if err := engine.Validate(); err != nil {
		return err
	}
	return pterm.DefaultTable.
		WithHasHeader().
		WithData(passRows(engine.Passes(), correction.Mode(passesMode))).
		Render()
}

// passRows renders one table row per pass, header first.
func passRows(passes []correction.Pass, mode correction.Mode) [][]string {
	rows := [][]string{{"#", "Pass", "Requires", "Provides", "Runs"}}
	for i, p := range passes {
		runs := "yes"
		if !mode.Allows(p.OnlyIn) {
			runs = "only " + string(p.OnlyIn)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			p.Name,
			joinShapes(p.Requires),
			joinShapes(p.Provides),
			runs,
		})
	}
	return rows
}

func joinShapes(shapes []correction.Shape) string {
	names := make([]string, len(shapes))
	for i, s := range shapes {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
