package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/teranos/declgen/display"
	"github.com/teranos/declgen/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show declgen version information",
	Long:  `Display the release, commit, build time and toolchain of the declgen binary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		build := version.Current()

		if display.ShouldOutputJSON(cmd) {
			return display.WriteJSON(cmd.OutOrStdout(), build)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, build.String())
		fmt.Fprintf(out, "Toolchain: %s (%s)\n", build.Toolchain, build.Platform)
		return nil
	},
}

func init() {
	VersionCmd.Flags().BoolP("json", "j", false, "Output version info as JSON")
}
