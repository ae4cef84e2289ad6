package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		v := version
		if info, ok := debug.ReadBuildInfo(); ok && v == "(devel)" && info.Main.Version != "" {
			v = info.Main.Version
		}
		fmt.Fprintln(cmd.OutOrStdout(), "mamchoi", v)
	},
}
