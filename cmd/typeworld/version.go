package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags; the module build info is the
// fallback for plain go install builds.
var version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the typeworld version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		v := version
		if v == "" {
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
				v = info.Main.Version
			} else {
				v = "devel"
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "typeworld %s\n", v)
	},
}
