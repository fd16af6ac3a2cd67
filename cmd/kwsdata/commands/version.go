// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/kwsdata"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		version := "(devel)"
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
			version = info.Main.Version
		}

		fmt.Fprintf(cmd.OutOrStdout(), "kwsdata %s\n", version)
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "  go: %s\n", runtime.Version())
			fmt.Fprintf(cmd.OutOrStdout(), "  formats: %s\n", strings.Join(kwsdata.NewRegistry().Formats(), ", "))
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
