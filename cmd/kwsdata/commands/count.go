// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of entries in each configured source",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if cfg.Audio == nil && cfg.Features == nil {
			return fmt.Errorf("%s configures neither audio nor features", configPath)
		}

		if cfg.Audio != nil {
			ds, _, err := openSource(cfg, false)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "audio\t%d\n", ds.Len())
		}

		if cfg.Features != nil {
			ds, _, err := openSource(cfg, true)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "features\t%d\n", ds.Len())
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
