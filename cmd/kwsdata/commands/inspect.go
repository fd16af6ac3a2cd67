// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/kwsdata/dataset"
)

var (
	inspectCount    int
	inspectSeed     uint64
	inspectFeatures bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the label of randomly drawn samples",
	Long: `Draw samples uniformly at random and print "index<TAB>label<TAB>shape".
Every drawn sample is loaded, so broken audio files are reported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ds, vocab, err := openSource(cfg, inspectFeatures)
		if err != nil {
			return err
		}

		seed := inspectSeed
		if !cmd.Flags().Changed("seed") {
			seed = uint64(time.Now().UnixNano())
		}
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

		return dataset.Inspect(cmd.OutOrStdout(), ds, vocab, inspectCount, rng)
	},
}

func init() {
	inspectCmd.Flags().IntVarP(&inspectCount, "count", "n", 1, "number of samples to draw")
	inspectCmd.Flags().Uint64Var(&inspectSeed, "seed", 0, "random seed (default: time based)")
	inspectCmd.Flags().BoolVar(&inspectFeatures, "features", false, "inspect the feature cache instead of audio")
	rootCmd.AddCommand(inspectCmd)
}
