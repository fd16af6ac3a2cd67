// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"os"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/ik5/kwsdata/dataset"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Feature cache tools",
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info <cache>",
	Short: "Print the entry count and label histogram of a feature cache",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := dataset.ReadFeatureCacheFile(args[0])
		if err != nil {
			return err
		}

		src := dataset.NewFeatureSourceFromEntries(entries, dataset.DefaultVocabulary())
		counts := src.Labels()

		labels := make([]string, 0, len(counts))
		for l := range counts {
			labels = append(labels, l)
		}
		slices.Sort(labels)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "entries\t%d\n", src.Len())
		for _, l := range labels {
			fmt.Fprintf(out, "%s\t%d\n", l, counts[l])
		}

		return nil
	},
}

var cacheConvertOut string

var cacheConvertCmd = &cobra.Command{
	Use:   "convert <entries.yaml> -o <cache>",
	Short: "Build a feature cache from a YAML or JSON list of entries",
	Long: `Build a feature cache from a YAML (or JSON) list of entries:

  - values: [0.1, 0.2]
    label: "no"
  - values: [0.3, 0.4, 0.5, 0.6]
    shape: [2, 2]
    label: bird`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cacheConvertOut == "" {
			return fmt.Errorf("flag -o is required")
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		var entries []dataset.FeatureEntry
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("parsing %s: %w", args[0], err)
		}

		if err := dataset.WriteFeatureCacheFile(cacheConvertOut, entries); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d entries to %s\n", len(entries), cacheConvertOut)
		return nil
	},
}

func init() {
	cacheConvertCmd.Flags().StringVarP(&cacheConvertOut, "out", "o", "", "output cache file")
	cacheCmd.AddCommand(cacheInfoCmd, cacheConvertCmd)
	rootCmd.AddCommand(cacheCmd)
}
