// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ik5/kwsdata/dataset"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <index> -o <file.wav>",
	Short: "Write one decoded audio sample as a 16-bit WAV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[0], err)
		}
		if exportOut == "" {
			return fmt.Errorf("flag -o is required")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		src, err := cfg.OpenAudio(newLogger(os.Stderr))
		if err != nil {
			return err
		}

		s, err := src.Get(index)
		if err != nil {
			return err
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}

		if err := dataset.Export(f, s, src.SampleRate()); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", exportOut, src.Vocabulary().Name(s.LabelID()))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output WAV file")
	rootCmd.AddCommand(exportCmd)
}
