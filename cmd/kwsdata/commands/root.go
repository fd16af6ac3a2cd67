// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/kwsdata/dataset"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "kwsdata",
	Short: "Inspect keyword spotting datasets",
	Long: `kwsdata - inspect the audio and feature sources of a keyword spotting dataset.

The dataset is described by a YAML file:

  labels: [yes, no, up, down, left, right, on, off, stop, go]
  audio:
    root: train/audio
    manifest: train/testing_list.txt
  features:
    cache: features_training.kwsf

Examples:
  kwsdata -c dataset.yaml count
  kwsdata -c dataset.yaml inspect -n 5
  kwsdata -c dataset.yaml export 12 -o clip.wav
  kwsdata cache info features_training.kwsf`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "dataset.yaml", "dataset config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func loadConfig() (*dataset.Config, error) {
	cfg, err := dataset.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return cfg, nil
}

// openSource returns the feature source when features is set, the audio
// source otherwise.
func openSource(cfg *dataset.Config, features bool) (dataset.Dataset, *dataset.Vocabulary, error) {
	logger := newLogger(os.Stderr)

	if features {
		fs, err := cfg.OpenFeatures(logger)
		if err != nil {
			return nil, nil, err
		}
		return fs, fs.Vocabulary(), nil
	}

	as, err := cfg.OpenAudio(logger)
	if err != nil {
		return nil, nil, err
	}
	return as, as.Vocabulary(), nil
}
