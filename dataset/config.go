// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/ik5/kwsdata/audio"
)

var (
	ErrNoAudioConfig   = errors.New("config has no audio section")
	ErrNoFeatureConfig = errors.New("config has no features section")
)

// Config describes where a dataset lives. It is usually read from YAML:
//
//	labels: [yes, no, up, down]
//	audio:
//	  root: train/audio
//	  manifest: train/testing_list.txt
//	  sample_rate: 16000
//	  duration: 1s
//	  quality: high
//	features:
//	  cache: features_training.kwsf
//
// Relative paths are resolved against the directory of the config file.
type Config struct {
	Labels   []string       `yaml:"labels"`
	Audio    *AudioConfig   `yaml:"audio"`
	Features *FeatureConfig `yaml:"features"`

	dir string
}

type AudioConfig struct {
	Root       string `yaml:"root"`
	Manifest   string `yaml:"manifest"`
	SampleRate int    `yaml:"sample_rate"`
	Duration   string `yaml:"duration"`
	Quality    string `yaml:"quality"`
}

type FeatureConfig struct {
	Cache string `yaml:"cache"`
}

// ParseConfig decodes YAML. Relative paths stay relative to the working
// directory.
func ParseConfig(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &c, nil
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	c, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.dir = filepath.Dir(path)

	return c, nil
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}

// Vocabulary builds the configured vocabulary, or DefaultVocabulary when no
// labels are listed.
func (c *Config) Vocabulary() (*Vocabulary, error) {
	if len(c.Labels) == 0 {
		return DefaultVocabulary(), nil
	}
	return NewVocabulary(c.Labels...)
}

// AudioOptions translates the audio section into source options.
func (c *Config) AudioOptions() ([]Option, error) {
	if c.Audio == nil {
		return nil, ErrNoAudioConfig
	}

	var opts []Option
	if c.Audio.SampleRate != 0 {
		opts = append(opts, WithSampleRate(c.Audio.SampleRate))
	}
	if c.Audio.Duration != "" {
		d, err := time.ParseDuration(c.Audio.Duration)
		if err != nil {
			return nil, fmt.Errorf("audio.duration: %w", err)
		}
		opts = append(opts, WithDuration(d))
	}

	q, err := audio.ParseQuality(c.Audio.Quality)
	if err != nil {
		return nil, fmt.Errorf("audio.quality: %w", err)
	}

	return append(opts, WithResampleQuality(q)), nil
}

// OpenAudio constructs the AudioSource described by the audio section.
func (c *Config) OpenAudio(logger *slog.Logger, extra ...Option) (*AudioSource, error) {
	vocab, err := c.Vocabulary()
	if err != nil {
		return nil, err
	}

	opts, err := c.AudioOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, WithLogger(logger))

	return NewAudioSource(c.resolve(c.Audio.Root), vocab, c.resolve(c.Audio.Manifest), append(opts, extra...)...)
}

// OpenFeatures constructs the FeatureSource described by the features section.
func (c *Config) OpenFeatures(logger *slog.Logger) (*FeatureSource, error) {
	if c.Features == nil {
		return nil, ErrNoFeatureConfig
	}

	vocab, err := c.Vocabulary()
	if err != nil {
		return nil, err
	}

	return NewFeatureSource(c.resolve(c.Features.Cache), vocab, WithLogger(logger))
}
