// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"log/slog"
	"math"
	"time"

	"github.com/ik5/kwsdata/audio"
)

const (
	DefaultSampleRate = 16000
	DefaultDuration   = time.Second
)

type settings struct {
	registry   *audio.Registry
	sampleRate int
	duration   time.Duration
	quality    audio.Quality
	logger     *slog.Logger
}

// Option configures a source.
type Option func(*settings)

func defaultSettings() settings {
	return settings{
		sampleRate: DefaultSampleRate,
		duration:   DefaultDuration,
		quality:    audio.QualityHigh,
		logger:     slog.New(slog.DiscardHandler),
	}
}

// WithRegistry replaces the decoder registry used by AudioSource.
func WithRegistry(reg *audio.Registry) Option {
	return func(s *settings) { s.registry = reg }
}

func WithSampleRate(hz int) Option {
	return func(s *settings) { s.sampleRate = hz }
}

// WithDuration sets the fixed clip duration.
func WithDuration(d time.Duration) Option {
	return func(s *settings) { s.duration = d }
}

func WithResampleQuality(q audio.Quality) Option {
	return func(s *settings) { s.quality = q }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// clipLength is the number of samples in one clip.
func (s settings) clipLength() int {
	return int(math.Round(float64(s.sampleRate) * s.duration.Seconds()))
}
