// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"fmt"
	"log/slog"
	"slices"
)

// FeatureSource serves features loaded from a feature cache. Labels are
// resolved at Get time, so one cache works with any vocabulary.
type FeatureSource struct {
	entries []FeatureEntry
	vocab   *Vocabulary
	logger  *slog.Logger
}

// NewFeatureSource reads the whole cache at cachePath into memory.
func NewFeatureSource(cachePath string, vocab *Vocabulary, opts ...Option) (*FeatureSource, error) {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}

	entries, err := ReadFeatureCacheFile(cachePath)
	if err != nil {
		return nil, err
	}

	s := NewFeatureSourceFromEntries(entries, vocab)
	s.logger = cfg.logger
	s.logger.Debug("feature source loaded",
		slog.String("cache", cachePath),
		slog.Int("entries", len(entries)),
	)

	return s, nil
}

// NewFeatureSourceFromEntries wraps entries that are already in memory.
// The source takes ownership of the slice.
func NewFeatureSourceFromEntries(entries []FeatureEntry, vocab *Vocabulary) *FeatureSource {
	return &FeatureSource{
		entries: entries,
		vocab:   vocab,
		logger:  slog.New(slog.DiscardHandler),
	}
}

func (s *FeatureSource) Len() int { return len(s.entries) }

func (s *FeatureSource) Vocabulary() *Vocabulary { return s.vocab }

// Entry returns the raw cached entry at index.
func (s *FeatureSource) Entry(index int) (FeatureEntry, error) {
	if err := checkIndex(index, len(s.entries)); err != nil {
		return FeatureEntry{}, fmt.Errorf("feature source: %w", err)
	}
	return s.entries[index], nil
}

// Get returns a copy of the cached feature and its resolved label id.
func (s *FeatureSource) Get(index int) (Sample, error) {
	if err := checkIndex(index, len(s.entries)); err != nil {
		return Sample{}, fmt.Errorf("feature source: %w", err)
	}

	e := s.entries[index]
	return newSample(slices.Clone(e.Values), slices.Clone(e.Dims()), s.vocab.ID(e.Label)), nil
}

// Labels counts cached entries per label string.
func (s *FeatureSource) Labels() map[string]int {
	counts := make(map[string]int)
	for _, e := range s.entries {
		counts[e.Label]++
	}
	return counts
}
