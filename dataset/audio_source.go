// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ik5/kwsdata"
	"github.com/ik5/kwsdata/audio"
)

// AudioSource serves fixed-length mono waveforms decoded from the files a
// manifest lists under a root directory. Every Get decodes from disk.
type AudioSource struct {
	root   string
	vocab  *Vocabulary
	paths  []string
	labels []int
	reg    *audio.Registry
	spec   kwsdata.ClipSpec
	logger *slog.Logger
}

// NewAudioSource reads the manifest at manifestPath and resolves every
// entry's label against vocab. Audio files are not touched until Get.
func NewAudioSource(root string, vocab *Vocabulary, manifestPath string, opts ...Option) (*AudioSource, error) {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.sampleRate <= 0 || cfg.duration <= 0 {
		return nil, ErrInvalidClipSpec
	}
	if cfg.registry == nil {
		cfg.registry = kwsdata.NewRegistry()
	}

	paths, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}

	s := &AudioSource{
		root:   root,
		vocab:  vocab,
		paths:  paths,
		labels: make([]int, len(paths)),
		reg:    cfg.registry,
		spec: kwsdata.ClipSpec{
			SampleRate: cfg.sampleRate,
			Length:     cfg.clipLength(),
			Quality:    cfg.quality,
		},
		logger: cfg.logger,
	}

	unknown := 0
	for i, p := range paths {
		label := LabelOf(p)
		if !vocab.Contains(label) {
			unknown++
		}
		s.labels[i] = vocab.ID(label)
	}

	s.logger.Debug("audio source loaded",
		slog.String("manifest", manifestPath),
		slog.String("root", root),
		slog.Int("entries", len(paths)),
		slog.Int("unknown", unknown),
		slog.Int("sample_rate", s.spec.SampleRate),
		slog.Int("clip_length", s.spec.Length),
	)

	return s, nil
}

func (s *AudioSource) Len() int { return len(s.paths) }

func (s *AudioSource) Vocabulary() *Vocabulary { return s.vocab }

// SampleRate of the returned waveforms.
func (s *AudioSource) SampleRate() int { return s.spec.SampleRate }

// ClipLength is the number of samples in every waveform.
func (s *AudioSource) ClipLength() int { return s.spec.Length }

// Path returns the manifest entry at index.
func (s *AudioSource) Path(index int) (string, error) {
	if err := checkIndex(index, len(s.paths)); err != nil {
		return "", err
	}
	return s.paths[index], nil
}

// LabelID returns the label id at index without decoding audio.
func (s *AudioSource) LabelID(index int) (int, error) {
	if err := checkIndex(index, len(s.paths)); err != nil {
		return 0, err
	}
	return s.labels[index], nil
}

func (s *AudioSource) abs(index int) string {
	return filepath.Join(s.root, filepath.FromSlash(s.paths[index]))
}

// Get decodes the file at index. The waveform has shape [ClipLength].
func (s *AudioSource) Get(index int) (Sample, error) {
	if err := checkIndex(index, len(s.paths)); err != nil {
		return Sample{}, fmt.Errorf("audio source: %w", err)
	}

	path := s.abs(index)
	clip, err := kwsdata.LoadClip(s.reg, path, s.spec)
	if err != nil {
		return Sample{}, &DecodeError{Index: index, Path: path, Err: err}
	}

	return newSample(clip, []int{len(clip)}, s.labels[index]), nil
}
