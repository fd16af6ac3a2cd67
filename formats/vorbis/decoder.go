// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/kwsdata/audio"
	"github.com/jfreymuth/oggvorbis"
)

// emptyReadLimit bounds consecutive (0, nil) reads before a stream is
// treated as stalled.
const emptyReadLimit = 64

// pageReader is the subset of *oggvorbis.Reader a stream needs.
type pageReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// stream adapts an oggvorbis reader to audio.Source. Read counts from
// oggvorbis are interleaved values, not frames.
type stream struct {
	r        pageReader
	channels int
}

func newStream(r pageReader) *stream {
	return &stream{r: r, channels: max(r.Channels(), 1)}
}

func (s *stream) SampleRate() int { return s.r.SampleRate() }
func (s *stream) Channels() int   { return s.channels }
func (s *stream) BufSize() int    { return 1024 * s.channels }
func (s *stream) Close() error    { return nil }

func (s *stream) ReadSamples(dst []float32) (int, error) {
	dst = dst[:len(dst)-len(dst)%s.channels]
	if len(dst) == 0 {
		return 0, nil
	}

	for range emptyReadLimit {
		n, err := s.r.Read(dst)
		clampUnit(dst[:n])

		switch {
		case err == io.EOF:
			return n, io.EOF
		case err != nil:
			return n, fmt.Errorf("reading vorbis packet: %w", err)
		case n > 0:
			return n, nil
		}
	}

	return 0, io.ErrNoProgress
}

// clampUnit limits decoded values to [-1, 1]; lossy decoding can overshoot.
func clampUnit(v []float32) {
	for i, x := range v {
		v[i] = min(max(x, -1), 1)
	}
}

// Decoder decodes Ogg Vorbis streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	or, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening ogg vorbis stream: %w", err)
	}

	return newStream(or), nil
}
