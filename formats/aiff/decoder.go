// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/kwsdata/audio"
	"github.com/ik5/kwsdata/utils"
)

const framesPerRead = 2048

// pcmReader is the subset of *aiff.Decoder used after the header is parsed.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type pcmSource struct {
	pcm      pcmReader
	format   *goaudio.Format
	bitDepth int
	buf      *goaudio.IntBuffer
	done     bool
}

func newPCMSource(pcm pcmReader, format *goaudio.Format, bitDepth int) *pcmSource {
	return &pcmSource{
		pcm:      pcm,
		format:   format,
		bitDepth: bitDepth,
		buf: &goaudio.IntBuffer{
			Format:         format,
			SourceBitDepth: bitDepth,
		},
	}
}

func (s *pcmSource) SampleRate() int { return s.format.SampleRate }
func (s *pcmSource) Channels() int   { return s.format.NumChannels }
func (s *pcmSource) BufSize() int    { return framesPerRead * s.format.NumChannels }
func (s *pcmSource) Close() error    { return nil }

// sample converts one AIFF integer. Unlike WAV, 8-bit AIFF is signed.
func (s *pcmSource) sample(v int) float32 {
	if s.bitDepth == 8 {
		return float32(v) / 128.0
	}
	return utils.IntToFloat32(v, s.bitDepth)
}

func (s *pcmSource) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}

	want := len(dst) - len(dst)%s.format.NumChannels
	if want == 0 {
		return 0, nil
	}

	if cap(s.buf.Data) < want {
		s.buf.Data = make([]int, want)
	}
	s.buf.Data = s.buf.Data[:want]

	n, err := s.pcm.PCMBuffer(s.buf)
	for i, v := range s.buf.Data[:n] {
		dst[i] = s.sample(v)
	}

	switch {
	case err != nil && err != io.EOF && err != io.ErrUnexpectedEOF:
		return n, fmt.Errorf("reading aiff samples: %w", err)
	case err != nil || n < want:
		s.done = true
		return n, io.EOF
	}

	return n, nil
}

// Decoder decodes AIFF files with 8, 16, 24 or 32-bit PCM samples.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("buffering aiff input: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAIFFFile
	}
	dec.ReadInfo()

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrMissingFormat
	}

	return newPCMSource(dec, format, bitDepth), nil
}
