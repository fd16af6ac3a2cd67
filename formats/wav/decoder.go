// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/kwsdata/audio"
	"github.com/ik5/kwsdata/utils"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

const framesPerRead = 2048

type intReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// pcmSource scales go-audio integer samples to float32. A short read from
// go-audio marks the end of the data chunk.
type pcmSource struct {
	ints     intReader
	format   goaudio.Format
	bitDepth int
	scratch  goaudio.IntBuffer
	finished bool
}

func newPCMSource(ints intReader, rate, channels, bitDepth int) *pcmSource {
	s := &pcmSource{
		ints:     ints,
		format:   goaudio.Format{SampleRate: rate, NumChannels: channels},
		bitDepth: bitDepth,
	}
	s.scratch.Format = &s.format
	s.scratch.SourceBitDepth = bitDepth
	return s
}

func (s *pcmSource) SampleRate() int { return s.format.SampleRate }
func (s *pcmSource) Channels() int   { return s.format.NumChannels }
func (s *pcmSource) BufSize() int    { return framesPerRead * s.format.NumChannels }
func (s *pcmSource) Close() error    { return nil }

func (s *pcmSource) ReadSamples(dst []float32) (int, error) {
	if s.finished {
		return 0, io.EOF
	}

	want := len(dst) - len(dst)%s.format.NumChannels
	if want == 0 {
		return 0, nil
	}

	if cap(s.scratch.Data) < want {
		s.scratch.Data = make([]int, want)
	}
	s.scratch.Data = s.scratch.Data[:want]

	n, err := s.ints.PCMBuffer(&s.scratch)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, fmt.Errorf("reading wav samples: %w", err)
	}

	for i, v := range s.scratch.Data[:n] {
		dst[i] = utils.IntToFloat32(v, s.bitDepth)
	}

	if err != nil || n < want {
		s.finished = true
		return n, io.EOF
	}

	return n, nil
}

// Decoder reads RIFF/WAVE files with integer PCM samples (8, 16, 24 or 32
// bit). Unknown chunks such as LIST are skipped.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("buffering wav input: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	dec.ReadInfo()

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, ErrUnsupportedEncoding
	}

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	if dec.NumChans == 0 {
		return nil, fmt.Errorf("%w: no channels", ErrNotWavFile)
	}

	return newPCMSource(dec, int(dec.SampleRate), int(dec.NumChans), int(dec.BitDepth)), nil
}
