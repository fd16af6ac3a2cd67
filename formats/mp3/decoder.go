// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/kwsdata/audio"
	"github.com/ik5/kwsdata/utils"
)

const (
	// go-mp3 output: interleaved stereo, signed 16-bit little-endian.
	outputChannels = 2
	bytesPerFrame  = outputChannels * 2
	defaultFrames  = 2048
)

type byteStream interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// pcmStream turns go-mp3 bytes into float samples. Reads may split a frame,
// so leftover bytes are kept in pending until the frame completes.
type pcmStream struct {
	r       byteStream
	raw     []byte
	pending []byte
}

func newPCMStream(r byteStream) *pcmStream {
	return &pcmStream{
		r:       r,
		raw:     make([]byte, defaultFrames*bytesPerFrame),
		pending: make([]byte, 0, bytesPerFrame),
	}
}

func (s *pcmStream) SampleRate() int { return s.r.SampleRate() }
func (s *pcmStream) Channels() int   { return outputChannels }
func (s *pcmStream) BufSize() int    { return defaultFrames * outputChannels }
func (s *pcmStream) Close() error    { return nil }

func (s *pcmStream) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / outputChannels
	if frames == 0 {
		return 0, nil
	}

	size := frames * bytesPerFrame
	if cap(s.raw) < size {
		s.raw = make([]byte, size)
	}
	raw := s.raw[:size]

	have := copy(raw, s.pending)
	s.pending = s.pending[:0]

	n, err := s.r.Read(raw[have:])
	have += n

	whole := have - have%bytesPerFrame
	s.pending = append(s.pending, raw[whole:have]...)

	count := whole / 2
	for i := range count {
		dst[i] = utils.IntToFloat32(int(int16(binary.LittleEndian.Uint16(raw[2*i:]))), 16)
	}

	if err != nil && err != io.EOF {
		return count, fmt.Errorf("reading mp3 stream: %w", err)
	}
	return count, err
}

// Decoder decodes MP3 files into a stereo audio.Source.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	d, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return newPCMStream(d), nil
}
