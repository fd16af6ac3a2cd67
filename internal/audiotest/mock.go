// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrInjected is returned by a FailingSource.
var ErrInjected = errors.New("audiotest: injected read failure")

// MockSource generates audio from a waveform function.
// It implements audio.Source without importing it to avoid cycles.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to generate
	generated  int
	waveform   func(frame int, channel int) float32
	closed     bool
}

func NewMockSource(sampleRate, channels, frames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

// NewRampSource yields frame/frames on every channel, handy for checking
// that sample order survives a pipeline.
func NewRampSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame int, _ int) float32 {
		return float32(frame) / float32(frames)
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Closed() bool    { return m.closed }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Generated reports how many frames were handed out so far.
func (m *MockSource) Generated() int { return m.generated }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	count := min(len(dst)/m.channels, m.frames-m.generated)
	for f := range count {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += count

	if m.generated >= m.frames {
		return count * m.channels, io.EOF
	}

	return count * m.channels, nil
}

// FailingSource reports ErrInjected on every read.
type FailingSource struct {
	Rate int
}

func (f FailingSource) SampleRate() int                      { return f.Rate }
func (FailingSource) Channels() int                          { return 1 }
func (FailingSource) BufSize() int                           { return 4096 }
func (FailingSource) Close() error                           { return nil }
func (FailingSource) ReadSamples(dst []float32) (int, error) { return 0, ErrInjected }
