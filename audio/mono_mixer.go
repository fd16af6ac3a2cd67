// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer downmixes an interleaved multi-channel Source to one channel by
// averaging every frame.
type MonoMixer struct {
	src Source
	tmp []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{src: src}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples writes at most len(dst) mono samples.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels <= 1 {
		return m.src.ReadSamples(dst)
	}

	need := len(dst) * channels
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp)
	frames := n / channels
	if frames == 0 {
		return 0, err
	}

	scale := 1 / float32(channels)
	for f := range frames {
		var sum float32
		for _, v := range m.tmp[f*channels : (f+1)*channels] {
			sum += v
		}
		dst[f] = sum * scale
	}

	return frames, err
}
