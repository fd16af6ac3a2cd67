// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	resampling "github.com/tphakala/go-audio-resampling"
)

// Quality selects the sample rate conversion algorithm.
type Quality int

const (
	// QualityHigh uses a polyphase band-limited resampler.
	QualityHigh Quality = iota
	// QualityFast uses cubic interpolation.
	QualityFast
)

func (q Quality) String() string {
	switch q {
	case QualityHigh:
		return "high"
	case QualityFast:
		return "fast"
	default:
		return fmt.Sprintf("Quality(%d)", int(q))
	}
}

// ParseQuality accepts "high" or "fast". An empty string means QualityHigh.
func ParseQuality(s string) (Quality, error) {
	switch s {
	case "", "high":
		return QualityHigh, nil
	case "fast":
		return QualityFast, nil
	default:
		return 0, fmt.Errorf("unknown resample quality %q", s)
	}
}

// HQResampler converts src to a target rate with go-audio-resampling. Each
// channel runs through its own mono filter and the output is re-interleaved.
// At the end of src the filters are flushed so the tail is not lost.
type HQResampler struct {
	src      Source
	dstRate  int
	channels int
	lanes    []resampling.Resampler

	in      []float32
	split   [][]float64
	pending []float32
	eof     bool
}

func NewHQResampler(src Source, dstRate int) (*HQResampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, ErrInvalidRate
	}

	channels := max(src.Channels(), 1)
	lanes := make([]resampling.Resampler, channels)
	for c := range lanes {
		rs, err := resampling.New(&resampling.Config{
			InputRate:  float64(src.SampleRate()),
			OutputRate: float64(dstRate),
			Channels:   1,
			Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
		})
		if err != nil {
			return nil, fmt.Errorf("creating resampler: %w", err)
		}
		lanes[c] = rs
	}

	return &HQResampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
		lanes:    lanes,
		in:       make([]float32, resampleChunkFrames*channels),
		split:    make([][]float64, channels),
	}, nil
}

func (h *HQResampler) SampleRate() int { return h.dstRate }
func (h *HQResampler) Channels() int   { return h.channels }
func (h *HQResampler) BufSize() int    { return h.src.BufSize() }

func (h *HQResampler) Close() error {
	if err := h.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples returns interleaved output. Only whole frames are returned,
// so dst shorter than one frame yields ErrInvalidDstSize.
func (h *HQResampler) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	dst = dst[:len(dst)-len(dst)%h.channels]
	if len(dst) == 0 {
		return 0, ErrInvalidDstSize
	}

	for len(h.pending) == 0 {
		if h.eof {
			return 0, io.EOF
		}
		if err := h.process(); err != nil {
			return 0, err
		}
	}

	n := copy(dst, h.pending)
	h.pending = h.pending[n:]

	return n, nil
}

func (h *HQResampler) process() error {
	n, err := h.src.ReadSamples(h.in)
	if errors.Is(err, io.EOF) || (err == nil && n == 0) {
		h.eof = true
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	h.pending = h.pending[:0]

	if frames := n / h.channels; frames > 0 {
		for c := range h.channels {
			h.split[c] = h.split[c][:0]
			for f := range frames {
				h.split[c] = append(h.split[c], float64(h.in[f*h.channels+c]))
			}
		}

		out := make([][]float64, h.channels)
		for c, lane := range h.lanes {
			if out[c], err = lane.Process(h.split[c]); err != nil {
				return fmt.Errorf("resample: %w", err)
			}
		}
		h.interleave(out)
	}

	if h.eof {
		tails := make([][]float64, h.channels)
		for c, lane := range h.lanes {
			if tails[c], err = lane.Flush(); err != nil {
				return fmt.Errorf("flushing resampler: %w", err)
			}
		}
		h.interleave(tails)
	}

	return nil
}

// interleave appends per-channel output to pending, truncated to the
// shortest lane.
func (h *HQResampler) interleave(lanes [][]float64) {
	frames := len(lanes[0])
	for _, l := range lanes[1:] {
		frames = min(frames, len(l))
	}

	for f := range frames {
		for c := range h.channels {
			h.pending = append(h.pending, float32(lanes[c][f]))
		}
	}
}

// ConvertRate returns src unchanged when it already runs at rate, otherwise a
// resampler of the requested quality.
func ConvertRate(src Source, rate int, q Quality) (Source, error) {
	if rate <= 0 {
		return nil, ErrInvalidRate
	}
	if src.SampleRate() == rate {
		return src, nil
	}

	if q == QualityFast {
		return NewResampler(src, rate), nil
	}

	return NewHQResampler(src, rate)
}
