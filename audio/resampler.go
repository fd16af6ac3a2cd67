// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/kwsdata/utils"
)

const resampleChunkFrames = 1024

// Resampler streams src to a target sample rate using Catmull-Rom cubic
// interpolation. Channel count is preserved. When downsampling, a one-pole
// low-pass filter runs on the input to reduce aliasing.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	// hist holds interleaved source frames; pos is the read position in
	// frames relative to hist[0].
	hist []float32
	pos  float64
	eof  bool

	readBuf []float32

	alpha    float32
	filtered []float32
	primed   bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		ratio:    ratio,
		channels: channels,
		readBuf:  make([]float32, resampleChunkFrames*channels),
		filtered: make([]float32, channels),
	}

	if ratio > 1 {
		// cutoff at the destination Nyquist frequency
		cutoff := float64(dstRate) / 2
		r.alpha = float32(1 - math.Exp(-2*math.Pi*cutoff/float64(src.SampleRate())))
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (r *Resampler) frames() int { return len(r.hist) / r.channels }

// fill appends one chunk of source frames to hist.
func (r *Resampler) fill() error {
	n, err := r.src.ReadSamples(r.readBuf)
	n -= n % r.channels

	chunk := r.readBuf[:n]
	if r.alpha > 0 {
		for i := 0; i < len(chunk); i += r.channels {
			for c := range r.channels {
				if !r.primed {
					r.filtered[c] = chunk[i+c]
				}
				r.filtered[c] += r.alpha * (chunk[i+c] - r.filtered[c])
				chunk[i+c] = r.filtered[c]
			}
			r.primed = true
		}
	}
	r.hist = append(r.hist, chunk...)

	if errors.Is(err, io.EOF) {
		r.eof = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if n == 0 && len(r.readBuf) > 0 {
		// a source that returns nothing without EOF is treated as drained
		r.eof = true
	}

	return nil
}

func (r *Resampler) frameAt(i, c int) float32 {
	last := r.frames() - 1
	if i < 0 {
		i = 0
	} else if i > last {
		i = last
	}
	return r.hist[i*r.channels+c]
}

// ReadSamples produces interleaved samples at the destination rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.ratio == 1 {
		return r.src.ReadSamples(dst)
	}

	want := len(dst) / r.channels
	written := 0

	for written < want {
		i := int(r.pos)
		for !r.eof && r.frames() < i+3 {
			if err := r.fill(); err != nil {
				return written * r.channels, err
			}
		}
		if i >= r.frames() {
			break
		}

		x := float32(r.pos - float64(i))
		for c := range r.channels {
			dst[written*r.channels+c] = utils.CubicInterpolate(
				r.frameAt(i-1, c), r.frameAt(i, c), r.frameAt(i+1, c), r.frameAt(i+2, c), x)
		}
		written++
		r.pos += r.ratio
	}

	// keep one frame of history before the read position
	if drop := int(r.pos) - 1; drop > 0 && drop <= r.frames() {
		r.hist = append(r.hist[:0], r.hist[drop*r.channels:]...)
		r.pos -= float64(drop)
	}

	if written < want {
		return written * r.channels, io.EOF
	}

	return written * r.channels, nil
}
