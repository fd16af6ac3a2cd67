// SPDX-License-Identifier: EPL-2.0

package kwsdata

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/kwsdata/audio"
)

// ClipSpec describes the shape of a decoded clip.
type ClipSpec struct {
	// SampleRate of the output in Hz.
	SampleRate int
	// Length of the output in samples.
	Length int
	// Quality of the sample rate conversion.
	Quality audio.Quality
}

// LoadClip opens path, picks a decoder by extension and returns a mono clip
// shaped by spec.
func LoadClip(reg *audio.Registry, path string, spec ClipSpec) ([]float32, error) {
	dec, err := reg.ForPath(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	return DecodeClip(dec, f, spec)
}

// DecodeClip runs r through dec and the mono, rate and length stages.
func DecodeClip(dec audio.Decoder, r io.Reader, spec ClipSpec) ([]float32, error) {
	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	defer src.Close()

	if src.SampleRate() <= 0 || src.Channels() <= 0 {
		return nil, fmt.Errorf("decoding: %w", audio.ErrInvalidRate)
	}

	// downmix first so the resampler works on a single channel
	mono := audio.NewMonoMixer(src)

	stream, err := audio.ConvertRate(mono, spec.SampleRate, spec.Quality)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	clip, err := audio.Fit(stream, spec.Length)
	if err != nil {
		return nil, fmt.Errorf("reading samples: %w", err)
	}

	return clip, nil
}
