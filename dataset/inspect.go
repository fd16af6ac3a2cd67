// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/ik5/kwsdata/formats/wav"
)

// ErrNotWaveform is returned by Export for samples that are not 1-D.
var ErrNotWaveform = errors.New("sample is not a 1-D waveform")

// Inspect draws n indices uniformly at random (with replacement) from ds and
// writes one "index<TAB>label<TAB>shape" line for each. Every drawn sample
// is fully loaded, so decode failures surface here.
func Inspect(w io.Writer, ds Dataset, vocab *Vocabulary, n int, rng *rand.Rand) error {
	if ds.Len() == 0 || n <= 0 {
		return nil
	}

	for range n {
		idx := rng.IntN(ds.Len())

		s, err := ds.Get(idx)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "%d\t%s\t%v\n", idx, vocab.Name(s.LabelID()), s.Input.Shape); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// Export writes a waveform sample as a mono 16-bit WAV at sampleRate.
func Export(w io.Writer, s Sample, sampleRate int) error {
	if len(s.Input.Shape) != 1 {
		return ErrNotWaveform
	}

	return wav.WriteMono(w, sampleRate, s.Input.Data)
}
