// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// Fit reads exactly length samples from src. Streams longer than length are
// truncated at the end (the tail is never decoded); shorter streams are
// zero-padded at the end.
func Fit(src Source, length int) ([]float32, error) {
	if length < 0 {
		return nil, ErrInvalidLength
	}

	out := make([]float32, length)
	filled := 0

	for filled < length {
		n, err := src.ReadSamples(out[filled:])
		filled += n

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}

	return out, nil
}

// readAll drains src using reads of bufSize samples.
func readAll(src Source, bufSize int) ([]float32, error) {
	if bufSize <= 0 {
		bufSize = max(src.BufSize(), 4096)
	}

	var out []float32
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			return out, nil
		}
	}
}
