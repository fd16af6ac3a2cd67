// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmptyLabel      = errors.New("empty label")
	ErrDuplicateLabel  = errors.New("duplicate label")
	ErrMalformedCache  = errors.New("malformed feature cache")
	ErrInvalidClipSpec = errors.New("sample rate and duration must be positive")
)

// DecodeError reports an audio file that could not be turned into a sample.
type DecodeError struct {
	Index int
	Path  string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding sample %d (%s): %v", e.Index, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, length)
	}
	return nil
}
