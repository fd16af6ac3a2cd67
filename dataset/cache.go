// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	cacheMagic   = "kwsfeat"
	cacheVersion = 1
)

// FeatureEntry is one pre-extracted feature and its label string. An empty
// Shape means a vector of len(Values).
type FeatureEntry struct {
	Values []float32 `msgpack:"values" yaml:"values"`
	Shape  []int     `msgpack:"shape,omitempty" yaml:"shape,omitempty"`
	Label  string    `msgpack:"label" yaml:"label"`
}

// Dims returns the effective shape of the entry.
func (e FeatureEntry) Dims() []int {
	if len(e.Shape) == 0 {
		return []int{len(e.Values)}
	}
	return e.Shape
}

func (e FeatureEntry) validate() error {
	if len(e.Shape) == 0 {
		return nil
	}

	size := 1
	for _, d := range e.Shape {
		if d < 0 {
			return fmt.Errorf("negative dimension in shape %v", e.Shape)
		}
		size *= d
	}
	if size != len(e.Values) {
		return fmt.Errorf("shape %v holds %d values, entry has %d", e.Shape, size, len(e.Values))
	}

	return nil
}

type cacheFile struct {
	Magic   string         `msgpack:"magic"`
	Version int            `msgpack:"version"`
	Entries []FeatureEntry `msgpack:"entries"`
}

// WriteFeatureCache serializes entries in order.
func WriteFeatureCache(w io.Writer, entries []FeatureEntry) error {
	for i, e := range entries {
		if err := e.validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}

	bw := bufio.NewWriter(w)
	enc := msgpack.NewEncoder(bw)
	if err := enc.Encode(cacheFile{Magic: cacheMagic, Version: cacheVersion, Entries: entries}); err != nil {
		return fmt.Errorf("encoding feature cache: %w", err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteFeatureCacheFile writes entries to path, replacing it.
func WriteFeatureCacheFile(path string, entries []FeatureEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := WriteFeatureCache(f, entries); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// ReadFeatureCache decodes a cache written by WriteFeatureCache. Anything
// else yields an error wrapping ErrMalformedCache.
func ReadFeatureCache(r io.Reader) ([]FeatureEntry, error) {
	var c cacheFile

	dec := msgpack.NewDecoder(bufio.NewReader(r))
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCache, err)
	}

	if c.Magic != cacheMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrMalformedCache, c.Magic)
	}
	if c.Version != cacheVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedCache, c.Version)
	}

	for i, e := range c.Entries {
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrMalformedCache, i, err)
		}
	}

	return c.Entries, nil
}

// ReadFeatureCacheFile opens path and decodes it with ReadFeatureCache.
func ReadFeatureCacheFile(path string) ([]FeatureEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening feature cache: %w", err)
	}
	defer f.Close()

	return ReadFeatureCache(f)
}
