// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Source is a stream of interleaved float32 PCM samples in [-1,1].
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved samples and returns the number
	// of float32 values written (not frames). n == 0 with io.EOF ends the stream.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys (file extensions such as "wav", "mp3", "ogg")
// to decoders. Keys are case-insensitive and a leading dot is ignored.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.RWMutex{},
	}
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normalizeFormat(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[normalizeFormat(format)]
	return d, ok
}

// ForPath looks the decoder up by the extension of path.
func (r *Registry) ForPath(path string) (Decoder, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil, ErrUnsupportedFormat
	}

	d, ok := r.Get(ext)
	if !ok {
		return nil, ErrUnsupportedFormat
	}

	return d, nil
}

// Formats returns the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		out = append(out, k)
	}
	slices.Sort(out)

	return out
}
