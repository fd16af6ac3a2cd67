// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives used to turn a decoded file
// into a fixed-length training clip.
//
// # Source Interface
//
// Every decoder and processor implements Source and yields interleaved
// float32 samples in [-1.0, 1.0]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns io.EOF when the stream is finished. It may return
// samples together with io.EOF.
//
// # Pipeline
//
// A clip is produced by chaining processors:
//
//	mono := audio.NewMonoMixer(src)
//	resampled, err := audio.ConvertRate(mono, 16000, audio.QualityHigh)
//	clip, err := audio.Fit(resampled, 16000)
//
// ConvertRate picks the cubic Resampler for QualityFast and the band-limited
// HQResampler for QualityHigh, and is a no-op when the rates already match.
//
// # Length Policy
//
// Fit truncates at the end and zero-pads at the end, so a clip always has
// exactly the requested number of samples.
//
// # Format Registry
//
// Registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("yes/0a7c2a8d_nohash_0.wav")
package audio
