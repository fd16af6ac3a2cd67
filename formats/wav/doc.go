// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes WAV files.
//
// Decoding is done with github.com/go-audio/wav and accepts integer PCM at 8,
// 16, 24 or 32 bits with any channel count and sample rate. Chunks other than
// fmt and data are skipped, which matters for recordings that carry LIST
// metadata. IEEE float WAV is rejected with ErrUnsupportedEncoding.
//
//	src, err := wav.Decoder{}.Decode(file)
//
// WriteWAV16 and WriteMono write mono 16-bit PCM with a canonical 44-byte
// header to any io.Writer. They are used to export clips for listening.
package wav
