// SPDX-License-Identifier: EPL-2.0

// Package kwsdata loads keyword spotting (speech command) datasets for a
// training loop.
//
// The dataset subpackage holds the two indexed sources: dataset.AudioSource,
// which decodes files listed in a manifest on every access, and
// dataset.FeatureSource, which serves pre-extracted features from a cache
// file. Both resolve label strings against a dataset.Vocabulary and map
// unseen labels to a single unknown id.
//
// This package wires the audio stack together:
//
//	reg := kwsdata.NewRegistry()         // wav, mp3, ogg, aiff
//	clip, err := kwsdata.LoadClip(reg, "train/audio/yes/0a7c2a8d_nohash_0.wav", kwsdata.ClipSpec{
//	    SampleRate: 16000,
//	    Length:     16000,
//	})
//
// LoadClip decodes a file, downmixes it to mono, converts it to the requested
// sample rate and truncates or zero-pads it at the end to exactly Length
// samples.
//
// # Supported Formats
//
//   - WAV (integer PCM) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 8/16/24/32-bit) via formats/aiff
package kwsdata
