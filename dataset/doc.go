// SPDX-License-Identifier: EPL-2.0

// Package dataset provides indexed access to keyword spotting samples.
//
// AudioSource reads a manifest of "<label>/<file>" paths and decodes the
// referenced file on every Get into a mono waveform of a fixed length
// (16 kHz and one second by default, so 16000 samples). Shorter recordings
// are zero-padded at the end and longer ones truncated at the end.
//
// FeatureSource serves (feature, label) pairs from a msgpack feature cache
// written by WriteFeatureCache.
//
// Both implement Dataset. Labels are mapped through a Vocabulary; strings
// that are not part of it map to Vocabulary.UnknownID, which is always equal
// to the vocabulary length. Sample.Label is a one-element slice.
//
//	vocab := dataset.DefaultVocabulary()
//	train, err := dataset.NewAudioSource("train/audio", vocab, "train/testing_list.txt")
//	if err != nil {
//	    return err
//	}
//	s, err := train.Get(0)
//
// Sources perform no I/O until they are constructed and hold no locks; all
// state is fixed at construction, so concurrent Get calls are safe.
package dataset
