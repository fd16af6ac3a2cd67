// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with
// github.com/hajimehoshi/go-mp3. The resulting audio.Source is always
// stereo; mono files are duplicated to both channels by go-mp3, so downmixing
// with audio.MonoMixer recovers the original signal.
package mp3
