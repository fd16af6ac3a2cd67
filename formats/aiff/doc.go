// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes big-endian PCM AIFF files (8, 16, 24 and 32-bit)
// using github.com/go-audio/aiff. Samples are scaled to [-1, 1]; 8-bit AIFF
// samples are signed.
package aiff
