// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/kwsdata/utils"
)

const writeChunkSamples = 8192

// WriteWAV16 writes a canonical 44-byte header mono 16-bit PCM WAV.
// w does not need to be seekable.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	const (
		channels      = 1
		bitsPerSample = 16
		blockAlign    = channels * bitsPerSample / 8
	)
	dataSize := uint32(len(samples) * blockAlign)

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], channels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	buf := make([]byte, 0, min(len(samples), writeChunkSamples)*2)
	for start := 0; start < len(samples); start += writeChunkSamples {
		buf = buf[:0]
		for _, s := range samples[start:min(start+writeChunkSamples, len(samples))] {
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
	}

	return nil
}

// WriteMono converts float samples in [-1, 1] to 16-bit PCM and writes them
// with WriteWAV16.
func WriteMono(w io.Writer, sampleRate int, samples []float32) error {
	pcm := make([]int16, len(samples))
	for i, v := range samples {
		pcm[i] = utils.Float32ToInt16(v)
	}

	return WriteWAV16(w, sampleRate, pcm)
}
