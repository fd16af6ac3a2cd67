// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
)

// PCM16WAV builds a canonical 16-bit PCM WAV file in memory.
// samples are interleaved when channels > 1.
func PCM16WAV(sampleRate, channels int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	dataSize := uint32(len(samples) * 2)
	blockAlign := uint16(channels * 2)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate)*uint32(blockAlign))
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	binary.Write(buf, binary.LittleEndian, samples)

	return buf.Bytes()
}

// ConstantPCM16 returns frames*channels copies of v.
func ConstantPCM16(frames, channels int, v int16) []int16 {
	out := make([]int16, frames*channels)
	for i := range out {
		out[i] = v
	}
	return out
}

// WriteFile writes data to root/rel, creating parent directories.
func WriteFile(root, rel string, data []byte) error {
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
