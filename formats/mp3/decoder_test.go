// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// mockMP3Reader hands out little-endian int16 PCM in chunks of at most
// maxRead bytes, which may split a sample.
type mockMP3Reader struct {
	data    []byte
	maxRead int
	err     error
}

func newMockMP3Reader(samples []int16, maxRead int) *mockMP3Reader {
	data := make([]byte, 0, len(samples)*2)
	for _, s := range samples {
		data = binary.LittleEndian.AppendUint16(data, uint16(s))
	}
	return &mockMP3Reader{data: data, maxRead: maxRead}
}

func (m *mockMP3Reader) SampleRate() int { return 44100 }

func (m *mockMP3Reader) Read(p []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.data) == 0 {
		return 0, io.EOF
	}

	n := copy(p[:min(len(p), m.maxRead)], m.data)
	m.data = m.data[n:]
	if len(m.data) == 0 {
		return n, io.EOF
	}
	return n, nil
}

func drain(t *testing.T, s *pcmStream, bufLen int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, bufLen)
	for range 1000 {
		n, err := s.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	t.Fatal("source never reached EOF")
	return nil
}

func TestStream_Conversion(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, -32768, 8192, -8192}
	s := newPCMStream(newMockMP3Reader(samples, 1<<20))

	got := drain(t, s, 64)
	want := []float32{0, 0.5, -0.5, -1, 0.25, -0.25}
	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStream_SplitFrames(t *testing.T) {
	t.Parallel()

	samples := []int16{100, -100, 200, -200, 300, -300, 400, -400}
	s := newPCMStream(newMockMP3Reader(samples, 3))

	got := drain(t, s, 4)
	if len(got) != len(samples) {
		t.Fatalf("got %d samples, want %d", len(got), len(samples))
	}
	for i, v := range samples {
		if want := float32(v) / 32768; got[i] != want {
			t.Errorf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestStream_Metadata(t *testing.T) {
	t.Parallel()

	s := newPCMStream(newMockMP3Reader(nil, 10))

	if s.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", s.SampleRate())
	}
	if s.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", s.Channels())
	}
	if s.BufSize()%2 != 0 {
		t.Errorf("BufSize() = %d, not a whole number of frames", s.BufSize())
	}
	if n, err := s.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples(1) = %d, %v, want 0, nil", n, err)
	}
}

func TestStream_ReadError(t *testing.T) {
	t.Parallel()

	bad := errors.New("corrupt frame")
	s := newPCMStream(&mockMP3Reader{err: bad})

	if _, err := s.ReadSamples(make([]float32, 8)); !errors.Is(err, bad) {
		t.Errorf("ReadSamples() error = %v, want %v", err, bad)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("This is not MP3 data")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", data)
		}
	}
}
