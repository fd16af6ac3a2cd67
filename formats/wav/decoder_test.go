// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/kwsdata/internal/audiotest"
)

func readAll(t *testing.T, r io.Reader) ([]float32, int, int) {
	t.Helper()

	src, err := Decoder{}.Decode(r)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	var out []float32
	buf := make([]float32, 64)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	return out, src.SampleRate(), src.Channels()
}

func TestDecoder_Mono(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, -32768, 8192}
	got, rate, channels := readAll(t, bytes.NewReader(audiotest.PCM16WAV(16000, 1, samples)))

	if rate != 16000 || channels != 1 {
		t.Errorf("format = %d Hz/%d ch, want 16000 Hz/1 ch", rate, channels)
	}

	want := []float32{0, 0.5, -0.5, -1, 0.25}
	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecoder_Stereo(t *testing.T) {
	t.Parallel()

	samples := audiotest.ConstantPCM16(300, 2, 100)
	got, rate, channels := readAll(t, bytes.NewReader(audiotest.PCM16WAV(44100, 2, samples)))

	if rate != 44100 || channels != 2 {
		t.Errorf("format = %d Hz/%d ch, want 44100 Hz/2 ch", rate, channels)
	}
	if len(got) != 600 {
		t.Errorf("got %d samples, want 600", len(got))
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	data := audiotest.PCM16WAV(8000, 1, audiotest.ConstantPCM16(200, 1, 1000))
	got, _, _ := readAll(t, io.MultiReader(bytes.NewReader(data)))

	if len(got) != 200 {
		t.Errorf("got %d samples, want 200", len(got))
	}
}

func TestDecoder_NotWAV(t *testing.T) {
	t.Parallel()

	inputs := map[string][]byte{
		"text":      []byte("this is certainly not a RIFF file, just some text padding it out"),
		"truncated": []byte("RIFF\x00"),
		"empty":     {},
	}

	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestDecoder_FloatRejected(t *testing.T) {
	t.Parallel()

	data := audiotest.PCM16WAV(8000, 1, audiotest.ConstantPCM16(100, 1, 0))
	// audio format 3 is IEEE float
	binary.LittleEndian.PutUint16(data[20:22], 3)

	_, err := Decoder{}.Decode(bytes.NewReader(data))
	if !errors.Is(err, ErrUnsupportedEncoding) && !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrUnsupportedEncoding", err)
	}
}

func TestWriteMono_RoundTrip(t *testing.T) {
	t.Parallel()

	in := []float32{0, 0.5, -0.5, 1, -1}
	buf := new(bytes.Buffer)
	if err := WriteMono(buf, 16000, in); err != nil {
		t.Fatalf("WriteMono() error = %v", err)
	}

	if buf.Len() != 44+len(in)*2 {
		t.Errorf("file size = %d, want %d", buf.Len(), 44+len(in)*2)
	}

	got, rate, channels := readAll(t, buf)
	if rate != 16000 || channels != 1 {
		t.Errorf("format = %d Hz/%d ch, want 16000 Hz/1 ch", rate, channels)
	}
	if len(got) != len(in) {
		t.Fatalf("got %d samples, want %d", len(got), len(in))
	}
	for i := range in {
		if d := got[i] - in[i]; d > 1e-4 || d < -1e-4 {
			t.Errorf("sample %d = %v, want ≈%v", i, got[i], in[i])
		}
	}
}

func TestWriteWAV16_Header(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 8000, []int16{1, 2, 3}); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
	b := buf.Bytes()

	checks := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"riff size", binary.LittleEndian.Uint32(b[4:8]), 36 + 6},
		{"sample rate", binary.LittleEndian.Uint32(b[24:28]), 8000},
		{"byte rate", binary.LittleEndian.Uint32(b[28:32]), 16000},
		{"data size", binary.LittleEndian.Uint32(b[40:44]), 6},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}
	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" || string(b[36:40]) != "data" {
		t.Error("header markers are wrong")
	}
}

type fixedInts struct {
	data []int
	err  error
}

func (f *fixedInts) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := copy(buf.Data, f.data)
	f.data = f.data[n:]
	return n, nil
}

func TestPCMSource_EightBitUnsigned(t *testing.T) {
	t.Parallel()

	s := newPCMSource(&fixedInts{data: []int{128, 192, 0}}, 8000, 1, 8)

	buf := make([]float32, 4)
	n, err := s.ReadSamples(buf)
	if n != 3 || err != io.EOF {
		t.Fatalf("ReadSamples() = %d, %v, want 3, EOF", n, err)
	}
	if buf[0] != 0 || buf[1] != 0.5 || buf[2] != -1 {
		t.Errorf("samples = %v, want [0 0.5 -1]", buf[:3])
	}

	if n, err := s.ReadSamples(buf); n != 0 || err != io.EOF {
		t.Errorf("read after end = %d, %v, want 0, EOF", n, err)
	}
}

func TestPCMSource_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad sector")
	s := newPCMSource(&fixedInts{err: boom}, 8000, 2, 16)

	if _, err := s.ReadSamples(make([]float32, 8)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
	if n, err := s.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("sub-frame read = %d, %v, want 0, nil", n, err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteWAV16_WriteError(t *testing.T) {
	t.Parallel()

	if err := WriteWAV16(failingWriter{}, 8000, []int16{1}); err == nil {
		t.Error("WriteWAV16() error = nil, want error")
	}
}

func BenchmarkDecoder_OneSecond(b *testing.B) {
	data := audiotest.PCM16WAV(16000, 1, audiotest.ConstantPCM16(16000, 1, 1000))
	buf := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		src, err := Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			b.Fatal(err)
		}
		for {
			n, err := src.ReadSamples(buf)
			if n == 0 || err != nil {
				break
			}
		}
	}
}
