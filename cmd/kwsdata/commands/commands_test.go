// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/kwsdata/internal/audiotest"
)

// run executes the root command. Commands share package-level flag state,
// so tests in this package do not run in parallel.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func writeDataset(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	clip := audiotest.PCM16WAV(16000, 1, audiotest.ConstantPCM16(800, 1, 4096))
	for _, rel := range []string{"audio/yes/a.wav", "audio/bird/b.wav"} {
		if err := audiotest.WriteFile(dir, rel, clip); err != nil {
			t.Fatal(err)
		}
	}

	files := map[string]string{
		"list.txt":     "yes/a.wav\nbird/b.wav\n",
		"entries.yaml": "- values: [0.1, 0.2]\n  label: \"no\"\n- values: [0.3]\n  label: bird\n",
		"dataset.yaml": "labels: [\"yes\", \"no\"]\naudio:\n  root: audio\n  manifest: list.txt\n  quality: fast\nfeatures:\n  cache: features.kwsf\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return dir
}

func TestCacheConvertAndInfo(t *testing.T) {
	dir := writeDataset(t)
	cache := filepath.Join(dir, "features.kwsf")

	out, err := run(t, "cache", "convert", filepath.Join(dir, "entries.yaml"), "-o", cache)
	if err != nil {
		t.Fatalf("cache convert: %v", err)
	}
	if !strings.Contains(out, "wrote 2 entries") {
		t.Errorf("cache convert output = %q", out)
	}

	out, err = run(t, "cache", "info", cache)
	if err != nil {
		t.Fatalf("cache info: %v", err)
	}
	if want := "entries\t2\nbird\t1\nno\t1\n"; out != want {
		t.Errorf("cache info output = %q, want %q", out, want)
	}
}

func TestCountInspectExport(t *testing.T) {
	dir := writeDataset(t)
	cfg := filepath.Join(dir, "dataset.yaml")

	if _, err := run(t, "cache", "convert", filepath.Join(dir, "entries.yaml"), "-o", filepath.Join(dir, "features.kwsf")); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "-c", cfg, "count")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if out != "audio\t2\nfeatures\t2\n" {
		t.Errorf("count output = %q", out)
	}

	out, err = run(t, "-c", cfg, "inspect", "-n", "4", "--seed", "3")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line != "0\tyes\t[16000]" && line != "1\tunknown\t[16000]" {
			t.Errorf("inspect line %q", line)
		}
	}

	wavPath := filepath.Join(dir, "out.wav")
	out, err = run(t, "-c", cfg, "export", "0", "-o", wavPath)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "\tyes") {
		t.Errorf("export output = %q", out)
	}

	info, err := os.Stat(wavPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 44+2*16000 {
		t.Errorf("exported %d bytes, want %d", info.Size(), 44+2*16000)
	}
}

func TestExport_BadIndex(t *testing.T) {
	if _, err := run(t, "export", "first", "-o", filepath.Join(t.TempDir(), "x.wav")); err == nil {
		t.Error("export accepted a non-numeric index")
	}
}

func TestVersion_ListsFormats(t *testing.T) {
	out, err := run(t, "version", "-v")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "formats: aif, aiff, mp3, oga, ogg, wav, wave") {
		t.Errorf("version -v output = %q", out)
	}
}
