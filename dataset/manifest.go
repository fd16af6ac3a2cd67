// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadManifest returns one entry per non-blank line of r, with surrounding
// whitespace removed, in file order. Blank and whitespace-only lines are
// dropped rather than turned into empty entries, so the entry count (and the
// Len of a source built from it) can be lower than the raw line count of a
// manifest that contains them.
func ReadManifest(r io.Reader) ([]string, error) {
	var entries []string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	return entries, nil
}

// LoadManifest reads the manifest file at path.
func LoadManifest(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	return ReadManifest(f)
}

// LabelOf returns the first path segment of a manifest entry
// ("yes/0a7c2a8d_nohash_0.wav" -> "yes"). An entry without a separator is
// its own label.
func LabelOf(entry string) string {
	label, _, _ := strings.Cut(entry, "/")
	return label
}
