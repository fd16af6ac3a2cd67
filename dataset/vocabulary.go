// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"fmt"
	"slices"
)

// UnknownLabel is the display name of the unknown id.
const UnknownLabel = "unknown"

// DefaultLabels are the ten command words of the speech commands task.
var DefaultLabels = []string{"yes", "no", "up", "down", "left", "right", "on", "off", "stop", "go"}

// Vocabulary is an ordered, immutable set of labels. A label's id is its
// position; every other string maps to UnknownID, which equals Len.
type Vocabulary struct {
	labels []string
	ids    map[string]int
}

func NewVocabulary(labels ...string) (*Vocabulary, error) {
	v := &Vocabulary{
		labels: slices.Clone(labels),
		ids:    make(map[string]int, len(labels)),
	}

	for i, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("%w at position %d", ErrEmptyLabel, i)
		}
		if _, ok := v.ids[l]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, l)
		}
		v.ids[l] = i
	}

	return v, nil
}

// DefaultVocabulary is built from DefaultLabels.
func DefaultVocabulary() *Vocabulary {
	v, _ := NewVocabulary(DefaultLabels...)
	return v
}

func (v *Vocabulary) Len() int       { return len(v.labels) }
func (v *Vocabulary) UnknownID() int { return len(v.labels) }

// ID returns the id of label, or UnknownID.
func (v *Vocabulary) ID(label string) int {
	if id, ok := v.ids[label]; ok {
		return id
	}
	return v.UnknownID()
}

func (v *Vocabulary) Contains(label string) bool {
	_, ok := v.ids[label]
	return ok
}

// Name is the inverse of ID. Ids outside the vocabulary yield UnknownLabel.
func (v *Vocabulary) Name(id int) string {
	if id < 0 || id >= len(v.labels) {
		return UnknownLabel
	}
	return v.labels[id]
}

func (v *Vocabulary) Labels() []string { return slices.Clone(v.labels) }
