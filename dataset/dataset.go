// SPDX-License-Identifier: EPL-2.0

package dataset

// Tensor is a dense row-major float32 array.
type Tensor struct {
	Data  []float32
	Shape []int
}

// Sample is one training example. Label always has length 1 so batches
// stack to [batch, 1].
type Sample struct {
	Input Tensor
	Label []int64
}

// LabelID returns the single label id carried by the sample.
func (s Sample) LabelID() int {
	if len(s.Label) == 0 {
		return -1
	}
	return int(s.Label[0])
}

// Dataset is an indexed, sized collection of samples. Implementations are
// immutable after construction and safe for concurrent Get calls.
type Dataset interface {
	Len() int
	Get(index int) (Sample, error)
}

var (
	_ Dataset = (*AudioSource)(nil)
	_ Dataset = (*FeatureSource)(nil)
)

func newSample(data []float32, shape []int, label int) Sample {
	return Sample{
		Input: Tensor{Data: data, Shape: shape},
		Label: []int64{int64(label)},
	}
}
