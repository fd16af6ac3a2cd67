// SPDX-License-Identifier: EPL-2.0

package kwsdata_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/kwsdata"
	"github.com/ik5/kwsdata/audio"
	"github.com/ik5/kwsdata/formats/wav"
)

// A half second recording at 8 kHz becomes one second at 16 kHz, with the
// second half zero-padded.
func ExampleDecodeClip() {
	rec := make([]float32, 4000)
	for i := range rec {
		rec[i] = 0.25
	}

	file := new(bytes.Buffer)
	if err := wav.WriteMono(file, 8000, rec); err != nil {
		fmt.Println(err)
		return
	}

	clip, err := kwsdata.DecodeClip(wav.Decoder{}, file, kwsdata.ClipSpec{
		SampleRate: 16000,
		Length:     16000,
		Quality:    audio.QualityFast,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(len(clip), clip[15999])
	// Output: 16000 0
}
