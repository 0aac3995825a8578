// SPDX-License-Identifier: EPL-2.0

package assetgen

import (
	"fmt"
	"io"

	"github.com/ik5/assetgen/audio"
	"github.com/ik5/assetgen/utils"
)

// PrepareMono16 converts src into cue-ready PCM: it resamples to
// targetRate, mixes down to mono, and collects every sample as signed
// 16-bit values. bufferSize controls how many float32 samples are pulled
// from the pipeline per read (4096 is a reasonable default).
//
// The returned rate always equals targetRate; it is carried so the result
// can be passed to an encoder without consulting the source again.
func PrepareMono16(src audio.Source, targetRate, bufferSize int) ([]int16, int, error) {
	mono := audio.NewMonoMixer(audio.NewResampler(src, targetRate))

	// Most assets are short; a seconds-worth of headroom avoids the first
	// few growth copies without committing much memory.
	pcm := make([]int16, 0, targetRate)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for i := range n {
			pcm = append(pcm, utils.Float32ToInt16(buf[i]))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
	}

	return pcm, targetRate, nil
}
