// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Gain scales every sample from the wrapped source by a constant factor
// in (0, 1]. Used to set the peak amplitude of synthesized tones.
type Gain struct {
	src    Source
	factor float32
}

func NewGain(src Source, factor float64) (*Gain, error) {
	if factor <= 0 || factor > 1 {
		return nil, ErrGainOutOfRange
	}

	return &Gain{src: src, factor: float32(factor)}, nil
}

func (g *Gain) SampleRate() int { return g.src.SampleRate() }
func (g *Gain) Channels() int   { return g.src.Channels() }
func (g *Gain) BufSize() int    { return g.src.BufSize() }

func (g *Gain) Close() error {
	if err := g.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (g *Gain) ReadSamples(dst []float32) (int, error) {
	n, err := g.src.ReadSamples(dst)

	for i := range n {
		dst[i] *= g.factor
	}

	return n, err
}
