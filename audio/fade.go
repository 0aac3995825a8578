// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// FadeOut wraps a finite source of known length and applies a quadratic
// fade-out envelope: sample i is scaled by (1-progress)^2 where
// progress = i/total. The factor is exactly 1.0 at the first sample and
// reaches 0 at the sample past the end.
type FadeOut struct {
	src   Source
	total int
	pos   int
}

// NewFadeOut wraps src, which must deliver exactly total samples.
func NewFadeOut(src Source, total int) (*FadeOut, error) {
	if total <= 0 {
		return nil, ErrNonPositiveCount
	}

	return &FadeOut{src: src, total: total}, nil
}

func (f *FadeOut) SampleRate() int { return f.src.SampleRate() }
func (f *FadeOut) Channels() int   { return f.src.Channels() }
func (f *FadeOut) BufSize() int    { return f.src.BufSize() }

func (f *FadeOut) Close() error {
	if err := f.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (f *FadeOut) ReadSamples(dst []float32) (int, error) {
	n, err := f.src.ReadSamples(dst)

	for i := range n {
		progress := float64(f.pos+i) / float64(f.total)
		env := (1 - progress) * (1 - progress)
		dst[i] *= float32(env)
	}
	f.pos += n

	return n, err
}
