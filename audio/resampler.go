// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/assetgen/utils"
)

// Resampler converts the wrapped source to a target sample rate using
// Catmull-Rom cubic interpolation over a sliding four-frame window.
// Channel count is preserved; a one-pole low-pass filter is applied when
// downsampling to limit aliasing.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames advanced per output frame
	channels int

	// win[0] = t-1, win[1] = t0, win[2] = t+1, win[3] = t+2;
	// interpolation happens between win[1] and win[2].
	win    [4][]float32
	have   [4]bool
	primed bool

	pos    float64 // fractional position between win[1] and win[2]
	srcBuf []float32
	eof    bool

	lowpass  bool
	alpha    float32
	filtered []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		srcBuf:   make([]float32, channels),
		lowpass:  step > 1.0,
		alpha:    0.5,
		filtered: make([]float32, channels),
	}

	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// readFrame reads exactly one source frame into dst. When filter is set and
// the resampler is downsampling, the frame passes through the one-pole
// low-pass; priming reads skip it so the filter state can be seeded first.
func (r *Resampler) readFrame(dst []float32, filter bool) (bool, error) {
	n, err := r.src.ReadSamples(r.srcBuf[:r.channels])
	if n > 0 {
		copy(dst, r.srcBuf[:n])

		if filter && r.lowpass {
			for c := range r.channels {
				// y[n] = alpha*x[n] + (1-alpha)*y[n-1]
				dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.filtered[c]
				r.filtered[c] = dst[c]
			}
		}
	}

	if err == io.EOF {
		r.eof = true
		return n > 0, nil
	}
	if err != nil {
		return n > 0, fmt.Errorf("%w", err)
	}

	return n > 0, nil
}

// prime fills the initial window, duplicating the last valid frame into any
// slot the source could not fill.
func (r *Resampler) prime() error {
	for i := range 4 {
		ok, err := r.readFrame(r.win[i], false)
		if err != nil {
			return err
		}
		if ok {
			r.have[i] = true
			if i == 0 && r.lowpass {
				copy(r.filtered, r.win[0])
			}
			continue
		}

		if i == 0 {
			return io.EOF
		}
		for j := i; j < 4; j++ {
			copy(r.win[j], r.win[i-1])
			r.have[j] = true
		}
		break
	}

	r.primed = true
	return nil
}

// shift advances the window by one source frame.
func (r *Resampler) shift() error {
	if r.eof {
		return io.EOF
	}

	copy(r.win[0], r.win[1])
	copy(r.win[1], r.win[2])
	copy(r.win[2], r.win[3])
	r.have[0], r.have[1], r.have[2] = r.have[1], r.have[2], r.have[3]

	ok, err := r.readFrame(r.win[3], true)
	if err != nil {
		return err
	}
	r.have[3] = ok

	if r.eof && !ok && !r.have[2] {
		return io.EOF
	}

	return nil
}

// ReadSamples produces interleaved samples at the target rate.
// len(dst) must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.shift(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.have[1] || !r.have[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		for c := range r.channels {
			y0 := r.win[1][c]
			if r.have[0] {
				y0 = r.win[0][c]
			}
			y3 := r.win[2][c]
			if r.have[3] {
				y3 = r.win[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(
				y0, r.win[1][c], r.win[2][c], y3, x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
