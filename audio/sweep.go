// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
)

// Sweep is a finite mono Source producing a sine tone whose frequency moves
// linearly from startHz to endHz over the life of the stream. The
// instantaneous frequency term equals startHz at the first sample and
// approaches endHz as the stream ends.
type Sweep struct {
	rate    int
	total   int
	startHz float64
	endHz   float64
	pos     int
}

// NewSweep creates a sweep of total samples at rate Hz.
func NewSweep(rate, total int, startHz, endHz float64) (*Sweep, error) {
	if rate <= 0 {
		return nil, ErrNonPositiveRate
	}
	if total <= 0 {
		return nil, ErrNonPositiveCount
	}

	return &Sweep{
		rate:    rate,
		total:   total,
		startHz: startHz,
		endHz:   endHz,
	}, nil
}

func (s *Sweep) SampleRate() int { return s.rate }
func (s *Sweep) Channels() int   { return 1 }
func (s *Sweep) BufSize() int    { return 4096 }
func (s *Sweep) Close() error    { return nil }

// Len returns the total number of samples the sweep produces.
func (s *Sweep) Len() int { return s.total }

func (s *Sweep) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.total {
		return 0, io.EOF
	}

	n := len(dst)
	if remaining := s.total - s.pos; n > remaining {
		n = remaining
	}

	for i := range n {
		idx := s.pos + i
		t := float64(idx) / float64(s.rate)
		progress := float64(idx) / float64(s.total)
		freq := s.startHz + (s.endHz-s.startHz)*progress

		dst[i] = float32(math.Sin(2 * math.Pi * freq * t))
	}

	s.pos += n
	if s.pos >= s.total {
		return n, io.EOF
	}

	return n, nil
}
