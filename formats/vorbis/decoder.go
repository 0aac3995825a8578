// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/assetgen/audio"
)

// oggReader is the part of oggvorbis.Reader the source needs, split out so
// tests can substitute a fake.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec oggReader
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// oggvorbis counts in frames; request whole frames only.
	channels := s.dec.Channels()
	values := (len(dst) / channels) * channels
	if values == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	// Read returns the number of float32 values decoded, always a whole
	// number of frames.
	n, err := s.dec.Read(dst[:values])
	if n == 0 && err != nil {
		return 0, err
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{dec: dec}, nil
}
