// SPDX-License-Identifier: EPL-2.0

package cue

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/assetgen/audio"
	"github.com/ik5/assetgen/formats/wav"
	"github.com/ik5/assetgen/utils"
)

// Defaults of the voice-stop cue: a quarter second descending from 800 Hz
// to 400 Hz at 30% of full scale.
const (
	DefaultDurationSec   = 0.25
	DefaultStartFreqHz   = 800.0
	DefaultEndFreqHz     = 400.0
	DefaultSampleRateHz  = 44100
	DefaultPeakAmplitude = 0.3
)

// Spec describes a swept-tone audio cue. The zero value is invalid; start
// from DefaultSpec and override fields as needed.
type Spec struct {
	DurationSec   float64 // total clip length, > 0
	StartFreqHz   float64 // sweep start frequency
	EndFreqHz     float64 // sweep end frequency
	SampleRateHz  int     // PCM sampling rate, > 0
	PeakAmplitude float64 // maximum amplitude as a fraction of full scale, (0, 1]
}

func DefaultSpec() Spec {
	return Spec{
		DurationSec:   DefaultDurationSec,
		StartFreqHz:   DefaultStartFreqHz,
		EndFreqHz:     DefaultEndFreqHz,
		SampleRateHz:  DefaultSampleRateHz,
		PeakAmplitude: DefaultPeakAmplitude,
	}
}

// Validate checks the spec before any sample generation happens.
func (s Spec) Validate() error {
	if s.DurationSec <= 0 {
		return ErrNonPositiveDuration
	}
	if s.SampleRateHz <= 0 {
		return ErrNonPositiveSampleRate
	}
	if s.PeakAmplitude <= 0 || s.PeakAmplitude > 1 {
		return ErrPeakOutOfRange
	}

	return nil
}

// SampleCount returns floor(rate * duration), the number of PCM samples
// the cue produces.
func (s Spec) SampleCount() int {
	return int(float64(s.SampleRateHz) * s.DurationSec)
}

// Synthesize generates the cue as 16-bit PCM. The pipeline is a linear
// frequency sweep with a quadratic fade-out and a constant gain on top;
// conversion to int16 clamps, so every sample is within range regardless
// of float rounding.
func (s Spec) Synthesize() ([]int16, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	total := s.SampleCount()

	sweep, err := audio.NewSweep(s.SampleRateHz, total, s.StartFreqHz, s.EndFreqHz)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	fade, err := audio.NewFadeOut(sweep, total)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	gain, err := audio.NewGain(fade, s.PeakAmplitude)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	pcm := make([]int16, 0, total)
	buf := make([]float32, 4096)

	for {
		n, err := gain.ReadSamples(buf)
		for i := range n {
			pcm = append(pcm, utils.Float32ToInt16(buf[i]))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return pcm, nil
}

// Encode synthesizes the cue and writes it to w as a canonical mono 16-bit
// PCM WAV stream.
func (s Spec) Encode(w io.Writer) error {
	pcm, err := s.Synthesize()
	if err != nil {
		return err
	}

	if err := wav.Encode(w, s.SampleRateHz, pcm); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteFile writes the cue to path, overwriting an existing file. The spec
// is validated before the file is touched, so an invalid spec never leaves
// an empty file behind.
func (s Spec) WriteFile(path string) error {
	if err := s.Validate(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := s.Encode(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Summary returns a human-readable description of the cue.
func (s Spec) Summary() string {
	return fmt.Sprintf(
		"  Duration: %gms\n  Frequency: %gHz -> %gHz\n  Sample rate: %dHz\n  Samples: %d",
		s.DurationSec*1000, s.StartFreqHz, s.EndFreqHz, s.SampleRateHz, s.SampleCount())
}
