// SPDX-License-Identifier: EPL-2.0

// Package cue synthesizes short swept-tone audio cues as WAV files.
//
// A cue is described by a Spec: clip duration, linear frequency sweep
// endpoints, sample rate and peak amplitude. Synthesis is deterministic;
// the same spec always produces byte-identical output.
//
// # Generating a Cue
//
//	spec := cue.DefaultSpec() // 250ms, 800Hz -> 400Hz, 44100Hz, 30% peak
//	err := spec.WriteFile("voice-stop-cue.wav")
//
// Per sample i of n at rate r, the waveform is
//
//	sin(2π · f(i/n) · i/r) · (1 - i/n)² · peak
//
// where f interpolates linearly between the sweep endpoints. The quadratic
// term fades the tone out to silence at the end of the clip.
//
// # Validation
//
// Spec.Validate rejects non-positive durations and sample rates and peak
// amplitudes outside (0, 1] before any samples are generated:
//
//	spec.DurationSec = 0
//	err := spec.WriteFile("out.wav") // cue.ErrNonPositiveDuration, no file written
package cue
