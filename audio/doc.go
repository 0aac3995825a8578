// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// The building blocks are:
//   - Source interface for pull-based audio input
//   - Sweep for synthesizing a linearly swept sine tone
//   - FadeOut and Gain for amplitude shaping
//   - Resampler for sample-rate conversion
//   - MonoMixer for channel mixing
//   - Registry for decoder registration by format key
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All decoders, generators and processing stages implement this interface,
// allowing them to be chained into pipelines.
//
// # Tone Synthesis
//
// A short audio cue is a pipeline of a Sweep with amplitude stages on top:
//
//	sweep, _ := audio.NewSweep(44100, 11025, 800, 400)
//	fade, _ := audio.NewFadeOut(sweep, sweep.Len())
//	gain, _ := audio.NewGain(fade, 0.3)
//
//	buf := make([]float32, 4096)
//	n, err := gain.ReadSamples(buf)
//
// The sweep interpolates frequency linearly from start to end; the fade
// applies a quadratic envelope that is 1.0 at the first sample and reaches
// zero at the end of the stream.
//
// # Resampling and Mixing
//
// The Resampler changes the sample rate using cubic interpolation, and the
// MonoMixer averages multi-channel audio down to one channel:
//
//	res := audio.NewResampler(source, 44100)
//	mono := audio.NewMonoMixer(res)
//
// # Sample Format
//
// Samples are float32 in the range [-1.0, 1.0]:
//   - 0.0 is silence
//   - ±1.0 is maximum amplitude
//
// The normalized format keeps intermediate processing independent of bit
// depth; conversion to 16-bit PCM happens once, at collection time.
//
// # Error Handling
//
// Processing functions return io.EOF when no more data is available:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
