// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/assetgen/internal/audiotest"
)

func TestResampler_UpsampleConstant(t *testing.T) {
	t.Parallel()

	const total = 1000

	src := audiotest.NewConstantSource(8000, 1, total, 0.5)
	res := NewResampler(src, 16000)

	if res.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", res.SampleRate())
	}

	got := drain(t, res, 512)

	// Doubling the rate should roughly double the sample count. The
	// four-frame window trims a few samples at the edges.
	want := total * 2
	if len(got) < want-8 || len(got) > want+8 {
		t.Errorf("sample count = %d, want ≈%d", len(got), want)
	}

	// Cubic interpolation of a constant is the constant.
	for i, v := range got {
		if diff := math.Abs(float64(v) - 0.5); diff > 1e-5 {
			t.Fatalf("sample[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestResampler_DownsampleCount(t *testing.T) {
	t.Parallel()

	const total = 4000

	src := audiotest.NewSineSource(16000, 1, total, 440)
	res := NewResampler(src, 8000)

	got := drain(t, res, 512)

	want := total / 2
	if len(got) < want-8 || len(got) > want+8 {
		t.Errorf("sample count = %d, want ≈%d", len(got), want)
	}

	// Output stays within normalized range.
	for i, v := range got {
		if v < -1.0 || v > 1.0 {
			t.Fatalf("sample[%d] = %v, outside [-1, 1]", i, v)
		}
	}
}

func TestResampler_PreservesChannels(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 2, 500, 0.25)
	res := NewResampler(src, 16000)

	if res.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", res.Channels())
	}

	got := drain(t, res, 256)
	if len(got)%2 != 0 {
		t.Errorf("sample count %d not a multiple of channel count", len(got))
	}

	for i, v := range got {
		if diff := math.Abs(float64(v) - 0.25); diff > 1e-5 {
			t.Fatalf("sample[%d] = %v, want 0.25", i, v)
		}
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 100)
	res := NewResampler(src, 16000)

	_, err := res.ReadSamples(make([]float32, 3))
	if !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 0)
	res := NewResampler(src, 16000)

	n, err := res.ReadSamples(make([]float32, 64))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func BenchmarkResampler_Downsample(b *testing.B) {
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		src := audiotest.NewSineSource(44100, 1, 44100, 440)
		res := NewResampler(src, 8000)
		for {
			_, err := res.ReadSamples(buf)
			if err == io.EOF {
				break
			}
		}
	}
}
