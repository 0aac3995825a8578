// SPDX-License-Identifier: EPL-2.0

package assetgen

import (
	"math"
	"testing"

	"github.com/ik5/assetgen/internal/audiotest"
)

func TestPrepareMono16_StereoDownsample(t *testing.T) {
	t.Parallel()

	// One second of stereo at 16kHz, constant 0.5 on both channels.
	src := audiotest.NewConstantSource(16000, 2, 16000, 0.5)

	pcm, rate, err := PrepareMono16(src, 8000, 4096)
	if err != nil {
		t.Fatalf("PrepareMono16() error = %v", err)
	}

	if rate != 8000 {
		t.Errorf("rate = %d, want 8000", rate)
	}

	// Halving the rate should roughly halve the frame count.
	if len(pcm) < 8000-16 || len(pcm) > 8000+16 {
		t.Errorf("sample count = %d, want ≈8000", len(pcm))
	}

	// Constant input survives resampling and mixing; skip the low-pass
	// warm-up at the head.
	want := int16(math.Round(0.5 * 32767))
	for i, v := range pcm[16:] {
		diff := int32(v) - int32(want)
		if diff < -330 || diff > 330 { // 1% of full scale
			t.Fatalf("sample[%d] = %d, want ≈%d", i+16, v, want)
		}
	}
}

func TestPrepareMono16_MonoSameRate(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(8000, 1, 2000, 440)

	pcm, rate, err := PrepareMono16(src, 8000, 512)
	if err != nil {
		t.Fatalf("PrepareMono16() error = %v", err)
	}

	if rate != 8000 {
		t.Errorf("rate = %d, want 8000", rate)
	}
	if len(pcm) < 2000-8 || len(pcm) > 2000+8 {
		t.Errorf("sample count = %d, want ≈2000", len(pcm))
	}

	for i, v := range pcm {
		if v < -32767 || v > 32767 {
			t.Fatalf("sample[%d] = %d, outside int16 range", i, v)
		}
	}
}

func TestPrepareMono16_EmptySource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 0)

	pcm, rate, err := PrepareMono16(src, 44100, 1024)
	if err != nil {
		t.Fatalf("PrepareMono16() error = %v", err)
	}
	if rate != 44100 {
		t.Errorf("rate = %d, want 44100", rate)
	}
	if len(pcm) != 0 {
		t.Errorf("sample count = %d, want 0", len(pcm))
	}
}
