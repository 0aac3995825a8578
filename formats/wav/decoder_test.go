// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
)

func TestDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	original := []int16{0, 100, -100, 32767, -32768, 12345, -6789}
	buf := new(bytes.Buffer)
	if err := Encode(buf, 16000, original); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	dst := make([]float32, len(original))
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(original) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(original))
	}

	for i, want := range original {
		expected := float32(want) / 32768.0
		if diff := math.Abs(float64(dst[i] - expected)); diff > 0.0001 {
			t.Errorf("sample[%d] = %v, want ≈%v", i, dst[i], expected)
		}
	}
}

func TestDecode_NonSeekableReader(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := Encode(buf, 8000, []int16{1000, -1000, 2000}); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	// bytes.Buffer is not an io.ReadSeeker, forcing the in-memory path.
	src, err := Decoder{}.Decode(buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	dst := make([]float32, 3)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 3 {
		t.Errorf("ReadSamples() n = %d, want 3", n)
	}
}

func TestDecode_NotWav(t *testing.T) {
	t.Parallel()

	junk := bytes.NewReader([]byte("this is definitely not a RIFF container, not even close"))

	_, err := Decoder{}.Decode(junk)
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

// fakeWavReader drives the source conversion path without a real file.
type fakeWavReader struct {
	data []int
	pos  int
}

func (f *fakeWavReader) Format() *goaudio.Format {
	return &goaudio.Format{NumChannels: 1, SampleRate: 8000}
}

func (f *fakeWavReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	n := copy(buf.Data, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestSource_Conversion(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeWavReader{data: []int{0, 16384, -16384, 32767, -32768}},
		sampleRate: 8000,
		channels:   1,
	}

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 5 {
		t.Fatalf("ReadSamples() n = %d, want 5", n)
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0, -1.0}
	for i := range want {
		if diff := math.Abs(float64(dst[i] - want[i])); diff > 1e-6 {
			t.Errorf("sample[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSource_EOFAfterExhaustion(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeWavReader{data: []int{1, 2, 3}},
		sampleRate: 8000,
		channels:   1,
	}

	dst := make([]float32, 8)
	if _, err := src.ReadSamples(dst); err != io.EOF {
		t.Fatalf("first read error = %v, want io.EOF (short read)", err)
	}

	n, err := src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("read past end = (%d, %v), want (0, io.EOF)", n, err)
	}
}
