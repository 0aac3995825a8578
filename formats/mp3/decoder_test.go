// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
)

// fakeMP3 feeds canned little-endian int16 PCM bytes like go-mp3 would.
type fakeMP3 struct {
	r    *bytes.Reader
	rate int
}

func newFakeMP3(rate int, pcm []int16) *fakeMP3 {
	buf := make([]byte, len(pcm)*2)
	for i, v := range pcm {
		binary.LittleEndian.PutUint16(buf[2*i:2*i+2], uint16(v))
	}
	return &fakeMP3{r: bytes.NewReader(buf), rate: rate}
}

func (f *fakeMP3) Read(p []byte) (int, error) { return f.r.Read(p) }
func (f *fakeMP3) SampleRate() int            { return f.rate }

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	pcm := []int16{0, 16384, -16384, 32767, -32768, 100}
	src := &source{
		dec:        newFakeMP3(44100, pcm),
		sampleRate: 44100,
		buf:        make([]byte, 64),
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}

	dst := make([]float32, len(pcm))
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(pcm) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(pcm))
	}

	for i, v := range pcm {
		want := float32(v) / 32768.0
		if diff := math.Abs(float64(dst[i] - want)); diff > 1e-6 {
			t.Errorf("sample[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestSource_Exhaustion(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        newFakeMP3(44100, []int16{1, 2}),
		sampleRate: 44100,
	}

	dst := make([]float32, 8)
	n, _ := src.ReadSamples(dst)
	if n != 2 {
		t.Fatalf("first read n = %d, want 2", n)
	}

	n, err := src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("read past end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_BufferGrowth(t *testing.T) {
	t.Parallel()

	pcm := make([]int16, 4096)
	for i := range pcm {
		pcm[i] = int16(i)
	}

	src := &source{
		dec:        newFakeMP3(48000, pcm),
		sampleRate: 48000,
		buf:        make([]byte, 16), // deliberately tiny
	}

	dst := make([]float32, 4096)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4096 {
		t.Errorf("ReadSamples() n = %d, want 4096", n)
	}
}

func TestDecode_InvalidData(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("not an mpeg frame")))
	if err == nil {
		t.Error("Decode() error = nil, want parse failure")
	}
}
