// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	headerSize = 44
	// Samples are converted to bytes through a fixed-size scratch buffer
	// so large clips never allocate proportionally to their length.
	chunkSamples = 8192
)

// Encode writes samples as a canonical mono 16-bit PCM WAV at sampleRate:
// a 12-byte RIFF header, a 16-byte "fmt " chunk (PCM, one channel), and a
// "data" chunk holding the little-endian samples. The output is exactly
// 44 + 2*len(samples) bytes.
func Encode(w io.Writer, sampleRate int, samples []int16) error {
	dataSize := uint32(len(samples) * 2)

	var header [headerSize]byte
	le := binary.LittleEndian

	copy(header[0:4], "RIFF")
	le.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	le.PutUint32(header[16:20], 16)                  // fmt chunk size for PCM
	le.PutUint16(header[20:22], 1)                   // audio format: linear PCM
	le.PutUint16(header[22:24], 1)                   // channels: mono
	le.PutUint32(header[24:28], uint32(sampleRate))  // sample rate
	le.PutUint32(header[28:32], uint32(sampleRate)*2) // byte rate
	le.PutUint16(header[32:34], 2)                   // block align
	le.PutUint16(header[34:36], 16)                  // bits per sample

	copy(header[36:40], "data")
	le.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("%w", err)
	}

	var scratch [chunkSamples * 2]byte
	for len(samples) > 0 {
		n := min(len(samples), chunkSamples)
		for i, s := range samples[:n] {
			le.PutUint16(scratch[2*i:2*i+2], uint16(s))
		}

		if _, err := w.Write(scratch[:n*2]); err != nil {
			return fmt.Errorf("%w", err)
		}
		samples = samples[n:]
	}

	return nil
}
