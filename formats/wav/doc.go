// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio encoding and decoding.
//
// The encoder writes canonical mono 16-bit PCM files; the decoder wraps
// github.com/go-audio/wav and accepts any 16-bit PCM WAV.
//
// # Writing WAV Files
//
// Encode writes a complete file with a fixed 44-byte header:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.Encode(file, 44100, samples)
//
// The output layout is contractual: RIFF size 36+2n, "fmt " chunk of size
// 16 (PCM, mono, 16 bits), "data" chunk of size 2n, little-endian samples.
// A zero-length sample slice produces a valid 44-byte header-only file.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//
// The decoder returns an audio.Source delivering float32 samples in
// [-1.0, 1.0]. Inputs that are not io.ReadSeeker are buffered in memory.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: compressed or non-16-bit input
//   - ErrUnsupportedWavLayout: valid RIFF but unusable structure
package wav
