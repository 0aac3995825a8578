// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio into the audio.Source interface.
//
// Decoding is backed by github.com/hajimehoshi/go-mp3, which always emits
// stereo 16-bit PCM regardless of the source channel layout:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//
// Samples are delivered as interleaved float32 values in [-1.0, 1.0].
package mp3
