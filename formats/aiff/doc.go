// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio into the audio.Source interface.
//
// Decoding is backed by github.com/go-audio/aiff and accepts 16-bit PCM
// files only:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	source, err := decoder.Decode(file)
//
// Inputs that are not io.ReadSeeker are buffered in memory first.
package aiff
