// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio into the audio.Source interface.
//
// Decoding is backed by github.com/jfreymuth/oggvorbis, which already
// produces normalized float32 samples:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//
// Reads always deliver whole frames; a destination buffer smaller than one
// frame is rejected with audio.ErrInvalidDstSize.
package vorbis
