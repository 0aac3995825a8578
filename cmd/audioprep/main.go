// SPDX-License-Identifier: EPL-2.0

// audioprep normalizes an audio asset into a cue-ready WAV: mono, 16-bit
// PCM, at the requested sample rate.
//
// Usage: audioprep <input.{wav|mp3|ogg|aiff}> <output.wav> [rate]
//
// The input format is picked by file extension; the default output rate
// is 44100 Hz.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ik5/assetgen"
	"github.com/ik5/assetgen/audio"
	"github.com/ik5/assetgen/formats/aiff"
	"github.com/ik5/assetgen/formats/mp3"
	"github.com/ik5/assetgen/formats/vorbis"
	"github.com/ik5/assetgen/formats/wav"
)

const defaultRate = 44100

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "audioprep:", err)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: audioprep <input.{wav|mp3|ogg|aiff}> <output.wav> [rate]")
		os.Exit(1)
	}
	inPath, outPath := os.Args[1], os.Args[2]

	rate := defaultRate
	if len(os.Args) > 3 {
		r, err := strconv.Atoi(os.Args[3])
		if err != nil || r <= 0 {
			fatal(fmt.Errorf("invalid rate %q", os.Args[3]))
		}
		rate = r
	}

	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	ext := strings.TrimPrefix(filepath.Ext(inPath), ".")
	dec, ok := reg.Get(ext)
	if !ok {
		fatal(fmt.Errorf("unsupported format %q", ext))
	}

	in, err := os.Open(inPath)
	if err != nil {
		fatal(err)
	}
	defer in.Close()

	src, err := dec.Decode(in)
	if err != nil {
		fatal(err)
	}
	defer src.Close()

	pcm, outRate, err := assetgen.PrepareMono16(src, rate, 4096)
	if err != nil {
		fatal(err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		fatal(err)
	}

	if err := wav.Encode(out, outRate, pcm); err != nil {
		out.Close()
		fatal(err)
	}
	if err := out.Close(); err != nil {
		fatal(err)
	}

	fmt.Printf("Wrote %s (%d samples @ %dHz mono)\n", outPath, len(pcm), outRate)
}
