// SPDX-License-Identifier: EPL-2.0

// cuegen writes the voice-stop audio cue as a WAV file.
//
// Usage: cuegen [output.wav]
//
// The only argument is an optional output path; the default is
// voice-stop-cue.wav in the current directory.
package main

import (
	"fmt"
	"os"

	"github.com/ik5/assetgen/cue"
)

const defaultOutput = "voice-stop-cue.wav"

func main() {
	out := defaultOutput
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	spec := cue.DefaultSpec()
	if err := spec.WriteFile(out); err != nil {
		fmt.Fprintln(os.Stderr, "cuegen:", err)
		os.Exit(1)
	}

	fmt.Println("Generated", out)
	fmt.Println(spec.Summary())
}
