// SPDX-License-Identifier: EPL-2.0

// iconrender converts the repository's SVG icon sources to PNG.
//
// It takes no arguments: the sources are icon-<size>.svg files under
// public/icons next to the binary's parent directory, rendered at sizes
// 16, 32, 48 and 128. Missing sources and per-size render failures are
// reported and skipped; only an unusable rasterizer aborts the run.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/assetgen/icons"
)

// assetDir resolves the icon directory relative to the binary, mirroring
// the repository layout: <root>/public/icons with the tools in <root>/bin.
func assetDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}

	return filepath.Join(filepath.Dir(exe), "..", "public", "icons"), nil
}

func main() {
	r, err := icons.NewRenderer()
	if err != nil {
		fmt.Fprintln(os.Stderr, "iconrender:", err)
		os.Exit(1)
	}

	dir, err := assetDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "iconrender:", err)
		os.Exit(1)
	}

	// Per-size failures are reported but never change the exit code.
	for _, res := range (icons.Batch{Dir: dir}).Run(r) {
		if res.Err != nil {
			fmt.Printf("icon-%d: %v\n", res.Size, res.Err)
			continue
		}

		fmt.Println("Generated", res.Path)
	}

	fmt.Println("PNG conversion complete")
}
