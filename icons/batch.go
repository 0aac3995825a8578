// SPDX-License-Identifier: EPL-2.0

package icons

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sizes are the square pixel dimensions the icon batch produces.
var Sizes = []int{16, 32, 48, 128}

// Batch converts icon-<size>.svg files in Dir to icon-<size>.png at
// matching dimensions. A nil Sizes slice uses the package default.
type Batch struct {
	Dir   string
	Sizes []int
}

// Result records the outcome for one size. Err wraps fs.ErrNotExist when
// the source SVG is missing.
type Result struct {
	Size int
	Path string
	Err  error
}

// Run renders every size, continuing past per-size failures. Each size is
// independent; there is no rollback or cleanup of earlier outputs.
func (b Batch) Run(r Renderer) []Result {
	sizes := b.Sizes
	if len(sizes) == 0 {
		sizes = Sizes
	}

	results := make([]Result, 0, len(sizes))

	for _, size := range sizes {
		svg := filepath.Join(b.Dir, fmt.Sprintf("icon-%d.svg", size))
		out := filepath.Join(b.Dir, fmt.Sprintf("icon-%d.png", size))

		res := Result{Size: size, Path: out}

		if _, err := os.Stat(svg); err != nil {
			res.Err = fmt.Errorf("%w", err)
		} else {
			res.Err = r.Render(svg, out, size, size)
		}

		results = append(results, res)
	}

	return results
}
