// SPDX-License-Identifier: EPL-2.0

package icons

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Renderer rasterizes a vector source file into a raster image of the
// exact requested pixel dimensions.
type Renderer interface {
	Render(svgPath, pngPath string, width, height int) error
}

// SVGRenderer renders SVG files to PNG using oksvg and rasterx.
type SVGRenderer struct{}

// probeSVG is rasterized in memory at construction time, so a broken
// rasterization stack fails before any output file is touched.
const probeSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="2" height="2"><rect width="2" height="2" fill="#000"/></svg>`

// NewRenderer returns an SVG renderer, verifying first that the
// rasterization capability actually works.
func NewRenderer() (*SVGRenderer, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(probeSVG))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRendererUnavailable, err)
	}

	icon.SetTarget(0, 0, 2, 2)
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	icon.Draw(rasterx.NewDasher(2, 2, rasterx.NewScannerGV(2, 2, img, img.Bounds())), 1.0)

	return &SVGRenderer{}, nil
}

func (SVGRenderer) Render(svgPath, pngPath string, width, height int) error {
	f, err := os.Open(svgPath)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", svgPath, err)
	}

	icon.SetTarget(0, 0, float64(width), float64(height))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	dasher := rasterx.NewDasher(width, height,
		rasterx.NewScannerGV(width, height, img, img.Bounds()))
	icon.Draw(dasher, 1.0)

	out, err := os.Create(pngPath)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := png.Encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("encoding %s: %w", pngPath, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
