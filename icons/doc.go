// SPDX-License-Identifier: EPL-2.0

// Package icons batch-converts SVG icon sources to PNG raster images.
//
// The conventional layout is a directory of icon-<size>.svg files that are
// rendered to icon-<size>.png at <size>×<size> pixels:
//
//	r, err := icons.NewRenderer()
//	if err != nil {
//	    // rasterization capability unavailable, nothing was written
//	}
//
//	batch := icons.Batch{Dir: "public/icons"}
//	for _, res := range batch.Run(r) {
//	    if res.Err != nil {
//	        // missing source or render failure for this size; the
//	        // remaining sizes were still processed
//	    }
//	}
//
// Failures are strictly per-size: a missing icon-48.svg does not stop
// sizes 16, 32 and 128 from being produced. Only renderer construction is
// fatal, and it is checked before any file is touched.
//
// Rasterization is backed by github.com/srwiley/oksvg and
// github.com/srwiley/rasterx.
package icons
