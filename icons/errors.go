package icons

import "errors"

var (
	ErrRendererUnavailable = errors.New("svg rasterizer unavailable")
)
