package render

import "errors"

var (
	ErrUnknownFormat = errors.New("unknown report format")
	ErrRenderFailure = errors.New("report could not be rendered")
)
