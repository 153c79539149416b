package assets

import "errors"

// Sentinel kinds for asset errors.
var (
	ErrFetch  = errors.New("asset fetch failed")
	ErrDecode = errors.New("asset decode failed")
)
