package universe

import "errors"

// ErrInvalidDimensions is returned by New when the requested width or height
// is not a positive integer.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// ErrIndexOutOfBounds is returned by ToggleCell and Set when the requested
// coordinates fall outside the grid.
var ErrIndexOutOfBounds = errors.New("cell index out of bounds")
