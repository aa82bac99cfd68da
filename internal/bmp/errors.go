package bmp

import "errors"

var (
	// ErrOutOfBounds is returned when a header field or the pixel array
	// it describes lies (partly) outside the buffer.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrInvalidDimensions is returned when the header declares a
	// width that cannot describe a pixel array.
	ErrInvalidDimensions = errors.New("invalid dimensions")
)
