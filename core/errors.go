package core

import (
	"errors"
)

var (
	// ErrNotSupported is returned by operations that are permanently
	// unsupported for a given type, such as setting the rotation of a
	// 2D affine matrix in place.
	ErrNotSupported = errors.New("operation not supported")
	// ErrUnknownOrder is returned when a transform carries an order value
	// outside the six known translate/rotate/scale permutations.
	ErrUnknownOrder = errors.New("unknown transform order")
	// ErrMissingAspect is returned when a 3D camera is asked for a
	// view-projection without an aspect ratio set.
	ErrMissingAspect = errors.New("camera aspect ratio not set")
	// ErrMissingViewport is returned when a 2D camera has a zero
	// width or height.
	ErrMissingViewport = errors.New("camera viewport not set")
	ErrUnknown         = errors.New("unknown")
)
