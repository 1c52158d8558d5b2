package descriptor

import "errors"

var (
	// ErrEmptyRegion is returned when a mask contains no foreground
	// pixels, or when contour extraction finds no component to
	// measure. Every method reports this condition the same way
	// instead of dividing by zero.
	ErrEmptyRegion = errors.New("no foreground region in mask")

	// ErrInvalidMethod is returned when a method name or code does not
	// match any known rectangularity method.
	ErrInvalidMethod = errors.New("unknown rectangularity method")
)
