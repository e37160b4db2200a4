package analysis

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the parent of every argument validation error in
	// this package.
	ErrInvalidArgument = errors.New("analysis: invalid argument")

	// ErrInvalidSlope is returned when a slope filter is not one of
	// SlopeAny, SlopeAscending or SlopeDescending.
	ErrInvalidSlope = fmt.Errorf("%w: slope must be any, ascending or descending", ErrInvalidArgument)

	// ErrNoZeroCrossing is returned when a buffer holds no crossing that
	// matches the requested slope.
	ErrNoZeroCrossing = errors.New("analysis: no zero crossing found")
)
