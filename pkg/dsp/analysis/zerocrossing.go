package analysis

import (
	"fmt"
	"math"
)

// Slope filters zero crossings by direction.
type Slope int

const (
	// SlopeAny accepts crossings in either direction
	SlopeAny Slope = iota
	// SlopeAscending accepts crossings going from negative towards positive
	SlopeAscending
	// SlopeDescending accepts crossings going from positive towards negative
	SlopeDescending
)

// String returns the string representation of a Slope
func (s Slope) String() string {
	switch s {
	case SlopeAny:
		return "any"
	case SlopeAscending:
		return "ascending"
	case SlopeDescending:
		return "descending"
	default:
		return fmt.Sprintf("Slope(%d)", int(s))
	}
}

// ParseSlope maps "any", "ascending"/"up" and "descending"/"down" to a Slope.
func ParseSlope(name string) (Slope, error) {
	switch name {
	case "any", "":
		return SlopeAny, nil
	case "ascending", "up":
		return SlopeAscending, nil
	case "descending", "down":
		return SlopeDescending, nil
	default:
		return SlopeAny, fmt.Errorf("%w: %q", ErrInvalidSlope, name)
	}
}

// Valid reports whether s is one of the defined slopes.
func (s Slope) Valid() bool {
	return s == SlopeAny || s == SlopeAscending || s == SlopeDescending
}

// accepts reports whether a sign difference passes the filter.
func (s Slope) accepts(diff int) bool {
	switch s {
	case SlopeAscending:
		return diff > 0
	case SlopeDescending:
		return diff < 0
	default:
		return diff != 0
	}
}

// sign returns -1, 0 or +1.
func sign(x float32) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// ZeroCrossings returns, in ascending order, every index k where the sign of
// buf[k] differs from the sign of buf[k+1] and the direction matches slope.
//
// A sign step of one means one of the two samples is exactly zero. Only the
// zero sample itself is reported for such a pair, so a signal passing through
// an exact zero yields a single index. Pairs involving NaN are skipped.
func ZeroCrossings(buf []float32, slope Slope) ([]int, error) {
	if !slope.Valid() {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSlope, slope)
	}

	crossings := []int{}
	for k := 0; k+1 < len(buf); k++ {
		if math.IsNaN(float64(buf[k])) || math.IsNaN(float64(buf[k+1])) {
			continue
		}
		diff := sign(buf[k+1]) - sign(buf[k])
		if !slope.accepts(diff) {
			continue
		}
		// the neighbor of an exact zero
		if (diff == 1 || diff == -1) && buf[k] != 0 {
			continue
		}
		crossings = append(crossings, k)
	}
	return crossings, nil
}

// NearestZeroCrossing returns the zero crossing closest to index i. When two
// crossings are equally close the smaller index wins. i may lie outside the
// buffer.
func NearestZeroCrossing(buf []float32, i int, slope Slope) (int, error) {
	crossings, err := ZeroCrossings(buf, slope)
	if err != nil {
		return 0, err
	}
	if len(crossings) == 0 {
		return 0, fmt.Errorf("%w: slope %v in %d samples", ErrNoZeroCrossing, slope, len(buf))
	}

	best := crossings[0]
	bestDist := distance(best, i)
	for _, k := range crossings[1:] {
		if d := distance(k, i); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best, nil
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
