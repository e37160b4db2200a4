package dsp

import "math"

// Float is the set of sample types the buffer helpers operate on.
type Float interface {
	~float32 | ~float64
}

// Range is a closed numeric interval [Lo, Hi].
type Range struct {
	Lo float64
	Hi float64
}

// Common ranges
var (
	UnitRange    = Range{Lo: 0, Hi: 1}
	BipolarRange = Range{Lo: -1, Hi: 1}
)

// Symmetric returns the interval [-amplitude, amplitude].
func Symmetric(amplitude float64) Range {
	return Range{Lo: -amplitude, Hi: amplitude}
}

// Span returns Hi - Lo.
func (r Range) Span() float64 {
	return r.Hi - r.Lo
}

// Rescale scales buf by the ratio of the two spans and shifts it by the
// difference of their lower bounds, x*k - (from.Lo - to.Lo), returning the
// result in a new buffer. This lands on [to.Lo, to.Hi] when from.Lo is 0 or
// the spans are equal. from must not be degenerate.
func Rescale[T Float](buf []T, from, to Range) []T {
	k := to.Span() / from.Span()
	shift := from.Lo - to.Lo
	out := make([]T, len(buf))
	for i, x := range buf {
		out[i] = T(float64(x)*k - shift)
	}
	return out
}

// RoundHalfEven rounds x to the nearest integer, ties to even.
func RoundHalfEven(x float64) int {
	return int(math.RoundToEven(x))
}

// SampleCount returns the number of samples covering seconds at sampleRate.
// Negative durations yield zero.
func SampleCount(seconds float64, sampleRate int) int {
	n := RoundHalfEven(seconds * float64(sampleRate))
	if n < 0 {
		return 0
	}
	return n
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// n == 1 yields [start]; n <= 0 yields an empty buffer.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// Full returns a buffer of n copies of value.
func Full(value float64, n int) []float64 {
	if n < 0 {
		n = 0
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// ToFloat32 narrows a float64 buffer to single precision.
func ToFloat32(buf []float64) []float32 {
	out := make([]float32, len(buf))
	for i, x := range buf {
		out[i] = float32(x)
	}
	return out
}

// Peak finds the maximum absolute value in a buffer
func Peak(buffer []float32) float32 {
	peak := float32(0)
	for _, sample := range buffer {
		abs := float32(math.Abs(float64(sample)))
		if abs > peak {
			peak = abs
		}
	}
	return peak
}

// RMS calculates the root mean square of a buffer
func RMS(buffer []float32) float32 {
	if len(buffer) == 0 {
		return 0
	}

	sum := float64(0)
	for _, sample := range buffer {
		sum += float64(sample) * float64(sample)
	}

	return float32(math.Sqrt(sum / float64(len(buffer))))
}

// Clip limits samples to [-limit, limit]
func Clip(buffer []float32, limit float32) {
	for i := range buffer {
		if buffer[i] > limit {
			buffer[i] = limit
		} else if buffer[i] < -limit {
			buffer[i] = -limit
		}
	}
}
