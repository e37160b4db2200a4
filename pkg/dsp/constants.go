// Package dsp provides digital signal processing utilities and algorithms.
package dsp

// Common audio constants used throughout the generator packages and the CLI.
const (
	// Generator defaults
	DefaultSampleRate = 48000 // Hz
	DefaultLength     = 5.0   // seconds
	DefaultFrequency  = 440.0 // Hz
	DefaultAmplitude  = 0.2   // dimensionless, [0,1]
	DefaultDutyCycle  = 0.5   // fraction of a period spent high

	// Radians per turn
	TwoPi = 6.283185307179586

	// Phase offsets (in turns) that line every shape up on sine's
	// ascending zero crossing
	SawtoothPhaseOffset = 0.5
	TrianglePhaseOffset = 0.25
)

// Shape identifies a periodic waveform shape.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeSine
	ShapeSawtooth
	ShapeTriangle
	ShapePulse
)

// String returns the string representation of a Shape
func (s Shape) String() string {
	switch s {
	case ShapeSine:
		return "sine"
	case ShapeSawtooth:
		return "sawtooth"
	case ShapeTriangle:
		return "triangle"
	case ShapePulse:
		return "pulse"
	default:
		return "unknown"
	}
}

// ParseShape maps a shape name (or its short form) to a Shape.
// Unrecognized names return ShapeUnknown.
func ParseShape(name string) Shape {
	switch name {
	case "sine", "sin":
		return ShapeSine
	case "sawtooth", "saw":
		return ShapeSawtooth
	case "triangle", "tri":
		return ShapeTriangle
	case "pulse", "square":
		return ShapePulse
	default:
		return ShapeUnknown
	}
}
