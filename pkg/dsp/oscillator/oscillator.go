// Package oscillator provides phase-aligned periodic waveform generators.
//
// Every generator renders a fixed-length buffer in one call. Phase is given
// in turns (1 turn = 360 degrees = 2π radians) and realized by generating a
// few extra leading samples and trimming them, so a phase offset lands on an
// exact sample. Sine, triangle, sawtooth and the 50% pulse share their
// ascending zero crossings when given the same nominal phase.
package oscillator

import (
	"fmt"
	"math"

	"github.com/justyntemme/soundgen/pkg/dsp"
)

// Config holds the parameters shared by the periodic generators.
type Config struct {
	// Frequency of the wave in Hz. Must be > 0. Default 440.
	Frequency float64
	// Amplitude is the peak level, expected in [0,1] but not clamped.
	// Default 0.2.
	Amplitude float64
	// Length of the buffer in seconds. Default 5.
	Length float64
	// SampleRate in samples per second. Default 48000.
	SampleRate int
	// Phase offset in turns; callers should pass [0,1). Default 0.
	Phase float64
	// DutyCycle is the fraction of a period a pulse spends high, in [0,1].
	// Only Pulse reads it. Default 0.5.
	DutyCycle float64
}

// DefaultConfig returns the documented generator defaults.
func DefaultConfig() Config {
	return Config{
		Frequency:  dsp.DefaultFrequency,
		Amplitude:  dsp.DefaultAmplitude,
		Length:     dsp.DefaultLength,
		SampleRate: dsp.DefaultSampleRate,
		Phase:      0,
		DutyCycle:  dsp.DefaultDutyCycle,
	}
}

// Samples returns the number of samples the config renders.
func (c Config) Samples() int {
	return dsp.SampleCount(c.Length, c.SampleRate)
}

// Generate renders the named shape.
func Generate(shape dsp.Shape, cfg Config) ([]float32, error) {
	switch shape {
	case dsp.ShapeSine:
		return Sine(cfg), nil
	case dsp.ShapeSawtooth:
		return Sawtooth(cfg), nil
	case dsp.ShapeTriangle:
		return Triangle(cfg), nil
	case dsp.ShapePulse:
		return Pulse(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownShape, shape)
	}
}

// Sine generates amplitude·sin(2π·n·f/sr), starting at the requested phase.
func Sine(cfg Config) []float32 {
	extra := Overshoot(cfg.Frequency, cfg.SampleRate, wrapTurns(cfg.Phase))
	n := cfg.Samples()

	wave := make([]float64, n+extra)
	for i := range wave {
		wave[i] = math.Sin(float64(i)*cfg.Frequency*dsp.TwoPi/float64(cfg.SampleRate)) * cfg.Amplitude
	}
	return dsp.ToFloat32(trim(wave, extra))
}

// Sawtooth generates a rising ramp in [-amplitude, amplitude). At phase 0 the
// ramp crosses zero on sample 0, in step with Sine.
func Sawtooth(cfg Config) []float32 {
	return dsp.ToFloat32(sawtooth(cfg, cfg.Phase))
}

// Triangle generates a triangle wave in [-amplitude, amplitude] by folding a
// sawtooth running a quarter turn ahead.
func Triangle(cfg Config) []float32 {
	n := cfg.Samples()
	if cfg.Amplitude == 0 {
		return make([]float32, n)
	}

	wave := sawtooth(cfg, cfg.Phase+dsp.TrianglePhaseOffset)
	for i, x := range wave {
		wave[i] = math.Abs(x)
	}
	folded := dsp.Range{Lo: 0, Hi: cfg.Amplitude}
	return dsp.ToFloat32(dsp.Rescale(wave, folded, dsp.Symmetric(cfg.Amplitude)))
}

// Pulse generates a two-level wave that is high while the raw ramp is below
// cfg.DutyCycle. The rising edge always lines up with the other shapes; the
// falling edge only does so at a 50% duty cycle.
func Pulse(cfg Config) []float32 {
	extra := Overshoot(cfg.Frequency, cfg.SampleRate, wrapTurns(cfg.Phase))

	wave := ramp(cfg, extra)
	for i, x := range wave {
		if x < cfg.DutyCycle {
			wave[i] = 1
		} else {
			wave[i] = 0
		}
	}
	wave = dsp.Rescale(wave, dsp.UnitRange, dsp.Symmetric(cfg.Amplitude))
	return dsp.ToFloat32(trim(wave, extra))
}

// sawtooth renders the sawtooth in float64 so Triangle can fold it without a
// round trip through single precision.
func sawtooth(cfg Config, phase float64) []float64 {
	phase = wrapTurns(phase + dsp.SawtoothPhaseOffset)
	extra := Overshoot(cfg.Frequency, cfg.SampleRate, phase)

	wave := dsp.Rescale(ramp(cfg, extra), dsp.UnitRange, dsp.Symmetric(cfg.Amplitude))
	return trim(wave, extra)
}
