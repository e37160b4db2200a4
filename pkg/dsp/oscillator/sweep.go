package oscillator

import (
	"math"

	"github.com/justyntemme/soundgen/pkg/dsp"
)

// SweepConfig holds the parameters of a linear frequency sweep.
type SweepConfig struct {
	// StartFrequency is the instantaneous frequency at sample 0, in Hz.
	StartFrequency float64
	// EndFrequency is the frequency reached at the end of the buffer, in Hz.
	EndFrequency float64
	// Amplitude is the peak level. Default 0.2.
	Amplitude float64
	// Length of the sweep in seconds. Default 5.
	Length float64
	// SampleRate in samples per second. Default 48000.
	SampleRate int
}

// DefaultSweepConfig returns a 20 Hz to 20 kHz sweep with the generator
// defaults for everything else.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		StartFrequency: 20,
		EndFrequency:   20000,
		Amplitude:      dsp.DefaultAmplitude,
		Length:         dsp.DefaultLength,
		SampleRate:     dsp.DefaultSampleRate,
	}
}

// Samples returns the number of samples the sweep renders.
func (c SweepConfig) Samples() int {
	return dsp.SampleCount(c.Length, c.SampleRate)
}

// Sweep generates a sine whose frequency ramps linearly from StartFrequency
// to EndFrequency. The accumulated phase at sample t is
// f0·t + (f1-f0)·t²/(2·N).
//
// Nothing guarantees the phase at either end matches a wave spliced next to
// it; use analysis.NearestZeroCrossing to find a clean cut point.
func Sweep(cfg SweepConfig) []float32 {
	n := cfg.Samples()
	out := make([]float32, n)
	if n == 0 {
		return out
	}

	c := (cfg.EndFrequency - cfg.StartFrequency) / float64(n)
	for i := range out {
		t := float64(i)
		phi := c*t*t/2 + cfg.StartFrequency*t
		out[i] = float32(math.Sin(phi*dsp.TwoPi/float64(cfg.SampleRate)) * cfg.Amplitude)
	}
	return out
}
