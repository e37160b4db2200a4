package oscillator

import (
	"math"

	"github.com/justyntemme/soundgen/pkg/dsp"
)

// Overshoot returns how many leading samples to generate and discard so that
// sample 0 of the trimmed buffer sits phase turns into the period. The count
// is round(phase·sampleRate/frequency), ties to even, and never negative.
// Very large phases produce proportionally large overshoots.
func Overshoot(frequency float64, sampleRate int, phase float64) int {
	n := dsp.RoundHalfEven(phase * float64(sampleRate) / frequency)
	if n < 0 {
		return 0
	}
	return n
}

// ramp returns cfg.Samples()+extra raw phase values in [0,1): the fractional
// part of n·f/sr, wrapped with floor.
func ramp(cfg Config, extra int) []float64 {
	out := make([]float64, cfg.Samples()+extra)
	for i := range out {
		x := float64(i) * cfg.Frequency / float64(cfg.SampleRate)
		out[i] = x - math.Floor(x)
	}
	return out
}

// trim drops the overshoot samples.
func trim(wave []float64, extra int) []float64 {
	if extra > len(wave) {
		extra = len(wave)
	}
	return wave[extra:]
}

// wrapTurns maps any phase into [0,1).
func wrapTurns(phase float64) float64 {
	return phase - math.Floor(phase)
}
