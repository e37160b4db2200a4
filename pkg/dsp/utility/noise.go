// Package utility provides noise sources for test signals.
package utility

import (
	"math/rand"
	"time"

	"github.com/justyntemme/soundgen/pkg/dsp"
)

// NoiseConfig holds the parameters of a noise buffer.
type NoiseConfig struct {
	// Amplitude is the peak level. Default 0.2.
	Amplitude float64
	// Length in seconds. Default 5.
	Length float64
	// SampleRate in samples per second. Default 48000.
	SampleRate int
}

// DefaultNoiseConfig returns the generator defaults.
func DefaultNoiseConfig() NoiseConfig {
	return NoiseConfig{
		Amplitude:  dsp.DefaultAmplitude,
		Length:     dsp.DefaultLength,
		SampleRate: dsp.DefaultSampleRate,
	}
}

// Samples returns the number of samples the config renders.
func (c NoiseConfig) Samples() int {
	return dsp.SampleCount(c.Length, c.SampleRate)
}

// NewSource returns a random source for reproducible noise.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// WhiteNoise fills a new buffer with uniform noise in [-amplitude, amplitude).
// rng belongs to the caller and must not be shared between goroutines; a nil
// rng gets a fresh time-seeded source for this call only.
func WhiteNoise(cfg NoiseConfig, rng *rand.Rand) []float32 {
	if rng == nil {
		rng = NewSource(time.Now().UnixNano())
	}

	raw := make([]float64, cfg.Samples())
	for i := range raw {
		raw[i] = rng.Float64()
	}
	return dsp.ToFloat32(dsp.Rescale(raw, dsp.UnitRange, dsp.Symmetric(cfg.Amplitude)))
}
