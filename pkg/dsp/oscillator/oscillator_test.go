package oscillator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/soundgen/pkg/dsp"
	"github.com/justyntemme/soundgen/pkg/dsp/analysis"
	"github.com/justyntemme/soundgen/pkg/dsp/oscillator"
)

// alignedConfig uses a sample rate holding exactly 100 samples per period,
// so every shape's zero crossings land on whole samples.
func alignedConfig() oscillator.Config {
	return oscillator.Config{
		Frequency:  440,
		Amplitude:  0.5,
		Length:     0.1,
		SampleRate: 44000,
		DutyCycle:  0.5,
	}
}

// snap zeroes samples within rounding noise of zero.
func snap(buf []float32) []float32 {
	out := make([]float32, len(buf))
	for i, x := range buf {
		if math.Abs(float64(x)) > 1e-4 {
			out[i] = x
		}
	}
	return out
}

func ascending(t *testing.T, buf []float32) []int {
	t.Helper()
	crossings, err := analysis.ZeroCrossings(snap(buf), analysis.SlopeAscending)
	require.NoError(t, err)
	return crossings
}

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

func TestDefaultConfig(t *testing.T) {
	cfg := oscillator.DefaultConfig()
	assert.Equal(t, 440.0, cfg.Frequency)
	assert.Equal(t, 0.2, cfg.Amplitude)
	assert.Equal(t, 5.0, cfg.Length)
	assert.Equal(t, 48000, cfg.SampleRate)
	assert.Equal(t, 0.0, cfg.Phase)
	assert.Equal(t, 0.5, cfg.DutyCycle)
	assert.Equal(t, 240000, cfg.Samples())
}

func TestBufferLength(t *testing.T) {
	phases := []float64{0, 0.1, 0.4, 0.75, 0.999}
	for _, shape := range []dsp.Shape{dsp.ShapeSine, dsp.ShapeSawtooth, dsp.ShapeTriangle, dsp.ShapePulse} {
		for _, phase := range phases {
			cfg := oscillator.DefaultConfig()
			cfg.Frequency = 111.1
			cfg.Length = 1
			cfg.SampleRate = 44100
			cfg.Phase = phase

			buf, err := oscillator.Generate(shape, cfg)
			require.NoError(t, err)
			assert.Len(t, buf, 44100, "%v at phase %v", shape, phase)
		}
	}
}

func TestGenerateUnknownShape(t *testing.T) {
	buf, err := oscillator.Generate(dsp.ShapeUnknown, oscillator.DefaultConfig())
	require.ErrorIs(t, err, oscillator.ErrUnknownShape)
	assert.Nil(t, buf)
}

func TestOvershoot(t *testing.T) {
	tests := []struct {
		name       string
		frequency  float64
		sampleRate int
		phase      float64
		want       int
	}{
		{"zero phase", 440, 44100, 0, 0},
		{"quarter turn", 440, 44000, 0.25, 25},
		{"0.4 turns", 440, 44100, 0.4, 40},
		{"non-decimal frequency", 111.1, 44100, 0.4, 159},
		{"half sample ties to even", 1000, 1000, 0.5, 0},
		{"negative phase clamps", 440, 44100, -0.3, 0},
		{"large phase", 440, 44000, 12, 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, oscillator.Overshoot(tt.frequency, tt.sampleRate, tt.phase))
		})
	}
}

func TestSine(t *testing.T) {
	cfg := alignedConfig()
	buf := oscillator.Sine(cfg)
	require.Len(t, buf, 4400)

	assert.Equal(t, float32(0), buf[0])
	assert.InDelta(t, 0.5, float64(buf[25]), 1e-6, "peak a quarter period in")
	assert.InDelta(t, -0.5, float64(buf[75]), 1e-6)
	assert.LessOrEqual(t, dsp.Peak(buf), float32(0.5))

	cfg.Phase = 0.25
	shifted := oscillator.Sine(cfg)
	assert.InDelta(t, 0.5, float64(shifted[0]), 1e-6, "quarter turn ahead starts at the peak")
}

func TestPhaseShiftIsOvershootTrim(t *testing.T) {
	for _, phase := range []float64{0.1, 0.4, 0.9} {
		cfg := oscillator.DefaultConfig()
		cfg.Length = 0.05
		cfg.SampleRate = 44100
		cfg.Phase = phase
		shifted := oscillator.Sine(cfg)

		extra := oscillator.Overshoot(cfg.Frequency, cfg.SampleRate, phase)
		long := cfg
		long.Phase = 0
		long.Length = 1
		reference := oscillator.Sine(long)

		assert.Equal(t, reference[extra:extra+len(shifted)], shifted, "phase %v", phase)
	}
}

func TestSawtooth(t *testing.T) {
	buf := oscillator.Sawtooth(alignedConfig())
	require.Len(t, buf, 4400)

	assert.Equal(t, float32(0), buf[0], "zero phase starts on the ascending crossing")
	assert.InDelta(t, 0.49, float64(buf[49]), 1e-5)
	assert.InDelta(t, -0.5, float64(buf[50]), 1e-5, "ramp wraps half a period in")
	for i, x := range buf {
		require.GreaterOrEqual(t, x, float32(-0.5), "sample %d", i)
		require.Less(t, x, float32(0.5), "sample %d", i)
	}
}

func TestTriangle(t *testing.T) {
	buf := oscillator.Triangle(alignedConfig())
	require.Len(t, buf, 4400)

	assert.InDelta(t, 0, float64(buf[0]), 1e-6)
	assert.InDelta(t, 0.5, float64(buf[25]), 1e-6)
	assert.InDelta(t, 0, float64(buf[50]), 1e-6)
	assert.InDelta(t, -0.5, float64(buf[75]), 1e-6)
	assert.InDelta(t, 0.02, float64(buf[1]), 1e-5, "rises 4·amplitude per period")

	cfg := alignedConfig()
	cfg.Amplitude = 0
	silent := oscillator.Triangle(cfg)
	require.Len(t, silent, 4400)
	assert.Equal(t, float32(0), dsp.Peak(silent))
}

func TestPulseDutyCycle(t *testing.T) {
	for _, duty := range []float64{0.125, 0.25, 0.5, 0.75} {
		cfg := alignedConfig()
		cfg.DutyCycle = duty
		buf := oscillator.Pulse(cfg)
		require.Len(t, buf, 4400)

		high := 0
		for _, x := range buf {
			require.Contains(t, []float32{-0.5, 0.5}, x)
			if x > 0 {
				high++
			}
		}
		assert.InDelta(t, duty, float64(high)/float64(len(buf)), 0.02, "duty %v", duty)
	}
}

func TestPulseRisingEdgesShared(t *testing.T) {
	reference := alignedConfig()
	want := ascending(t, oscillator.Pulse(reference))
	require.NotEmpty(t, want)

	for _, duty := range []float64{0.125, 0.25, 0.75} {
		cfg := alignedConfig()
		cfg.DutyCycle = duty
		assert.Equal(t, want, ascending(t, oscillator.Pulse(cfg)), "duty %v", duty)
	}
}

func TestPhaseAlignment(t *testing.T) {
	for _, phase := range []float64{0, 0.4} {
		cfg := alignedConfig()
		cfg.Phase = phase

		sine := oscillator.Sine(cfg)
		saw := oscillator.Sawtooth(cfg)
		tri := oscillator.Triangle(cfg)
		pulse := oscillator.Pulse(cfg)

		want := ascending(t, sine)
		require.Len(t, want, 44, "phase %v", phase)
		assert.Equal(t, want, ascending(t, saw), "sawtooth, phase %v", phase)
		assert.Equal(t, want, ascending(t, tri), "triangle, phase %v", phase)

		// the pulse has no zero samples: it rises on the sample before
		edges := ascending(t, pulse)
		for i := range edges {
			edges[i]++
		}
		assert.Subset(t, want, edges, "pulse, phase %v", phase)

		for i, x := range sine {
			if math.Abs(float64(x)) < 1e-4 {
				continue
			}
			s := sign(x)
			require.Equal(t, s, sign(saw[i]), "sawtooth sign at %d, phase %v", i, phase)
			require.Equal(t, s, sign(tri[i]), "triangle sign at %d, phase %v", i, phase)
			require.Equal(t, s, sign(pulse[i]), "pulse sign at %d, phase %v", i, phase)
		}
	}
}

func TestSweep(t *testing.T) {
	t.Run("Length", func(t *testing.T) {
		cfg := oscillator.DefaultSweepConfig()
		cfg.Length = 0.5
		assert.Len(t, oscillator.Sweep(cfg), 24000)
	})

	t.Run("ConstantMatchesSine", func(t *testing.T) {
		sweep := oscillator.SweepConfig{
			StartFrequency: 440,
			EndFrequency:   440,
			Amplitude:      0.3,
			Length:         0.2,
			SampleRate:     44100,
		}
		sine := oscillator.Config{
			Frequency:  440,
			Amplitude:  0.3,
			Length:     0.2,
			SampleRate: 44100,
		}
		assert.InDeltaSlice(t, oscillator.Sine(sine), oscillator.Sweep(sweep), 1e-6)
	})

	t.Run("FrequencyRamps", func(t *testing.T) {
		cfg := oscillator.SweepConfig{
			StartFrequency: 100,
			EndFrequency:   1000,
			Amplitude:      0.5,
			Length:         1,
			SampleRate:     48000,
		}
		buf := oscillator.Sweep(cfg)
		require.Len(t, buf, 48000)
		assert.Equal(t, float32(0), buf[0])

		window := 4800
		rate := func(part []float32) float64 {
			crossings, err := analysis.ZeroCrossings(part, analysis.SlopeAny)
			require.NoError(t, err)
			return float64(len(crossings)) / 2 / (float64(len(part)) / 48000)
		}
		// mean frequency over the first and last tenth
		assert.InEpsilon(t, 145.0, rate(buf[:window]), 0.1)
		assert.InEpsilon(t, 955.0, rate(buf[len(buf)-window:]), 0.1)
	})

	t.Run("Empty", func(t *testing.T) {
		cfg := oscillator.DefaultSweepConfig()
		cfg.Length = 0
		assert.Empty(t, oscillator.Sweep(cfg))
	})
}
