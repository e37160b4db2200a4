package utility

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhiteNoiseRange(t *testing.T) {
	cfg := NoiseConfig{Amplitude: 0.3, Length: 1, SampleRate: 44100}
	buf := WhiteNoise(cfg, NewSource(1))
	require.Len(t, buf, 44100)

	var sum float64
	for i, x := range buf {
		require.GreaterOrEqual(t, x, float32(-0.3), "sample %d", i)
		require.LessOrEqual(t, x, float32(0.3), "sample %d", i)
		sum += float64(x)
	}
	assert.InDelta(t, 0, sum/float64(len(buf)), 0.01, "noise should have no DC offset")
}

func TestWhiteNoiseSeeded(t *testing.T) {
	cfg := DefaultNoiseConfig()
	cfg.Length = 0.1

	a := WhiteNoise(cfg, NewSource(42))
	b := WhiteNoise(cfg, NewSource(42))
	c := WhiteNoise(cfg, NewSource(43))

	assert.Equal(t, a, b, "same seed must reproduce the buffer")
	assert.NotEqual(t, a, c)
}

func TestWhiteNoiseNilSource(t *testing.T) {
	cfg := DefaultNoiseConfig()
	cfg.Length = 0.01
	buf := WhiteNoise(cfg, nil)
	assert.Len(t, buf, 480)
}

func TestWhiteNoiseParallel(t *testing.T) {
	cfg := DefaultNoiseConfig()
	cfg.Length = 0.05
	want := WhiteNoise(cfg, NewSource(7))

	var wg sync.WaitGroup
	results := make([][]float32, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = WhiteNoise(cfg, NewSource(7))
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestDefaultNoiseConfig(t *testing.T) {
	cfg := DefaultNoiseConfig()
	assert.Equal(t, 0.2, cfg.Amplitude)
	assert.Equal(t, 240000, cfg.Samples())
}
