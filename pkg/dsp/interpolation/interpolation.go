// Package interpolation provides linear blending between waveforms.
package interpolation

// Linear blends two samples: t = 0 gives y0, t = 1 gives y1.
func Linear(y0, y1, t float32) float32 {
	return (1-t)*y0 + t*y1
}

// Waves blends two equal-length buffers with a single weight t and returns
// the result in a new buffer. t = 0 returns a copy of a, t = 1 a copy of b.
// The blend is most useful when a and b share frequency and phase.
func Waves(a, b []float32, t float32) []float32 {
	out := make([]float32, len(a))
	for i := range out {
		out[i] = Linear(a[i], b[i], t)
	}
	return out
}

// WavesBuffer blends two equal-length buffers with a per-sample weight, e.g.
// an envelope sweeping from one timbre to another.
func WavesBuffer(a, b, t []float32) []float32 {
	out := make([]float32, len(a))
	for i := range out {
		out[i] = Linear(a[i], b[i], t[i])
	}
	return out
}
