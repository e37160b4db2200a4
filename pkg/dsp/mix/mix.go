// Package mix provides operations for composing notes out of generated
// buffers: applying envelopes, joining and splicing.
package mix

import (
	"fmt"

	"github.com/justyntemme/soundgen/pkg/dsp/analysis"
)

// Multiply returns the sample-wise product of signal and gain, e.g. a wave
// shaped by an ADSR envelope. The result has the length of the shorter input.
func Multiply(signal, gain []float32) []float32 {
	length := len(signal)
	if len(gain) < length {
		length = len(gain)
	}

	out := make([]float32, length)
	for i := range out {
		out[i] = signal[i] * gain[i]
	}
	return out
}

// Concat joins buffers end to end into a new buffer.
func Concat(buffers ...[]float32) []float32 {
	total := 0
	for _, b := range buffers {
		total += len(b)
	}

	out := make([]float32, 0, total)
	for _, b := range buffers {
		out = append(out, b...)
	}
	return out
}

// SpliceAtZeroCrossing cuts head at the rising zero crossing nearest its end
// and appends tail, which is expected to start on a rising zero crossing
// itself (any phase-0 sine or sweep does). When head lands exactly on zero
// at the cut, that sample is dropped so the join holds a single zero.
func SpliceAtZeroCrossing(head, tail []float32) ([]float32, error) {
	k, err := analysis.NearestZeroCrossing(head, len(head)-1, analysis.SlopeAscending)
	if err != nil {
		return nil, fmt.Errorf("mix: splice: %w", err)
	}

	cut := k + 1
	if head[k] == 0 {
		cut = k
	}
	return Concat(head[:cut], tail), nil
}
