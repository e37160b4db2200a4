package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Spectrum returns the magnitude of each DFT bin from DC up to and including
// the Nyquist bin. Bin k sits at k*sampleRate/len(buf) Hz.
func Spectrum(buf []float32) []float64 {
	if len(buf) == 0 {
		return []float64{}
	}

	x := make([]float64, len(buf))
	for i, s := range buf {
		x[i] = float64(s)
	}

	bins := fft.FFTReal(x)
	mags := make([]float64, len(buf)/2+1)
	for k := range mags {
		mags[k] = cmplx.Abs(bins[k])
	}
	return mags
}

// DominantFrequency returns the frequency in Hz of the strongest non-DC bin,
// or 0 when the buffer has fewer than two samples or no energy outside DC.
func DominantFrequency(buf []float32, sampleRate int) float64 {
	mags := Spectrum(buf)
	// ignore rounding noise from the transform
	peak, peakBin := 1e-9*float64(len(buf)), 0
	for k := 1; k < len(mags); k++ {
		if mags[k] > peak {
			peak, peakBin = mags[k], k
		}
	}
	return float64(peakBin) * float64(sampleRate) / float64(len(buf))
}
