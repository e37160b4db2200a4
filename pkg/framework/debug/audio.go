package debug

import (
	"fmt"
	"math"
	"strings"

	"github.com/justyntemme/soundgen/pkg/dsp"
	"github.com/justyntemme/soundgen/pkg/dsp/analysis"
)

// AudioAnalyzer summarizes generated buffers before they are written.
type AudioAnalyzer struct {
	ClippingThreshold float32
	DCThreshold       float32
	SilenceThreshold  float32
}

// NewAudioAnalyzer creates a new audio analyzer with default settings.
func NewAudioAnalyzer() *AudioAnalyzer {
	return &AudioAnalyzer{
		ClippingThreshold: 0.99,
		DCThreshold:       0.01,
		SilenceThreshold:  0.0001,
	}
}

// AnalysisResult contains the results of audio buffer analysis.
type AnalysisResult struct {
	Samples        int
	Peak           float32
	RMS            float32
	DC             float32
	Clipping       bool
	ClippedSamples int
	Silent         bool
	HasNaN         bool
	NaNCount       int
	ZeroCrossings  int
	Ascending      int
	Frequency      float64
}

// Analyze computes level statistics and counts zero crossings. NaN samples
// are excluded from the level statistics. A positive sampleRate also
// estimates the dominant frequency.
func (a *AudioAnalyzer) Analyze(buffer []float32, sampleRate int) AnalysisResult {
	result := AnalysisResult{Samples: len(buffer)}
	if len(buffer) == 0 {
		return result
	}

	valid := make([]float32, 0, len(buffer))
	var sum float64
	for _, sample := range buffer {
		if math.IsNaN(float64(sample)) {
			result.HasNaN = true
			result.NaNCount++
			continue
		}
		valid = append(valid, sample)
		sum += float64(sample)

		if float32(math.Abs(float64(sample))) >= a.ClippingThreshold {
			result.Clipping = true
			result.ClippedSamples++
		}
	}

	result.Peak = dsp.Peak(valid)
	result.RMS = dsp.RMS(valid)
	if len(valid) > 0 {
		result.DC = float32(sum / float64(len(valid)))
	}
	result.Silent = result.RMS < a.SilenceThreshold

	if all, err := analysis.ZeroCrossings(buffer, analysis.SlopeAny); err == nil {
		result.ZeroCrossings = len(all)
	}
	if up, err := analysis.ZeroCrossings(buffer, analysis.SlopeAscending); err == nil {
		result.Ascending = len(up)
	}
	if sampleRate > 0 && !result.HasNaN {
		result.Frequency = analysis.DominantFrequency(buffer, sampleRate)
	}

	return result
}

// Issues lists the problems found in a result, each prefixed by name.
func (a *AudioAnalyzer) Issues(result AnalysisResult, name string) []string {
	var issues []string

	if result.HasNaN {
		issues = append(issues, fmt.Sprintf("%s: contains %d NaN values", name, result.NaNCount))
	}
	if result.Clipping {
		issues = append(issues, fmt.Sprintf("%s: clipping detected (%d samples)", name, result.ClippedSamples))
	}
	if math.Abs(float64(result.DC)) > float64(a.DCThreshold) {
		issues = append(issues, fmt.Sprintf("%s: DC offset detected (%.3f)", name, result.DC))
	}
	if result.Peak > 1.0 {
		issues = append(issues, fmt.Sprintf("%s: peak exceeds 1.0 (%.3f)", name, result.Peak))
	}

	return issues
}

// PrintBuffer renders a buffer as a horizontal ASCII strip chart, one column
// per group of samples. NaN and infinite samples are left out; a column with
// no finite samples stays blank.
func PrintBuffer(buffer []float32, width, height int) string {
	if len(buffer) == 0 {
		return "Empty buffer"
	}
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 9
	}
	if height%2 == 0 {
		height++
	}

	peak := float32(0)
	for _, sample := range buffer {
		if !finite(sample) {
			continue
		}
		if abs := float32(math.Abs(float64(sample))); abs > peak {
			peak = abs
		}
	}
	if peak == 0 {
		return "Silent buffer (all zeros)"
	}

	perColumn := (len(buffer) + width - 1) / width
	columns := (len(buffer) + perColumn - 1) / perColumn
	half := height / 2

	rows := make([][]byte, height)
	for r := range rows {
		rows[r] = []byte(strings.Repeat(" ", columns))
	}

	for c := 0; c < columns; c++ {
		start := c * perColumn
		end := start + perColumn
		if end > len(buffer) {
			end = len(buffer)
		}
		sum, n := float32(0), 0
		for _, s := range buffer[start:end] {
			if finite(s) {
				sum += s
				n++
			}
		}
		if n == 0 {
			continue
		}
		level := int(math.Round(float64(sum / float32(n) / peak * float32(half))))
		if level > half {
			level = half
		} else if level < -half {
			level = -half
		}
		rows[half-level][c] = '*'
		if level != 0 {
			rows[half][c] = '-'
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "peak %.3f, %d samples\n", peak, len(buffer))
	for _, row := range rows {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func finite(x float32) bool {
	return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
}

// Global audio debugging functions

var defaultAnalyzer = NewAudioAnalyzer()

// LogBufferStats logs statistics about a buffer at debug level and any
// issues at warn level.
func LogBufferStats(buffer []float32, name string, sampleRate int) AnalysisResult {
	result := defaultAnalyzer.Analyze(buffer, sampleRate)

	Debug("%s: %d samples, peak %.3f, rms %.3f, dc %.6f, %d zero crossings (%d ascending), dominant %.1f Hz",
		name, result.Samples, result.Peak, result.RMS, result.DC, result.ZeroCrossings, result.Ascending, result.Frequency)
	for _, issue := range defaultAnalyzer.Issues(result, name) {
		Warn("%s", issue)
	}
	return result
}
