package main

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/justyntemme/soundgen/pkg/framework/debug"
	"github.com/justyntemme/soundgen/pkg/wavfile"
)

// size of the --verbose waveform chart
const (
	chartWidth  = 72
	chartHeight = 9
)

// writeAndReport writes buf under the output directory and prints how long
// the write took.
func writeAndReport(cmd *cobra.Command, buf []float32, name, description string) (string, error) {
	if verbose {
		debug.LogBufferStats(buf, description, sampleRate)
		debug.Debug("%s", debug.PrintBuffer(buf, chartWidth, chartHeight))
	}

	var path string
	elapsed, err := debug.Time(description, func() error {
		var err error
		path, err = wavfile.WriteFile(filepath.Join(outDir, name), buf, sampleRate, outputEncoding)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s written in %s.\n", description, debug.Milliseconds(elapsed))
	debug.Debug("%s -> %s", description, path)
	return path, nil
}

// formatNumber renders x rounded to three decimals without trailing zeros.
func formatNumber(x float64) string {
	return strconv.FormatFloat(roundTo(x, 3), 'f', -1, 64)
}

// fileNumber is formatNumber with the decimal point replaced by a dash so
// the value can sit inside a file name.
func fileNumber(x float64) string {
	return strings.ReplaceAll(formatNumber(x), ".", "-")
}

// inspectionName builds names of the form p4_saw_111-1_1s.
func inspectionName(prefix, shape string, frequency, seconds float64) string {
	return fmt.Sprintf("%s_%s_%s_%ss", prefix, shape, fileNumber(frequency), fileNumber(seconds))
}

// phaseSuffix describes a non-zero phase for report lines.
func phaseSuffix(phase float64) string {
	if phase <= 0 {
		return ""
	}
	return fmt.Sprintf(", %s turns ahead", formatNumber(phase))
}

func roundTo(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.RoundToEven(x*scale) / scale
}
