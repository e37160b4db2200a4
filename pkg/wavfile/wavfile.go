// Package wavfile writes sample buffers to canonical RIFF/WAVE files.
//
// A file holds one fmt chunk and one data chunk for a single channel, with no
// metadata. Buffers are stored as 32-bit IEEE float by default, matching
// their in-memory representation, or as 16-bit integer PCM for tools that
// cannot read float WAV.
package wavfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/justyntemme/soundgen/pkg/dsp"
	"github.com/justyntemme/soundgen/pkg/framework/debug"
)

// Encoding selects the sample format of the data chunk.
type Encoding int

const (
	// EncodingFloat32 stores samples as 32-bit IEEE float
	EncodingFloat32 Encoding = iota
	// EncodingPCM16 stores samples as 16-bit signed integers, clipped to [-1, 1]
	EncodingPCM16
)

// WAVE format tags
const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

// Extension is appended by WriteFile to names without one.
const Extension = ".wav"

var (
	ErrEmptyBuffer       = errors.New("wavfile: empty buffer")
	ErrInvalidSampleRate = errors.New("wavfile: sample rate must be positive")
	ErrUnknownEncoding   = errors.New("wavfile: unknown encoding")
)

// String returns the string representation of an Encoding
func (e Encoding) String() string {
	switch e {
	case EncodingFloat32:
		return "float32"
	case EncodingPCM16:
		return "pcm16"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// ParseEncoding maps "float32" or "pcm16" to an Encoding.
func ParseEncoding(name string) (Encoding, error) {
	switch name {
	case "float32", "float", "":
		return EncodingFloat32, nil
	case "pcm16", "int16", "16":
		return EncodingPCM16, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
}

// layout returns the bits per sample and the WAVE format tag.
func (e Encoding) layout() (bitDepth, format int, err error) {
	switch e {
	case EncodingFloat32:
		return 32, formatIEEEFloat, nil
	case EncodingPCM16:
		return 16, formatPCM, nil
	default:
		return 0, 0, fmt.Errorf("%w: %v", ErrUnknownEncoding, e)
	}
}

// Write encodes buf as a mono WAVE stream.
func Write(w io.WriteSeeker, buf []float32, sampleRate int, enc Encoding) error {
	if len(buf) == 0 {
		return ErrEmptyBuffer
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleRate, sampleRate)
	}
	bitDepth, format, err := enc.layout()
	if err != nil {
		return err
	}

	var data []int
	switch enc {
	case EncodingFloat32:
		data = make([]int, len(buf))
		// the encoder writes 32-bit samples as int32; hand it the float bits
		for i, x := range buf {
			data[i] = int(int32(math.Float32bits(x)))
		}
	case EncodingPCM16:
		data = PCM16(buf)
	}

	e := wav.NewEncoder(w, sampleRate, bitDepth, 1, format)
	intBuf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := e.Write(intBuf); err != nil {
		return fmt.Errorf("wavfile: encode: %w", err)
	}
	if err := e.Close(); err != nil {
		return fmt.Errorf("wavfile: finalize: %w", err)
	}
	return nil
}

// WriteFile writes buf to name, adding the .wav extension when name has
// none, and returns the path written. Missing parent directories are created.
func WriteFile(name string, buf []float32, sampleRate int, enc Encoding) (string, error) {
	path := name
	if filepath.Ext(path) == "" {
		path += Extension
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("wavfile: create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("wavfile: %w", err)
	}
	if err := Write(f, buf, sampleRate, enc); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("wavfile: %w", err)
	}

	debug.Debug("wrote %d samples to %s (%v, %d Hz)", len(buf), path, enc, sampleRate)
	return path, nil
}

// PCM16 converts samples to 16-bit integers, clipping to [-1, 1]. buf is
// left untouched.
func PCM16(buf []float32) []int {
	clipped := make([]float32, len(buf))
	copy(clipped, buf)
	dsp.Clip(clipped, 1)

	out := make([]int, len(clipped))
	for i, x := range clipped {
		out[i] = int(math.Round(float64(x) * math.MaxInt16))
	}
	return out
}
