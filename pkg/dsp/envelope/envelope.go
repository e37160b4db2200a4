// Package envelope provides envelope generators for audio synthesis
package envelope

import (
	"math"

	"github.com/justyntemme/soundgen/pkg/dsp"
)

// Stage represents an envelope segment
type Stage int

const (
	// StageAttack ramps from 0 to 1
	StageAttack Stage = iota
	// StageDecay ramps from 1 to the sustain level
	StageDecay
	// StageSustain holds the sustain level while the key is pressed
	StageSustain
	// StageRelease ramps from the sustain level to 0
	StageRelease
	// StageDone lies past the end of the envelope
	StageDone
)

// String returns the string representation of a Stage
func (s Stage) String() string {
	switch s {
	case StageAttack:
		return "attack"
	case StageDecay:
		return "decay"
	case StageSustain:
		return "sustain"
	case StageRelease:
		return "release"
	default:
		return "done"
	}
}

// ADSRConfig describes an Attack-Decay-Sustain-Release envelope for one
// simulated key press.
type ADSRConfig struct {
	// Attack time in seconds
	Attack float64
	// Decay time in seconds
	Decay float64
	// Sustain level in [0,1]
	Sustain float64
	// Release time in seconds
	Release float64
	// PressTime is how long the key is held, in seconds
	PressTime float64
	// SampleRate in samples per second
	SampleRate int
}

// DefaultADSRConfig returns a short percussive envelope held for one second.
func DefaultADSRConfig() ADSRConfig {
	return ADSRConfig{
		Attack:     0.01,
		Decay:      0.1,
		Sustain:    0.7,
		Release:    0.3,
		PressTime:  1.0,
		SampleRate: dsp.DefaultSampleRate,
	}
}

// Segments is the sample budget of a rendered envelope.
type Segments struct {
	Attack  int // samples ramping 0 -> 1
	Decay   int // samples ramping 1 -> Level
	Sustain int // samples holding Level
	Release int // samples ramping Level -> 0

	// Level is the level the decay reaches. It equals the configured sustain
	// level unless the key was let go early.
	Level float64
}

// Len returns the total number of samples.
func (s Segments) Len() int {
	return s.Attack + s.Decay + s.Sustain + s.Release
}

// StageAt returns the stage sample i belongs to.
func (s Segments) StageAt(i int) Stage {
	switch {
	case i < 0:
		return StageDone
	case i < s.Attack:
		return StageAttack
	case i < s.Attack+s.Decay:
		return StageDecay
	case i < s.Attack+s.Decay+s.Sustain:
		return StageSustain
	case i < s.Len():
		return StageRelease
	default:
		return StageDone
	}
}

// Plan works out how the press time is split between the four segments.
//
// A press shorter than the attack plays the attack and release in full and
// never decays. A press that ends mid-decay stops the decay at the level it
// had reached and releases from there; the release is then shortened by the
// decay time that did play. Negative durations clamp to zero.
func Plan(cfg ADSRConfig) Segments {
	level := cfg.Sustain
	if cfg.PressTime < cfg.Attack {
		level = 1
	}

	decay := math.Max(0, math.Min(cfg.Decay, cfg.PressTime-cfg.Attack))
	ratio := 1.0
	if cfg.Decay > 0 {
		ratio = decay / cfg.Decay
	}
	level = (1 - ratio) + ratio*level

	sustain := math.Max(0, cfg.PressTime-cfg.Attack-decay)
	release := cfg.Release
	if ratio < 1 {
		release -= decay
	}

	return Segments{
		Attack:  dsp.SampleCount(cfg.Attack, cfg.SampleRate),
		Decay:   dsp.SampleCount(decay, cfg.SampleRate),
		Sustain: dsp.SampleCount(sustain, cfg.SampleRate),
		Release: dsp.SampleCount(release, cfg.SampleRate),
		Level:   level,
	}
}

// Render produces the piecewise-linear envelope. Each ramp includes both of
// its end points; an empty segment contributes no samples.
func (s Segments) Render() []float32 {
	out := make([]float32, 0, s.Len())
	for _, part := range [][]float64{
		dsp.Linspace(0, 1, s.Attack),
		dsp.Linspace(1, s.Level, s.Decay),
		dsp.Full(s.Level, s.Sustain),
		dsp.Linspace(s.Level, 0, s.Release),
	} {
		for _, v := range part {
			out = append(out, float32(v))
		}
	}
	return out
}

// ADSR renders the envelope described by cfg.
func ADSR(cfg ADSRConfig) []float32 {
	return Plan(cfg).Render()
}
