package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justyntemme/soundgen/pkg/dsp"
	"github.com/justyntemme/soundgen/pkg/dsp/envelope"
	"github.com/justyntemme/soundgen/pkg/dsp/mix"
	"github.com/justyntemme/soundgen/pkg/dsp/oscillator"
	"github.com/justyntemme/soundgen/pkg/dsp/utility"
	"github.com/justyntemme/soundgen/pkg/framework/debug"
)

// Subcommand flags
var (
	output    string
	frequency float64
	phase     float64
	dutyCycle float64

	sweepFrom float64
	sweepTo   float64

	noiseSeed int64

	attack  float64
	decay   float64
	sustain float64
	release float64
	press   float64

	prefix string
)

var waveCmd = &cobra.Command{
	Use:   "wave <shape>",
	Short: "Write a periodic waveform",
	Long: `Write a sine, sawtooth, triangle or pulse wave.

Examples:
  soundgen wave sine --freq 440
  soundgen wave saw --freq 110 --phase 0.25 -o bass
  soundgen wave pulse --duty 0.125 --encoding pcm16`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"sine", "sawtooth", "triangle", "pulse"},
	RunE:      runWave,
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Write a linear frequency sweep",
	Long: `Write a sine wave whose frequency ramps linearly over the whole length.

Example:
  soundgen sweep --from 20 --to 20000 --length 10`,
	Args: cobra.NoArgs,
	RunE: runSweep,
}

var noiseCmd = &cobra.Command{
	Use:   "noise",
	Short: "Write uniform white noise",
	Long: `Write white noise drawn uniformly from [-amplitude, amplitude).

A seed of 0 draws a different signal on every run.`,
	Args: cobra.NoArgs,
	RunE: runNoise,
}

var noteCmd = &cobra.Command{
	Use:   "note <shape>",
	Short: "Write a waveform shaped by an ADSR envelope",
	Long: `Write a single note: the waveform multiplied by an attack, decay,
sustain, release envelope. The note length is set by the envelope, not by
--length.

Example:
  soundgen note sine --attack 0.01 --decay 0.1 --sustain 0.7 --press 1 --release 0.3`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"sine", "sawtooth", "triangle", "pulse"},
	RunE:      runNote,
}

var spliceCmd = &cobra.Command{
	Use:   "splice",
	Short: "Write two tones joined by a sweep",
	Long: `Write a tone at --from, a sweep to --to and a tone at --to, each
--length seconds long. Every part is cut at its last ascending zero crossing
before the next one is appended.`,
	Args: cobra.NoArgs,
	RunE: runSplice,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Write a battery of files for checking phase alignment by eye",
	Long: `Write sine, triangle, sawtooth and 12.5/25/50/75% pulse waves at the
same frequency and phase, plus a sine phase series in tenths of a turn.

Open the results in an audio editor: sine, triangle, sawtooth and the 50%
pulse share their zero crossings, and every pulse rises together with the
other waves.

Example:
  soundgen inspect --freq 111.1 --phase 0.4 --prefix p4n --length 1`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	for _, cmd := range []*cobra.Command{waveCmd, sweepCmd, noiseCmd, noteCmd, spliceCmd} {
		cmd.Flags().StringVarP(&output, "output", "o", "", "Output file name (default derived from the parameters)")
	}
	for _, cmd := range []*cobra.Command{waveCmd, noteCmd, inspectCmd} {
		cmd.Flags().Float64VarP(&frequency, "freq", "f", dsp.DefaultFrequency, "Frequency in Hz")
		cmd.Flags().Float64VarP(&phase, "phase", "p", 0, "Phase in turns, [0, 1)")
	}
	for _, cmd := range []*cobra.Command{waveCmd, noteCmd} {
		cmd.Flags().Float64Var(&dutyCycle, "duty", dsp.DefaultDutyCycle, "Pulse duty cycle, [0, 1]")
	}

	for _, cmd := range []*cobra.Command{sweepCmd, spliceCmd} {
		cmd.Flags().Float64Var(&sweepFrom, "from", 20, "Start frequency in Hz")
		cmd.Flags().Float64Var(&sweepTo, "to", 20000, "End frequency in Hz")
	}

	noiseCmd.Flags().Int64Var(&noiseSeed, "seed", 0, "Random seed (0 seeds from the clock)")

	def := envelope.DefaultADSRConfig()
	noteCmd.Flags().Float64Var(&attack, "attack", def.Attack, "Attack time in seconds")
	noteCmd.Flags().Float64Var(&decay, "decay", def.Decay, "Decay time in seconds")
	noteCmd.Flags().Float64Var(&sustain, "sustain", def.Sustain, "Sustain level, [0, 1]")
	noteCmd.Flags().Float64Var(&release, "release", def.Release, "Release time in seconds")
	noteCmd.Flags().Float64Var(&press, "press", def.PressTime, "Time the note is held in seconds")

	inspectCmd.Flags().StringVar(&prefix, "prefix", "p0", "File name prefix")
}

func waveConfig() (oscillator.Config, error) {
	cfg := oscillator.Config{
		Frequency:  frequency,
		Amplitude:  amplitude,
		Length:     length,
		SampleRate: sampleRate,
		Phase:      phase,
		DutyCycle:  dutyCycle,
	}
	return cfg, validateWave(cfg)
}

func validateWave(cfg oscillator.Config) error {
	switch {
	case cfg.Frequency <= 0:
		return fmt.Errorf("%w: frequency must be positive, got %g", ErrInvalidConfig, cfg.Frequency)
	case cfg.Phase < 0 || cfg.Phase >= 1:
		return fmt.Errorf("%w: phase must be in [0, 1), got %g", ErrInvalidConfig, cfg.Phase)
	case cfg.DutyCycle < 0 || cfg.DutyCycle > 1:
		return fmt.Errorf("%w: duty cycle must be in [0, 1], got %g", ErrInvalidConfig, cfg.DutyCycle)
	}
	debug.WarnIf(cfg.Frequency > float64(cfg.SampleRate)/2,
		"%g Hz is above the Nyquist frequency of %d Hz and will alias", cfg.Frequency, cfg.SampleRate/2)
	return nil
}

func parseShape(name string) (dsp.Shape, error) {
	shape := dsp.ParseShape(name)
	if shape == dsp.ShapeUnknown {
		return shape, fmt.Errorf("%w: unknown shape %q", ErrInvalidConfig, name)
	}
	return shape, nil
}

func shapeDescription(shape dsp.Shape, cfg oscillator.Config) string {
	desc := fmt.Sprintf("%s wave at %s Hz", shapeTitle(shape), formatNumber(cfg.Frequency))
	if shape == dsp.ShapePulse {
		desc += fmt.Sprintf(" (%s%% duty cycle)", formatNumber(cfg.DutyCycle*100))
	}
	return desc + phaseSuffix(cfg.Phase)
}

func shapeTitle(shape dsp.Shape) string {
	switch shape {
	case dsp.ShapeSine:
		return "Sine"
	case dsp.ShapeSawtooth:
		return "Sawtooth"
	case dsp.ShapeTriangle:
		return "Triangle"
	case dsp.ShapePulse:
		return "Pulse"
	default:
		return "Unknown"
	}
}

func nameOr(fallback string) string {
	if output != "" {
		return output
	}
	return fallback
}

func runWave(cmd *cobra.Command, args []string) error {
	shape, err := parseShape(args[0])
	if err != nil {
		return err
	}
	cfg, err := waveConfig()
	if err != nil {
		return err
	}

	buf, err := oscillator.Generate(shape, cfg)
	if err != nil {
		return err
	}

	name := nameOr(fmt.Sprintf("%s_%s_%ss", shape, fileNumber(cfg.Frequency), fileNumber(cfg.Length)))
	_, err = writeAndReport(cmd, buf, name, shapeDescription(shape, cfg))
	return err
}

func sweepConfig(seconds float64) (oscillator.SweepConfig, error) {
	cfg := oscillator.SweepConfig{
		StartFrequency: sweepFrom,
		EndFrequency:   sweepTo,
		Amplitude:      amplitude,
		Length:         seconds,
		SampleRate:     sampleRate,
	}
	if cfg.StartFrequency <= 0 || cfg.EndFrequency <= 0 {
		return cfg, fmt.Errorf("%w: sweep frequencies must be positive, got %g and %g",
			ErrInvalidConfig, cfg.StartFrequency, cfg.EndFrequency)
	}
	return cfg, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := sweepConfig(length)
	if err != nil {
		return err
	}

	buf := oscillator.Sweep(cfg)
	name := nameOr(fmt.Sprintf("sweep_%s_%s_%ss",
		fileNumber(cfg.StartFrequency), fileNumber(cfg.EndFrequency), fileNumber(cfg.Length)))
	desc := fmt.Sprintf("Sweep from %s Hz to %s Hz", formatNumber(cfg.StartFrequency), formatNumber(cfg.EndFrequency))
	_, err = writeAndReport(cmd, buf, name, desc)
	return err
}

func runNoise(cmd *cobra.Command, args []string) error {
	cfg := utility.NoiseConfig{
		Amplitude:  amplitude,
		Length:     length,
		SampleRate: sampleRate,
	}

	var buf []float32
	if noiseSeed != 0 {
		buf = utility.WhiteNoise(cfg, utility.NewSource(noiseSeed))
	} else {
		buf = utility.WhiteNoise(cfg, nil)
	}

	name := nameOr(fmt.Sprintf("noise_%ss", fileNumber(cfg.Length)))
	_, err := writeAndReport(cmd, buf, name, "White noise")
	return err
}

func adsrConfig() (envelope.ADSRConfig, error) {
	cfg := envelope.ADSRConfig{
		Attack:     attack,
		Decay:      decay,
		Sustain:    sustain,
		Release:    release,
		PressTime:  press,
		SampleRate: sampleRate,
	}
	if cfg.Sustain < 0 || cfg.Sustain > 1 {
		return cfg, fmt.Errorf("%w: sustain level must be in [0, 1], got %g", ErrInvalidConfig, cfg.Sustain)
	}
	return cfg, nil
}

func runNote(cmd *cobra.Command, args []string) error {
	shape, err := parseShape(args[0])
	if err != nil {
		return err
	}
	adsr, err := adsrConfig()
	if err != nil {
		return err
	}

	plan := envelope.Plan(adsr)
	if plan.Len() == 0 {
		return fmt.Errorf("%w: envelope is empty", ErrInvalidConfig)
	}
	if verbose {
		debug.Debug("%s", envelopeSummary(plan, dsp.SampleCount(adsr.PressTime, adsr.SampleRate)))
	}
	env := plan.Render()

	cfg, err := waveConfig()
	if err != nil {
		return err
	}
	cfg.Length = float64(len(env)) / float64(sampleRate)

	wave, err := oscillator.Generate(shape, cfg)
	if err != nil {
		return err
	}

	buf := mix.Multiply(wave, env)
	name := nameOr(fmt.Sprintf("note_%s_%s", shape, fileNumber(cfg.Frequency)))
	_, err = writeAndReport(cmd, buf, name, "Note: "+shapeDescription(shape, cfg))
	return err
}

// envelopeSummary describes the segment budget and which stage the key-up
// sample falls in.
func envelopeSummary(plan envelope.Segments, keyUp int) string {
	return fmt.Sprintf("envelope: %v %d, %v %d, %v %d, %v %d samples, level %.3f; key up at sample %d (%v)",
		envelope.StageAttack, plan.Attack,
		envelope.StageDecay, plan.Decay,
		envelope.StageSustain, plan.Sustain,
		envelope.StageRelease, plan.Release,
		plan.Level, keyUp, plan.StageAt(keyUp))
}

func runSplice(cmd *cobra.Command, args []string) error {
	sweep, err := sweepConfig(length)
	if err != nil {
		return err
	}

	tone := func(f float64) ([]float32, error) {
		cfg := oscillator.Config{
			Frequency:  f,
			Amplitude:  amplitude,
			Length:     length,
			SampleRate: sampleRate,
		}
		if err := validateWave(cfg); err != nil {
			return nil, err
		}
		return oscillator.Sine(cfg), nil
	}

	head, err := tone(sweep.StartFrequency)
	if err != nil {
		return err
	}
	tail, err := tone(sweep.EndFrequency)
	if err != nil {
		return err
	}

	buf := head
	for _, next := range [][]float32{oscillator.Sweep(sweep), tail} {
		buf, err = mix.SpliceAtZeroCrossing(buf, next)
		if err != nil {
			return err
		}
	}

	name := nameOr(fmt.Sprintf("splice_%s_%s", fileNumber(sweep.StartFrequency), fileNumber(sweep.EndFrequency)))
	desc := fmt.Sprintf("Splice from %s Hz to %s Hz", formatNumber(sweep.StartFrequency), formatNumber(sweep.EndFrequency))
	_, err = writeAndReport(cmd, buf, name, desc)
	return err
}

// inspection is one file of the visual-inspection battery.
type inspection struct {
	tag   string
	shape dsp.Shape
	duty  float64
}

var inspections = []inspection{
	{"sine", dsp.ShapeSine, dsp.DefaultDutyCycle},
	{"tri", dsp.ShapeTriangle, dsp.DefaultDutyCycle},
	{"saw", dsp.ShapeSawtooth, dsp.DefaultDutyCycle},
	{"pulse125", dsp.ShapePulse, 0.125},
	{"pulse25", dsp.ShapePulse, 0.25},
	{"pulse50", dsp.ShapePulse, 0.5},
	{"pulse75", dsp.ShapePulse, 0.75},
}

// phaseSeriesSteps is the number of tenth-turn steps in the sine phase series.
const phaseSeriesSteps = 10

func runInspect(cmd *cobra.Command, args []string) error {
	base, err := waveConfig()
	if err != nil {
		return err
	}

	for _, in := range inspections {
		cfg := base
		cfg.DutyCycle = in.duty
		buf, err := oscillator.Generate(in.shape, cfg)
		if err != nil {
			return err
		}
		name := inspectionName(prefix, in.tag, cfg.Frequency, cfg.Length)
		if _, err := writeAndReport(cmd, buf, name, shapeDescription(in.shape, cfg)); err != nil {
			return err
		}
	}

	for i := 0; i < phaseSeriesSteps; i++ {
		cfg := base
		cfg.Phase = float64(i) / phaseSeriesSteps
		name := fmt.Sprintf("spt_sine_%s_p%d_%ss", fileNumber(cfg.Frequency), i, fileNumber(cfg.Length))
		if _, err := writeAndReport(cmd, oscillator.Sine(cfg), name, shapeDescription(dsp.ShapeSine, cfg)); err != nil {
			return err
		}
	}
	return nil
}
