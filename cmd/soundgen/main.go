// Command soundgen writes phase-aligned test signals to WAV files.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/justyntemme/soundgen/pkg/dsp"
	"github.com/justyntemme/soundgen/pkg/framework/debug"
	"github.com/justyntemme/soundgen/pkg/wavfile"
)

var version = "0.1.0"

// ErrInvalidConfig is returned when flag values cannot describe a signal.
var ErrInvalidConfig = errors.New("soundgen: invalid configuration")

// Global flags
var (
	verbose    bool
	logLevel   string
	logFile    string
	sampleRate int
	length     float64
	amplitude  float64
	encoding   string
	outDir     string
	profile    bool
)

// resolved in PersistentPreRunE
var (
	outputEncoding wavfile.Encoding
	closeLog       func() error
)

func main() {
	err := rootCmd.Execute()
	if cerr := closeLogFile(); cerr != nil {
		fmt.Fprintf(os.Stderr, "soundgen: %v\n", cerr)
		err = cerr
	}
	if err != nil {
		os.Exit(1)
	}
}

// closeLogFile closes the file opened for --log-file, if any.
func closeLogFile() error {
	if closeLog == nil {
		return nil
	}
	err := closeLog()
	closeLog = nil
	if err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}

var rootCmd = &cobra.Command{
	Use:   "soundgen",
	Short: "Generate test waveforms, envelopes and sweeps as WAV files",
	Long: `soundgen renders phase-aligned periodic waveforms, noise, frequency
sweeps and ADSR-shaped notes to mono WAV files.

Sine, triangle, sawtooth and 50% pulse waves generated with the same
frequency and phase share their ascending zero crossings.

Examples:
  soundgen wave sine --freq 440 -o a4
  soundgen wave pulse --duty 0.25 --phase 0.4 --length 1
  soundgen note triangle --attack 0.05 --press 0.5 --release 1
  soundgen inspect --freq 111.1 --phase 0.4 --prefix p4n`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profile {
			fmt.Fprintln(cmd.OutOrStdout(), debug.ProfilingReport())
		}
	},
}

func init() {
	rootCmd.AddCommand(waveCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(noiseCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(spliceCmd)
	rootCmd.AddCommand(inspectCmd)

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log buffer statistics for every file written")
	flags.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error, off)")
	flags.StringVar(&logFile, "log-file", "", "Append log output to this file instead of stderr")
	flags.IntVarP(&sampleRate, "rate", "r", dsp.DefaultSampleRate, "Sample rate in Hz")
	flags.Float64VarP(&length, "length", "l", dsp.DefaultLength, "Length in seconds")
	flags.Float64VarP(&amplitude, "amplitude", "a", dsp.DefaultAmplitude, "Peak amplitude in [0, 1]")
	flags.StringVarP(&encoding, "encoding", "e", "float32", "Sample encoding (float32, pcm16)")
	flags.StringVarP(&outDir, "out-dir", "d", ".", "Directory for written files")
	flags.BoolVar(&profile, "profile", false, "Print a timing report after the command")
}

// setup validates the global flags and configures logging.
func setup(cmd *cobra.Command, args []string) error {
	if err := validateGlobals(); err != nil {
		return err
	}

	enc, err := wavfile.ParseEncoding(encoding)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	outputEncoding = enc

	if outDir, err = homedir.Expand(outDir); err != nil {
		return fmt.Errorf("%w: out-dir: %v", ErrInvalidConfig, err)
	}
	if logFile, err = homedir.Expand(logFile); err != nil {
		return fmt.Errorf("%w: log-file: %v", ErrInvalidConfig, err)
	}

	level, err := debug.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if verbose && level > debug.LogLevelDebug {
		level = debug.LogLevelDebug
	}

	if err := closeLogFile(); err != nil {
		return err
	}
	logger := debug.New(cmd.ErrOrStderr(), "soundgen", debug.DefaultFlags)
	if logFile != "" {
		fileLogger, f, err := debug.NewFileLogger(logFile, "soundgen", debug.DefaultFlags)
		if err != nil {
			return err
		}
		logger = fileLogger
		closeLog = f.Close
	}
	logger.SetLevel(level)
	debug.SetDefault(logger)

	debug.DefaultProfiler.Reset()
	return nil
}

func validateGlobals() error {
	switch {
	case sampleRate <= 0:
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidConfig, sampleRate)
	case length <= 0:
		return fmt.Errorf("%w: length must be positive, got %g", ErrInvalidConfig, length)
	case amplitude < 0 || amplitude > 1:
		return fmt.Errorf("%w: amplitude must be in [0, 1], got %g", ErrInvalidConfig, amplitude)
	}
	return nil
}
