package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/mat"

	"github.com/RyanBlaney/sonido-dissonance/algorithms/tuning"
	"github.com/RyanBlaney/sonido-dissonance/config"
	"github.com/RyanBlaney/sonido-dissonance/logging"
)

// app carries state shared by the subcommands of one invocation
type app struct {
	configPath string
	cfg        *config.Config
	logger     logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "dissonant",
		Short: "Sensory dissonance of chords",
		Long: `Scores how dissonant a chord of harmonic tones sounds under the
sethares1993, vassilakis2001, cook2002, cook2006 and cook2009 models.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	defaults := config.Default()
	flags.StringVar(&a.configPath, "config", "", "YAML or JSON config file")
	flags.String("model", defaults.Model, "dissonance model")
	flags.String("aggregation", defaults.Aggregation, "pair reduction: sum, max, mean, rms or median")
	flags.Int("partials", defaults.Partials, "partials per harmonic tone")
	flags.String("profile", defaults.Profile, "partial amplitudes: exponential, inverse or constant")
	flags.Float64("epsilon", defaults.Epsilon, "amplitude below which a partial is ignored")
	flags.String("log-level", defaults.LogLevel, "debug, info, warn or error")

	root.AddCommand(
		a.newScoreCmd(),
		a.newPairsCmd(),
		a.newCurveCmd(),
		a.newModelsCmd(),
	)
	return root
}

// setup loads the config file, applies explicitly set flags on top and
// builds the logger. Log output goes to stderr so results stay parseable.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	overrideString(flags, "model", &cfg.Model)
	overrideString(flags, "aggregation", &cfg.Aggregation)
	overrideInt(flags, "partials", &cfg.Partials)
	overrideString(flags, "profile", &cfg.Profile)
	overrideFloat(flags, "epsilon", &cfg.Epsilon)
	overrideString(flags, "log-level", &cfg.LogLevel)
	overrideFloat(flags, "from", &cfg.Curve.From)
	overrideFloat(flags, "to", &cfg.Curve.To)
	overrideInt(flags, "steps", &cfg.Curve.Steps)

	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.NewDefaultLoggerWithWriters(cmd.ErrOrStderr(), cmd.ErrOrStderr())
	logger.SetLevel(level)

	a.cfg = cfg
	a.logger = logger.WithFields(logging.Fields{"command": cmd.Name()})
	return nil
}

// chord builds the flattened partials of harmonic tones on the given base
// frequencies
func (a *app) chord(args []string) (freqs, amps *mat.Dense, err error) {
	bases, err := parseFrequencies(args)
	if err != nil {
		return nil, nil, err
	}
	profile, err := tuning.ProfileByName(a.cfg.Profile)
	if err != nil {
		return nil, nil, err
	}
	return tuning.HarmonicTone(bases, a.cfg.Partials, profile)
}

func parseFrequencies(args []string) ([]float64, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("at least one base frequency is required")
	}
	freqs := make([]float64, len(args))
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid frequency %q: %w", arg, err)
		}
		freqs[i] = f
	}
	return freqs, nil
}

func overrideString(flags *pflag.FlagSet, name string, dst *string) {
	if flags.Changed(name) {
		*dst, _ = flags.GetString(name)
	}
}

func overrideInt(flags *pflag.FlagSet, name string, dst *int) {
	if flags.Changed(name) {
		*dst, _ = flags.GetInt(name)
	}
}

func overrideFloat(flags *pflag.FlagSet, name string, dst *float64) {
	if flags.Changed(name) {
		*dst, _ = flags.GetFloat64(name)
	}
}
