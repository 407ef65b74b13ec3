package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-dissonance/algorithms/common"
	"github.com/RyanBlaney/sonido-dissonance/algorithms/dissonance"
	"github.com/RyanBlaney/sonido-dissonance/config"
	"github.com/RyanBlaney/sonido-dissonance/logging"
)

func (a *app) newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score BASE_FREQ...",
		Short: "Prints the dissonance score of a chord",
		Long: `Builds a harmonic tone on every base frequency and prints the aggregated
dissonance of all partials sounding together.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			freqs, amps, err := a.chord(args)
			if err != nil {
				return err
			}
			opts, err := a.cfg.Options(a.logger)
			if err != nil {
				return err
			}

			score, err := dissonance.DissonanceMatrix(freqs, amps, opts...)
			if err != nil {
				return err
			}

			a.logger.Debug("Scored chord", logging.Fields{
				"model":       a.cfg.Model,
				"aggregation": a.cfg.Aggregation,
				"score":       score,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", score)
			return nil
		},
	}
}

func (a *app) newPairsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pairs BASE_FREQ...",
		Short: "Prints the dissonance of every pair of partials",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			freqs, amps, err := a.chord(args)
			if err != nil {
				return err
			}
			opts, err := a.cfg.Options(a.logger)
			if err != nil {
				return err
			}

			result, err := dissonance.PairDissonances(common.Flatten(freqs), common.Flatten(amps), opts...)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "f1\tf2\ta1\ta2\tdissonance")
			for p, d := range result.Values {
				lo, hi := result.Lo[p], result.Hi[p]
				fmt.Fprintf(w, "%.3f\t%.3f\t%.4f\t%.4f\t%.6f\n",
					result.Frequencies[lo], result.Frequencies[hi],
					result.Amplitudes[lo], result.Amplitudes[hi], d)
			}
			return w.Flush()
		},
	}
}

func (a *app) newCurveCmd() *cobra.Command {
	var minimaOnly bool

	cmd := &cobra.Command{
		Use:   "curve BASE_FREQ...",
		Short: "Prints a dissonance curve over interval ratios",
		Long: `Sounds the chord against a copy of itself transposed by every ratio in
[--from, --to] and prints one "ratio<TAB>dissonance" line per point.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			freqs, amps, err := a.chord(args)
			if err != nil {
				return err
			}
			opts, err := a.cfg.Options(a.logger)
			if err != nil {
				return err
			}

			ratios, err := dissonance.RatioSpan(a.cfg.Curve.From, a.cfg.Curve.To, a.cfg.Curve.Steps)
			if err != nil {
				return err
			}
			curve, err := dissonance.Curve(common.Flatten(freqs), common.Flatten(amps), ratios, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if minimaOnly {
				for _, i := range dissonance.CurveMinima(curve) {
					fmt.Fprintf(out, "%.4f\t%.6f\n", ratios[i], curve[i])
				}
				return nil
			}
			for i, r := range ratios {
				fmt.Fprintf(out, "%.4f\t%.6f\n", r, curve[i])
			}
			return nil
		},
	}

	defaults := config.Default().Curve
	cmd.Flags().Float64("from", defaults.From, "lowest interval ratio")
	cmd.Flags().Float64("to", defaults.To, "highest interval ratio")
	cmd.Flags().Int("steps", defaults.Steps, "number of ratios")
	cmd.Flags().BoolVar(&minimaOnly, "minima", false, "print only the local minima")
	return cmd
}

func (a *app) newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "Lists the available dissonance models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range dissonance.SupportedModels() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
