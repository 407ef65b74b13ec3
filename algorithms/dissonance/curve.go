package dissonance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/sonido-dissonance/logging"
)

// Curve computes a dissonance curve: for every ratio r the chord is sounded
// together with a copy of itself transposed by r (all frequencies times r)
// and the combined chord is scored. The model and registry are resolved once
// and the result has one value per ratio.
func Curve(freqs, amps, ratios []float64, opts ...Option) ([]float64, error) {
	s := newSettings(opts)

	if len(freqs) != len(amps) {
		return nil, fmt.Errorf("%w: %d frequencies, %d amplitudes",
			ErrLengthMismatch, len(freqs), len(amps))
	}
	err := checkNonNegative(
		namedValues{"frequencies", freqs},
		namedValues{"amplitudes", amps},
	)
	if err != nil {
		return nil, err
	}
	for i, r := range ratios {
		if !(r > 0) || math.IsInf(r, 1) {
			return nil, fmt.Errorf("%w: ratio %d is %v, want a positive finite value",
				ErrInvalidInput, i, r)
		}
	}

	model, err := s.resolveModel()
	if err != nil {
		return nil, err
	}
	// pinned so each point skips the lookup
	s.model = model

	n := len(freqs)
	combinedFreqs := make([]float64, 2*n)
	combinedAmps := make([]float64, 2*n)
	copy(combinedFreqs, freqs)
	copy(combinedAmps, amps)
	copy(combinedAmps[n:], amps)

	curve := make([]float64, len(ratios))
	for i, r := range ratios {
		floats.ScaleTo(combinedFreqs[n:], r, freqs)

		result, err := s.pairDissonances(combinedFreqs, combinedAmps)
		if err != nil {
			return nil, err
		}
		curve[i] = s.aggregation(result.Values)
	}

	logger := s.log()
	if enabled(logger, logging.DebugLevel) {
		logger.Debug("Computed dissonance curve", logging.Fields{
			"model":  model.Name(),
			"points": len(ratios),
			"tones":  n,
		})
	}

	return curve, nil
}

// RatioSpan returns n interval ratios evenly spaced from lo to hi inclusive
func RatioSpan(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidInput, n)
	}
	if !(lo > 0) || !(hi >= lo) || math.IsInf(hi, 1) {
		return nil, fmt.Errorf("%w: ratio range [%v, %v]", ErrInvalidInput, lo, hi)
	}
	return floats.Span(make([]float64, n), lo, hi), nil
}

// CurveMinima returns the indexes of local minima of curve, the consonant
// intervals of a dissonance curve. Plateaus report their first index.
func CurveMinima(curve []float64) []int {
	var minima []int
	for i := 1; i < len(curve)-1; i++ {
		if curve[i] >= curve[i-1] || curve[i] > curve[i+1] {
			continue
		}
		minima = append(minima, i)
	}
	return minima
}
