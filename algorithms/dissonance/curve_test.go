package dissonance

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/RyanBlaney/sonido-dissonance/algorithms/tuning"
)

func TestCurvePureTone(t *testing.T) {
	ratios := []float64{1, math.Exp2(1.0 / 12), math.Exp2(4.0 / 12)}

	curve, err := Curve([]float64{440}, []float64{1}, ratios, WithModelName(ModelCook2002))
	require.NoError(t, err)
	require.Len(t, curve, 3)

	assert.InDelta(t, 0.0, curve[0], 1e-12)
	assert.InDelta(t, 1.0, curve[1], 1e-12)
	assert.Less(t, curve[2], curve[1])
}

func TestCurveMatchesDissonance(t *testing.T) {
	freqs := []float64{261.63, 523.26, 784.89}
	amps := []float64{1, 0.5, 0.33}
	ratios := []float64{1.2, 1.5}

	curve, err := Curve(freqs, amps, ratios, WithModelName(ModelVassilakis2001))
	require.NoError(t, err)

	for i, r := range ratios {
		combinedFreqs := append(append([]float64{}, freqs...), freqs[0]*r, freqs[1]*r, freqs[2]*r)
		combinedAmps := append(append([]float64{}, amps...), amps...)

		want, err := Dissonance(combinedFreqs, combinedAmps, WithModelName(ModelVassilakis2001))
		require.NoError(t, err)
		assert.InDelta(t, want, curve[i], 1e-12)
	}

	assert.Equal(t, []float64{261.63, 523.26, 784.89}, freqs)
}

func TestCurveHarmonicToneConsonances(t *testing.T) {
	freqs, amps, err := tuning.HarmonicTone([]float64{261.63}, 6, tuning.ProfileExponential)
	require.NoError(t, err)

	ratios := []float64{1.06, 1.46, 1.5, 1.54, 1.94, 2.0, 2.06}
	curve, err := Curve(mat.Row(nil, 0, freqs), mat.Row(nil, 0, amps), ratios)
	require.NoError(t, err)

	// fifth and octave sit in dips of the curve
	assert.Less(t, curve[2], curve[1])
	assert.Less(t, curve[2], curve[3])
	assert.Less(t, curve[5], curve[4])
	assert.Less(t, curve[5], curve[6])
	assert.Greater(t, curve[0], curve[2])
}

func TestCurveErrors(t *testing.T) {
	_, err := Curve([]float64{440}, []float64{1}, []float64{1, 0})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = Curve([]float64{440}, []float64{1}, []float64{math.NaN()})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = Curve([]float64{-440}, []float64{1}, []float64{1.5})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = Curve([]float64{440}, []float64{1, 1}, []float64{1.5})
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	_, err = Curve([]float64{440}, []float64{1}, []float64{1.5}, WithModelName("nope"))
	assert.True(t, errors.Is(err, ErrUnknownModel))
}

func TestRatioSpan(t *testing.T) {
	ratios, err := RatioSpan(1, 2, 5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1.25, 1.5, 1.75, 2}, ratios, 1e-12)

	_, err = RatioSpan(1, 2, 1)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = RatioSpan(0, 2, 10)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = RatioSpan(2, 1, 10)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestCurveMinima(t *testing.T) {
	assert.Equal(t, []int{2, 5}, CurveMinima([]float64{3, 2, 1, 2, 1.5, 0.5, 0.5, 1}))
	assert.Empty(t, CurveMinima([]float64{1, 2, 3}))
	assert.Empty(t, CurveMinima(nil))
}
