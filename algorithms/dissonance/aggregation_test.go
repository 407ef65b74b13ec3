package dissonance

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregationByName(t *testing.T) {
	values := []float64{0.2, 0.9, 0.4}

	tests := []struct {
		name string
		want float64
	}{
		{"sum", 1.5},
		{"max", 0.9},
		{"mean", 0.5},
		{"rms", math.Sqrt((0.04 + 0.81 + 0.16) / 3)},
		{"median", 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg, err := AggregationByName(tt.name)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, agg(values), 1e-12)
			assert.Equal(t, 0.0, agg(nil))
		})
	}

	_, err := AggregationByName("product")
	assert.True(t, errors.Is(err, ErrUnknownAggregation))
}

func TestSupportedAggregationsResolve(t *testing.T) {
	for _, name := range GetSupportedAggregations() {
		_, err := AggregationByName(name)
		assert.NoError(t, err, name)
	}
}

func TestCustomAggregation(t *testing.T) {
	freqs := []float64{440, 460, 480}
	amps := []float64{1, 1, 1}

	weighted := func(values []float64) float64 {
		total := 0.0
		for i, v := range values {
			total += float64(i+1) * v
		}
		return total
	}

	result, err := PairDissonances(freqs, amps)
	require.NoError(t, err)
	want := result.Values[0] + 2*result.Values[1] + 3*result.Values[2]

	got, err := Dissonance(freqs, amps, WithAggregation(weighted))
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-15)

	// a nil aggregation leaves the default in place
	sum, err := Dissonance(freqs, amps, WithAggregation(nil))
	require.NoError(t, err)
	assert.InDelta(t, Sum(result.Values), sum, 1e-15)
}
