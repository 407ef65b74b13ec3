package dissonance

import (
	"fmt"

	"github.com/RyanBlaney/sonido-dissonance/algorithms/common"
)

// Aggregation reduces the per-pair dissonance values of a chord to one score.
// It must accept an empty slice, which is what chords of fewer than two tones
// produce.
type Aggregation func(values []float64) float64

// Stock aggregations. Each returns 0 for an empty slice.
var (
	Sum    Aggregation = common.Sum
	Max    Aggregation = common.Max
	Mean   Aggregation = common.Mean
	RMS    Aggregation = common.RMS
	Median Aggregation = func(values []float64) float64 { return common.Percentile(values, 0.5) }
)

// DefaultAggregation is used when none is configured
var DefaultAggregation = Sum

// AggregationByName returns the stock aggregation called name
// ("sum", "max", "mean", "rms" or "median").
func AggregationByName(name string) (Aggregation, error) {
	switch name {
	case "sum":
		return Sum, nil
	case "max":
		return Max, nil
	case "mean":
		return Mean, nil
	case "rms":
		return RMS, nil
	case "median":
		return Median, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAggregation, name)
	}
}

// GetSupportedAggregations returns the names accepted by AggregationByName
func GetSupportedAggregations() []string {
	return []string{"sum", "max", "mean", "rms", "median"}
}
