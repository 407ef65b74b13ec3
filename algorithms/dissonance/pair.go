package dissonance

import (
	"fmt"

	"github.com/RyanBlaney/sonido-dissonance/algorithms/common"
)

// Pair computes the dissonance of each tone pair (f1[i], a1[i]) and
// (f2[i], a2[i]) under model. Every argument has length n or 1; length-1
// arguments are broadcast. The whole input is checked for negative values
// before the model runs. The result has the broadcast length n.
//
// f1 should not exceed f2 elementwise; the models are only meaningful for
// ascending pairs. Zero frequencies or zero amplitude sums are not rejected
// and yield NaN or Inf according to IEEE-754 arithmetic.
func Pair(f1, f2, a1, a2 []float64, model Model) ([]float64, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: nil model", ErrInvalidModel)
	}

	n, err := validatePairInputs(f1, f2, a1, a2)
	if err != nil {
		return nil, err
	}

	return evaluate(model, n, f1, f2, a1, a2), nil
}

// PairByName is Pair with the model resolved by name in registry. A nil
// registry means DefaultRegistry.
func PairByName(f1, f2, a1, a2 []float64, name string, registry *Registry) ([]float64, error) {
	n, err := validatePairInputs(f1, f2, a1, a2)
	if err != nil {
		return nil, err
	}

	if registry == nil {
		registry = DefaultRegistry()
	}
	model, err := registry.Resolve(name)
	if err != nil {
		return nil, err
	}

	return evaluate(model, n, f1, f2, a1, a2), nil
}

// PairScalar computes the dissonance of a single pair of tones
func PairScalar(f1, f2, a1, a2 float64, model Model) (float64, error) {
	d, err := Pair([]float64{f1}, []float64{f2}, []float64{a1}, []float64{a2}, model)
	if err != nil {
		return 0, err
	}
	return d[0], nil
}

func validatePairInputs(f1, f2, a1, a2 []float64) (int, error) {
	n, ok := common.BroadcastLength(len(f1), len(f2), len(a1), len(a2))
	if !ok {
		return 0, fmt.Errorf("%w: cannot broadcast lengths %d, %d, %d, %d",
			ErrLengthMismatch, len(f1), len(f2), len(a1), len(a2))
	}

	err := checkNonNegative(
		namedValues{"f1", f1},
		namedValues{"f2", f2},
		namedValues{"a1", a1},
		namedValues{"a2", a2},
	)
	if err != nil {
		return 0, err
	}

	return n, nil
}

type namedValues struct {
	name   string
	values []float64
}

// checkNonNegative reports the first argument holding negative values
func checkNonNegative(args ...namedValues) error {
	for _, arg := range args {
		if count := common.CountNegative(arg.values); count > 0 {
			return &InvalidInputError{Argument: arg.name, Count: count}
		}
	}
	return nil
}

// evaluate runs model over n pairs in a single batch
func evaluate(model Model, n int, f1, f2, a1, a2 []float64) []float64 {
	dst := make([]float64, n)
	if n == 0 {
		return dst
	}
	model.DissonancePair(dst,
		common.Broadcast(f1, n),
		common.Broadcast(f2, n),
		common.Broadcast(a1, n),
		common.Broadcast(a2, n),
	)
	return dst
}
