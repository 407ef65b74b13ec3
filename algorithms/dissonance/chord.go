package dissonance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/RyanBlaney/sonido-dissonance/algorithms/common"
	"github.com/RyanBlaney/sonido-dissonance/logging"
)

// DefaultEpsilon is the amplitude below which a tone counts as silent and is
// left out of the chord
const DefaultEpsilon = 1e-6

// settings holds the chord evaluation configuration assembled from Options
type settings struct {
	model       Model
	modelName   string
	registry    *Registry
	aggregation Aggregation
	epsilon     float64
	logger      logging.Logger
}

// Option configures chord dissonance evaluation
type Option func(*settings)

// WithModel evaluates pairs with m directly, bypassing name lookup
func WithModel(m Model) Option {
	return func(s *settings) {
		if m != nil {
			s.model = m
			s.modelName = m.Name()
		}
	}
}

// WithModelName selects the model by registry name
func WithModelName(name string) Option {
	return func(s *settings) {
		s.model = nil
		s.modelName = name
	}
}

// WithRegistry resolves model names against r instead of DefaultRegistry
func WithRegistry(r *Registry) Option {
	return func(s *settings) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithAggregation sets the reduction applied to the per-pair values
func WithAggregation(agg Aggregation) Option {
	return func(s *settings) {
		if agg != nil {
			s.aggregation = agg
		}
	}
}

// WithEpsilon sets the silence threshold on absolute amplitude. Negative
// values are ignored.
func WithEpsilon(eps float64) Option {
	return func(s *settings) {
		if eps >= 0 {
			s.epsilon = eps
		}
	}
}

// WithLogger routes debug output to logger instead of the global logger
func WithLogger(logger logging.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{
		modelName:   DefaultModel,
		aggregation: DefaultAggregation,
		epsilon:     DefaultEpsilon,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *settings) resolveModel() (Model, error) {
	if s.model != nil {
		return s.model, nil
	}
	registry := s.registry
	if registry == nil {
		registry = DefaultRegistry()
	}
	return registry.Resolve(s.modelName)
}

func (s *settings) log() logging.Logger {
	if s.logger != nil {
		return s.logger
	}
	return logging.GetGlobalLogger()
}

// PairResult holds the intermediate state of a chord evaluation
type PairResult struct {
	Model string `json:"model"`

	// Retained tones in ascending frequency order
	Frequencies []float64 `json:"frequencies"`
	Amplitudes  []float64 `json:"amplitudes"`

	// Pair p joins tone Lo[p] with tone Hi[p], Lo[p] < Hi[p]
	Lo     []int     `json:"lo"`
	Hi     []int     `json:"hi"`
	Values []float64 `json:"values"`

	Filtered int `json:"filtered"` // tones dropped as silent
}

// NumPairs returns the number of evaluated pairs
func (r *PairResult) NumPairs() int {
	return len(r.Values)
}

// Dissonance computes the dissonance score of a chord given as parallel
// frequency and amplitude slices. Silent tones are dropped, the rest are
// sorted by frequency, every unordered pair of distinct tones is evaluated in
// one batch, and the values are reduced by the aggregation (Sum by default).
//
// Chords with fewer than two audible tones aggregate an empty slice.
func Dissonance(freqs, amps []float64, opts ...Option) (float64, error) {
	s := newSettings(opts)
	result, err := s.pairDissonances(freqs, amps)
	if err != nil {
		return 0, err
	}
	return s.aggregation(result.Values), nil
}

// DissonanceMatrix is Dissonance for chords stored as matrices, e.g. the
// (tones x partials) output of tuning.HarmonicTone. Both matrices are
// flattened in row-major order.
func DissonanceMatrix(freqs, amps mat.Matrix, opts ...Option) (float64, error) {
	return Dissonance(common.Flatten(freqs), common.Flatten(amps), opts...)
}

// PairDissonances runs the chord evaluation without the final reduction and
// returns every intermediate: retained tones, pair index and pair values.
func PairDissonances(freqs, amps []float64, opts ...Option) (*PairResult, error) {
	return newSettings(opts).pairDissonances(freqs, amps)
}

func (s *settings) pairDissonances(freqs, amps []float64) (*PairResult, error) {
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

	model, err := s.resolveModel()
	if err != nil {
		return nil, err
	}

	f, a := filterSilent(freqs, amps, s.epsilon)

	// ascending frequency so that every pair has f1 <= f2
	order := common.StableOrder(f)
	sortedAmps := make([]float64, len(a))
	common.Gather(sortedAmps, a, order)

	lo, hi := PairIndex(len(f))
	numPairs := len(lo)

	f1 := make([]float64, numPairs)
	f2 := make([]float64, numPairs)
	a1 := make([]float64, numPairs)
	a2 := make([]float64, numPairs)
	common.Gather(f1, f, lo)
	common.Gather(f2, f, hi)
	common.Gather(a1, sortedAmps, lo)
	common.Gather(a2, sortedAmps, hi)

	values := evaluate(model, numPairs, f1, f2, a1, a2)

	result := &PairResult{
		Model:       model.Name(),
		Frequencies: f,
		Amplitudes:  sortedAmps,
		Lo:          lo,
		Hi:          hi,
		Values:      values,
		Filtered:    len(freqs) - len(f),
	}

	logger := s.log()
	if enabled(logger, logging.DebugLevel) {
		logger.Debug("Evaluated chord pairs", logging.Fields{
			"model":    result.Model,
			"tones":    len(f),
			"filtered": result.Filtered,
			"pairs":    numPairs,
		})
	}

	return result, nil
}

// filterSilent copies the tones whose absolute amplitude reaches eps
func filterSilent(freqs, amps []float64, eps float64) ([]float64, []float64) {
	f := make([]float64, 0, len(freqs))
	a := make([]float64, 0, len(amps))
	for i, amp := range amps {
		if math.Abs(amp) >= eps {
			f = append(f, freqs[i])
			a = append(a, amp)
		}
	}
	return f, a
}

// PairIndex returns every index pair (i, j) with 0 <= i < j < n as two
// parallel slices, ordered by i then j. There are n*(n-1)/2 pairs.
func PairIndex(n int) (lo, hi []int) {
	if n < 2 {
		return []int{}, []int{}
	}
	numPairs := n * (n - 1) / 2
	lo = make([]int, 0, numPairs)
	hi = make([]int, 0, numPairs)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			lo = append(lo, i)
			hi = append(hi, j)
		}
	}
	return lo, hi
}

// enabled skips building log fields when the logger would drop them
func enabled(logger logging.Logger, level logging.Level) bool {
	if l, ok := logger.(interface{ Enabled(logging.Level) bool }); ok {
		return l.Enabled(level)
	}
	return true
}
