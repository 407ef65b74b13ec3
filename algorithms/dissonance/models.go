package dissonance

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Registered model names
const (
	ModelSethares1993   = "sethares1993"
	ModelVassilakis2001 = "vassilakis2001"
	ModelCook2002       = "cook2002"
	ModelCook2006       = "cook2006"
	ModelCook2009       = "cook2009"
)

// DefaultModel is used when no model is selected
const DefaultModel = ModelSethares1993

// SemitonesPerOctave is the 12-TET scaling applied to log2 frequency ratios
const SemitonesPerOctave = 12.0

// Model computes the dissonance of tone pairs. DissonancePair evaluates all
// pairs at once: dst, f1, f2, a1 and a2 have equal length and pair i is
// (f1[i], a1[i]) against (f2[i], a2[i]) with f1[i] <= f2[i]. Implementations
// must be stateless and safe for concurrent use.
type Model interface {
	Name() string
	DissonancePair(dst, f1, f2, a1, a2 []float64)
}

// Critical band constants shared by the Plomp-Levelt style curves
const (
	criticalBandA    = 3.5
	criticalBandB    = 5.75
	criticalBandDMax = 0.24
	criticalBandS1   = 0.0207
	criticalBandS2   = 18.96
)

// Sethares1993 is the critical band roughness model
//
//	d = a1*a2*(exp(-a*x) - exp(-b*x)), x = s*(f2-f1), s = d_max/(s1*f1+s2)
type Sethares1993 struct{}

func (Sethares1993) Name() string { return ModelSethares1993 }

func (Sethares1993) DissonancePair(dst, f1, f2, a1, a2 []float64) {
	criticalBandDistance(dst, f1, f2)
	expDifference(dst, dst, -criticalBandA, -criticalBandB)
	floats.Mul(dst, a1)
	floats.Mul(dst, a2)
}

// Vassilakis2001 extends the critical band curve with an amplitude
// fluctuation degree term
//
//	d = (a1*a2)^0.1 * (2*a2/(a1+a2))^3.11 * (exp(-a*x) - exp(-b*x))
//
// The published 0.5 factor is left out: each pair is counted once.
type Vassilakis2001 struct{}

const (
	vassilakisSPLExponent = 0.1
	vassilakisAFDExponent = 3.11
)

func (Vassilakis2001) Name() string { return ModelVassilakis2001 }

func (Vassilakis2001) DissonancePair(dst, f1, f2, a1, a2 []float64) {
	criticalBandDistance(dst, f1, f2)
	expDifference(dst, dst, -criticalBandA, -criticalBandB)
	for i := range dst {
		spl := a1[i] * a2[i]
		afDegree := 2 * a2[i] / (a1[i] + a2[i])
		dst[i] *= math.Pow(spl, vassilakisSPLExponent) * math.Pow(afDegree, vassilakisAFDExponent)
	}
}

// Cook2002 works on the 12-TET semitone distance x = 12*log2(f2/f1) and is
// scaled so that one semitone scores exactly 1.0
//
//	d = c*(exp(-a*x) - exp(-b*x)), c = 1/(exp(-a) - exp(-b))
//
// Amplitudes do not contribute. The paper prints c rounded to 3.53 and a
// natural logarithm; the exact constant and base 2 are used here.
type Cook2002 struct{}

const (
	cook2002A = 1.2
	cook2002B = 4.0
)

// cook2002Normalization is about 3.5350857058976985
var cook2002Normalization = 1 / (math.Exp(-cook2002A) - math.Exp(-cook2002B))

func (Cook2002) Name() string { return ModelCook2002 }

func (Cook2002) DissonancePair(dst, f1, f2, a1, a2 []float64) {
	semitoneDistance(dst, f1, f2)
	expDifference(dst, dst, -cook2002A, -cook2002B)
	floats.Scale(cook2002Normalization, dst)
}

// Cook family constants. The betas carry one more minus sign than printed in
// the papers; with it the curves peak at exactly 1.0.
const (
	cookBeta1 = -0.8
	cookBeta2 = -1.6
	cookBeta3 = 4.0
	cookGamma = 1.25
)

// Cook2006 evaluates
//
//	d = a1*a2*beta3*(exp(beta1*x^gamma) - exp(beta2*x^gamma)), x = 12*log2(f2/f1)
//
// The exponential difference is grouped in brackets; the published floor
// brackets are a printing error.
type Cook2006 struct{}

func (Cook2006) Name() string { return ModelCook2006 }

func (Cook2006) DissonancePair(dst, f1, f2, a1, a2 []float64) {
	semitoneDistance(dst, f1, f2)
	for i, x := range dst {
		dst[i] = math.Pow(x, cookGamma)
	}
	expDifference(dst, dst, cookBeta1, cookBeta2)
	floats.Scale(cookBeta3, dst)
	floats.Mul(dst, a1)
	floats.Mul(dst, a2)
}

// Cook2009 is Cook2006 without the exponent on the semitone distance
//
//	d = a1*a2*beta3*(exp(beta1*x) - exp(beta2*x))
type Cook2009 struct{}

func (Cook2009) Name() string { return ModelCook2009 }

func (Cook2009) DissonancePair(dst, f1, f2, a1, a2 []float64) {
	semitoneDistance(dst, f1, f2)
	expDifference(dst, dst, cookBeta1, cookBeta2)
	floats.Scale(cookBeta3, dst)
	floats.Mul(dst, a1)
	floats.Mul(dst, a2)
}

// criticalBandDistance writes s*(f2-f1) with s = d_max/(s1*f1+s2) into dst
func criticalBandDistance(dst, f1, f2 []float64) {
	for i := range dst {
		s := criticalBandDMax / (criticalBandS1*f1[i] + criticalBandS2)
		dst[i] = s * (f2[i] - f1[i])
	}
}

// semitoneDistance writes 12*log2(f2/f1) into dst
func semitoneDistance(dst, f1, f2 []float64) {
	floats.DivTo(dst, f2, f1)
	for i, ratio := range dst {
		dst[i] = math.Log2(ratio)
	}
	floats.Scale(SemitonesPerOctave, dst)
}

// expDifference writes exp(p*x) - exp(q*x) into dst. dst may alias x.
func expDifference(dst, x []float64, p, q float64) {
	for i, v := range x {
		dst[i] = math.Exp(p*v) - math.Exp(q*v)
	}
}
