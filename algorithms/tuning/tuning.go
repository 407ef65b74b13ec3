package tuning

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	// ReferenceFrequency is A4 in Hz
	ReferenceFrequency = 440.0

	// StepsPerOctave is the 12-TET division of the octave
	StepsPerOctave = 12.0

	// ReferenceMIDINote is the MIDI note number of A4
	ReferenceMIDINote = 69

	// exponentialDecay is the per-partial amplitude ratio of ProfileExponential
	exponentialDecay = 0.88
)

var (
	// ErrUnknownProfile reports an amplitude profile name that is not supported
	ErrUnknownProfile = errors.New("unknown amplitude profile")

	// ErrInvalidTone reports unusable HarmonicTone arguments
	ErrInvalidTone = errors.New("invalid harmonic tone")
)

// AmplitudeProfile selects how partial amplitudes fall off with partial number
type AmplitudeProfile string

const (
	ProfileExponential AmplitudeProfile = "exponential" // 0.88^(k-1), fundamental at 1.0
	ProfileInverse     AmplitudeProfile = "inverse"     // 1/k
	ProfileConstant    AmplitudeProfile = "constant"    // 1
)

// DefaultProfile is the amplitude profile used when none is selected
const DefaultProfile = ProfileInverse

// Amplitude returns the amplitude of partial k, counting the fundamental as 1
func (p AmplitudeProfile) Amplitude(k int) float64 {
	switch p {
	case ProfileExponential:
		return math.Pow(exponentialDecay, float64(k-1))
	case ProfileInverse:
		return 1 / float64(k)
	case ProfileConstant:
		return 1
	default:
		return math.NaN()
	}
}

// Valid reports whether p is a known profile
func (p AmplitudeProfile) Valid() bool {
	switch p {
	case ProfileExponential, ProfileInverse, ProfileConstant:
		return true
	}
	return false
}

// ProfileByName returns the profile called name
func ProfileByName(name string) (AmplitudeProfile, error) {
	p := AmplitudeProfile(name)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return p, nil
}

// GetSupportedProfiles returns the names accepted by ProfileByName
func GetSupportedProfiles() []string {
	return []string{string(ProfileExponential), string(ProfileInverse), string(ProfileConstant)}
}

// HarmonicTone builds harmonic tones on each base frequency. Both results have
// shape (len(baseFreqs), nPartials): row i holds the partial frequencies
// baseFreqs[i]*k for k = 1..nPartials and their amplitudes under profile.
func HarmonicTone(baseFreqs []float64, nPartials int, profile AmplitudeProfile) (freqs, amps *mat.Dense, err error) {
	if len(baseFreqs) == 0 {
		return nil, nil, fmt.Errorf("%w: no base frequencies", ErrInvalidTone)
	}
	if nPartials < 1 {
		return nil, nil, fmt.Errorf("%w: need at least one partial, got %d", ErrInvalidTone, nPartials)
	}
	if !profile.Valid() {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownProfile, string(profile))
	}

	rows := len(baseFreqs)
	freqs = mat.NewDense(rows, nPartials, nil)
	amps = mat.NewDense(rows, nPartials, nil)
	for i, base := range baseFreqs {
		for k := 1; k <= nPartials; k++ {
			freqs.Set(i, k-1, base*float64(k))
			amps.Set(i, k-1, profile.Amplitude(k))
		}
	}
	return freqs, amps, nil
}

// FreqToPitch converts a frequency to a pitch in steps relative to baseFreq
func FreqToPitch(freq, baseFreq, stepsPerOctave float64) float64 {
	return math.Log2(freq/baseFreq) * stepsPerOctave
}

// PitchToFreq converts a pitch in steps relative to baseFreq to a frequency
func PitchToFreq(pitch, baseFreq, stepsPerOctave float64) float64 {
	return math.Exp2(pitch/stepsPerOctave) * baseFreq
}

// FreqsToPitches applies FreqToPitch with the 12-TET A4 reference to each value
func FreqsToPitches(freqs []float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = FreqToPitch(f, ReferenceFrequency, StepsPerOctave)
	}
	return out
}

// PitchesToFreqs applies PitchToFreq with the 12-TET A4 reference to each value
func PitchesToFreqs(pitches []float64) []float64 {
	out := make([]float64, len(pitches))
	for i, p := range pitches {
		out[i] = PitchToFreq(p, ReferenceFrequency, StepsPerOctave)
	}
	return out
}

// MIDIToFreq converts a (possibly fractional) MIDI note number to Hz
func MIDIToFreq(note float64) float64 {
	return PitchToFreq(note-ReferenceMIDINote, ReferenceFrequency, StepsPerOctave)
}

// FreqToMIDI converts a frequency to a fractional MIDI note number
func FreqToMIDI(freq float64) float64 {
	return ReferenceMIDINote + FreqToPitch(freq, ReferenceFrequency, StepsPerOctave)
}
