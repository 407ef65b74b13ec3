package tuning

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestHarmonicTone(t *testing.T) {
	tests := []struct {
		name      string
		base      []float64
		partials  int
		wantFreqs []float64
		wantAmps  []float64
	}{
		{
			name:      "single partial",
			base:      []float64{440},
			partials:  1,
			wantFreqs: []float64{440},
			wantAmps:  []float64{1},
		},
		{
			name:      "five partials",
			base:      []float64{440},
			partials:  5,
			wantFreqs: []float64{440, 880, 1320, 1760, 2200},
			wantAmps:  []float64{1, 0.5, 0.33333333, 0.25, 0.2},
		},
		{
			name:      "two tones one partial",
			base:      []float64{440, 441},
			partials:  1,
			wantFreqs: []float64{440, 441},
			wantAmps:  []float64{1, 1},
		},
		{
			name:     "two tones five partials",
			base:     []float64{440, 441},
			partials: 5,
			wantFreqs: []float64{
				440, 880, 1320, 1760, 2200,
				441, 882, 1323, 1764, 2205,
			},
			wantAmps: []float64{
				1, 0.5, 0.33333333, 0.25, 0.2,
				1, 0.5, 0.33333333, 0.25, 0.2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			freqs, amps, err := HarmonicTone(tt.base, tt.partials, ProfileInverse)
			require.NoError(t, err)

			r, c := freqs.Dims()
			assert.Equal(t, len(tt.base), r)
			assert.Equal(t, tt.partials, c)

			wantFreqs := mat.NewDense(r, c, tt.wantFreqs)
			wantAmps := mat.NewDense(r, c, tt.wantAmps)
			assert.True(t, mat.EqualApprox(wantFreqs, freqs, 1e-8))
			assert.True(t, mat.EqualApprox(wantAmps, amps, 1e-8))
		})
	}
}

func TestHarmonicToneProfiles(t *testing.T) {
	_, amps, err := HarmonicTone([]float64{100}, 3, ProfileExponential)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 0.88, 0.7744}, mat.Row(nil, 0, amps), 1e-12)

	_, amps, err = HarmonicTone([]float64{100}, 3, ProfileConstant)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, mat.Row(nil, 0, amps))
}

func TestHarmonicToneErrors(t *testing.T) {
	_, _, err := HarmonicTone(nil, 3, ProfileInverse)
	assert.True(t, errors.Is(err, ErrInvalidTone))

	_, _, err = HarmonicTone([]float64{440}, 0, ProfileInverse)
	assert.True(t, errors.Is(err, ErrInvalidTone))

	_, _, err = HarmonicTone([]float64{440}, 2, AmplitudeProfile("sawtooth"))
	assert.True(t, errors.Is(err, ErrUnknownProfile))
}

func TestProfileByName(t *testing.T) {
	for _, name := range GetSupportedProfiles() {
		p, err := ProfileByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, string(p))
	}

	_, err := ProfileByName("Inverse")
	assert.True(t, errors.Is(err, ErrUnknownProfile))
}

func TestPitchConversion(t *testing.T) {
	assert.InDelta(t, 0.0, FreqToPitch(440, ReferenceFrequency, StepsPerOctave), 1e-12)
	assert.InDelta(t, 12.0, FreqToPitch(880, ReferenceFrequency, StepsPerOctave), 1e-12)
	assert.InDelta(t, -12.0, FreqToPitch(220, ReferenceFrequency, StepsPerOctave), 1e-12)
	assert.InDelta(t, 1.0, FreqToPitch(466.1637615180899, ReferenceFrequency, StepsPerOctave), 1e-12)

	assert.InDelta(t, 880.0, PitchToFreq(12, ReferenceFrequency, StepsPerOctave), 1e-9)
	assert.InDelta(t, 261.6255653005986, PitchToFreq(-9, ReferenceFrequency, StepsPerOctave), 1e-9)

	// quarter tones with a 24 step octave
	assert.InDelta(t, 2.0, FreqToPitch(PitchToFreq(2, 440, 24), 440, 24), 1e-12)

	pitches := []float64{-9, 0, 3.5, 12}
	assert.InDeltaSlice(t, pitches, FreqsToPitches(PitchesToFreqs(pitches)), 1e-9)
}

func TestMIDIConversion(t *testing.T) {
	assert.InDelta(t, 440.0, MIDIToFreq(69), 1e-9)
	assert.InDelta(t, 261.6255653005986, MIDIToFreq(60), 1e-9)
	assert.InDelta(t, 60.0, FreqToMIDI(261.6255653005986), 1e-9)
}
