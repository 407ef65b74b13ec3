package dissonance

import (
	"fmt"
	"testing"

	"github.com/RyanBlaney/sonido-dissonance/algorithms/common"
	"github.com/RyanBlaney/sonido-dissonance/algorithms/tuning"
)

func BenchmarkDissonance(b *testing.B) {
	for _, tones := range []int{3, 12, 48} {
		bases := make([]float64, tones)
		for i := range bases {
			bases[i] = tuning.MIDIToFreq(48 + float64(i))
		}
		freqMat, ampMat, err := tuning.HarmonicTone(bases, 8, tuning.ProfileExponential)
		if err != nil {
			b.Fatal(err)
		}
		freqs, amps := common.Flatten(freqMat), common.Flatten(ampMat)

		for _, name := range SupportedModels() {
			b.Run(fmt.Sprintf("%s/partials=%d", name, len(freqs)), func(b *testing.B) {
				opt := WithModelName(name)
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := Dissonance(freqs, amps, opt); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
