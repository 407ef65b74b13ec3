// Command dissonant scores the sensory dissonance of chords built from
// harmonic tones.
//
//	dissonant score --model cook2002 --partials 6 261.63 329.63 392.00
//	dissonant pairs --partials 1 440 466.16
//	dissonant curve --from 1 --to 2.3 --steps 500 261.63
//	dissonant models
package main

import "github.com/spf13/cobra"

func main() {
	cobra.CheckErr(newRootCmd().Execute())
}
