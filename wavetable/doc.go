// SPDX-License-Identifier: EPL-2.0

// Package wavetable builds synth.Wavetable values from audio files.
//
// Any format known to the loader's registry can serve as a table: the file
// is mixed to mono, truncated to MaxFrames and optionally normalised. The
// result is meant to hold a single cycle, since the oscillator plays the
// whole table once per period.
//
//	table, err := wavetable.NewLoader().Load("cycle.wav")
//	if err != nil {
//	    return err
//	}
//	err = engine.SetWavetable(2, table)
package wavetable
