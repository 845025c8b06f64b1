// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// LFO is a free-running sine used only to modulate the filter cutoff.
type LFO struct {
	Phase float64 // [0,1)
	Freq  float64 // Hz
}

// Process returns the current value in [-1,1] and advances the phase.
func (l *LFO) Process(sampleRate float64) float64 {
	out := math.Sin(2 * math.Pi * l.Phase)

	l.Phase += l.Freq / sampleRate
	if l.Phase >= 1.0 {
		l.Phase -= 1.0
	} else if l.Phase < 0 {
		l.Phase += 1.0
	}

	return out
}
