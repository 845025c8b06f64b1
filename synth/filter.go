// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// LowPassFilter is a two-stage one-pole cascade.
//
// Cutoff is expected to be clamped to [MinCutoff, MaxCutoff] by the caller.
// Resonance is kept for the parameter surface but does not enter the
// coefficient computation.
type LowPassFilter struct {
	Cutoff    float64 // Hz
	Resonance float64 // [0,1)

	y1, y2 float64
}

// NewLowPassFilter returns a filter with the default cutoff and resonance.
func NewLowPassFilter() *LowPassFilter {
	return &LowPassFilter{
		Cutoff:    DefaultCutoff,
		Resonance: DefaultResonance,
	}
}

// Process filters one sample. The delay states carry over between calls.
func (f *LowPassFilter) Process(in, sampleRate float64) float64 {
	c := 2 * math.Pi * f.Cutoff / sampleRate
	k := c / (1 + c)

	out := in*k + f.y1*(1-k)
	f.y1 = out*k + f.y2*(1-k)
	f.y2 = out

	return out
}

// State returns the two delay values, mostly for inspection in tests.
func (f *LowPassFilter) State() (y1, y2 float64) {
	return f.y1, f.y2
}

// clampCutoff limits a modulated cutoff to the audible range.
func clampCutoff(hz float64) float64 {
	return math.Min(math.Max(hz, MinCutoff), MaxCutoff)
}
