// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"strings"
	"sync/atomic"
)

// ParamID addresses one of the automatable parameters.
type ParamID int

const (
	ParamOsc1Freq ParamID = iota
	ParamOsc2Freq
	ParamFilterCutoff
	ParamFilterResonance
	ParamLFOFreq
	ParamLFOAmount

	NumParams
)

type paramInfo struct {
	name  string
	unit  string
	scale float64 // engineering = normalized * scale
	def   float64 // default in engineering units
}

var paramTable = [NumParams]paramInfo{
	ParamOsc1Freq:        {name: "Osc1 Freq", unit: "Hz", scale: 20000, def: 440},
	ParamOsc2Freq:        {name: "Osc2 Freq", unit: "Hz", scale: 20000, def: 440},
	ParamFilterCutoff:    {name: "Filter Cutoff", unit: "Hz", scale: 20000, def: DefaultCutoff},
	ParamFilterResonance: {name: "Filter Resonance", scale: 1, def: DefaultResonance},
	ParamLFOFreq:         {name: "LFO Freq", unit: "Hz", scale: 20, def: DefaultLFOFreq},
	ParamLFOAmount:       {name: "LFO Amount", scale: 2, def: 0.5},
}

func (id ParamID) valid() bool { return id >= 0 && id < NumParams }

// String is the display name of the parameter, or "" for an unknown id.
func (id ParamID) String() string {
	if !id.valid() {
		return ""
	}
	return paramTable[id].name
}

// Unit is the engineering unit label ("" for dimensionless values).
func (id ParamID) Unit() string {
	if !id.valid() {
		return ""
	}
	return paramTable[id].unit
}

// Scale is the factor between the normalized and engineering views.
func (id ParamID) Scale() float64 {
	if !id.valid() {
		return 0
	}
	return paramTable[id].scale
}

// ParamByName resolves a display name, case-insensitively.
func ParamByName(name string) (ParamID, bool) {
	for id := range NumParams {
		if strings.EqualFold(paramTable[id].name, name) {
			return id, true
		}
	}
	return 0, false
}

// Params holds the automatable values, one atomic word each, so the render
// goroutine and a control goroutine can read and write without locking.
type Params struct {
	values [NumParams]atomic.Uint64
}

// NewParams returns a store holding the default values.
func NewParams() *Params {
	p := &Params{}
	for id := range NumParams {
		p.store(id, paramTable[id].def)
	}
	return p
}

func (p *Params) store(id ParamID, v float64) {
	p.values[id].Store(math.Float64bits(v))
}

// Value returns the engineering-unit value, or 0 for an unknown id.
func (p *Params) Value(id ParamID) float64 {
	if !id.valid() {
		return 0
	}
	return math.Float64frombits(p.values[id].Load())
}

// SetValue stores an engineering-unit value clamped to [0, scale].
func (p *Params) SetValue(id ParamID, v float64) {
	if !id.valid() || math.IsNaN(v) {
		return
	}
	p.store(id, math.Min(math.Max(v, 0), paramTable[id].scale))
}

// Normalized returns the value mapped to [0,1].
func (p *Params) Normalized(id ParamID) float64 {
	if !id.valid() {
		return 0
	}
	return p.Value(id) / paramTable[id].scale
}

// SetNormalized stores a [0,1] value; out of range input is clamped.
func (p *Params) SetNormalized(id ParamID, v float64) {
	if !id.valid() || math.IsNaN(v) {
		return
	}
	v = math.Min(math.Max(v, 0), 1)
	p.store(id, v*paramTable[id].scale)
}
