// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"math/rand/v2"

	"github.com/ik5/subsynth/utils"
)

// Waveform selects the shape produced by an Oscillator.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSaw
	WaveSquare
	WaveTriangle
	WaveNoise
	// WaveWavetable plays one cycle stored in Oscillator.Table.
	WaveWavetable
)

func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSaw:
		return "saw"
	case WaveSquare:
		return "square"
	case WaveTriangle:
		return "triangle"
	case WaveNoise:
		return "noise"
	case WaveWavetable:
		return "wavetable"
	default:
		return "unknown"
	}
}

// Oscillator is a single phase-accumulating waveform generator.
//
// Tracking oscillators follow the played pitch (scaled by Detune) on every
// note-on; the others keep whatever Freq they were last given.
type Oscillator struct {
	Phase    float64 // [0,1)
	Freq     float64 // Hz
	Waveform Waveform
	Tracking bool
	Detune   float64 // frequency ratio applied when tracking
	Table    *Wavetable
}

// NewOscillator returns a static oscillator at DefaultOscillatorFreq.
func NewOscillator(w Waveform) Oscillator {
	return Oscillator{
		Freq:     DefaultOscillatorFreq,
		Waveform: w,
		Detune:   1,
	}
}

// Generate returns the value at the current phase and advances the phase by
// Freq/sampleRate. Only a single wrap is applied per call, so the phase stays
// in [0,1) as long as |Freq| < sampleRate.
func (o *Oscillator) Generate(sampleRate float64) float64 {
	out := o.shape()

	o.Phase += o.Freq / sampleRate
	if o.Phase >= 1.0 {
		o.Phase -= 1.0
	} else if o.Phase < 0 {
		o.Phase += 1.0
	}

	return out
}

func (o *Oscillator) shape() float64 {
	p := o.Phase

	switch o.Waveform {
	case WaveSine:
		return math.Sin(2 * math.Pi * p)
	case WaveSaw:
		return 1 - 2*p
	case WaveSquare:
		if p < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		if p < 0.5 {
			return 4*p - 1
		}
		return 3 - 4*p
	case WaveNoise:
		return rand.Float64()*2 - 1
	case WaveWavetable:
		return o.Table.At(p)
	default:
		return 0
	}
}

// Wavetable is a single waveform cycle sampled at arbitrary resolution.
type Wavetable struct {
	samples []float32
}

// NewWavetable copies samples into a new table.
func NewWavetable(samples []float32) (*Wavetable, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyWavetable
	}

	s := make([]float32, len(samples))
	copy(s, samples)

	return &Wavetable{samples: s}, nil
}

// Len is the number of samples in one cycle.
func (t *Wavetable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.samples)
}

// At returns the Catmull-Rom interpolated value at phase (expected in [0,1)).
// A nil table is silent.
func (t *Wavetable) At(phase float64) float64 {
	n := t.Len()
	if n == 0 {
		return 0
	}

	pos := phase * float64(n)
	i := int(math.Floor(pos))
	frac := float32(pos - float64(i))

	y0 := t.samples[wrapIndex(i-1, n)]
	y1 := t.samples[wrapIndex(i, n)]
	y2 := t.samples[wrapIndex(i+1, n)]
	y3 := t.samples[wrapIndex(i+2, n)]

	return float64(utils.CubicInterpolate(y0, y1, y2, y3, frac))
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
