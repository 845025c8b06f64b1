// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultSampleRate = 44100.0
	DefaultChannels   = 2

	NumOscillators        = 5
	DefaultOscillatorFreq = 440.0
	// MixGain scales the oscillator sum. It is not 1/NumOscillators, so a
	// unison bank can exceed unity.
	MixGain = 0.5

	DefaultAttack  = 0.01
	DefaultDecay   = 0.1
	DefaultSustain = 0.5
	DefaultRelease = 0.2

	DefaultCutoff    = 1000.0
	DefaultResonance = 0.5
	MinCutoff        = 20.0
	MaxCutoff        = 20000.0

	// DefaultLFOFreq is the modulation rate a fresh parameter store starts at.
	DefaultLFOFreq = 2.4

	// SecondVoiceDetune is the ratio of the second tracking oscillator.
	SecondVoiceDetune = 1.01
)

// Config describes how an Engine is built.
type Config struct {
	SampleRate float64

	Attack  float64
	Decay   float64
	Sustain float64
	Release float64

	Bank [NumOscillators]Oscillator

	// ClearGateOnIdle drops the gate once the envelope returns to idle,
	// skipping the DSP while silent. When false the gate stays open after
	// the first note-on.
	ClearGateOnIdle bool

	// Params is shared with the control path. A fresh store is created when nil.
	Params *Params
}

// DefaultBank is sine and saw following the played pitch (the saw detuned
// by SecondVoiceDetune) over a static square, triangle and noise at 440 Hz.
func DefaultBank() [NumOscillators]Oscillator {
	bank := [NumOscillators]Oscillator{
		NewOscillator(WaveSine),
		NewOscillator(WaveSaw),
		NewOscillator(WaveSquare),
		NewOscillator(WaveTriangle),
		NewOscillator(WaveNoise),
	}
	bank[0].Tracking = true
	bank[1].Tracking = true
	bank[1].Detune = SecondVoiceDetune

	return bank
}

func DefaultConfig() Config {
	return Config{
		SampleRate: DefaultSampleRate,
		Attack:     DefaultAttack,
		Decay:      DefaultDecay,
		Sustain:    DefaultSustain,
		Release:    DefaultRelease,
		Bank:       DefaultBank(),
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if !(c.SampleRate > 0) || math.IsInf(c.SampleRate, 1) {
		errs = append(errs, fmt.Errorf("sample rate %v: %w", c.SampleRate, ErrInvalidSampleRate))
	}
	times := []struct {
		name string
		v    float64
	}{
		{"attack", c.Attack},
		{"decay", c.Decay},
		{"release", c.Release},
	}
	for _, t := range times {
		if !validTime(t.v) {
			errs = append(errs, fmt.Errorf("%s %v: %w", t.name, t.v, ErrInvalidTime))
		}
	}
	if !(c.Sustain >= 0 && c.Sustain <= 1) {
		errs = append(errs, fmt.Errorf("sustain %v: %w", c.Sustain, ErrInvalidSustain))
	}
	for i, osc := range c.Bank {
		if osc.Waveform == WaveWavetable && osc.Table == nil {
			errs = append(errs, fmt.Errorf("slot %d: %w", i, ErrEmptyWavetable))
		}
	}

	return errors.Join(errs...)
}
