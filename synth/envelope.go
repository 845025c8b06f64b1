// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// Stage is the current state of an Envelope.
type Stage int

const (
	StageIdle Stage = iota
	StageAttack
	StageDecay
	StageSustain
	StageRelease
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageAttack:
		return "attack"
	case StageDecay:
		return "decay"
	case StageSustain:
		return "sustain"
	case StageRelease:
		return "release"
	default:
		return "unknown"
	}
}

const (
	// releaseFloor is the level under which Release snaps to Idle.
	releaseFloor = 0.001
	// attackTolerance absorbs accumulated rounding so that an attack of N
	// samples completes on sample N.
	attackTolerance = 1e-9
)

// Envelope is a linear-attack, linear-decay, exponential-release ADSR.
// Process must be called once per output sample.
type Envelope struct {
	attack     float64 // seconds
	decay      float64 // seconds
	sustain    float64 // level [0,1]
	release    float64 // seconds
	stage      Stage
	level      float64
	sampleRate float64
}

// NewEnvelope returns an idle envelope with the default ADSR times.
func NewEnvelope(sampleRate float64) *Envelope {
	return &Envelope{
		attack:     DefaultAttack,
		decay:      DefaultDecay,
		sustain:    DefaultSustain,
		release:    DefaultRelease,
		stage:      StageIdle,
		sampleRate: sampleRate,
	}
}

// Trigger restarts the envelope from zero in the attack stage.
func (e *Envelope) Trigger() {
	e.stage = StageAttack
	e.level = 0
}

// Release enters the release stage from whatever stage is current.
func (e *Envelope) Release() {
	e.stage = StageRelease
}

func (e *Envelope) Stage() Stage     { return e.stage }
func (e *Envelope) Level() float64   { return e.level }
func (e *Envelope) Attack() float64  { return e.attack }
func (e *Envelope) Decay() float64   { return e.decay }
func (e *Envelope) Sustain() float64 { return e.sustain }
func (e *Envelope) ReleaseTime() float64 {
	return e.release
}

// SetAttack sets the attack time in seconds.
func (e *Envelope) SetAttack(seconds float64) error {
	if !validTime(seconds) {
		return fmt.Errorf("attack %v: %w", seconds, ErrInvalidTime)
	}
	e.attack = seconds
	return nil
}

// SetDecay sets the decay time in seconds.
func (e *Envelope) SetDecay(seconds float64) error {
	if !validTime(seconds) {
		return fmt.Errorf("decay %v: %w", seconds, ErrInvalidTime)
	}
	e.decay = seconds
	return nil
}

// SetSustain sets the sustain level.
func (e *Envelope) SetSustain(level float64) error {
	if math.IsNaN(level) || level < 0 || level > 1 {
		return fmt.Errorf("sustain %v: %w", level, ErrInvalidSustain)
	}
	e.sustain = level
	return nil
}

// SetRelease sets the release time in seconds.
func (e *Envelope) SetRelease(seconds float64) error {
	if !validTime(seconds) {
		return fmt.Errorf("release %v: %w", seconds, ErrInvalidTime)
	}
	e.release = seconds
	return nil
}

// Process advances the state machine by one sample and returns the level.
func (e *Envelope) Process() float64 {
	switch e.stage {
	case StageIdle:
		e.level = 0
	case StageAttack:
		e.level += 1 / (e.attack * e.sampleRate)
		if e.level >= 1-attackTolerance {
			e.level = 1
			e.stage = StageDecay
		}
	case StageDecay:
		e.level -= (1 - e.sustain) / (e.decay * e.sampleRate)
		if e.level <= e.sustain {
			e.level = e.sustain
			e.stage = StageSustain
		}
	case StageSustain:
	case StageRelease:
		e.level -= e.level / (e.release * e.sampleRate)
		if e.level <= releaseFloor {
			e.level = 0
			e.stage = StageIdle
		}
	}

	return e.level
}

func validTime(seconds float64) bool {
	return seconds > 0 && !math.IsInf(seconds, 1)
}
