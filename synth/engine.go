// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"

	"github.com/ik5/subsynth/audio"
	"github.com/sirupsen/logrus"
)

// Engine is the monophonic voice: a fixed oscillator bank through one
// envelope and one LFO-modulated low-pass filter.
//
// An Engine is owned by a single render goroutine. HandleMIDI, Next, Process
// and RenderInterleaved must not be called concurrently. Only the Params store
// may be touched from other goroutines.
type Engine struct {
	sampleRate float64

	oscillators [NumOscillators]Oscillator
	envelope    Envelope
	filter      LowPassFilter
	lfo         LFO

	note   byte
	noteOn bool

	clearGateOnIdle bool
	params          *Params
}

// New builds an Engine from cfg.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "synth.New",
			"error":    err.Error(),
		}).Error("Engine configuration rejected")
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}

	params := cfg.Params
	if params == nil {
		params = NewParams()
	}

	e := &Engine{
		sampleRate:      cfg.SampleRate,
		oscillators:     cfg.Bank,
		envelope:        *NewEnvelope(cfg.SampleRate),
		filter:          *NewLowPassFilter(),
		lfo:             LFO{Freq: params.Value(ParamLFOFreq)},
		clearGateOnIdle: cfg.ClearGateOnIdle,
		params:          params,
	}
	e.envelope.attack = cfg.Attack
	e.envelope.decay = cfg.Decay
	e.envelope.sustain = cfg.Sustain
	e.envelope.release = cfg.Release

	logrus.WithFields(logrus.Fields{
		"function":    "synth.New",
		"sample_rate": cfg.SampleRate,
		"gate_clear":  cfg.ClearGateOnIdle,
	}).Debug("Engine created")

	return e, nil
}

func (e *Engine) SampleRate() float64 { return e.sampleRate }
func (e *Engine) Params() *Params     { return e.params }
func (e *Engine) Note() byte          { return e.note }

// NoteOn reports the gate. Unless ClearGateOnIdle is set it stays true
// forever after the first note-on.
func (e *Engine) NoteOn() bool { return e.noteOn }

func (e *Engine) Envelope() *Envelope    { return &e.envelope }
func (e *Engine) Filter() *LowPassFilter { return &e.filter }
func (e *Engine) LFO() *LFO              { return &e.lfo }

// Oscillator returns the oscillator in slot, or nil when slot is out of range.
func (e *Engine) Oscillator(slot int) *Oscillator {
	if slot < 0 || slot >= NumOscillators {
		return nil
	}
	return &e.oscillators[slot]
}

// SetWavetable switches slot to the wavetable waveform playing table.
func (e *Engine) SetWavetable(slot int, table *Wavetable) error {
	osc := e.Oscillator(slot)
	if osc == nil {
		return fmt.Errorf("slot %d: %w", slot, ErrInvalidSlot)
	}
	if table == nil {
		return fmt.Errorf("slot %d: %w", slot, ErrEmptyWavetable)
	}
	osc.Waveform = WaveWavetable
	osc.Table = table
	return nil
}

// HandleMIDI applies one channel message. Note-off only releases when it
// matches the sounding note; statuses other than note-on/off are ignored.
func (e *Engine) HandleMIDI(status, data1, data2 byte) {
	switch status {
	case StatusNoteOff:
		if data1 == e.note {
			e.envelope.Release()
		}
	case StatusNoteOn:
		e.note = data1
		freq := PitchToFreq(data1)
		for i := range e.oscillators {
			if e.oscillators[i].Tracking {
				e.oscillators[i].Freq = freq * e.oscillators[i].Detune
			}
		}
		e.envelope.Trigger()
		e.noteOn = true
	}
}

// HandleEvents applies events in order.
func (e *Engine) HandleEvents(events []MIDIEvent) {
	for _, ev := range events {
		e.HandleMIDI(ev.Status, ev.Data1, ev.Data2)
	}
}

// mix sums the bank scaled by MixGain.
func (e *Engine) mix() float64 {
	var sum float64
	for i := range e.oscillators {
		sum += e.oscillators[i].Generate(e.sampleRate)
	}
	return sum * MixGain
}

// Next renders one mono sample. With the gate closed the result is exactly
// zero and no DSP state advances.
func (e *Engine) Next() float32 {
	if !e.noteOn {
		return 0
	}

	out := e.mix()
	out *= e.envelope.Process()

	e.lfo.Freq = e.params.Value(ParamLFOFreq)
	mod := e.lfo.Process(e.sampleRate)
	cutoff := e.params.Value(ParamFilterCutoff) * (1 + mod*e.params.Value(ParamLFOAmount))
	e.filter.Cutoff = clampCutoff(cutoff)
	e.filter.Resonance = e.params.Value(ParamFilterResonance)

	out = e.filter.Process(out, e.sampleRate)

	if e.clearGateOnIdle && e.envelope.stage == StageIdle {
		e.noteOn = false
	}

	return float32(out)
}

// Process handles events and then fills every output channel with the same
// mono signal. The block length is the length of the longest channel; a
// shorter channel receives only the frames that fit.
func (e *Engine) Process(events []MIDIEvent, outputs [][]float32) {
	e.HandleEvents(events)

	frames := 0
	for _, out := range outputs {
		frames = max(frames, len(out))
	}

	for i := range frames {
		s := e.Next()
		for _, out := range outputs {
			if i < len(out) {
				out[i] = s
			}
		}
	}
}

// RenderInterleaved fills dst with len(dst)/channels frames of interleaved
// audio and returns the number of values written.
func (e *Engine) RenderInterleaved(dst []float32, channels int) (int, error) {
	if channels <= 0 {
		return 0, ErrInvalidChannels
	}
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	for f := 0; f < len(dst); f += channels {
		s := e.Next()
		for ch := range channels {
			dst[f+ch] = s
		}
	}

	return len(dst), nil
}
