// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

const (
	StatusNoteOff byte = 128
	StatusNoteOn  byte = 144
)

const (
	a4Pitch = 69
	a4Freq  = 440.0
)

// MIDIEvent is a raw three byte channel message.
type MIDIEvent struct {
	Status byte
	Data1  byte
	Data2  byte
}

// NoteOn builds a note-on message on the first channel.
func NoteOn(pitch, velocity byte) MIDIEvent {
	return MIDIEvent{Status: StatusNoteOn, Data1: pitch, Data2: velocity}
}

// NoteOff builds a note-off message on the first channel.
func NoteOff(pitch byte) MIDIEvent {
	return MIDIEvent{Status: StatusNoteOff, Data1: pitch}
}

// ParseMIDI reads a message from its wire bytes. Anything past the third
// byte is ignored.
func ParseMIDI(b []byte) (MIDIEvent, error) {
	if len(b) < 3 {
		return MIDIEvent{}, fmt.Errorf("got %d bytes: %w", len(b), ErrShortMIDIMessage)
	}
	return MIDIEvent{Status: b[0], Data1: b[1], Data2: b[2]}, nil
}

func (ev MIDIEvent) String() string {
	switch ev.Status {
	case StatusNoteOn:
		return fmt.Sprintf("note-on %d vel %d", ev.Data1, ev.Data2)
	case StatusNoteOff:
		return fmt.Sprintf("note-off %d", ev.Data1)
	default:
		return fmt.Sprintf("midi %d %d %d", ev.Status, ev.Data1, ev.Data2)
	}
}

// PitchToFreq maps a MIDI pitch to equal-tempered Hz with A4 = 440.
func PitchToFreq(pitch byte) float64 {
	return a4Freq * math.Exp2((float64(pitch)-a4Pitch)/12)
}
