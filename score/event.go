// SPDX-License-Identifier: EPL-2.0

package score

import (
	"fmt"

	"github.com/ik5/subsynth/synth"
)

type EventKind int

const (
	// EventMIDI carries a channel message for Engine.HandleMIDI.
	EventMIDI EventKind = iota
	// EventParam sets a normalized parameter value.
	EventParam
)

// Event is one timed action, stamped with the frame it applies before.
type Event struct {
	Frame int64
	Kind  EventKind

	MIDI synth.MIDIEvent

	Param synth.ParamID
	Value float64
}

func (ev Event) String() string {
	if ev.Kind == EventParam {
		return fmt.Sprintf("@%d %s=%.4f", ev.Frame, ev.Param, ev.Value)
	}
	return fmt.Sprintf("@%d %s", ev.Frame, ev.MIDI)
}

// Apply performs the event on e.
func (ev Event) Apply(e *synth.Engine) {
	switch ev.Kind {
	case EventMIDI:
		e.HandleMIDI(ev.MIDI.Status, ev.MIDI.Data1, ev.MIDI.Data2)
	case EventParam:
		e.Params().SetNormalized(ev.Param, ev.Value)
	}
}

// End returns the frame of the last event, or 0 for none.
func End(events []Event) int64 {
	var end int64
	for _, ev := range events {
		end = max(end, ev.Frame)
	}
	return end
}
