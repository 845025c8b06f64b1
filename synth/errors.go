// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidChannels   = errors.New("channel count must be positive")
	ErrInvalidTime       = errors.New("envelope time must be positive")
	ErrInvalidSustain    = errors.New("sustain level must be within [0,1]")
	ErrEmptyWavetable    = errors.New("wavetable has no samples")
	ErrShortMIDIMessage  = errors.New("MIDI message must be 3 bytes")
	ErrInvalidSlot       = errors.New("oscillator slot out of range")
)
