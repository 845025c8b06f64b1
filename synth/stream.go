// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"io"
	"sync/atomic"
)

// DefaultQueueSize bounds the number of events a Stream buffers between blocks.
const DefaultQueueSize = 256

// Stream exposes an Engine as an endless audio.Source for live playback.
//
// Events posted with Send from any goroutine are applied at the start of the
// next ReadSamples call, before that block's audio is rendered. ReadSamples
// itself must only be called from the render goroutine.
type Stream struct {
	engine   *Engine
	channels int
	events   chan MIDIEvent
	closed   atomic.Bool
}

// NewStream wraps e. channels must be positive; queueSize <= 0 picks
// DefaultQueueSize.
func NewStream(e *Engine, channels, queueSize int) (*Stream, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	return &Stream{
		engine:   e,
		channels: channels,
		events:   make(chan MIDIEvent, queueSize),
	}, nil
}

func (s *Stream) SampleRate() int { return int(s.engine.SampleRate()) }
func (s *Stream) Channels() int   { return s.channels }
func (s *Stream) BufSize() int    { return cap(s.events) * s.channels }
func (s *Stream) Engine() *Engine { return s.engine }

// Close ends the stream; later reads return io.EOF.
func (s *Stream) Close() error {
	s.closed.Store(true)
	return nil
}

// Send queues ev without blocking. It reports false when the queue is full
// or the stream is closed.
func (s *Stream) Send(ev MIDIEvent) bool {
	if s.closed.Load() {
		return false
	}

	select {
	case s.events <- ev:
		return true
	default:
		return false
	}
}

// ReadSamples drains pending events and renders len(dst)/Channels() frames.
func (s *Stream) ReadSamples(dst []float32) (int, error) {
	if s.closed.Load() {
		return 0, io.EOF
	}

	for drained := false; !drained; {
		select {
		case ev := <-s.events:
			s.engine.HandleMIDI(ev.Status, ev.Data1, ev.Data2)
		default:
			drained = true
		}
	}

	return s.engine.RenderInterleaved(dst, s.channels)
}
