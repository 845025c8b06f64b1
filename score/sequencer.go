// SPDX-License-Identifier: EPL-2.0

package score

import (
	"io"

	"github.com/ik5/subsynth/synth"
)

// Sequencer plays a sorted event list through an Engine as a mono
// audio.Source. Each event is applied before the frame it is stamped with,
// so block boundaries never shift its timing. The stream ends tail frames
// after the last event.
type Sequencer struct {
	engine *synth.Engine
	events []Event
	next   int
	frame  int64
	end    int64
}

func NewSequencer(e *synth.Engine, events []Event, tail int64) *Sequencer {
	return &Sequencer{
		engine: e,
		events: events,
		end:    End(events) + max(tail, 0),
	}
}

func (s *Sequencer) SampleRate() int { return int(s.engine.SampleRate()) }
func (s *Sequencer) Channels() int   { return 1 }
func (s *Sequencer) BufSize() int    { return 4096 }
func (s *Sequencer) Close() error    { return nil }

// Frame is the index of the next frame to be rendered.
func (s *Sequencer) Frame() int64 { return s.frame }

// Len is the total number of frames the sequence renders.
func (s *Sequencer) Len() int64 { return s.end }

func (s *Sequencer) ReadSamples(dst []float32) (int, error) {
	written := 0

	for written < len(dst) && s.frame < s.end {
		for s.next < len(s.events) && s.events[s.next].Frame <= s.frame {
			s.events[s.next].Apply(s.engine)
			s.next++
		}

		stop := s.end
		if s.next < len(s.events) {
			stop = min(stop, s.events[s.next].Frame)
		}
		n := int(min(stop-s.frame, int64(len(dst)-written)))

		for i := range dst[written : written+n] {
			dst[written+i] = s.engine.Next()
		}
		written += n
		s.frame += int64(n)
	}

	if s.frame >= s.end {
		// events stamped exactly at the end still reach the engine
		for s.next < len(s.events) {
			s.events[s.next].Apply(s.engine)
			s.next++
		}
		return written, io.EOF
	}

	return written, nil
}
