// SPDX-License-Identifier: EPL-2.0

package keyboard

import (
	"strings"

	"github.com/ik5/subsynth/synth"
)

// noteKeys lays one chromatic octave over the home row, piano style: the
// white keys on a s d f g h j k, the black keys above them on w e t y u.
const noteKeys = "awsedftgyhujk"

const (
	DefaultBase = 60
	minBase     = 0
	maxBase     = 127 - (len(noteKeys) - 1)

	cutoffStep = 0.01
	lfoStep    = 0.05

	keyCtrlC = 3
)

// Sink receives note messages, typically a synth.Stream.
type Sink interface {
	Send(ev synth.MIDIEvent) bool
}

// Controller turns key presses into notes and parameter changes.
type Controller struct {
	sink   Sink
	params *synth.Params
	base   int
	held   byte
	hold   bool
}

func NewController(sink Sink, params *synth.Params) *Controller {
	return &Controller{
		sink:   sink,
		params: params,
		base:   DefaultBase,
	}
}

// Base is the MIDI pitch played by the 'a' key.
func (c *Controller) Base() int { return c.base }

// Held returns the sounding pitch, if any.
func (c *Controller) Held() (byte, bool) { return c.held, c.hold }

// HandleKey applies one key and reports false when the user asked to quit.
// Unmapped keys are ignored.
func (c *Controller) HandleKey(k byte) bool {
	if i := strings.IndexByte(noteKeys, k); i >= 0 {
		pitch := byte(c.base + i)
		c.sink.Send(synth.NoteOn(pitch, 100))
		c.held, c.hold = pitch, true
		return true
	}

	switch k {
	case ' ':
		if c.hold {
			c.sink.Send(synth.NoteOff(c.held))
			c.hold = false
		}
	case 'z':
		c.base = max(c.base-12, minBase)
	case 'x':
		c.base = min(c.base+12, maxBase)
	case '[':
		c.nudge(synth.ParamFilterCutoff, -cutoffStep)
	case ']':
		c.nudge(synth.ParamFilterCutoff, cutoffStep)
	case '-':
		c.nudge(synth.ParamLFOAmount, -lfoStep)
	case '=':
		c.nudge(synth.ParamLFOAmount, lfoStep)
	case 'q', keyCtrlC:
		if c.hold {
			c.sink.Send(synth.NoteOff(c.held))
			c.hold = false
		}
		return false
	}

	return true
}

func (c *Controller) nudge(id synth.ParamID, delta float64) {
	c.params.SetNormalized(id, c.params.Normalized(id)+delta)
}

// Help describes the key bindings.
func Help() string {
	return "a w s e d f t g y h u j k  play   space  release\n" +
		"z / x  octave down/up        [ / ]  filter cutoff\n" +
		"- / =  LFO amount            q      quit\n"
}
