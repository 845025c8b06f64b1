// SPDX-License-Identifier: EPL-2.0

package score

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/ik5/subsynth/synth"
	"github.com/sirupsen/logrus"
	lua "github.com/yuin/gopher-lua"
)

const (
	DefaultVelocity = 100
	DefaultTempo    = 120.0
)

// evaluator holds the script's time cursor and the events emitted so far.
type evaluator struct {
	sampleRate float64
	now        float64
	bpm        float64
	events     []Event
}

// Eval runs a score script and returns its events sorted by frame. Events
// sharing a frame keep the order the script emitted them in.
//
// Scripts see these globals in addition to the base, string, table and math
// libraries:
//
//	note_on(pitch [, velocity])   note_off(pitch)
//	note(pitch, seconds [, velocity])   -- plays and advances time
//	wait(seconds)                 now() -> seconds
//	at(seconds)                   -- moves the cursor to an absolute time
//	param(id_or_name, normalized) midi(status, data1, data2)
//	tempo(bpm)                    beats(n) -> seconds
func Eval(ctx context.Context, script string, sampleRate float64) ([]Event, error) {
	return run(ctx, sampleRate, "script", func(L *lua.LState) error {
		return L.DoString(script)
	})
}

// EvalFile is Eval for a script stored on disk.
func EvalFile(ctx context.Context, path string, sampleRate float64) ([]Event, error) {
	return run(ctx, sampleRate, path, func(L *lua.LState) error {
		return L.DoFile(path)
	})
}

func run(ctx context.Context, sampleRate float64, name string, do func(*lua.LState) error) ([]Event, error) {
	if !(sampleRate > 0) {
		return nil, ErrInvalidSampleRate
	}

	L := newState()
	defer L.Close()
	L.SetContext(ctx)

	ev := &evaluator{sampleRate: sampleRate, bpm: DefaultTempo}
	ev.register(L)

	if err := do(L); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "score.Eval",
			"script":   name,
			"error":    err.Error(),
		}).Error("Score evaluation failed")
		return nil, fmt.Errorf("%w: %s: %w", ErrScript, name, err)
	}

	slices.SortStableFunc(ev.events, func(a, b Event) int {
		switch {
		case a.Frame < b.Frame:
			return -1
		case a.Frame > b.Frame:
			return 1
		}
		return 0
	})

	logrus.WithFields(logrus.Fields{
		"function": "score.Eval",
		"script":   name,
		"events":   len(ev.events),
		"seconds":  ev.now,
	}).Debug("Score evaluated")

	return ev.events, nil
}

// newState opens only the libraries a score needs; no io or os access.
func newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	return L
}

func (ev *evaluator) register(L *lua.LState) {
	for name, fn := range map[string]lua.LGFunction{
		"note_on":  ev.luaNoteOn,
		"note_off": ev.luaNoteOff,
		"note":     ev.luaNote,
		"wait":     ev.luaWait,
		"now":      ev.luaNow,
		"at":       ev.luaAt,
		"param":    ev.luaParam,
		"midi":     ev.luaMIDI,
		"tempo":    ev.luaTempo,
		"beats":    ev.luaBeats,
	} {
		L.SetGlobal(name, L.NewFunction(fn))
	}
}

func (ev *evaluator) frameAt(seconds float64) int64 {
	return int64(math.Round(seconds * ev.sampleRate))
}

func (ev *evaluator) emitMIDI(at float64, msg synth.MIDIEvent) {
	ev.events = append(ev.events, Event{Frame: ev.frameAt(at), Kind: EventMIDI, MIDI: msg})
}

func checkByte(L *lua.LState, n int) byte {
	v := L.CheckInt(n)
	if v < 0 || v > 127 {
		L.ArgError(n, "must be within 0..127")
	}
	return byte(v)
}

func checkSeconds(L *lua.LState, n int) float64 {
	v := float64(L.CheckNumber(n))
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		L.ArgError(n, "must be a non-negative duration")
	}
	return v
}

func (ev *evaluator) luaNoteOn(L *lua.LState) int {
	pitch := checkByte(L, 1)
	vel := DefaultVelocity
	if L.GetTop() >= 2 {
		vel = int(checkByte(L, 2))
	}
	ev.emitMIDI(ev.now, synth.NoteOn(pitch, byte(vel)))
	return 0
}

func (ev *evaluator) luaNoteOff(L *lua.LState) int {
	ev.emitMIDI(ev.now, synth.NoteOff(checkByte(L, 1)))
	return 0
}

func (ev *evaluator) luaNote(L *lua.LState) int {
	pitch := checkByte(L, 1)
	length := checkSeconds(L, 2)
	vel := DefaultVelocity
	if L.GetTop() >= 3 {
		vel = int(checkByte(L, 3))
	}

	ev.emitMIDI(ev.now, synth.NoteOn(pitch, byte(vel)))
	ev.now += length
	ev.emitMIDI(ev.now, synth.NoteOff(pitch))
	return 0
}

func (ev *evaluator) luaWait(L *lua.LState) int {
	ev.now += checkSeconds(L, 1)
	return 0
}

func (ev *evaluator) luaAt(L *lua.LState) int {
	ev.now = checkSeconds(L, 1)
	return 0
}

func (ev *evaluator) luaNow(L *lua.LState) int {
	L.Push(lua.LNumber(ev.now))
	return 1
}

// luaParam accepts a numeric id or a display name; underscores in names
// stand for spaces, so "filter_cutoff" works.
func (ev *evaluator) luaParam(L *lua.LState) int {
	var id synth.ParamID

	switch v := L.Get(1).(type) {
	case lua.LNumber:
		id = synth.ParamID(int(v))
		if id < 0 || id >= synth.NumParams {
			L.ArgError(1, fmt.Sprintf("no parameter %d", id))
		}
	case lua.LString:
		var ok bool
		id, ok = synth.ParamByName(strings.ReplaceAll(string(v), "_", " "))
		if !ok {
			L.ArgError(1, fmt.Sprintf("no parameter %q", string(v)))
		}
	default:
		L.TypeError(1, lua.LTNumber)
	}

	value := float64(L.CheckNumber(2))
	if math.IsNaN(value) {
		L.ArgError(2, "must be a number")
	}

	ev.events = append(ev.events, Event{
		Frame: ev.frameAt(ev.now),
		Kind:  EventParam,
		Param: id,
		Value: math.Min(math.Max(value, 0), 1),
	})
	return 0
}

func (ev *evaluator) luaMIDI(L *lua.LState) int {
	status := L.CheckInt(1)
	if status < 0 || status > 255 {
		L.ArgError(1, "must be within 0..255")
	}
	ev.emitMIDI(ev.now, synth.MIDIEvent{
		Status: byte(status),
		Data1:  checkByte(L, 2),
		Data2:  checkByte(L, 3),
	})
	return 0
}

func (ev *evaluator) luaTempo(L *lua.LState) int {
	bpm := float64(L.CheckNumber(1))
	if !(bpm > 0) || math.IsInf(bpm, 0) {
		L.ArgError(1, "must be positive")
	}
	ev.bpm = bpm
	return 0
}

func (ev *evaluator) luaBeats(L *lua.LState) int {
	n := float64(L.CheckNumber(1))
	L.Push(lua.LNumber(n * 60 / ev.bpm))
	return 1
}
