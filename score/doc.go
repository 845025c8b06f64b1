// SPDX-License-Identifier: EPL-2.0

// Package score turns small Lua scripts into timed synthesizer events and
// plays them back through an Engine.
//
// A script moves a time cursor forward with wait or note and emits note,
// parameter and raw MIDI events at the cursor:
//
//	tempo(96)
//	param("filter_cutoff", 0.02)
//	for _, p in ipairs({60, 63, 67, 72}) do
//	    note(p, beats(0.5))
//	end
//	param("lfo_amount", 1)
//	note(48, beats(2), 90)
//
// Scripts get the Lua base, string, table and math libraries only. Eval
// honours context cancellation, so a runaway loop can be bounded with a
// deadline.
//
// The resulting events feed a Sequencer, which is an audio.Source:
//
//	events, err := score.Eval(ctx, script, 44100)
//	seq := score.NewSequencer(engine, events, 44100) // one second tail
package score
