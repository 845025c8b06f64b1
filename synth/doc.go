// SPDX-License-Identifier: EPL-2.0

// Package synth implements a monophonic subtractive synthesizer voice.
//
// The signal path for every sample is:
//
//	oscillators (x5) -> mix (x0.5) -> envelope -> low-pass filter -> all channels
//	                                                   ^
//	                             LFO modulates cutoff -+
//
// # Building an engine
//
//	cfg := synth.DefaultConfig()
//	cfg.SampleRate = 48000
//	eng, err := synth.New(cfg)
//
// The default bank holds a sine and a saw that follow the played pitch (the
// saw detuned by one percent) plus a square, a triangle and a noise source
// that stay at 440 Hz. Any slot can be changed through Config.Bank or
// Engine.Oscillator, including switching it to a Wavetable.
//
// # Events and rendering
//
// Engine.Process takes the MIDI events of a block followed by the output
// channels to fill. Only note-on (144) and note-off (128) are understood, and
// a note-off releases the envelope only when it names the sounding note.
//
//	eng.Process([]synth.MIDIEvent{synth.NoteOn(60, 100)}, [][]float32{left, right})
//
// The same mono signal is written to every channel and is not clamped.
//
// # Parameters
//
// Params holds the six automatable values as atomics. Reads on the render
// path and writes from a control goroutine never block each other:
//
//	eng.Params().SetNormalized(synth.ParamFilterCutoff, 0.1) // 2000 Hz
//
// # Live use
//
// Stream adapts an Engine to audio.Source and accepts events from other
// goroutines through a bounded, non-blocking queue.
package synth
