// SPDX-License-Identifier: EPL-2.0

// Package subsynth is a monophonic subtractive synthesizer and the audio
// tooling around it.
//
// The voice itself lives in the synth package: a five oscillator bank, an
// ADSR envelope and an LFO-swept two-pole low-pass filter, driven by MIDI
// note messages and a lock-free parameter store. Around it sit:
//
//   - audio: the Source pipeline (resampling, mono mixing, decoder registry)
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: file decoders
//     and the WAV/AIFF encoders
//   - wavetable: loading single-cycle tables from audio files
//   - score: Lua scripted note sequences rendered through an Engine
//
// This package ties the pieces together for offline use. Bounce pulls any
// Source to a mono buffer at a chosen rate, and WriteFile stores it:
//
//	events, _ := score.Eval(ctx, script, 44100)
//	seq := score.NewSequencer(engine, events, 44100)
//	pcm, err := subsynth.Bounce(seq, 44100, 4096)
//	err = subsynth.WriteFile("out.wav", 44100, 16, pcm)
//
// NewDecoderRegistry maps file extensions to the bundled decoders.
package subsynth
