// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAV files through github.com/go-audio/wav.
//
// Decoding accepts 16 and 24-bit integer PCM with any channel count and
// yields an audio.Source of samples in [-1, 1]. Inputs that cannot seek are
// buffered in memory first.
//
//	f, _ := os.Open("pad.wav")
//	src, err := wav.Decoder{}.Decode(f)
//
// Encode writes a mono stream, which is what the synthesizer renders:
//
//	out, _ := os.Create("bounce.wav")
//	err := wav.Encode(out, 44100, 16, samples)
//
// Other encodings are rejected with ErrUnsupportedBitDepth.
package wav
