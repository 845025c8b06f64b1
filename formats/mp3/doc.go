// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with
// github.com/hajimehoshi/go-mp3.
//
// The decoder always reports two channels, since go-mp3 upmixes mono files
// to stereo. Samples are returned as float32 in [-1, 1):
//
//	f, _ := os.Open("loop.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	mono := audio.NewMonoMixer(src)
package mp3
