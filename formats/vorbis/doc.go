// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to float natively, so samples pass through without
// conversion:
//
//	f, _ := os.Open("strings.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
package vorbis
