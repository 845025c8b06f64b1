// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes big-endian AIFF files through
// github.com/go-audio/aiff.
//
// Only uncompressed 16 and 24-bit audio is handled; AIFF-C and other sample
// sizes fail with ErrUnsupportedBitDepth or ErrNotAiffFile.
//
//	f, _ := os.Open("choir.aiff")
//	src, err := aiff.Decoder{}.Decode(f)
//
//	out, _ := os.Create("bounce.aif")
//	err = aiff.Encode(out, 48000, 24, samples)
package aiff
