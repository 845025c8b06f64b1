// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/subsynth/internal/pcm"
)

// Encode writes samples as a mono AIFF.
func Encode(w io.WriteSeeker, sampleRate, bitDepth int, samples []float32) error {
	if !pcm.SupportedDepth(bitDepth) {
		return fmt.Errorf("%d-bit: %w", bitDepth, ErrUnsupportedBitDepth)
	}

	return pcm.Encode(aiff.NewEncoder(w, sampleRate, bitDepth, 1), sampleRate, bitDepth, samples)
}
