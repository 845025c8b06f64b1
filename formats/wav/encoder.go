// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/ik5/subsynth/internal/pcm"
)

// Encode writes samples as a mono PCM WAV. The header sizes are patched on
// completion, hence the io.WriteSeeker.
func Encode(w io.WriteSeeker, sampleRate, bitDepth int, samples []float32) error {
	if !pcm.SupportedDepth(bitDepth) {
		return fmt.Errorf("%d-bit: %w", bitDepth, ErrUnsupportedBitDepth)
	}

	return pcm.Encode(wav.NewEncoder(w, sampleRate, bitDepth, 1, pcmFormat), sampleRate, bitDepth, samples)
}
