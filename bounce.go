// SPDX-License-Identifier: EPL-2.0

package subsynth

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/subsynth/audio"
	"github.com/ik5/subsynth/formats/aiff"
	"github.com/ik5/subsynth/formats/mp3"
	"github.com/ik5/subsynth/formats/vorbis"
	"github.com/ik5/subsynth/formats/wav"
	"github.com/ik5/subsynth/utils"
)

// NewDecoderRegistry returns a registry with every bundled decoder keyed by
// its usual file extensions.
func NewDecoderRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})

	return reg
}

// Bounce drains src through a resampler and a mono mixer and returns every
// sample at targetRate. src is closed when done.
//
//	src := score.NewSequencer(engine, events, tail)
//	pcm, err := subsynth.Bounce(src, 48000, 4096)
func Bounce(src audio.Source, targetRate, bufferSize int) ([]float32, error) {
	if bufferSize <= 0 {
		return nil, ErrInvalidBufferSize
	}

	mono := audio.NewMonoMixer(audio.NewResampler(src, targetRate))
	defer mono.Close()

	out := make([]float32, 0, targetRate)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
}

// BounceToMono16 is Bounce followed by conversion to 16-bit PCM.
func BounceToMono16(src audio.Source, targetRate, bufferSize int) ([]int16, error) {
	samples, err := Bounce(src, targetRate, bufferSize)
	if err != nil {
		return nil, err
	}

	pcm16 := make([]int16, len(samples))
	for i, v := range samples {
		pcm16[i] = utils.Float32ToInt16(v)
	}

	return pcm16, nil
}

// WriteFile stores mono samples at path. The extension picks the container:
// .wav for WAV, .aif or .aiff for AIFF.
func WriteFile(path string, sampleRate, bitDepth int, samples []float32) error {
	var encode func(io.WriteSeeker, int, int, []float32) error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		encode = wav.Encode
	case ".aif", ".aiff":
		encode = aiff.Encode
	default:
		return fmt.Errorf("%q: %w", path, ErrUnsupportedOutput)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := encode(f, sampleRate, bitDepth, samples); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
