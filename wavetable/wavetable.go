// SPDX-License-Identifier: EPL-2.0

package wavetable

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/subsynth"
	"github.com/ik5/subsynth/audio"
	"github.com/ik5/subsynth/synth"
	"github.com/ik5/subsynth/utils"
	"github.com/sirupsen/logrus"
)

// DefaultMaxFrames is the table length used when Loader.MaxFrames is unset.
const DefaultMaxFrames = 2048

var ErrEmptyAudio = errors.New("audio source produced no samples")

// Loader turns audio files into single-cycle wavetables.
type Loader struct {
	// Registry resolves file extensions to decoders.
	Registry *audio.Registry
	// MaxFrames caps the table length; only the head of longer files is kept.
	MaxFrames int
	// Normalize scales the table to a peak of 1.
	Normalize bool
}

// NewLoader returns a Loader over every bundled format with peak
// normalisation enabled.
func NewLoader() *Loader {
	return &Loader{
		Registry:  subsynth.NewDecoderRegistry(),
		MaxFrames: DefaultMaxFrames,
		Normalize: true,
	}
}

// Load decodes the file at path, picking the decoder from its extension.
func (l *Loader) Load(path string) (*synth.Wavetable, error) {
	dec, err := l.Registry.ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "wavetable.Load",
			"path":     path,
			"error":    err.Error(),
		}).Warn("Failed to decode wavetable")
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	table, err := l.Read(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"function":    "wavetable.Load",
		"path":        path,
		"frames":      table.Len(),
		"sample_rate": src.SampleRate(),
	}).Debug("Wavetable loaded")

	return table, nil
}

// Read folds src to mono and keeps its first MaxFrames frames. src is
// closed on return.
func (l *Loader) Read(src audio.Source) (*synth.Wavetable, error) {
	maxFrames := l.MaxFrames
	if maxFrames <= 0 {
		maxFrames = DefaultMaxFrames
	}

	mono := audio.NewMonoMixer(src)
	defer mono.Close()

	samples := make([]float32, maxFrames)
	filled := 0

	for filled < maxFrames {
		n, err := mono.ReadSamples(samples[filled:])
		filled += n

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}

	if filled == 0 {
		return nil, ErrEmptyAudio
	}

	samples = samples[:filled]
	if l.Normalize {
		utils.Normalize(samples)
	}

	return synth.NewWavetable(samples)
}
