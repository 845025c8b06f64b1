// SPDX-License-Identifier: EPL-2.0

package wavetable

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/subsynth"
	"github.com/ik5/subsynth/audio"
	"github.com/ik5/subsynth/internal/audiotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCycle(t *testing.T, name string, frames int, amp float64) string {
	t.Helper()

	samples := make([]float32, frames)
	for i := range samples {
		samples[i] = float32(amp * math.Sin(2*math.Pi*float64(i)/float64(frames)))
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, subsynth.WriteFile(path, 44100, 16, samples))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"cycle.wav", "cycle.aiff"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := writeCycle(t, name, 600, 0.25)

			table, err := NewLoader().Load(path)
			require.NoError(t, err)
			assert.Equal(t, 600, table.Len())

			// normalised: the quarter-cycle peak reaches full scale
			assert.InDelta(t, 1.0, table.At(0.25), 1e-3)
			assert.InDelta(t, 0.0, table.At(0), 1e-3)
		})
	}
}

func TestLoadWithoutNormalize(t *testing.T) {
	t.Parallel()

	path := writeCycle(t, "quiet.wav", 400, 0.25)

	l := NewLoader()
	l.Normalize = false
	table, err := l.Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, table.At(0.25), 1e-3)
}

func TestLoadTruncates(t *testing.T) {
	t.Parallel()

	path := writeCycle(t, "long.wav", 5000, 0.5)

	l := NewLoader()
	l.MaxFrames = 1024
	table, err := l.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1024, table.Len())
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := NewLoader().Load(filepath.Join(dir, "table.flac"))
	assert.ErrorIs(t, err, audio.ErrUnknownFormat)

	_, err = NewLoader().Load(filepath.Join(dir, "missing.wav"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	garbage := filepath.Join(dir, "garbage.wav")
	require.NoError(t, os.WriteFile(garbage, []byte("not audio at all"), 0o644))
	_, err = NewLoader().Load(garbage)
	assert.Error(t, err)
}

func TestReadMixesToMono(t *testing.T) {
	t.Parallel()

	// left and right cancel except for a constant offset
	src := audiotest.NewMockSource(48000, 2, 100, func(frame, ch int) float32 {
		if ch == 0 {
			return 0.2 + float32(frame)/1000
		}
		return 0.2 - float32(frame)/1000
	})

	l := &Loader{MaxFrames: 64}
	table, err := l.Read(src)
	require.NoError(t, err)

	assert.Equal(t, 64, table.Len())
	assert.InDelta(t, 0.2, table.At(0.5), 1e-6)
	assert.True(t, src.Closed())
}

func TestReadEmpty(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Read(audiotest.NewSilentSource(44100, 1, 0))
	assert.ErrorIs(t, err, ErrEmptyAudio)
}
