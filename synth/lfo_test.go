// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLFO_RangeAndWrap(t *testing.T) {
	t.Parallel()

	l := LFO{Freq: 5}
	first := l.Process(DefaultSampleRate)
	assert.Equal(t, 0.0, first)

	for range 100000 {
		v := l.Process(DefaultSampleRate)
		if v < -1 || v > 1 {
			t.Fatalf("lfo value %v out of range", v)
		}
		if l.Phase < 0 || l.Phase >= 1 {
			t.Fatalf("lfo phase %v out of range", l.Phase)
		}
	}
}

func TestLFO_QuarterCycle(t *testing.T) {
	t.Parallel()

	// 1 Hz at 4 samples per second steps through the four quadrants.
	l := LFO{Freq: 1}
	want := []float64{0, 1, 0, -1, 0}
	for i, w := range want {
		assert.InDelta(t, w, l.Process(4), 1e-12, "step %d", i)
	}
}
