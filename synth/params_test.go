// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_Defaults(t *testing.T) {
	t.Parallel()

	p := NewParams()
	assert.Equal(t, 440.0, p.Value(ParamOsc1Freq))
	assert.Equal(t, 440.0, p.Value(ParamOsc2Freq))
	assert.Equal(t, 1000.0, p.Value(ParamFilterCutoff))
	assert.Equal(t, 0.5, p.Value(ParamFilterResonance))
	assert.Equal(t, 2.4, p.Value(ParamLFOFreq))
	assert.Equal(t, 0.5, p.Value(ParamLFOAmount))

	assert.InDelta(t, 0.05, p.Normalized(ParamFilterCutoff), 1e-12)
	assert.InDelta(t, 0.12, p.Normalized(ParamLFOFreq), 1e-12)
	assert.InDelta(t, 0.25, p.Normalized(ParamLFOAmount), 1e-12)
}

func TestParams_NormalizedRoundTrip(t *testing.T) {
	t.Parallel()

	p := NewParams()
	for id := range NumParams {
		for i := 0; i <= 100; i++ {
			x := float64(i) / 100
			p.SetNormalized(id, x)
			assert.InDelta(t, x, p.Normalized(id), 1e-12, "%s at %v", id, x)
		}
	}
}

func TestParams_EngineeringMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   ParamID
		norm float64
		want float64
	}{
		{ParamOsc1Freq, 0.5, 10000},
		{ParamOsc2Freq, 0.022, 440},
		{ParamFilterCutoff, 0.1, 2000},
		{ParamFilterResonance, 0.7, 0.7},
		{ParamLFOFreq, 0.25, 5},
		{ParamLFOAmount, 0.5, 1},
	}

	p := NewParams()
	for _, tt := range tests {
		p.SetNormalized(tt.id, tt.norm)
		assert.InDelta(t, tt.want, p.Value(tt.id), 1e-9, tt.id.String())
	}
}

func TestParams_Clamping(t *testing.T) {
	t.Parallel()

	p := NewParams()

	p.SetNormalized(ParamFilterCutoff, 1.5)
	assert.Equal(t, 1.0, p.Normalized(ParamFilterCutoff))

	p.SetNormalized(ParamFilterCutoff, -0.5)
	assert.Equal(t, 0.0, p.Normalized(ParamFilterCutoff))

	p.SetValue(ParamLFOAmount, 7)
	assert.Equal(t, 2.0, p.Value(ParamLFOAmount))

	p.SetValue(ParamLFOFreq, -3)
	assert.Equal(t, 0.0, p.Value(ParamLFOFreq))
}

func TestParams_UnknownIDs(t *testing.T) {
	t.Parallel()

	p := NewParams()
	assert.NotPanics(t, func() {
		p.SetNormalized(NumParams, 0.3)
		p.SetNormalized(-1, 0.3)
		p.SetValue(99, 1)
	})
	assert.Equal(t, 0.0, p.Value(NumParams))
	assert.Equal(t, 0.0, p.Normalized(-1))
	assert.Equal(t, "", ParamID(17).String())
}

func TestParamByName(t *testing.T) {
	t.Parallel()

	for id := range NumParams {
		got, ok := ParamByName(id.String())
		assert.True(t, ok)
		assert.Equal(t, id, got)
	}

	id, ok := ParamByName("filter cutoff")
	assert.True(t, ok)
	assert.Equal(t, ParamFilterCutoff, id)

	_, ok = ParamByName("Osc3 Freq")
	assert.False(t, ok)
}

func TestParams_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	p := NewParams()
	allowed := map[float64]bool{1000: true, 4000: true, 8000: true}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := range 20000 {
			switch i % 3 {
			case 0:
				p.SetValue(ParamFilterCutoff, 1000)
			case 1:
				p.SetValue(ParamFilterCutoff, 4000)
			default:
				p.SetValue(ParamFilterCutoff, 8000)
			}
		}
	}()

	torn := 0
	go func() {
		defer wg.Done()
		for range 20000 {
			if !allowed[p.Value(ParamFilterCutoff)] {
				torn++
			}
		}
	}()

	wg.Wait()
	assert.Zero(t, torn)
}
