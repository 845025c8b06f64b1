// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runUntil processes env until stage is reached, returning the number of calls.
func runUntil(t *testing.T, env *Envelope, stage Stage, limit int) int {
	t.Helper()

	for n := 1; n <= limit; n++ {
		env.Process()
		if env.Stage() == stage {
			return n
		}
	}
	t.Fatalf("envelope did not reach %s within %d samples (stage %s, level %v)", stage, limit, env.Stage(), env.Level())
	return 0
}

func TestEnvelope_IdleIsSilent(t *testing.T) {
	t.Parallel()

	env := NewEnvelope(DefaultSampleRate)
	for range 100 {
		assert.Equal(t, 0.0, env.Process())
	}
	assert.Equal(t, StageIdle, env.Stage())
}

func TestEnvelope_AttackReachesPeak(t *testing.T) {
	t.Parallel()

	env := NewEnvelope(44100)
	require.NoError(t, env.SetAttack(0.01))
	env.Trigger()
	assert.Equal(t, StageAttack, env.Stage())
	assert.Equal(t, 0.0, env.Level())

	limit := int(math.Ceil(0.01 * 44100))
	n := runUntil(t, env, StageDecay, limit)

	assert.LessOrEqual(t, n, 441)
	assert.Equal(t, 1.0, env.Level())
}

func TestEnvelope_DecayToSustain(t *testing.T) {
	t.Parallel()

	env := NewEnvelope(DefaultSampleRate)
	env.Trigger()
	runUntil(t, env, StageDecay, 1000)

	prev := env.Level()
	n := runUntil(t, env, StageSustain, int(DefaultDecay*DefaultSampleRate)+2)
	assert.Greater(t, n, 1)
	assert.Equal(t, DefaultSustain, env.Level())
	assert.Less(t, env.Level(), prev)

	for range 1000 {
		assert.Equal(t, DefaultSustain, env.Process())
	}
	assert.Equal(t, StageSustain, env.Stage())
}

func TestEnvelope_ReleaseFromSustain(t *testing.T) {
	t.Parallel()

	env := NewEnvelope(DefaultSampleRate)
	env.Trigger()
	runUntil(t, env, StageSustain, 10000)
	require.Equal(t, 0.5, env.Level())

	env.Release()
	assert.Equal(t, StageRelease, env.Stage())

	bound := int(math.Ceil(DefaultRelease*DefaultSampleRate*math.Log(0.5/releaseFloor))) + 2
	prev := env.Level()
	for n := 1; ; n++ {
		require.LessOrEqual(t, n, bound, "release did not finish in time")

		level := env.Process()
		require.LessOrEqual(t, level, prev, "release must be monotonic")
		prev = level

		if env.Stage() == StageIdle {
			assert.Equal(t, 0.0, level)
			break
		}
		require.Greater(t, level, releaseFloor)
	}
}

func TestEnvelope_ReleaseFromIdle(t *testing.T) {
	t.Parallel()

	env := NewEnvelope(DefaultSampleRate)
	env.Release()
	assert.Equal(t, StageRelease, env.Stage())

	assert.Equal(t, 0.0, env.Process())
	assert.Equal(t, StageIdle, env.Stage())
}

func TestEnvelope_ReleaseDuringAttack(t *testing.T) {
	t.Parallel()

	env := NewEnvelope(DefaultSampleRate)
	env.Trigger()
	for range 100 {
		env.Process()
	}
	level := env.Level()
	require.Greater(t, level, 0.0)

	env.Release()
	assert.Less(t, env.Process(), level)
	assert.Equal(t, StageRelease, env.Stage())
}

func TestEnvelope_TriggerRestarts(t *testing.T) {
	t.Parallel()

	env := NewEnvelope(DefaultSampleRate)
	env.Trigger()
	runUntil(t, env, StageSustain, 10000)

	env.Trigger()
	assert.Equal(t, StageAttack, env.Stage())
	assert.Equal(t, 0.0, env.Level())
}

func TestEnvelope_Setters(t *testing.T) {
	t.Parallel()

	env := NewEnvelope(DefaultSampleRate)

	require.NoError(t, env.SetAttack(0.5))
	require.NoError(t, env.SetDecay(0.25))
	require.NoError(t, env.SetSustain(0.8))
	require.NoError(t, env.SetRelease(1.5))
	assert.Equal(t, 0.5, env.Attack())
	assert.Equal(t, 0.25, env.Decay())
	assert.Equal(t, 0.8, env.Sustain())
	assert.Equal(t, 1.5, env.ReleaseTime())

	tests := []struct {
		name string
		set  func() error
		want error
	}{
		{"zero attack", func() error { return env.SetAttack(0) }, ErrInvalidTime},
		{"negative decay", func() error { return env.SetDecay(-1) }, ErrInvalidTime},
		{"nan release", func() error { return env.SetRelease(math.NaN()) }, ErrInvalidTime},
		{"infinite attack", func() error { return env.SetAttack(math.Inf(1)) }, ErrInvalidTime},
		{"sustain above one", func() error { return env.SetSustain(1.1) }, ErrInvalidSustain},
		{"negative sustain", func() error { return env.SetSustain(-0.1) }, ErrInvalidSustain},
	}
	for _, tt := range tests {
		assert.ErrorIs(t, tt.set(), tt.want, tt.name)
	}

	// Rejected values leave the previous settings in place.
	assert.Equal(t, 0.5, env.Attack())
	assert.Equal(t, 0.8, env.Sustain())
}

func TestEnvelope_SustainChangeAppliesImmediately(t *testing.T) {
	t.Parallel()

	env := NewEnvelope(DefaultSampleRate)
	env.Trigger()
	runUntil(t, env, StageDecay, 1000)

	require.NoError(t, env.SetSustain(1))
	env.Process()
	assert.Equal(t, StageSustain, env.Stage())
	assert.Equal(t, 1.0, env.Level())
}

func TestEnvelope_LevelAlwaysBounded(t *testing.T) {
	t.Parallel()

	env := NewEnvelope(DefaultSampleRate)
	require.NoError(t, env.SetAttack(0.001))
	require.NoError(t, env.SetDecay(0.001))
	require.NoError(t, env.SetRelease(0.001))

	for cycle := range 20 {
		env.Trigger()
		for i := range 500 {
			if i == 50+cycle*10 {
				env.Release()
			}
			l := env.Process()
			require.False(t, math.IsNaN(l))
			require.GreaterOrEqual(t, l, 0.0)
			require.LessOrEqual(t, l, 1.0)
		}
	}
}

func TestStage_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "release", StageRelease.String())
	assert.Equal(t, "unknown", Stage(42).String())
}
