// SPDX-License-Identifier: EPL-2.0

//go:build headless

package player

import (
	"errors"
	"testing"

	"github.com/ik5/subsynth/internal/audiotest"
)

func TestNewHeadless(t *testing.T) {
	t.Parallel()

	_, err := New(audiotest.NewSilentSource(44100, 1, 10), 0)
	if !errors.Is(err, ErrNoAudioBackend) {
		t.Errorf("New() error = %v, want ErrNoAudioBackend", err)
	}
}
