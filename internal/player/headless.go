// SPDX-License-Identifier: EPL-2.0

//go:build headless

package player

import (
	"time"

	"github.com/ik5/subsynth/audio"
)

// Player is unavailable in headless builds.
type Player struct{}

func New(audio.Source, time.Duration) (*Player, error) {
	return nil, ErrNoAudioBackend
}

func (*Player) Start()          {}
func (*Player) Stop()           {}
func (*Player) IsPlaying() bool { return false }
func (*Player) Close() error    { return nil }
