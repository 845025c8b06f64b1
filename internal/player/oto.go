// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package player

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/ik5/subsynth/audio"
	"github.com/sirupsen/logrus"
)

// oto allows one context per process.
var (
	contextOnce sync.Once
	sharedCtx   *oto.Context
	contextErr  error
	contextRate int
	contextCh   int
	inUse       atomic.Bool
)

// Player plays an audio.Source on the default output device.
type Player struct {
	player  *oto.Player
	started bool
	mutex   sync.Mutex
}

// New opens the output device at the source's format. latency is the
// device buffer length; zero lets the driver choose.
func New(src audio.Source, latency time.Duration) (*Player, error) {
	if !inUse.CompareAndSwap(false, true) {
		return nil, ErrAlreadyOpen
	}

	ctx, err := openContext(src.SampleRate(), src.Channels(), latency)
	if err != nil {
		inUse.Store(false)
		logrus.WithFields(logrus.Fields{
			"function":    "player.New",
			"sample_rate": src.SampleRate(),
			"error":       err.Error(),
		}).Error("Failed to open audio device")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"function":    "player.New",
		"sample_rate": src.SampleRate(),
		"channels":    src.Channels(),
		"latency":     latency,
	}).Debug("Audio device opened")

	return &Player{player: ctx.NewPlayer(newReader(src))}, nil
}

func openContext(sampleRate, channels int, latency time.Duration) (*oto.Context, error) {
	contextOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channels,
			Format:       oto.FormatFloat32LE,
			BufferSize:   latency,
		})
		if err != nil {
			contextErr = fmt.Errorf("opening audio context: %w", err)
			return
		}
		<-ready

		sharedCtx, contextRate, contextCh = ctx, sampleRate, channels
	})

	if contextErr != nil {
		return nil, contextErr
	}
	if contextRate != sampleRate || contextCh != channels {
		return nil, fmt.Errorf("device already running at %d Hz %d ch: %w", contextRate, contextCh, ErrAlreadyOpen)
	}
	return sharedCtx, nil
}

func (p *Player) Start() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if !p.started && p.player != nil {
		p.player.Play()
		p.started = true
	}
}

func (p *Player) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.started && p.player != nil {
		p.player.Pause()
		p.started = false
	}
}

// IsPlaying reports whether the device is still pulling audio. It turns
// false once a finite source is exhausted.
func (p *Player) IsPlaying() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.player != nil && p.player.IsPlaying()
}

func (p *Player) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.player == nil {
		return nil
	}

	err := p.player.Close()
	p.player = nil
	p.started = false
	inUse.Store(false)

	logrus.WithField("function", "player.Close").Debug("Audio device released")

	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
