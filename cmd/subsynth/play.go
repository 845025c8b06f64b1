// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/ik5/subsynth/internal/keyboard"
	"github.com/ik5/subsynth/internal/player"
	"github.com/ik5/subsynth/score"
	"github.com/ik5/subsynth/synth"
	"github.com/sirupsen/logrus"
)

func runPlay(args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)

	var voice voiceFlags
	voice.register(fs)
	latency := fs.Duration("latency", 50*time.Millisecond, "audio device buffer length")
	tail := fs.Float64("tail", 1, "seconds played after the last score event")
	fs.Parse(args)

	setupLogging(voice.verbose)

	if fs.NArg() > 1 {
		fs.Usage()
		return errUsage
	}

	e, err := voice.engine()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if fs.NArg() == 1 {
		events, err := score.EvalFile(ctx, fs.Arg(0), voice.rate)
		if err != nil {
			return err
		}
		return playScore(ctx, score.NewSequencer(e, events, int64(math.Round(*tail*voice.rate))), *latency)
	}

	return playKeyboard(ctx, e, *latency)
}

func playScore(ctx context.Context, seq *score.Sequencer, latency time.Duration) error {
	p, err := player.New(seq, latency)
	if err != nil {
		return err
	}
	defer p.Close()

	p.Start()

	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()

	for p.IsPlaying() {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

func playKeyboard(ctx context.Context, e *synth.Engine, latency time.Duration) error {
	stream, err := synth.NewStream(e, 1, synth.DefaultQueueSize)
	if err != nil {
		return err
	}

	p, err := player.New(stream, latency)
	if err != nil {
		return err
	}
	defer p.Close()

	fmt.Fprint(os.Stdout, keyboard.Help())
	p.Start()

	logrus.WithField("function", "playKeyboard").Debug("Keyboard playback started")

	err = keyboard.NewHost(os.Stdin).Run(ctx, keyboard.NewController(stream, e.Params()))
	stream.Close()

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
