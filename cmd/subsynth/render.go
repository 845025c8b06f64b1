// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"math"
	"time"

	"github.com/ik5/subsynth"
	"github.com/ik5/subsynth/score"
	"github.com/sirupsen/logrus"
)

var errUsage = errors.New("wrong number of arguments")

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)

	var voice voiceFlags
	voice.register(fs)
	outRate := fs.Int("out-rate", 0, "output sample rate (defaults to -rate)")
	bits := fs.Int("bits", 16, "output bit depth: 16 or 24")
	tail := fs.Float64("tail", 1, "seconds rendered after the last event")
	timeout := fs.Duration("timeout", 10*time.Second, "limit on score evaluation time")
	fs.Parse(args)

	setupLogging(voice.verbose)

	if fs.NArg() != 2 {
		fs.Usage()
		return errUsage
	}
	scorePath, outPath := fs.Arg(0), fs.Arg(1)

	e, err := voice.engine()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	events, err := score.EvalFile(ctx, scorePath, voice.rate)
	if err != nil {
		return err
	}

	rate := *outRate
	if rate <= 0 {
		rate = int(math.Round(voice.rate))
	}

	seq := score.NewSequencer(e, events, int64(math.Round(*tail*voice.rate)))
	samples, err := subsynth.Bounce(seq, rate, 4096)
	if err != nil {
		return err
	}

	if err := subsynth.WriteFile(outPath, rate, *bits, samples); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"function": "runRender",
		"score":    scorePath,
		"output":   outPath,
		"events":   len(events),
		"seconds":  float64(len(samples)) / float64(rate),
	}).Info("Rendered score")

	return nil
}
