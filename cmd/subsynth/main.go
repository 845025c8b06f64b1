// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ik5/subsynth/synth"
	"github.com/ik5/subsynth/wavetable"
	"github.com/sirupsen/logrus"
)

const usage = `usage: subsynth <command> [flags] [args]

commands:
  render [flags] <score.lua> <out.wav|out.aiff>   render a score to a file
  play   [flags] [score.lua]                      play a score, or the keyboard when none is given
  params                                          list automatable parameters
`

// voiceFlags are the engine options shared by render and play.
type voiceFlags struct {
	rate      float64
	attack    float64
	decay     float64
	sustain   float64
	release   float64
	gateClear bool
	table     string
	slot      int
	verbose   bool
}

func (v *voiceFlags) register(fs *flag.FlagSet) {
	fs.Float64Var(&v.rate, "rate", synth.DefaultSampleRate, "engine sample rate in Hz")
	fs.Float64Var(&v.attack, "attack", synth.DefaultAttack, "envelope attack in seconds")
	fs.Float64Var(&v.decay, "decay", synth.DefaultDecay, "envelope decay in seconds")
	fs.Float64Var(&v.sustain, "sustain", synth.DefaultSustain, "envelope sustain level (0-1)")
	fs.Float64Var(&v.release, "release", synth.DefaultRelease, "envelope release in seconds")
	fs.BoolVar(&v.gateClear, "gate-clear", false, "close the gate once the envelope is idle")
	fs.StringVar(&v.table, "wavetable", "", "audio file loaded as a wavetable")
	fs.IntVar(&v.slot, "slot", 2, "oscillator slot replaced by -wavetable")
	fs.BoolVar(&v.verbose, "v", false, "verbose logging")
}

func (v *voiceFlags) engine() (*synth.Engine, error) {
	cfg := synth.DefaultConfig()
	cfg.SampleRate = v.rate
	cfg.Attack = v.attack
	cfg.Decay = v.decay
	cfg.Sustain = v.sustain
	cfg.Release = v.release
	cfg.ClearGateOnIdle = v.gateClear

	e, err := synth.New(cfg)
	if err != nil {
		return nil, err
	}

	if v.table != "" {
		table, err := wavetable.NewLoader().Load(v.table)
		if err != nil {
			return nil, err
		}
		if err := e.SetWavetable(v.slot, table); err != nil {
			return nil, err
		}
	}

	return e, nil
}

func setupLogging(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(logrus.WarnLevel)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "render":
		err = runRender(os.Args[2:])
	case "play":
		err = runPlay(os.Args[2:])
	case "params":
		err = runParams(os.Stdout)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(os.Stdout, usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "main",
			"command":  os.Args[1],
		}).Error(err)
		os.Exit(1)
	}
}
