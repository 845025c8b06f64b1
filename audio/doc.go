// SPDX-License-Identifier: EPL-2.0

// Package audio holds the streaming plumbing shared by the synthesizer, the
// file decoders and the output stages.
//
// Everything is expressed as a Source: a pull-based stream of interleaved
// float32 samples in [-1, 1]. Stages wrap one another:
//
//	src := wav.Decoder{}.Decode(f)      // 48 kHz stereo file
//	mono := audio.NewMonoMixer(src)     // 48 kHz mono
//	out := audio.NewResampler(mono, sr) // engine rate
//
// # Resampling
//
// Resampler uses Catmull-Rom interpolation over a four frame window. The
// read position advances in exact integer steps, so converting N frames from
// rate A to rate B always yields ceil(N*B/A) frames. Downsampling applies a
// one-pole low-pass to the input to tame aliasing.
//
// # Format registry
//
// Registry maps file extensions to Decoders:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, err := reg.ForPath("pad.wav")
//
// Unknown extensions are reported as ErrUnknownFormat.
//
// # End of stream
//
// ReadSamples returns io.EOF once the stream is exhausted, possibly together
// with a final partial block:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    consume(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
