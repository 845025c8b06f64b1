// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/subsynth/utils"
)

// Resampler converts src to another sample rate with Catmull-Rom
// interpolation over a four frame window. Channel count is preserved.
//
// Output frame j is taken at source position j*srcRate/dstRate, computed in
// integers so the output length is exact: a source of N frames yields
// ceil(N*dstRate/srcRate) frames. When downsampling, incoming frames pass
// through a one-pole smoother first.
type Resampler struct {
	src      Source
	srcRate  int64
	dstRate  int64
	channels int

	// window[1] is the frame at source index base, window[0] the one
	// before it, window[2] and window[3] the two after.
	window [4][]float32
	real   [4]bool
	base   int64
	out    int64
	primed bool

	buf    []float32
	bufPos int
	bufLen int
	srcEOF bool

	smooth []float32
	alpha  float32
	seeded bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	size := src.BufSize()
	size -= size % channels
	if size < channels {
		size = channels
	}

	r := &Resampler{
		src:      src,
		srcRate:  int64(src.SampleRate()),
		dstRate:  int64(dstRate),
		channels: channels,
		buf:      make([]float32, size),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	if r.srcRate > r.dstRate {
		r.smooth = make([]float32, channels)
		r.alpha = float32(r.dstRate) / float32(r.srcRate)
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame copies the next source frame into dst, reporting false once the
// source is exhausted.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	for r.bufPos >= r.bufLen {
		if r.srcEOF {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.buf)
		r.bufPos, r.bufLen = 0, n-n%r.channels

		if err == io.EOF {
			r.srcEOF = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}
	}

	frame := r.buf[r.bufPos : r.bufPos+r.channels]
	r.bufPos += r.channels

	if r.smooth == nil {
		copy(dst, frame)
		return true, nil
	}

	if !r.seeded {
		// start from the first frame instead of fading in from zero
		copy(r.smooth, frame)
		r.seeded = true
	}
	for c, x := range frame {
		r.smooth[c] += r.alpha * (x - r.smooth[c])
		dst[c] = r.smooth[c]
	}

	return true, nil
}

// fill loads slot i from the source, or repeats slot i-1 past the end.
func (r *Resampler) fill(i int) error {
	ok, err := r.readFrame(r.window[i])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.window[i], r.window[i-1])
	}
	r.real[i] = ok
	return nil
}

func (r *Resampler) prime() error {
	ok, err := r.readFrame(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	r.real[1] = true
	copy(r.window[0], r.window[1])

	if err := r.fill(2); err != nil {
		return err
	}
	if err := r.fill(3); err != nil {
		return err
	}

	r.primed = true
	return nil
}

func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	r.window[3] = first
	copy(r.real[:], r.real[1:])
	r.base++

	return r.fill(3)
}

// ReadSamples produces interleaved samples at the destination rate.
// len(dst) must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		pos := r.out * r.srcRate
		target := pos / r.dstRate

		for r.base < target && r.real[1] {
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.real[1] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		x := float32(pos%r.dstRate) / float32(r.dstRate)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written++
		r.out++
	}

	return written * r.channels, nil
}
