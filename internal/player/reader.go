// SPDX-License-Identifier: EPL-2.0

package player

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/ik5/subsynth/audio"
)

const bytesPerSample = 4

// reader serves an audio.Source as little-endian float32 bytes, the layout
// oto.FormatFloat32LE expects. Requests of any size are honoured by keeping
// the unread tail of the last rendered block.
type reader struct {
	src     audio.Source
	samples []float32
	pending []byte
	buf     []byte
	eof     bool
}

func newReader(src audio.Source) *reader {
	size := src.BufSize()
	size -= size % src.Channels()
	if size <= 0 {
		size = src.Channels() * 512
	}

	return &reader{
		src:     src,
		samples: make([]float32, size),
		buf:     make([]byte, size*bytesPerSample),
	}
}

func (r *reader) Read(p []byte) (int, error) {
	written := 0

	for written < len(p) {
		if len(r.pending) == 0 {
			if r.eof {
				break
			}
			if err := r.fill(); err != nil {
				return written, err
			}
			continue
		}

		n := copy(p[written:], r.pending)
		r.pending = r.pending[n:]
		written += n
	}

	if written == 0 && r.eof {
		return 0, io.EOF
	}
	return written, nil
}

func (r *reader) fill() error {
	n, err := r.src.ReadSamples(r.samples)
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return err
	}

	for i, v := range r.samples[:n] {
		binary.LittleEndian.PutUint32(r.buf[i*bytesPerSample:], math.Float32bits(v))
	}
	r.pending = r.buf[:n*bytesPerSample]
	return nil
}
