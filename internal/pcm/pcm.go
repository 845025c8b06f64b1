// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts the go-audio integer buffer decoders and encoders to
// float32 sample streams.
package pcm

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/subsynth/utils"
)

// DefaultBufSize is the sample capacity a Source starts with.
const DefaultBufSize = 4096

// Reader is the decoding half of the go-audio wav and aiff packages.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Writer is the encoding half of the go-audio wav and aiff packages.
type Writer interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

// SupportedDepth reports whether bits can be decoded and encoded.
func SupportedDepth(bits int) bool {
	return bits == 16 || bits == 24
}

// Source streams normalised samples out of a Reader.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	bitDepth   int
	intBuf     *goaudio.IntBuffer
	eof        bool
}

func NewSource(dec Reader, sampleRate, channels, bitDepth int) *Source {
	return &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return DefaultBufSize
}

// ReadSamples converts up to len(dst) samples. A short read from the
// decoder marks the end of the stream.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}

	for i := range n {
		dst[i] = utils.PCMToFloat(s.intBuf.Data[i], s.bitDepth)
	}

	if n < len(dst) || err == io.EOF {
		s.eof = true
		if n == 0 {
			return 0, io.EOF
		}
		return n, io.EOF
	}

	return n, nil
}

// ReadSeeker returns r when it can seek, otherwise buffers it in memory.
// The go-audio decoders need to seek between chunks.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return bytes.NewReader(data), nil
}

// blockSize is the number of samples converted per encoder write.
const blockSize = 8192

// Encode writes mono samples through enc at the given depth and closes it.
func Encode(enc Writer, sampleRate, bitDepth int, samples []float32) error {
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
		Data:           make([]int, 0, min(len(samples), blockSize)),
	}

	for start := 0; start < len(samples); start += blockSize {
		block := samples[start:min(start+blockSize, len(samples))]

		buf.Data = buf.Data[:len(block)]
		for i, v := range block {
			buf.Data[i] = utils.FloatToPCM(v, bitDepth)
		}

		if err := enc.Write(buf); err != nil {
			enc.Close()
			return fmt.Errorf("encoding samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalising stream: %w", err)
	}
	return nil
}
