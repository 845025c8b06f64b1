// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
)

var errNegativeOffset = errors.New("audiotest: negative seek offset")

// SeekBuffer is an in-memory io.WriteSeeker. The WAV and AIFF encoders seek
// back to patch chunk sizes, which a bytes.Buffer cannot do.
type SeekBuffer struct {
	data []byte
	pos  int
}

func (b *SeekBuffer) Write(p []byte) (int, error) {
	if end := b.pos + len(p); end > len(b.data) {
		b.data = append(b.data, make([]byte, end-len(b.data))...)
	}
	n := copy(b.data[b.pos:], p)
	b.pos += n
	return n, nil
}

func (b *SeekBuffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(b.pos) + offset
	case io.SeekEnd:
		abs = int64(len(b.data)) + offset
	default:
		return 0, errors.New("audiotest: invalid whence")
	}
	if abs < 0 {
		return 0, errNegativeOffset
	}

	b.pos = int(abs)
	return abs, nil
}

// Bytes returns the written content.
func (b *SeekBuffer) Bytes() []byte { return b.data }
