// SPDX-License-Identifier: EPL-2.0

package player

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/ik5/subsynth/internal/audiotest"
)

func TestReaderEncodesFloat32LE(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(8000, 2, 300)
	src.SetBufSize(64)
	r := newReader(src)

	// odd request sizes split samples across reads
	var data []byte
	p := make([]byte, 13)
	for {
		n, err := r.Read(p)
		data = append(data, p[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
	}

	if len(data) != 300*2*bytesPerSample {
		t.Fatalf("read %d bytes, want %d", len(data), 300*2*bytesPerSample)
	}

	for f := range 300 {
		for ch := range 2 {
			off := (f*2 + ch) * bytesPerSample
			got := math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
			want := float32(f)/300 + float32(ch)
			if got != want {
				t.Fatalf("frame %d ch %d = %v, want %v", f, ch, got, want)
			}
		}
	}
}

func TestReaderEmptySource(t *testing.T) {
	t.Parallel()

	r := newReader(audiotest.NewSilentSource(8000, 1, 0))
	if n, err := r.Read(make([]byte, 16)); n != 0 || err != io.EOF {
		t.Errorf("Read() = %d, %v; want 0, EOF", n, err)
	}
}
