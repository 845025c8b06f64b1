// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/ik5/subsynth/internal/audiotest"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	want := make([]float32, 2048)
	for i := range want {
		want[i] = float32(0.6 * math.Sin(float64(i)*0.013))
	}

	for _, bits := range []int{16, 24} {
		var out audiotest.SeekBuffer
		if err := Encode(&out, 48000, bits, want); err != nil {
			t.Fatalf("%d-bit Encode() error = %v", bits, err)
		}

		data := out.Bytes()
		if !bytes.Equal(data[:4], []byte("FORM")) || !bytes.Equal(data[8:12], []byte("AIFF")) {
			t.Fatalf("%d-bit header = %q", bits, data[:12])
		}

		src, err := Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("%d-bit Decode() error = %v", bits, err)
		}
		if src.SampleRate() != 48000 || src.Channels() != 1 {
			t.Fatalf("%d-bit format = %d Hz %d ch", bits, src.SampleRate(), src.Channels())
		}

		got, err := audiotest.ReadAll(src, 500)
		if err != nil {
			t.Fatalf("%d-bit ReadAll() error = %v", bits, err)
		}
		if len(got) != len(want) {
			t.Fatalf("%d-bit decoded %d samples, want %d", bits, len(got), len(want))
		}
		for i := range want {
			if math.Abs(float64(got[i]-want[i])) > 1e-4 {
				t.Fatalf("%d-bit sample %d = %v, want %v", bits, i, got[i], want[i])
			}
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	t.Parallel()

	for _, input := range [][]byte{nil, []byte("RIFF\x00\x00\x00\x00WAVEfmt "), []byte("hello")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(input)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", input)
		}
	}
}

func TestEncodeRejectsDepth(t *testing.T) {
	t.Parallel()

	var out audiotest.SeekBuffer
	if err := Encode(&out, 44100, 32, nil); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("Encode(32-bit) error = %v, want ErrUnsupportedBitDepth", err)
	}
}
