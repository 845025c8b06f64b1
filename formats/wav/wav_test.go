// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/subsynth/internal/audiotest"
)

func encodeBytes(t *testing.T, rate, bits int, samples []float32) []byte {
	t.Helper()

	var buf audiotest.SeekBuffer
	if err := Encode(&buf, rate, bits, samples); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		bits      int
		tolerance float64
	}{
		{name: "16-bit", bits: 16, tolerance: 1.0 / 16384},
		{name: "24-bit", bits: 24, tolerance: 1e-6},
	}

	want := make([]float32, 1000)
	for i := range want {
		want[i] = float32(0.8 * math.Sin(float64(i)*0.07))
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := encodeBytes(t, 22050, tt.bits, want)

			src, err := Decoder{}.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if src.SampleRate() != 22050 || src.Channels() != 1 {
				t.Fatalf("format = %d Hz %d ch", src.SampleRate(), src.Channels())
			}

			got, err := audiotest.ReadAll(src, 256)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if len(got) != len(want) {
				t.Fatalf("decoded %d samples, want %d", len(got), len(want))
			}
			for i := range want {
				if d := math.Abs(float64(got[i] - want[i])); d > tt.tolerance {
					t.Fatalf("sample %d = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestDecodeNonSeekable(t *testing.T) {
	t.Parallel()

	data := encodeBytes(t, 8000, 16, []float32{0.25, -0.25})

	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got, _ := audiotest.ReadAll(src, 16)
	if len(got) != 2 {
		t.Errorf("decoded %d samples, want 2", len(got))
	}
}

func TestDecodeInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
	}{
		{name: "empty", input: nil},
		{name: "text", input: []byte("definitely not a riff file at all, just words")},
		{name: "aiff header", input: []byte("FORM\x00\x00\x00\x04AIFF")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.input)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestEncodeRejectsDepth(t *testing.T) {
	t.Parallel()

	var buf audiotest.SeekBuffer
	if err := Encode(&buf, 44100, 8, []float32{0}); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("Encode(8-bit) error = %v, want ErrUnsupportedBitDepth", err)
	}
}

func TestEncodeHeader(t *testing.T) {
	t.Parallel()

	data := encodeBytes(t, 44100, 16, make([]float32, 10))
	if !bytes.HasPrefix(data, []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WAVE")) {
		t.Errorf("header = %q", data[:12])
	}
}
