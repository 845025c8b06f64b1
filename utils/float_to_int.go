// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 maps [-1, 1] onto the symmetric int16 range, clamping
// anything outside it. NaN becomes silence.
func Float32ToInt16(x float32) int16 {
	return int16(FloatToPCM(x, 16))
}

// FloatToPCM scales x to a signed integer of the given bit depth, rounding to
// nearest. The result is clamped to +/-(2^(bits-1)-1).
func FloatToPCM(x float32, bits int) int {
	if math.IsNaN(float64(x)) {
		return 0
	}
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	full := float64(int(1)<<(bits-1) - 1)
	return int(math.Round(float64(x) * full))
}

// PCMToFloat is the inverse of FloatToPCM for a sample of the given depth.
func PCMToFloat(v, bits int) float32 {
	return float32(v) / float32(int(1)<<(bits-1))
}

// Peak returns the largest absolute sample in buf.
func Peak(buf []float32) float32 {
	var peak float32
	for _, v := range buf {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}

// Normalize scales buf in place so its peak is 1. Silent buffers are left
// untouched.
func Normalize(buf []float32) {
	peak := Peak(buf)
	if peak == 0 {
		return
	}

	gain := 1 / peak
	for i := range buf {
		buf[i] *= gain
	}
}
