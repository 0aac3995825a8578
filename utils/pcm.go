// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 converts a normalized sample in [-1, 1] to signed 16-bit PCM.
// Values outside the range are clamped first; quantization rounds half away
// from zero. The positive scale is 32767 so +1.0 cannot overflow.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(math.Round(float64(x) * 32767.0))
}

// Int16ToFloat32 converts a signed 16-bit PCM sample to a normalized
// float32 in [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
