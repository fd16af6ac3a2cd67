// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 maps [-1, 1] onto [-32767, 32767], rounding to nearest.
// Out of range input saturates.
func Float32ToInt16(x float32) int16 {
	x = min(max(x, -1), 1)
	return int16(math.Round(float64(x) * math.MaxInt16))
}
