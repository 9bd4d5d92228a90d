// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FloatToPCM quantizes x (clamped to [-1, 1]) to a signed sample of bitDepth
// bits. It is the exact inverse of PCMToFloat: +1.0 saturates at the largest
// positive value. 8-bit results are signed; WAV stores them with a +128
// offset.
func FloatToPCM(x float32, bitDepth int) int32 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	scale := float64(int64(1) << (bitDepth - 1))
	v := math.Round(float64(x) * scale)

	return int32(min(max(v, -scale), scale-1))
}

// PCMToFloat maps a signed sample of bitDepth bits to [-1, 1).
func PCMToFloat(v int32, bitDepth int) float32 {
	return float32(float64(v) / float64(int64(1)<<(bitDepth-1)))
}

// CubicInterpolate is a Catmull-Rom spline between y1 (x=0) and y2 (x=1);
// y0 and y3 are the outer neighbours.
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}
