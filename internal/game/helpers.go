package game

import "math"

// atan2Deg returns the planar angle from x toward y, in degrees.
func atan2Deg(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)) * 180 / math.Pi)
}
