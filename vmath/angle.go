package vmath

import "math"

// AngleDifference returns the signed shortest rotation from a to b in [-π, π)
func AngleDifference(a, b float64) float64 {
	dif := math.Mod(b-a+math.Pi, 2*math.Pi)
	if dif < 0 {
		dif += 2 * math.Pi
	}
	return dif - math.Pi
}

// WrapAngle maps a into (-π, π]
func WrapAngle(a float64) float64 {
	w := math.Mod(a+math.Pi, 2*math.Pi)
	if w <= 0 {
		w += 2 * math.Pi
	}
	return w - math.Pi
}

// LerpAngle moves from toward to along the shortest arc by fraction t,
// t is clamped to [0, 1] so the result never overshoots
func LerpAngle(from, to, t float64) float64 {
	if t <= 0 {
		return from
	}
	return WrapAngle(from + AngleDifference(from, to)*Clamp(t, 0, 1))
}
