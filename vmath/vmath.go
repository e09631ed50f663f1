package vmath

import "math"

// TwoPi is a full turn in radians
const TwoPi = 2 * math.Pi

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates a→b by t (unclamped)
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Normalize clamps v to the input range and rescales it linearly into the output range
// Input bounds may be given in either order; outMin > outMax yields an inverted mapping
// Panics on a zero-width input range
func Normalize(v, inMin, inMax, outMin, outMax float64) float64 {
	dv := inMax - inMin
	if dv == 0 {
		panic("vmath: normalize with zero-width input range")
	}
	lo, hi := inMin, inMax
	if lo > hi {
		lo, hi = hi, lo
	}
	nv := Clamp(v, lo, hi)
	pc := (nv - inMin) / dv
	return outMin + pc*(outMax-outMin)
}

// WrapAngle folds angles at or above a full turn back into [0, 2π)
// Negative angles are left untouched: spawn offsets trail behind the horizon and climb through zero
func WrapAngle(a float64) float64 {
	if a >= TwoPi {
		a = math.Mod(a, TwoPi)
	}
	return a
}

// Approach moves current toward target by the fraction rate, clamped to [0,1]
// Used for first-order lag easing (pose, camera, speed, light)
func Approach(current, target, rate float64) float64 {
	if rate > 1 {
		rate = 1
	}
	if rate < 0 {
		rate = 0
	}
	return current + (target-current)*rate
}
