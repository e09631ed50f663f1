package vmath

import "math"

// OrbitPosition places an entity on the flight corridor cross-section
// The circle of radius r is centred seaRadius below the origin so its lowest point touches the sea
// Gameplay happens on the upper arc, roughly angle in (0, π)
func OrbitPosition(angle, radius, seaRadius float64) Vec3 {
	return Vec3{
		X: math.Cos(angle) * radius,
		Y: -seaRadius + math.Sin(angle)*radius,
	}
}

// OrbitAdvance steps an orbital angle by rate*dt and wraps it
func OrbitAdvance(angle, rate, dt float64) float64 {
	return WrapAngle(angle + rate*dt)
}

// RingPosition returns the point at angle a on a ring of radius r around the origin
func RingPosition(angle, radius float64) (x, y float64) {
	return math.Cos(angle) * radius, math.Sin(angle) * radius
}
