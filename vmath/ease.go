package vmath

// EaseFunc maps linear progress t in [0,1] to eased progress
type EaseFunc func(t float64) float64

// EaseLinear is the identity curve
func EaseLinear(t float64) float64 { return t }

// EaseOutQuad decelerates quadratically
func EaseOutQuad(t float64) float64 {
	u := 1 - t
	return 1 - u*u
}

// EaseOutCubic decelerates cubically, stronger settle than quad
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
