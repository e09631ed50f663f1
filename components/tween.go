package components

import "github.com/lixenwraith/aviator/vmath"

// Tween is an explicit eased transition advanced by its owning system
// All times are milliseconds of game time
type Tween struct {
	From     float64
	To       float64
	Delay    float64 // Value holds at From until Elapsed passes Delay
	Duration float64
	Elapsed  float64
	Ease     vmath.EaseFunc
}

// NewTween creates a transition from -> to; nil ease selects linear
func NewTween(from, to, delay, duration float64, ease vmath.EaseFunc) Tween {
	if ease == nil {
		ease = vmath.EaseLinear
	}
	return Tween{From: from, To: to, Delay: delay, Duration: duration, Ease: ease}
}

// Value returns the eased value at the current elapsed time
func (t *Tween) Value() float64 {
	local := t.Elapsed - t.Delay
	switch {
	case t.Done():
		return t.To
	case local <= 0:
		return t.From
	}
	return vmath.Lerp(t.From, t.To, t.Ease(local/t.Duration))
}

// Done reports whether the transition reached its target
func (t *Tween) Done() bool {
	return t.Elapsed >= t.Delay+t.Duration
}

// Advance moves the transition forward by dt and returns the new value and completion
func (t *Tween) Advance(dt float64) (float64, bool) {
	t.Elapsed += dt
	return t.Value(), t.Done()
}
