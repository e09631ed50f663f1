package input

import "github.com/lixenwraith/aviator/vmath"

// TouchTracker follows the steering finger of a touch screen
// The first finger down steers until it lifts; lifting the last finger is one release
type TouchTracker struct {
	id     int
	active bool
	last   vmath.Vec2
}

// Update consumes the touches active this frame, ids and positions in pixels paired by index
// Returns the steering position, whether a finger is down, and whether the last finger just lifted
func (t *TouchTracker) Update(ids []int, positions []vmath.Vec2) (pos vmath.Vec2, touching, released bool) {
	n := min(len(ids), len(positions))
	if n == 0 {
		released = t.active
		t.active = false
		return t.last, false, released
	}

	idx := 0
	if t.active {
		for i := 0; i < n; i++ {
			if ids[i] == t.id {
				idx = i
				break
			}
		}
	}
	t.id = ids[idx]
	t.active = true
	t.last = positions[idx]
	return t.last, true, false
}

// Touching reports whether a finger is currently down
func (t *TouchTracker) Touching() bool {
	return t.active
}
