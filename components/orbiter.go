package components

import "github.com/lixenwraith/aviator/vmath"

// Orbiter is the polar placement shared by coins and enemies
// Angle grows as the world scrolls; the entity leaves the play field past π
type Orbiter struct {
	Angle    float64
	Distance float64 // Radius from the sea centre
	Position vmath.Vec3
	Rotation vmath.Vec3
}

// Orbit exposes the embedded placement to generic holders
func (o *Orbiter) Orbit() *Orbiter { return o }

// Place recomputes Position from Angle and Distance
func (o *Orbiter) Place(seaRadius float64) {
	o.Position = vmath.OrbitPosition(o.Angle, o.Distance, seaRadius)
}
