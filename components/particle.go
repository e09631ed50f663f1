package components

import (
	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/vmath"
)

// Particle is one fragment of an explosion burst
// Position completion retires the particle; rotation and scale finish earlier or together
type Particle struct {
	engine.PoolItem
	Origin vmath.Vec3
	Color  uint32
	RotX   Tween
	RotY   Tween
	Scale  Tween
	PosX   Tween
	PosY   Tween
}

// NewParticle constructs a particle with its own handle
func NewParticle(scene engine.Scene) *Particle {
	return &Particle{PoolItem: engine.NewPoolItem(scene.NewHandle(engine.KindParticle))}
}

// Advance steps every transition by dt ms and writes the transform
// Returns true once the position transition has completed
func (p *Particle) Advance(dt float64) bool {
	rx, _ := p.RotX.Advance(dt)
	ry, _ := p.RotY.Advance(dt)
	s, _ := p.Scale.Advance(dt)
	x, doneX := p.PosX.Advance(dt)
	y, doneY := p.PosY.Advance(dt)

	h := p.Handle()
	h.SetRotation(rx, ry, 0)
	h.SetScale(s, s, s)
	h.SetPosition(x, y, p.Origin.Z)
	return doneX && doneY
}
