package systems

import (
	"time"

	"github.com/lixenwraith/aviator/components"
	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/parameter"
	"github.com/lixenwraith/aviator/vmath"
)

// SeaSystem rolls the sea cylinder with world speed and ripples its surface
type SeaSystem struct {
	sea *components.Sea
}

func NewSeaSystem(ctx *engine.GameContext) *SeaSystem {
	return &SeaSystem{sea: components.NewSea(ctx.Scene, ctx.Rand, ctx.State.SeaRadius)}
}

func (s *SeaSystem) Priority() int {
	return parameter.PrioritySea
}

// Sea returns the animated sea
func (s *SeaSystem) Sea() *components.Sea {
	return s.sea
}

func (s *SeaSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	ms := engine.Milliseconds(dt)
	sea := s.sea

	for i := range sea.Waves {
		w := &sea.Waves[i]
		if sea.Surface != nil {
			v := w.Offset()
			sea.Surface.SetVertex(i, v.X, v.Y, v.Z)
		}
		w.Angle += w.Speed * ms
	}

	sea.Rotation = vmath.WrapAngle(sea.Rotation + ctx.State.Speed*ms + parameter.SeaRollPerFrame)
	sea.Handle.SetRotation(0, 0, sea.Rotation)
}
