package systems

import (
	"time"

	"github.com/lixenwraith/aviator/components"
	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/parameter"
	"github.com/lixenwraith/aviator/vmath"
)

// SkySystem turns the cloud ring with world speed and tumbles cloud blocks
type SkySystem struct {
	sky *components.Sky
}

func NewSkySystem(ctx *engine.GameContext) *SkySystem {
	return &SkySystem{sky: components.NewSky(ctx.Scene, ctx.Rand, ctx.State.SeaRadius)}
}

func (s *SkySystem) Priority() int {
	return parameter.PrioritySky
}

// Sky returns the animated cloud ring
func (s *SkySystem) Sky() *components.Sky {
	return s.sky
}

func (s *SkySystem) Update(ctx *engine.GameContext, dt time.Duration) {
	ms := engine.Milliseconds(dt)
	sky := s.sky

	for c := range sky.Clouds {
		blocks := sky.Clouds[c].Blocks
		for i := range blocks {
			b := &blocks[i]
			spin := parameter.CloudBlockSpin * float64(i+1)
			b.Rotation.Z += ctx.Rand.Float64() * spin
			b.Rotation.Y += ctx.Rand.Float64() * spin
			b.Handle.SetRotation(b.Rotation.X, b.Rotation.Y, b.Rotation.Z)
		}
	}

	sky.Rotation = vmath.WrapAngle(sky.Rotation + ctx.State.Speed*ms)
	sky.Handle.SetRotation(0, 0, sky.Rotation)
}
