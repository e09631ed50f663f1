package systems

import (
	"time"

	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/parameter"
	"github.com/lixenwraith/aviator/vmath"
)

// AmbientSystem relaxes the collision flash back to resting light
type AmbientSystem struct{}

func NewAmbientSystem() *AmbientSystem {
	return &AmbientSystem{}
}

func (s *AmbientSystem) Priority() int {
	return parameter.PriorityAmbient
}

func (s *AmbientSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	gs := ctx.State
	gs.AmbientLight = vmath.Approach(gs.AmbientLight, parameter.AmbientLightRest,
		engine.Milliseconds(dt)*parameter.AmbientLightRecovery)
}
