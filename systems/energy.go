package systems

import (
	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/events"
)

// drainEnergy removes energy and announces the end of the run when it empties the bar
func drainEnergy(ctx *engine.GameContext, v float64) {
	gs := ctx.State
	was := gs.Phase
	gs.RemoveEnergy(v)
	if was == engine.PhasePlaying && gs.Phase == engine.PhaseGameOver {
		ctx.PushEvent(events.EventGameOver, &events.SessionPayload{Distance: gs.Distance, Level: gs.Level})
	}
}
