package game

import (
	"math"

	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/parameter"
)

// HUD is the per-frame snapshot the UI draws from
type HUD struct {
	Distance       int
	Level          int
	Energy         float64
	EnergyLow      bool
	EnergyCritical bool
	LevelProgress  float64
	Phase          engine.Phase
	ReplayVisible  bool
}

// HUD reads the current state into a snapshot
func (g *Game) HUD() HUD {
	gs := g.ctx.State
	return HUD{
		Distance:       int(math.Floor(gs.Distance)),
		Level:          gs.Level,
		Energy:         gs.Energy,
		EnergyLow:      gs.Energy < parameter.EnergyLowThreshold,
		EnergyCritical: gs.Energy < parameter.EnergyCriticalThreshold,
		LevelProgress:  gs.LevelProgress(),
		Phase:          gs.Phase,
		ReplayVisible:  gs.Phase == engine.PhaseWaitingReplay,
	}
}
