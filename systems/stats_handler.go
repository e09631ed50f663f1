package systems

import (
	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/events"
	"github.com/lixenwraith/aviator/status"
)

// StatsHandler publishes lifecycle metrics for the front ends
type StatsHandler struct{}

func NewStatsHandler() *StatsHandler {
	return &StatsHandler{}
}

func (h *StatsHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventGameOver,
		events.EventWaitingReplay,
		events.EventReplay,
	}
}

func (h *StatsHandler) HandleEvent(ctx *engine.GameContext, event events.GameEvent) {
	reg := ctx.Status
	switch event.Type {
	case events.EventGameOver:
		if p, ok := event.Payload.(*events.SessionPayload); ok {
			reg.Floats.Get(status.KeyBestDistance).Max(p.Distance)
		}
	case events.EventReplay:
		reg.Ints.Get(status.KeyRuns).Add(1)
	}
	reg.Strings.Get(status.KeyPhase).Store(ctx.State.Phase.String())
}
