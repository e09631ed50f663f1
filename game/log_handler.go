package game

import (
	"log"

	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/events"
)

// LogHandler writes lifecycle events to the debug log
type LogHandler struct{}

func NewLogHandler() *LogHandler {
	return &LogHandler{}
}

func (h *LogHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventLevelUp,
		events.EventGameOver,
		events.EventWaitingReplay,
		events.EventReplay,
	}
}

func (h *LogHandler) HandleEvent(ctx *engine.GameContext, event events.GameEvent) {
	switch p := event.Payload.(type) {
	case *events.LevelUpPayload:
		log.Printf("frame %d: level up to %d", event.Frame, p.Level)
	case *events.SessionPayload:
		log.Printf("frame %d: %s at distance %.0f level %d", event.Frame, event.Type, p.Distance, p.Level)
	default:
		log.Printf("frame %d: %s", event.Frame, event.Type)
	}
}
