package engine

import (
	"math/rand/v2"

	"github.com/lixenwraith/aviator/config"
	"github.com/lixenwraith/aviator/events"
	"github.com/lixenwraith/aviator/status"
	"github.com/lixenwraith/aviator/vmath"
)

// PointerSource yields the latest normalized pointer, x right and y up in [-1,1]
type PointerSource interface {
	Get() vmath.Vec2
}

// GameContext is the single root every system receives
type GameContext struct {
	// ===== Immutable After Init =====

	State   *GameState // Replaced in place on replay, the pointer itself never changes
	Config  config.Config
	Scene   Scene
	Rand    *rand.Rand
	Status  *status.Registry
	pointer PointerSource
	queue   *events.EventQueue

	// ===== Main-Loop Exclusive =====

	FrameNumber int64
	Pointer     vmath.Vec2 // Sampled once per frame in BeginFrame
}

// NewGameContext assembles a context; a nil pointer source reads as centred
func NewGameContext(cfg config.Config, scene Scene, pointer PointerSource, rng *rand.Rand) *GameContext {
	state := NewGameState(cfg)
	return &GameContext{
		State:   &state,
		Config:  cfg,
		Scene:   scene,
		Rand:    rng,
		Status:  status.NewRegistry(),
		pointer: pointer,
		queue:   events.NewEventQueue(),
	}
}

// BeginFrame advances the frame counter and samples the pointer
func (ctx *GameContext) BeginFrame() {
	ctx.FrameNumber++
	if ctx.pointer != nil {
		ctx.Pointer = ctx.pointer.Get()
	}
	ctx.Status.Ints.Get(status.KeyFrames).Store(ctx.FrameNumber)
}

// PushEvent queues an event stamped with the current frame
func (ctx *GameContext) PushEvent(t events.EventType, payload any) {
	ctx.queue.Push(events.GameEvent{Type: t, Payload: payload, Frame: ctx.FrameNumber})
}

// EventQueue exposes the queue for router construction
func (ctx *GameContext) EventQueue() *events.EventQueue {
	return ctx.queue
}

// Chance returns a uniform float in [0,1) from the session source
func (ctx *GameContext) Chance() float64 {
	return ctx.Rand.Float64()
}
