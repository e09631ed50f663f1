package engine

import (
	"slices"
	"time"
)

// System is one stage of the frame update
type System interface {
	Update(ctx *GameContext, dt time.Duration)
	Priority() int // Lower values run first
}

// Resetter is implemented by systems holding per-session state cleared on replay
type Resetter interface {
	Reset(ctx *GameContext)
}

// Systems runs registered systems in priority order, ties keep registration order
type Systems struct {
	list []System
}

// Add registers systems and restores priority order
func (s *Systems) Add(systems ...System) {
	s.list = append(s.list, systems...)
	slices.SortStableFunc(s.list, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// Update runs one frame through every system
func (s *Systems) Update(ctx *GameContext, dt time.Duration) {
	for _, sys := range s.list {
		sys.Update(ctx, dt)
	}
}

// Reset notifies every Resetter in priority order
func (s *Systems) Reset(ctx *GameContext) {
	for _, sys := range s.list {
		if r, ok := sys.(Resetter); ok {
			r.Reset(ctx)
		}
	}
}

// All returns the systems in execution order
func (s *Systems) All() []System {
	return s.list
}
