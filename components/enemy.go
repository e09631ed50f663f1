package components

import (
	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/parameter"
)

// Enemy is a pooled hazard on the orbit
type Enemy struct {
	engine.PoolItem
	Orbiter
}

// NewEnemy constructs an enemy with its own handle
func NewEnemy(scene engine.Scene) *Enemy {
	h := scene.NewHandle(engine.KindEnemy)
	h.SetColor(parameter.ColorRed)
	return &Enemy{PoolItem: engine.NewPoolItem(h)}
}
