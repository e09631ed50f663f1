package components

import (
	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/parameter"
)

// Coin is a pooled energy pickup on the orbit
type Coin struct {
	engine.PoolItem
	Orbiter
}

// NewCoin constructs a coin with its own handle
func NewCoin(scene engine.Scene) *Coin {
	h := scene.NewHandle(engine.KindCoin)
	h.SetColor(parameter.ColorCoin)
	return &Coin{PoolItem: engine.NewPoolItem(h)}
}
