package input

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/aviator/vmath"
)

// Pointer holds the latest normalized pointer position
// Writers are input goroutines, the reader is the frame loop; last value wins
type Pointer struct {
	x atomic.Uint64
	y atomic.Uint64
}

func NewPointer() *Pointer {
	return &Pointer{}
}

// Set stores a normalized position, clamped to [-1,1] on both axes
func (p *Pointer) Set(v vmath.Vec2) {
	p.x.Store(math.Float64bits(vmath.Clamp(v.X, -1, 1)))
	p.y.Store(math.Float64bits(vmath.Clamp(v.Y, -1, 1)))
}

// SetScreen converts a screen position and stores it
func (p *Pointer) SetScreen(px, py, width, height float64) {
	p.Set(FromScreen(px, py, width, height))
}

// Get returns the last stored position, origin before any Set
func (p *Pointer) Get() vmath.Vec2 {
	return vmath.Vec2{
		X: math.Float64frombits(p.x.Load()),
		Y: math.Float64frombits(p.y.Load()),
	}
}

// FromScreen maps screen coordinates to [-1,1] with +Y up
// Degenerate screens map to the origin
func FromScreen(px, py, width, height float64) vmath.Vec2 {
	if width <= 0 || height <= 0 {
		return vmath.Vec2{}
	}
	return vmath.Vec2{
		X: -1 + px/width*2,
		Y: 1 - py/height*2,
	}
}
