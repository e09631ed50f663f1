package render

import (
	"math"

	"github.com/lixenwraith/aviator/components"
	"github.com/lixenwraith/aviator/vmath"
)

const (
	// hudRows is reserved at the top for the status line and level bar
	hudRows = 2
	// viewZoom widens the perspective so the sea line and the flight band fit in a terminal
	viewZoom = 1.4
	// viewDrop lowers the look-at point below the camera height
	viewDrop = 20.0
	// cellAspect is terminal cell height over width
	cellAspect = 2.0
)

// Viewport projects world space onto the terminal play area
type Viewport struct {
	Cols, Rows int // play area size
	Top        int // first play row
	eye        vmath.Vec3
	tanHalf    float64
	aspect     float64
}

// NewViewport sizes the projection for a terminal and camera
func NewViewport(width, height int, cam components.Camera) Viewport {
	return newViewport(max(width, 1), max(height-hudRows, 1), hudRows, cellAspect, cam)
}

// NewPixelViewport sizes the projection for a square-pixel window
func NewPixelViewport(width, height int, cam components.Camera) Viewport {
	return newViewport(max(width, 1), max(height, 1), 0, 1, cam)
}

func newViewport(cols, rows, top int, aspect float64, cam components.Camera) Viewport {
	return Viewport{
		Cols:    cols,
		Rows:    rows,
		Top:     top,
		eye:     vmath.V3(cam.Position.X, cam.Position.Y-viewDrop, cam.Position.Z),
		tanHalf: math.Tan(cam.FOV*math.Pi/360) * viewZoom,
		aspect:  float64(cols) / (float64(rows) * aspect),
	}
}

// ProjectF maps a world point to fractional screen units; ok is false behind the eye
func (v Viewport) ProjectF(p vmath.Vec3) (x, y float64, ok bool) {
	depth := v.eye.Z - p.Z
	if depth <= 1 {
		return 0, 0, false
	}
	half := depth * v.tanHalf
	nx := (p.X - v.eye.X) / (half * v.aspect)
	ny := (p.Y - v.eye.Y) / half
	return (nx + 1) / 2 * float64(v.Cols), float64(v.Top) + (1-ny)/2*float64(v.Rows), true
}

// Project maps a world point to a cell
func (v Viewport) Project(p vmath.Vec3) (col, row int, ok bool) {
	x, y, ok := v.ProjectF(p)
	if !ok {
		return 0, 0, false
	}
	return int(math.Floor(x)), int(math.Floor(y)), true
}

// WorldX returns the world x under a column at depth z
func (v Viewport) WorldX(col int, z float64) float64 {
	half := (v.eye.Z - z) * v.tanHalf
	nx := (float64(col)+0.5)/float64(v.Cols)*2 - 1
	return v.eye.X + nx*half*v.aspect
}

// UnitsPerRow is the world height of one row at depth z
func (v Viewport) UnitsPerRow(z float64) float64 {
	return 2 * (v.eye.Z - z) * v.tanHalf / float64(v.Rows)
}
