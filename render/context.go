package render

import (
	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/game"
	"github.com/lixenwraith/aviator/vmath"
)

// Drawable is a node captured for one frame
type Drawable struct {
	Kind     engine.Kind
	World    Transform
	Color    RGB
	Spin     float64      // local x rotation, the propeller blade angle
	Vertices []vmath.Vec3 // world-space, sea only
}

// RenderContext carries everything a renderer reads for one frame
type RenderContext struct {
	Frame    int64
	View     Viewport
	HUD      game.HUD
	Ambient  float64
	Paused   bool
	Muted    bool
	Metrics  []string
	Drawable []Drawable
}

// NewRenderContext snapshots a session for drawing
func NewRenderContext(g *game.Game, scene *SceneGraph, width, height int) RenderContext {
	ctx := g.Context()
	return RenderContext{
		Frame:    ctx.FrameNumber,
		View:     NewViewport(width, height, g.Aircraft().Camera()),
		HUD:      g.HUD(),
		Ambient:  ctx.State.AmbientLight,
		Paused:   g.Paused(),
		Metrics:  ctx.Status.Snapshot(),
		Drawable: Capture(scene),
	}
}

// Capture flattens the visible scene graph into world-space drawables
func Capture(scene *SceneGraph) []Drawable {
	var out []Drawable
	scene.Walk(func(n *Node, world Transform) {
		d := Drawable{Kind: n.kind, World: world, Color: n.color, Spin: n.rotation.X}
		if n.kind == engine.KindSea && len(n.vertices) > 0 {
			d.Vertices = make([]vmath.Vec3, len(n.vertices))
			for i, v := range n.vertices {
				d.Vertices[i] = world.Apply(v)
			}
		}
		out = append(out, d)
	})
	return out
}
