package render

import (
	"math"

	"github.com/lixenwraith/aviator/engine"
)

// SkyRenderer fills the play area with the ambient-lit sky and draws clouds
type SkyRenderer struct{}

func NewSkyRenderer() *SkyRenderer { return &SkyRenderer{} }

func (r *SkyRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	sky := RgbSkyDark.Blend(RgbSkyLight, ctx.Ambient+0.3)
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			buf.SetBgOnly(x, y, sky)
		}
	}

	for _, d := range ctx.Drawable {
		if d.Kind != engine.KindCloudBlock {
			continue
		}
		col, row, ok := ctx.View.Project(d.World.Position)
		if !ok || row < ctx.View.Top {
			continue
		}
		buf.SetFgOnly(col, row, '▒', d.Color.Scale(0.6+ctx.Ambient*0.5))
	}
}

// SeaRenderer draws the sea disc below its silhouette and the wave foam on top
type SeaRenderer struct{}

func NewSeaRenderer() *SeaRenderer { return &SeaRenderer{} }

func (r *SeaRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	for _, d := range ctx.Drawable {
		if d.Kind == engine.KindSea {
			r.renderSea(ctx, buf, d)
			return
		}
	}
}

func (r *SeaRenderer) renderSea(ctx RenderContext, buf *RenderBuffer, d Drawable) {
	center := d.World.Position
	radius := seaRadius(d)
	if radius <= 0 {
		return
	}
	surface := d.Color.Scale(0.5 + ctx.Ambient*0.5)
	deep := RgbSeaDeep.Scale(0.5 + ctx.Ambient*0.5)
	v := ctx.View

	for col := 0; col < v.Cols; col++ {
		dx := v.WorldX(col, center.Z) - center.X
		if math.Abs(dx) >= radius {
			continue
		}
		top := center
		top.Y += math.Sqrt(radius*radius - dx*dx)
		top.X += dx
		_, row, ok := v.Project(top)
		if !ok {
			continue
		}
		for y := max(row, v.Top); y < v.Top+v.Rows; y++ {
			depth := float64(y-row) / float64(v.Rows)
			buf.SetBgOnly(col, y, surface.Blend(deep, depth*2))
		}
	}

	foam := d.Color.Blend(RGB{0xff, 0xff, 0xff}, 0.6)
	for _, p := range d.Vertices {
		if p.Y < center.Y {
			continue
		}
		col, row, ok := v.Project(p)
		if !ok || row < v.Top {
			continue
		}
		buf.SetFgOnly(col, row, '~', foam)
	}
}

// seaRadius estimates the cylinder radius from its vertices, falling back to the centre depth
func seaRadius(d Drawable) float64 {
	if len(d.Vertices) == 0 {
		return -d.World.Position.Y
	}
	sum := 0.0
	for _, p := range d.Vertices {
		sum += math.Hypot(p.X-d.World.Position.X, p.Y-d.World.Position.Y)
	}
	return sum / float64(len(d.Vertices))
}

// EntityRenderer draws the aircraft, coins and enemies
type EntityRenderer struct{}

func NewEntityRenderer() *EntityRenderer { return &EntityRenderer{} }

func (r *EntityRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	for _, d := range ctx.Drawable {
		col, row, ok := ctx.View.Project(d.World.Position)
		if !ok || row < ctx.View.Top {
			continue
		}
		switch d.Kind {
		case engine.KindCoin:
			buf.SetFgOnly(col, row, 'o', d.Color)
		case engine.KindEnemy:
			buf.SetFgOnly(col, row, '◆', d.Color)
		case engine.KindAircraft:
			fuselage := d.Color
			buf.SetFgOnly(col-2, row, '═', fuselage)
			buf.SetFgOnly(col-1, row, '╪', fuselage)
			buf.SetFgOnly(col, row, '█', fuselage)
			buf.SetFgOnly(col+1, row, '▶', fuselage)
		case engine.KindPropeller:
			glyph := '|'
			if math.Cos(d.Spin) < 0 {
				glyph = '-'
			}
			buf.SetFgOnly(col, row, glyph, d.Color)
		}
	}
}

// ParticleRenderer draws burst debris while it is still large enough to see
type ParticleRenderer struct{}

func NewParticleRenderer() *ParticleRenderer { return &ParticleRenderer{} }

func (r *ParticleRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	for _, d := range ctx.Drawable {
		if d.Kind != engine.KindParticle || d.World.Scale.X < 0.05 {
			continue
		}
		col, row, ok := ctx.View.Project(d.World.Position)
		if !ok || row < ctx.View.Top {
			continue
		}
		glyph := '*'
		if d.World.Scale.X < 0.5 {
			glyph = '·'
		}
		buf.SetFgOnly(col, row, glyph, d.Color)
	}
}
