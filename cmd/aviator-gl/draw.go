package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/game"
	"github.com/lixenwraith/aviator/parameter"
	"github.com/lixenwraith/aviator/render"
)

func rgba(c render.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func fromColor(c color.RGBA) render.RGB {
	return render.RGB{R: c.R, G: c.G, B: c.B}
}

// drawFrame paints one frame of the session in window pixels
func drawFrame(screen *ebiten.Image, g *game.Game, scene *render.SceneGraph, width, height int, debug bool) {
	ctx := g.Context()
	view := render.NewPixelViewport(width, height, g.Aircraft().Camera())
	light := 0.5 + ctx.State.AmbientLight*0.5

	sky := fromColor(colornames.Saddlebrown).Blend(fromColor(colornames.Navajowhite), ctx.State.AmbientLight+0.3)
	screen.Fill(rgba(sky))

	drawables := render.Capture(scene)
	for _, d := range drawables {
		if d.Kind == engine.KindSea {
			drawSea(screen, view, d, light)
		}
	}

	for _, d := range drawables {
		x, y, ok := view.ProjectF(d.World.Position)
		if !ok {
			continue
		}
		fx, fy := float32(x), float32(y)
		size := float32(pixelSize(view, d))
		switch d.Kind {
		case engine.KindCloudBlock:
			vector.DrawFilledRect(screen, fx-size/2, fy-size/2, size, size, rgba(d.Color.Scale(light)), true)
		case engine.KindCoin:
			vector.DrawFilledCircle(screen, fx, fy, max(size/2, 2), rgba(d.Color), true)
		case engine.KindEnemy:
			vector.DrawFilledCircle(screen, fx, fy, max(size/2, 3), rgba(d.Color), true)
		case engine.KindParticle:
			if size > 0.5 {
				vector.DrawFilledRect(screen, fx-size/2, fy-size/2, size, size, rgba(d.Color), true)
			}
		case engine.KindAircraft:
			drawAircraft(screen, fx, fy, size, d)
		case engine.KindPropeller:
			blade := size * float32(math.Cos(d.Spin))
			vector.StrokeLine(screen, fx, fy-blade, fx, fy+blade, 2, rgba(d.Color), true)
		}
	}

	drawHUD(screen, g.HUD(), ctx.FrameNumber, width, height, g.Paused())
	if debug {
		for i, m := range ctx.Status.Snapshot() {
			ebitenutil.DebugPrintAt(screen, m, width-180, 40+i*16)
		}
	}
}

// pixelSize is the projected height of a 20-unit cube scaled by the node
func pixelSize(view render.Viewport, d render.Drawable) float64 {
	return 20 * d.World.Scale.Y / view.UnitsPerRow(d.World.Position.Z)
}

func drawSea(screen *ebiten.Image, view render.Viewport, d render.Drawable, light float64) {
	cx, cy, ok := view.ProjectF(d.World.Position)
	if !ok {
		return
	}
	radius := -d.World.Position.Y
	if len(d.Vertices) > 0 {
		sum := 0.0
		for _, p := range d.Vertices {
			sum += math.Hypot(p.X-d.World.Position.X, p.Y-d.World.Position.Y)
		}
		radius = sum / float64(len(d.Vertices))
	}
	r := radius / view.UnitsPerRow(d.World.Position.Z)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), rgba(d.Color.Scale(light)), true)

	foam := rgba(d.Color.Blend(fromColor(colornames.Ivory), 0.5))
	for _, p := range d.Vertices {
		if p.Y < d.World.Position.Y {
			continue
		}
		if x, y, ok := view.ProjectF(p); ok {
			vector.DrawFilledCircle(screen, float32(x), float32(y), 2, foam, true)
		}
	}
}

func drawAircraft(screen *ebiten.Image, x, y, size float32, d render.Drawable) {
	body := rgba(d.Color)
	length := size * 3
	sin, cos := math.Sincos(d.World.RotZ)
	dx, dy := float32(cos)*length/2, -float32(sin)*length/2
	vector.StrokeLine(screen, x-dx, y-dy, x+dx, y+dy, size*0.8, body, true)
	vector.StrokeLine(screen, x-dy*0.6, y+dx*0.6, x+dy*0.6, y-dx*0.6, size*0.3, rgba(fromColor(colornames.Whitesmoke)), true)
	vector.DrawFilledRect(screen, x-dx-size*0.3, y-dy-size*0.6, size*0.4, size*0.6, body, true)
}

func drawHUD(screen *ebiten.Image, h game.HUD, frame int64, width, height int, paused bool) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("DISTANCE %06d   LEVEL %d", h.Distance, h.Level), 16, 12)

	const barW, barH = 200, 10
	x := float32(width - barW - 16)
	vector.DrawFilledRect(screen, x, 16, barW, barH, colornames.Darkslategray, true)
	if !(h.EnergyCritical && (frame/parameter.EnergyBlinkFrames)%2 == 1) {
		fill := color.Color(colornames.Seagreen)
		if h.EnergyLow {
			fill = colornames.Indianred
		}
		vector.DrawFilledRect(screen, x, 16, float32(h.Energy/parameter.EnergyMax)*barW, barH, fill, true)
	}

	// Level progress ring
	cx, cy, r := float32(width/2), float32(28), float32(14)
	vector.StrokeCircle(screen, cx, cy, r, 2, colornames.Wheat, true)
	steps := int(h.LevelProgress * 48)
	for i := 0; i < steps; i++ {
		a0 := float64(i)/48*2*math.Pi - math.Pi/2
		a1 := float64(i+1)/48*2*math.Pi - math.Pi/2
		vector.StrokeLine(screen,
			cx+r*float32(math.Cos(a0)), cy+r*float32(math.Sin(a0)),
			cx+r*float32(math.Cos(a1)), cy+r*float32(math.Sin(a1)),
			3, colornames.Indianred, true)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", h.Level), int(cx)-3, int(cy)-8)

	switch {
	case h.ReplayVisible:
		ebitenutil.DebugPrintAt(screen, "CLICK TO REPLAY", width/2-45, height/2)
	case paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", width/2-18, height/2)
	}
}
