package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/aviator/parameter"
)

const energyBarWidth = 20

// HUDRenderer draws distance, level, the level progress bar and the energy bar
type HUDRenderer struct{}

func NewHUDRenderer() *HUDRenderer { return &HUDRenderer{} }

func (r *HUDRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	h := ctx.HUD
	x := buf.Text(1, 0, "DISTANCE ", RgbHUDMuted, false)
	x = buf.Text(x, 0, fmt.Sprintf("%06d", h.Distance), RgbHUDText, true)
	x = buf.Text(x+3, 0, "LEVEL ", RgbHUDMuted, false)
	x = buf.Text(x, 0, fmt.Sprintf("%d", h.Level), RgbHUDText, true)
	x = buf.Text(x+3, 0, "ENERGY ", RgbHUDMuted, false)

	blinkOff := h.EnergyCritical && (ctx.Frame/parameter.EnergyBlinkFrames)%2 == 1
	if !blinkOff {
		fg := RgbHUDText
		if h.EnergyLow {
			fg = RgbEnergyLow
		}
		filled := int(math.Round(h.Energy / parameter.EnergyMax * energyBarWidth))
		bar := strings.Repeat("█", filled) + strings.Repeat("░", energyBarWidth-filled)
		buf.Text(x, 0, bar, fg, false)
	}

	if ctx.Muted {
		buf.Text(buf.Width()-8, 0, "♪ muted", RgbHUDMuted, false)
	}

	// Level circle stand-in: progress across the whole second row
	filled := int(h.LevelProgress * float64(buf.Width()))
	for col := 0; col < buf.Width(); col++ {
		if col < filled {
			buf.SetFgOnly(col, 1, '━', RgbEnergyLow)
		} else {
			buf.SetFgOnly(col, 1, '─', RgbHUDMuted)
		}
	}
}

// OverlayRenderer shows the replay prompt and the pause banner
type OverlayRenderer struct{}

func NewOverlayRenderer() *OverlayRenderer { return &OverlayRenderer{} }

func (r *OverlayRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	mid := ctx.View.Top + ctx.View.Rows/2
	switch {
	case ctx.HUD.ReplayVisible:
		centered(buf, mid, "CLICK OR PRESS SPACE TO REPLAY", RgbHUDText)
	case ctx.Paused:
		centered(buf, mid, "PAUSED", RgbHUDText)
	}
}

func centered(buf *RenderBuffer, row int, s string, fg RGB) {
	n := len([]rune(s))
	x := (buf.Width() - n) / 2
	for i := -1; i <= n; i++ {
		buf.SetBgOnly(x+i, row, RgbSkyLight)
	}
	buf.Text(x, row, s, fg, true)
}

// DebugRenderer lists the status registry down the right edge
type DebugRenderer struct {
	visible bool
}

func NewDebugRenderer() *DebugRenderer { return &DebugRenderer{} }

func (r *DebugRenderer) IsVisible() bool { return r.visible }

// Toggle flips visibility and reports the new state
func (r *DebugRenderer) Toggle() bool {
	r.visible = !r.visible
	return r.visible
}

func (r *DebugRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	width := 0
	for _, m := range ctx.Metrics {
		width = max(width, len(m))
	}
	x := buf.Width() - width - 1
	for i, m := range ctx.Metrics {
		row := ctx.View.Top + i
		if row >= buf.Height() {
			break
		}
		for c := x - 1; c < buf.Width(); c++ {
			buf.SetBgOnly(c, row, RGBBlack)
		}
		buf.Text(x, row, m, RgbHUDMuted, false)
	}
}
