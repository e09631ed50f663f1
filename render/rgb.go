package render

import "github.com/gdamore/tcell/v2"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack     = RGB{0, 0, 0}
	RgbSkyDark   = RGB{0x2a, 0x22, 0x1c}
	RgbSkyLight  = RGB{0xf7, 0xd9, 0xaa}
	RgbSeaDeep   = RGB{0x1e, 0x4e, 0x5c}
	RgbHUDText   = RGB{0x59, 0x33, 0x2e}
	RgbHUDMuted  = RGB{0xb0, 0xa0, 0x90}
	RgbEnergyLow = RGB{0xf2, 0x53, 0x46}
)

// FromHex unpacks a 0xRRGGBB value
func FromHex(c uint32) RGB {
	return RGB{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Scale multiplies every channel by f, clamped to 255
func (dst RGB) Scale(f float64) RGB {
	return RGB{R: scaleChannel(dst.R, f), G: scaleChannel(dst.G, f), B: scaleChannel(dst.B, f)}
}

func scaleChannel(c uint8, f float64) uint8 {
	v := float64(c) * f
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v)
}

// Tcell converts to a truecolor tcell color
func (dst RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(dst.R), int32(dst.G), int32(dst.B))
}
