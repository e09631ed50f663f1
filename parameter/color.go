package parameter

// Palette (0xRRGGBB)
const (
	ColorRed       = 0xf25346
	ColorWhite     = 0xd8d0d1
	ColorBrown     = 0x59332e
	ColorPink      = 0xf5986e
	ColorBrownDark = 0x23190f
	ColorBlue      = 0x68c3c0
	ColorCoin      = 0x009999
	ColorFog       = 0xf7d9aa
)
