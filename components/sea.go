package components

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/parameter"
	"github.com/lixenwraith/aviator/vmath"
)

// WaveVertex is one sea-surface vertex circling its rest position
type WaveVertex struct {
	Base  vmath.Vec3
	Angle float64 // Phase in [0, 2π) at construction
	Amp   float64
	Speed float64 // Radians per ms
}

// Offset returns the displaced vertex position
func (w *WaveVertex) Offset() vmath.Vec3 {
	return vmath.V3(w.Base.X+math.Cos(w.Angle)*w.Amp, w.Base.Y+math.Sin(w.Angle)*w.Amp, w.Base.Z)
}

// Sea is the rotating cylinder the world scrolls on
type Sea struct {
	Handle   engine.Handle
	Surface  engine.Deformable // nil when the renderer cannot deform the handle
	Waves    []WaveVertex
	Rotation float64
}

// NewSea builds the cylinder grid, centred seaRadius below the origin
func NewSea(scene engine.Scene, rng *rand.Rand, seaRadius float64) *Sea {
	h := scene.NewHandle(engine.KindSea)
	h.Attach(scene.Root())
	h.SetColor(parameter.ColorBlue)
	h.SetPosition(0, -seaRadius, 0)

	s := &Sea{Handle: h}
	s.Surface, _ = h.(engine.Deformable)

	radial, rings := parameter.SeaRadialSegments, parameter.SeaHeightSegments+1
	s.Waves = make([]WaveVertex, 0, radial*rings)
	for r := 0; r < rings; r++ {
		z := (float64(r)/float64(rings-1) - 0.5) * parameter.SeaLength
		for i := 0; i < radial; i++ {
			theta := float64(i) / float64(radial) * vmath.TwoPi
			s.Waves = append(s.Waves, WaveVertex{
				Base:  vmath.V3(math.Cos(theta)*seaRadius, math.Sin(theta)*seaRadius, z),
				Angle: rng.Float64() * vmath.TwoPi,
				Amp:   parameter.WavesMinAmp + rng.Float64()*(parameter.WavesMaxAmp-parameter.WavesMinAmp),
				Speed: parameter.WavesMinSpeed + rng.Float64()*(parameter.WavesMaxSpeed-parameter.WavesMinSpeed),
			})
		}
	}
	return s
}
