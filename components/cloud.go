package components

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/parameter"
	"github.com/lixenwraith/aviator/vmath"
)

// CloudBlock is one cube of a cloud
type CloudBlock struct {
	Handle   engine.Handle
	Rotation vmath.Vec3
}

// Cloud is a cluster of blocks placed on the sky ring
type Cloud struct {
	Handle engine.Handle
	Blocks []CloudBlock
}

// Sky is the ring of clouds rotating around the sea centre
type Sky struct {
	Handle   engine.Handle
	Clouds   []Cloud
	Rotation float64
}

// NewSky places parameter.CloudCount clouds evenly around the ring
func NewSky(scene engine.Scene, rng *rand.Rand, seaRadius float64) *Sky {
	h := scene.NewHandle(engine.KindSky)
	h.Attach(scene.Root())
	h.SetPosition(0, -seaRadius, 0)

	sky := &Sky{Handle: h, Clouds: make([]Cloud, parameter.CloudCount)}
	step := vmath.TwoPi / parameter.CloudCount
	for i := range sky.Clouds {
		a := step * float64(i)
		height := parameter.CloudMinHeight + rng.Float64()*parameter.CloudHeightJitter
		x, y := vmath.RingPosition(a, height)
		scale := parameter.CloudMinScale + rng.Float64()*parameter.CloudScaleJitter

		c := newCloud(scene, rng)
		c.Handle.Attach(h)
		c.Handle.SetPosition(x, y, parameter.CloudMinDepth-rng.Float64()*parameter.CloudDepthJitter)
		c.Handle.SetRotation(0, 0, a+math.Pi/2)
		c.Handle.SetScale(scale, scale, scale)
		sky.Clouds[i] = c
	}
	return sky
}

func newCloud(scene engine.Scene, rng *rand.Rand) Cloud {
	c := Cloud{Handle: scene.NewHandle(engine.KindCloud)}
	n := parameter.CloudMinBlocks + rng.IntN(parameter.CloudBlockJitter)
	c.Blocks = make([]CloudBlock, n)
	for i := range c.Blocks {
		b := CloudBlock{
			Handle:   scene.NewHandle(engine.KindCloudBlock),
			Rotation: vmath.V3(0, rng.Float64()*vmath.TwoPi, rng.Float64()*vmath.TwoPi),
		}
		s := parameter.CloudBlockMinSize + rng.Float64()*parameter.CloudBlockSizeVar
		b.Handle.Attach(c.Handle)
		b.Handle.SetColor(parameter.ColorWhite)
		b.Handle.SetPosition(float64(i)*parameter.CloudBlockSpacing, rng.Float64()*parameter.CloudBlockOffset, rng.Float64()*parameter.CloudBlockOffset)
		b.Handle.SetRotation(b.Rotation.X, b.Rotation.Y, b.Rotation.Z)
		b.Handle.SetScale(s, s, s)
		c.Blocks[i] = b
	}
	return c
}
