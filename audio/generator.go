package audio

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
)

const droneBaseFreq = 55.0

// ChimeGenerator is the coin pickup: two bright partials with a fast decay
type ChimeGenerator struct {
	sr  beep.SampleRate
	pos int
}

func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{sr: sr}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		freq := 880.0
		if t > 0.06 {
			freq = 1320
		}
		env := math.Exp(-t * 18)
		s := env * (0.25*math.Sin(2*math.Pi*freq*t) + 0.1*math.Sin(2*math.Pi*freq*2*t))
		samples[i][0], samples[i][1] = s, s
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error { return nil }

// ImpactGenerator is the enemy hit: a low thump under a noise burst
type ImpactGenerator struct {
	sr    beep.SampleRate
	pos   int
	noise uint32
}

func NewImpactGenerator(sr beep.SampleRate) *ImpactGenerator {
	return &ImpactGenerator{sr: sr, noise: 0x9e3779b9}
}

func (g *ImpactGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// xorshift32
		g.noise ^= g.noise << 13
		g.noise ^= g.noise >> 17
		g.noise ^= g.noise << 5
		white := float64(g.noise)/float64(math.MaxUint32)*2 - 1

		env := math.Exp(-t * 14)
		s := env * (0.3*math.Sin(2*math.Pi*70*t) + 0.2*white)
		samples[i][0], samples[i][1] = s, s
		g.pos++
	}
	return len(samples), true
}

func (g *ImpactGenerator) Err() error { return nil }

// CrashGenerator is the game-over dive: a falling sweep fading out
type CrashGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int
	phase float64
}

func NewCrashGenerator(sr beep.SampleRate, d time.Duration) *CrashGenerator {
	return &CrashGenerator{sr: sr, total: sr.N(d)}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		p := math.Min(float64(g.pos)/float64(g.total), 1)
		freq := 400 - 340*p
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		s := 0.25 * (1 - p) * math.Sin(g.phase)
		samples[i][0], samples[i][1] = s, s
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error { return nil }

// ArpeggioGenerator is the level-up: a rising major triad
type ArpeggioGenerator struct {
	sr   beep.SampleRate
	pos  int
	step int
}

var arpeggio = [...]float64{523.25, 659.25, 783.99}

func NewArpeggioGenerator(sr beep.SampleRate, step time.Duration) *ArpeggioGenerator {
	return &ArpeggioGenerator{sr: sr, step: sr.N(step)}
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := min(g.pos/g.step, len(arpeggio)-1)
		local := float64(g.pos-note*g.step) / float64(g.sr)
		t := float64(g.pos) / float64(g.sr)
		s := 0.2 * math.Exp(-local*10) * math.Sin(2*math.Pi*arpeggio[note]*t)
		samples[i][0], samples[i][1] = s, s
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error { return nil }

// DroneGenerator is the continuous engine hum; its pitch is set from the frame loop
type DroneGenerator struct {
	sr    beep.SampleRate
	phase float64
	freq  atomic.Uint64 // float64 bits
}

func NewDroneGenerator(sr beep.SampleRate) *DroneGenerator {
	g := &DroneGenerator{sr: sr}
	g.SetFrequency(droneBaseFreq)
	return g
}

// SetFrequency changes the fundamental; safe from any goroutine
func (g *DroneGenerator) SetFrequency(hz float64) {
	g.freq.Store(math.Float64bits(hz))
}

func (g *DroneGenerator) Frequency() float64 {
	return math.Float64frombits(g.freq.Load())
}

func (g *DroneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	step := 2 * math.Pi * g.Frequency() / float64(g.sr)
	for i := range samples {
		g.phase = math.Mod(g.phase+step, 2*math.Pi)
		s := 0.06*math.Sin(g.phase) + 0.03*math.Sin(2*g.phase) + 0.015*math.Sin(3*g.phase)
		samples[i][0], samples[i][1] = s, s
	}
	return len(samples), true
}

func (g *DroneGenerator) Err() error { return nil }
