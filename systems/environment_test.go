package systems

import (
	"math"
	"testing"

	"github.com/lixenwraith/aviator/config"
	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/events"
	"github.com/lixenwraith/aviator/parameter"
	"github.com/lixenwraith/aviator/status"
)

func TestSeaWavesAndRoll(t *testing.T) {
	w := newTestWorld(t, config.Default())
	sea := NewSeaSystem(w.ctx)
	w.ctx.State.Speed = 0.01

	for i := 0; i < 500; i++ {
		sea.Update(w.ctx, frame)
		if r := sea.Sea().Rotation; r < 0 || r >= 2*math.Pi {
			t.Fatalf("frame %d: sea rotation %v outside [0, 2π)", i, r)
		}
	}

	surface := sea.Sea().Surface.(*engine.MockHandle)
	if len(surface.Vertices) != len(sea.Sea().Waves) {
		t.Fatalf("vertices written = %d, want %d", len(surface.Vertices), len(sea.Sea().Waves))
	}
	for i, wv := range sea.Sea().Waves {
		v := surface.Vertices[i]
		dx, dy := v.X-wv.Base.X, v.Y-wv.Base.Y
		if r := math.Hypot(dx, dy); math.Abs(r-wv.Amp) > 1e-9 {
			t.Fatalf("vertex %d displaced %v, want amplitude %v", i, r, wv.Amp)
		}
	}
}

func TestSkyRingTurnsWithSpeed(t *testing.T) {
	w := newTestWorld(t, config.Default())
	sky := NewSkySystem(w.ctx)
	w.ctx.State.Speed = 0.0005

	sky.Update(w.ctx, frame)
	if want := 0.0005 * 16; math.Abs(sky.Sky().Rotation-want) > 1e-15 {
		t.Errorf("ring rotation = %v, want %v", sky.Sky().Rotation, want)
	}

	for i := 0; i < 100000; i++ {
		sky.Update(w.ctx, frame)
	}
	if r := sky.Sky().Rotation; r < 0 || r >= 2*math.Pi {
		t.Errorf("ring rotation %v not wrapped", r)
	}
}

func TestAmbientFlashRecovers(t *testing.T) {
	w := newTestWorld(t, config.Default())
	amb := NewAmbientSystem()
	w.ctx.State.AmbientLight = parameter.AmbientLightFlash

	amb.Update(w.ctx, frame)
	if want := 2 + (0.5-2)*16*0.005; math.Abs(w.ctx.State.AmbientLight-want) > 1e-12 {
		t.Errorf("ambient after one frame = %v, want %v", w.ctx.State.AmbientLight, want)
	}
	for i := 0; i < 1000; i++ {
		amb.Update(w.ctx, frame)
	}
	if math.Abs(w.ctx.State.AmbientLight-parameter.AmbientLightRest) > 1e-9 {
		t.Errorf("ambient = %v, want rest", w.ctx.State.AmbientLight)
	}
}

func TestStatsHandler(t *testing.T) {
	w := newTestWorld(t, config.Default())
	router := events.NewRouter[*engine.GameContext](w.ctx.EventQueue())
	router.Register(NewStatsHandler())

	w.ctx.State.Distance = 1234
	w.ctx.State.RemoveEnergy(100)
	w.ctx.PushEvent(events.EventGameOver, &events.SessionPayload{Distance: 1234, Level: 2})
	w.ctx.PushEvent(events.EventReplay, &events.SessionPayload{Distance: 1234, Level: 2})
	router.DispatchAll(w.ctx)

	reg := w.ctx.Status
	if got := reg.Floats.Get(status.KeyBestDistance).Get(); got != 1234 {
		t.Errorf("best distance = %v", got)
	}
	if got := reg.Ints.Get(status.KeyRuns).Load(); got != 1 {
		t.Errorf("runs = %d", got)
	}
	if got := reg.Strings.Get(status.KeyPhase).Load(); got != "GameOver" {
		t.Errorf("phase metric = %q", got)
	}
}
