package systems

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/aviator/config"
	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/events"
	"github.com/lixenwraith/aviator/vmath"
)

const frame = 16 * time.Millisecond

type stubPointer struct{ pos vmath.Vec2 }

func (p *stubPointer) Get() vmath.Vec2 { return p.pos }

// testWorld wires every system against a headless scene
type testWorld struct {
	ctx         *engine.GameContext
	scene       *engine.MockScene
	pointer     *stubPointer
	particles   *ParticleSystem
	aircraft    *AircraftSystem
	coins       *CoinHolder
	enemies     *EnemyHolder
	progression *ProgressionSystem
	systems     engine.Systems
}

func newTestWorld(t *testing.T, cfg config.Config) *testWorld {
	t.Helper()
	w := &testWorld{scene: engine.NewMockScene(), pointer: &stubPointer{}}
	w.ctx = engine.NewGameContext(cfg, w.scene, w.pointer, rand.New(rand.NewPCG(42, 7)))

	w.particles = NewParticleSystem(w.ctx)
	w.aircraft = NewAircraftSystem(w.ctx)
	w.coins = NewCoinHolder(w.ctx, w.aircraft.Aircraft(), w.particles)
	w.enemies = NewEnemyHolder(w.ctx, w.aircraft.Aircraft(), w.particles)
	w.progression = NewProgressionSystem(w.aircraft, w.coins, w.enemies)

	w.systems.Add(w.progression, w.aircraft, w.coins, w.enemies, w.particles,
		NewSeaSystem(w.ctx), NewSkySystem(w.ctx), NewAmbientSystem())
	return w
}

func (w *testWorld) step(dt time.Duration) {
	w.ctx.BeginFrame()
	w.systems.Update(w.ctx, dt)
}

// drain returns and clears the queued events
func (w *testWorld) drain() []events.GameEvent {
	return w.ctx.EventQueue().Consume()
}

func countEvents(evs []events.GameEvent, t events.EventType) int {
	n := 0
	for _, ev := range evs {
		if ev.Type == t {
			n++
		}
	}
	return n
}
