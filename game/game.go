// Package game assembles a playable session from the simulation systems
package game

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/aviator/config"
	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/events"
	"github.com/lixenwraith/aviator/systems"
)

// MaxFrameDelta caps a single simulation step after a stall
const MaxFrameDelta = 100 * time.Millisecond

// Options are the optional collaborators of a session
type Options struct {
	Seed  uint64
	Clock engine.TimeProvider // nil uses the monotonic clock
	Sound SoundSink           // nil runs silent
}

// SoundSink receives game events and the current throttle
type SoundSink interface {
	events.Handler[*engine.GameContext]
	SetThrottle(planeSpeed float64)
}

// Game owns one session: context, systems and the event router
type Game struct {
	ctx     *engine.GameContext
	systems engine.Systems
	router  *events.Router[*engine.GameContext]

	aircraft  *systems.AircraftSystem
	particles *systems.ParticleSystem
	coins     *systems.CoinHolder
	enemies   *systems.EnemyHolder
	sea       *systems.SeaSystem
	sky       *systems.SkySystem

	pausable *engine.PausableClock
	clock    *engine.FrameClock
	sound    SoundSink
}

// New wires a session against the given scene and pointer
func New(cfg config.Config, scene engine.Scene, pointer engine.PointerSource, opts Options) *Game {
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	ctx := engine.NewGameContext(cfg, scene, pointer, rng)

	g := &Game{
		ctx:      ctx,
		router:   events.NewRouter[*engine.GameContext](ctx.EventQueue()),
		pausable: engine.NewPausableClock(opts.Clock),
		sound:    opts.Sound,
	}
	g.clock = engine.NewFrameClock(g.pausable, MaxFrameDelta)

	g.particles = systems.NewParticleSystem(ctx)
	g.aircraft = systems.NewAircraftSystem(ctx)
	g.coins = systems.NewCoinHolder(ctx, g.aircraft.Aircraft(), g.particles)
	g.enemies = systems.NewEnemyHolder(ctx, g.aircraft.Aircraft(), g.particles)
	g.sea = systems.NewSeaSystem(ctx)
	g.sky = systems.NewSkySystem(ctx)

	g.systems.Add(
		systems.NewProgressionSystem(g.aircraft, g.coins, g.enemies),
		g.aircraft,
		g.coins,
		g.enemies,
		g.particles,
		g.sea,
		g.sky,
		systems.NewAmbientSystem(),
	)

	g.router.Register(systems.NewStatsHandler())
	g.router.Register(NewLogHandler())
	if g.sound != nil {
		g.router.Register(g.sound)
	}
	return g
}

// Step advances the simulation by dt and dispatches the events it produced
func (g *Game) Step(dt time.Duration) {
	g.ctx.BeginFrame()
	g.systems.Update(g.ctx, dt)
	g.router.DispatchAll(g.ctx)
	if g.sound != nil {
		g.sound.SetThrottle(g.ctx.State.PlaneSpeed)
	}
}

// Tick measures wall time since the previous tick and steps by it
// Returns false while paused
func (g *Game) Tick() bool {
	dt := g.clock.Tick()
	if g.pausable.IsPaused() {
		return false
	}
	g.Step(dt)
	return true
}

// TogglePause flips pause and reports the new state
func (g *Game) TogglePause() bool {
	return g.pausable.Toggle()
}

func (g *Game) Paused() bool {
	return g.pausable.IsPaused()
}

// ConfirmReplay starts a new run from the replay prompt
// Returns false in any other phase
func (g *Game) ConfirmReplay() bool {
	gs := g.ctx.State
	if gs.Phase != engine.PhaseWaitingReplay {
		return false
	}
	prev := &events.SessionPayload{Distance: gs.Distance, Level: gs.Level}

	gs.MustTransition(engine.PhasePlaying)
	*gs = engine.NewGameState(g.ctx.Config)
	g.systems.Reset(g.ctx)

	g.ctx.PushEvent(events.EventReplay, prev)
	g.router.DispatchAll(g.ctx)
	return true
}

// Context exposes the session context for front ends and tests
func (g *Game) Context() *engine.GameContext {
	return g.ctx
}

func (g *Game) Aircraft() *systems.AircraftSystem  { return g.aircraft }
func (g *Game) Particles() *systems.ParticleSystem { return g.particles }
func (g *Game) Coins() *systems.CoinHolder         { return g.coins }
func (g *Game) Enemies() *systems.EnemyHolder      { return g.enemies }
func (g *Game) Sea() *systems.SeaSystem            { return g.sea }
func (g *Game) Sky() *systems.SkySystem            { return g.sky }
