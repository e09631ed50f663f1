package systems

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/aviator/components"
	"github.com/lixenwraith/aviator/config"
	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/parameter"
	"github.com/lixenwraith/aviator/status"
	"github.com/lixenwraith/aviator/vmath"
)

// ParticleSystem owns explosion fragments and advances their transitions
type ParticleSystem struct {
	pool   *engine.Pool[*components.Particle]
	bursts *atomic.Int64
	total  *atomic.Int64
}

func NewParticleSystem(ctx *engine.GameContext) *ParticleSystem {
	group := ctx.Scene.NewHandle(engine.KindGroup)
	group.Attach(ctx.Scene.Root())

	scene := ctx.Scene
	ps := &ParticleSystem{
		pool: engine.NewPool(group, func() *components.Particle {
			return components.NewParticle(scene)
		}, ctx.Config.Particle.PoolSize),
		bursts: ctx.Status.Ints.Get(status.KeyParticleBursts),
		total:  ctx.Status.Ints.Get(status.KeyPoolParticles),
	}
	ps.total.Store(int64(ps.pool.Total()))
	return ps
}

func (ps *ParticleSystem) Priority() int {
	return parameter.PriorityParticles
}

// SpawnBurst scatters density particles from origin
// Each particle spins and shrinks while its position eases toward a random target
func (ps *ParticleSystem) SpawnBurst(ctx *engine.GameContext, origin vmath.Vec3, density int, color uint32, scale float64) {
	rng := ctx.Rand
	for i := 0; i < density; i++ {
		p := ps.pool.Acquire()
		p.Origin = origin
		p.Color = color

		h := p.Handle()
		h.SetColor(color)
		h.SetScale(scale, scale, scale)
		h.SetPosition(origin.X, origin.Y, origin.Z)

		targetX := origin.X + (-1+rng.Float64()*2)*parameter.ParticleSpread
		targetY := origin.Y + (-1+rng.Float64()*2)*parameter.ParticleSpread
		duration := parameter.ParticleDurationBase * rng.Float64() * parameter.ParticleDurationFactor * 1000
		delay := rng.Float64() * parameter.ParticleMaxDelay * 1000

		p.RotX = components.NewTween(0, rng.Float64()*parameter.ParticleMaxSpin, 0, duration, vmath.EaseOutQuad)
		p.RotY = components.NewTween(0, rng.Float64()*parameter.ParticleMaxSpin, 0, duration, vmath.EaseOutQuad)
		p.Scale = components.NewTween(scale, parameter.ParticleResidualScale, 0, duration, vmath.EaseOutQuad)
		p.PosX = components.NewTween(origin.X, targetX, delay, duration, vmath.EaseOutCubic)
		p.PosY = components.NewTween(origin.Y, targetY, delay, duration, vmath.EaseOutCubic)
	}
	ps.bursts.Add(1)
	ps.total.Store(int64(ps.pool.Total()))
}

// Update advances every in-flight particle; finished ones reset scale and return to the pool
func (ps *ParticleSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	ms := engine.Milliseconds(dt)
	ps.pool.Sweep(func(p *components.Particle) bool {
		if !p.Advance(ms) {
			return false
		}
		p.Handle().SetScale(1, 1, 1)
		return true
	})
}

// Reset applies the replay policy to bursts still in flight
func (ps *ParticleSystem) Reset(ctx *engine.GameContext) {
	if ctx.Config.Replay.Particles != config.ParticlesRetire {
		return
	}
	for _, p := range ps.pool.InUse() {
		p.Handle().SetScale(1, 1, 1)
	}
	ps.pool.ReleaseAll()
}

// Active returns the number of particles in flight
func (ps *ParticleSystem) Active() int {
	return ps.pool.InUseCount()
}

// Pool exposes the particle pool for inspection
func (ps *ParticleSystem) Pool() *engine.Pool[*components.Particle] {
	return ps.pool
}
