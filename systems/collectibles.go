package systems

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/aviator/components"
	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/events"
	"github.com/lixenwraith/aviator/parameter"
	"github.com/lixenwraith/aviator/status"
	"github.com/lixenwraith/aviator/vmath"
)

// CoinStrategy spawns wavy strings of coins that refill energy
type CoinStrategy struct {
	particles *ParticleSystem
	collected *atomic.Int64
}

func (CoinStrategy) BatchSize(ctx *engine.GameContext) int {
	return 1 + ctx.Rand.IntN(parameter.CoinMaxBatch)
}

func (CoinStrategy) BatchAmplitude(ctx *engine.GameContext) float64 {
	return parameter.CoinWaveMinAmp + math.Round(ctx.Rand.Float64()*parameter.CoinWaveAmpJitter)
}

func (CoinStrategy) RadiusOffset(i int, amp float64) float64 {
	return math.Cos(float64(i)*parameter.CoinWaveFrequency) * amp
}

func (CoinStrategy) AngleStep() float64                       { return parameter.CoinAngleStep }
func (CoinStrategy) SpeedFactor(gs *engine.GameState) float64 { return gs.CoinsSpeed }
func (CoinStrategy) Tolerance(gs *engine.GameState) float64   { return gs.CoinDistanceTolerance }
func (CoinStrategy) SpawnEvent() events.EventType             { return events.EventCoinsSpawned }

func (s CoinStrategy) Collide(ctx *engine.GameContext, pos, diff vmath.Vec3, d float64) {
	gs := ctx.State
	s.particles.SpawnBurst(ctx, pos, parameter.CoinBurstDensity, parameter.ColorCoin, parameter.CoinBurstScale)
	gs.AddEnergy(gs.CoinValue)
	s.collected.Add(1)
	ctx.PushEvent(events.EventCoinCollected, &events.CoinCollectedPayload{Position: pos, Energy: gs.Energy})
}

// EnemyStrategy spawns one enemy per level; contact knocks the aircraft back and drains energy
type EnemyStrategy struct {
	particles *ParticleSystem
	hits      *atomic.Int64
}

func (EnemyStrategy) BatchSize(ctx *engine.GameContext) int          { return ctx.State.Level }
func (EnemyStrategy) BatchAmplitude(ctx *engine.GameContext) float64 { return 0 }
func (EnemyStrategy) RadiusOffset(i int, amp float64) float64        { return 0 }
func (EnemyStrategy) AngleStep() float64                             { return parameter.EnemyAngleStep }
func (EnemyStrategy) SpeedFactor(gs *engine.GameState) float64       { return gs.EnemiesSpeed }
func (EnemyStrategy) Tolerance(gs *engine.GameState) float64         { return gs.EnemyDistanceTolerance }
func (EnemyStrategy) SpawnEvent() events.EventType                   { return events.EventEnemiesSpawned }

func (s EnemyStrategy) Collide(ctx *engine.GameContext, pos, diff vmath.Vec3, d float64) {
	gs := ctx.State
	s.particles.SpawnBurst(ctx, pos, parameter.EnemyBurstDensity, parameter.ColorRed, parameter.EnemyBurstScale)

	var impulse vmath.Vec2
	if d > 0 {
		impulse = vmath.Vec2{X: parameter.CollisionImpulse * diff.X / d, Y: parameter.CollisionImpulse * diff.Y / d}
		gs.PlaneCollisionSpeedX = impulse.X
		gs.PlaneCollisionSpeedY = impulse.Y
	}
	gs.AmbientLight = parameter.AmbientLightFlash
	s.hits.Add(1)

	drainEnergy(ctx, gs.EnemyValue)
	ctx.PushEvent(events.EventEnemyHit, &events.EnemyHitPayload{Position: pos, Energy: gs.Energy, Impulse: impulse})
}

// CoinHolder and EnemyHolder are the two orbital holders of a session
type (
	CoinHolder  = OrbitalHolder[*components.Coin]
	EnemyHolder = OrbitalHolder[*components.Enemy]
)

func NewCoinHolder(ctx *engine.GameContext, aircraft *components.Aircraft, particles *ParticleSystem) *CoinHolder {
	kind := CoinStrategy{particles: particles, collected: ctx.Status.Ints.Get(status.KeyCoinsCollected)}
	scene := ctx.Scene
	return NewOrbitalHolder(ctx, kind, aircraft, func() *components.Coin {
		return components.NewCoin(scene)
	}, ctx.Config.Coin.PoolSize, parameter.PriorityCoins, status.KeyCoinsSpawned, status.KeyPoolCoins)
}

func NewEnemyHolder(ctx *engine.GameContext, aircraft *components.Aircraft, particles *ParticleSystem) *EnemyHolder {
	kind := EnemyStrategy{particles: particles, hits: ctx.Status.Ints.Get(status.KeyEnemiesHit)}
	scene := ctx.Scene
	return NewOrbitalHolder(ctx, kind, aircraft, func() *components.Enemy {
		return components.NewEnemy(scene)
	}, ctx.Config.Enemy.PoolSize, parameter.PriorityEnemies, status.KeyEnemiesSpawned, status.KeyPoolEnemies)
}
