package systems

import (
	"time"

	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/events"
	"github.com/lixenwraith/aviator/parameter"
)

// ProgressionSystem drives the session lifecycle: milestones, distance, energy, speed and the fall
type ProgressionSystem struct {
	aircraft *AircraftSystem
	coins    *CoinHolder
	enemies  *EnemyHolder
}

func NewProgressionSystem(aircraft *AircraftSystem, coins *CoinHolder, enemies *EnemyHolder) *ProgressionSystem {
	return &ProgressionSystem{aircraft: aircraft, coins: coins, enemies: enemies}
}

func (p *ProgressionSystem) Priority() int {
	return parameter.PriorityProgression
}

func (p *ProgressionSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	gs := ctx.State
	switch gs.Phase {
	case engine.PhasePlaying:
		p.play(ctx, dt)
	case engine.PhaseGameOver:
		gs.Speed *= parameter.GameOverSpeedDecay
		if p.aircraft.Fall(ctx, dt) {
			gs.MustTransition(engine.PhaseWaitingReplay)
			ctx.PushEvent(events.EventWaitingReplay, &events.SessionPayload{Distance: gs.Distance, Level: gs.Level})
		}
	}
}

func (p *ProgressionSystem) play(ctx *engine.GameContext, dt time.Duration) {
	gs := ctx.State
	ms := engine.Milliseconds(dt)

	for n := engine.Milestone(gs.Distance, gs.DistanceForCoinsSpawn, &gs.CoinLastSpawn); n > 0; n-- {
		p.coins.Spawn(ctx)
	}
	for n := engine.Milestone(gs.Distance, gs.DistanceForSpeedUpdate, &gs.SpeedLastUpdate); n > 0; n-- {
		gs.TargetBaseSpeed += gs.IncrementSpeedByTime * ms
		ctx.PushEvent(events.EventSpeedUp, &events.SpeedUpPayload{TargetBaseSpeed: gs.TargetBaseSpeed})
	}
	for n := engine.Milestone(gs.Distance, gs.DistanceForEnemiesSpawn, &gs.EnemyLastSpawn); n > 0; n-- {
		p.enemies.Spawn(ctx)
	}
	for n := engine.Milestone(gs.Distance, gs.DistanceForLevelUpdate, &gs.LevelLastUpdate); n > 0; n-- {
		gs.Level++
		gs.TargetBaseSpeed = gs.InitSpeed + gs.IncrementSpeedByLevel*float64(gs.Level)
		ctx.PushEvent(events.EventLevelUp, &events.LevelUpPayload{Level: gs.Level})
	}

	p.aircraft.Steer(ctx, dt)

	gs.Distance += gs.Speed * ms * gs.RatioSpeedDistance
	drainEnergy(ctx, gs.Speed*ms*gs.RatioSpeedEnergy)

	gs.BaseSpeed += (gs.TargetBaseSpeed - gs.BaseSpeed) * ms * parameter.BaseSpeedSensitivity
	gs.Speed = gs.BaseSpeed * gs.PlaneSpeed
}
