package events

import "github.com/lixenwraith/aviator/vmath"

// CoinCollectedPayload carries the pickup point and energy after the bonus
type CoinCollectedPayload struct {
	Position vmath.Vec3
	Energy   float64
}

// EnemyHitPayload carries the impact point, energy after the hit and the knockback impulse
type EnemyHitPayload struct {
	Position vmath.Vec3
	Energy   float64
	Impulse  vmath.Vec2
}

// SpawnPayload describes a spawned batch
type SpawnPayload struct {
	Count  int
	Radius float64
}

// SpeedUpPayload carries the new target base speed
type SpeedUpPayload struct {
	TargetBaseSpeed float64
}

// LevelUpPayload carries the level reached
type LevelUpPayload struct {
	Level int
}

// SessionPayload summarizes a run at a lifecycle transition
type SessionPayload struct {
	Distance float64
	Level    int
}
