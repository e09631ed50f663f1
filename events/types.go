package events

// EventType represents the type of game event
type EventType int

const (
	// EventCoinCollected signals a coin pickup
	// Trigger: coin holder proximity check
	// Consumer: SoundManager, StatsHandler | Payload: *CoinCollectedPayload
	EventCoinCollected EventType = iota

	// EventEnemyHit signals an enemy colliding with the aircraft
	// Trigger: enemy holder proximity check
	// Consumer: SoundManager, StatsHandler | Payload: *EnemyHitPayload
	EventEnemyHit

	// EventCoinsSpawned signals a new coin batch on the orbit
	// Trigger: coin milestone | Payload: *SpawnPayload
	EventCoinsSpawned

	// EventEnemiesSpawned signals a new enemy wave
	// Trigger: enemy milestone | Payload: *SpawnPayload
	EventEnemiesSpawned

	// EventSpeedUp signals a time-based target speed increment
	// Trigger: speed milestone | Payload: *SpeedUpPayload
	EventSpeedUp

	// EventLevelUp signals a level increment
	// Trigger: level milestone
	// Consumer: SoundManager, LogHandler | Payload: *LevelUpPayload
	EventLevelUp

	// EventGameOver signals energy depletion
	// Trigger: energy reached zero while playing
	// Consumer: SoundManager, LogHandler | Payload: *SessionPayload
	EventGameOver

	// EventWaitingReplay signals the end of the fall animation
	// Trigger: aircraft below fall floor | Payload: *SessionPayload
	EventWaitingReplay

	// EventReplay signals a session reset
	// Trigger: Game.ConfirmReplay | Payload: *SessionPayload (final stats of the previous run)
	EventReplay

	eventTypeCount
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "unknown"
}
