package events

import "strings"

var (
	nameToType = make(map[string]EventType, eventTypeCount)
	typeToName = make(map[EventType]string, eventTypeCount)
)

func init() {
	register("coin_collected", EventCoinCollected)
	register("enemy_hit", EventEnemyHit)
	register("coins_spawned", EventCoinsSpawned)
	register("enemies_spawned", EventEnemiesSpawned)
	register("speed_up", EventSpeedUp)
	register("level_up", EventLevelUp)
	register("game_over", EventGameOver)
	register("waiting_replay", EventWaitingReplay)
	register("replay", EventReplay)
}

func register(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// ParseEventType resolves an event name (case-insensitive) used in logs and config
func ParseEventType(name string) (EventType, bool) {
	et, ok := nameToType[strings.ToLower(strings.TrimSpace(name))]
	return et, ok
}

// AllTypes returns every event type in declaration order
func AllTypes() []EventType {
	all := make([]EventType, 0, eventTypeCount)
	for t := EventType(0); t < eventTypeCount; t++ {
		all = append(all, t)
	}
	return all
}
