package parameter

// System execution priorities, lower runs first
// Aircraft pose must settle before the holders measure collision distance
const (
	PriorityProgression = 10
	PriorityAircraft    = 20
	PriorityCoins       = 30
	PriorityEnemies     = 40
	PriorityParticles   = 50
	PrioritySea         = 60
	PrioritySky         = 70
	PriorityAmbient     = 80
)
