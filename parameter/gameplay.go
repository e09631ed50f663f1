package parameter

import "time"

// Speed
const (
	// InitSpeed is the base world speed at level 0 (radians of orbit per ms before plane factor)
	InitSpeed = 0.00035

	// IncrementSpeedByTime is added to the target base speed (scaled by frame dt) on every speed milestone
	IncrementSpeedByTime = 0.0000025

	// IncrementSpeedByLevel sets target base speed as InitSpeed + level * IncrementSpeedByLevel
	IncrementSpeedByLevel = 0.000005

	// BaseSpeedSensitivity eases base speed toward target per ms
	BaseSpeedSensitivity = 0.02

	// GameOverSpeedDecay multiplies world speed each frame while the plane falls
	GameOverSpeedDecay = 0.99
)

// Distance and Level
const (
	// RatioSpeedDistance converts speed*dt into distance units
	RatioSpeedDistance = 50.0

	// DistanceForSpeedUpdate is the milestone interval of the time-based speed increment
	DistanceForSpeedUpdate = 100.0

	// DistanceForLevelUpdate is the milestone interval of level-ups
	DistanceForLevelUpdate = 1000.0

	// DistanceForCoinsSpawn is the milestone interval of coin batches
	DistanceForCoinsSpawn = 100.0

	// DistanceForEnemiesSpawn is the milestone interval of enemy waves
	DistanceForEnemiesSpawn = 50.0

	// InitialLevel is the level a session starts at
	InitialLevel = 1
)

// Energy
const (
	// EnergyMax is the full energy bar
	EnergyMax = 100.0

	// RatioSpeedEnergy converts speed*dt into energy drain
	RatioSpeedEnergy = 3.0

	// EnergyLowThreshold switches the energy bar to warning colour
	EnergyLowThreshold = 40.0

	// EnergyCriticalThreshold makes the energy bar blink
	EnergyCriticalThreshold = 30.0

	// EnergyBlinkFrames is the half period of the critical blink
	EnergyBlinkFrames = 15
)

// Ambient light flash on enemy collision
const (
	AmbientLightRest     = 0.5
	AmbientLightFlash    = 2.0
	AmbientLightRecovery = 0.005 // per ms
)

// Frame timing
const (
	// FrameUpdateInterval is the target frame period of the front ends
	FrameUpdateInterval = time.Second / 60

	// MaxFrameDelta caps dt after stalls (window drag, debugger, suspend)
	MaxFrameDelta = 100 * time.Millisecond
)
