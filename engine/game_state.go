package engine

import (
	"fmt"
	"math"

	"github.com/lixenwraith/aviator/config"
	"github.com/lixenwraith/aviator/parameter"
)

// Phase is the session lifecycle stage
type Phase int

const (
	// PhasePlaying runs milestones, aircraft control, distance and energy
	PhasePlaying Phase = iota
	// PhaseGameOver animates the aircraft falling; entered when energy reaches zero
	PhaseGameOver
	// PhaseWaitingReplay idles until the player confirms a replay
	PhaseWaitingReplay
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	case PhaseWaitingReplay:
		return "WaitingReplay"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// CanTransition reports whether from -> to is an edge of the lifecycle
func CanTransition(from, to Phase) bool {
	switch from {
	case PhasePlaying:
		return to == PhaseGameOver
	case PhaseGameOver:
		return to == PhaseWaitingReplay
	case PhaseWaitingReplay:
		return to == PhasePlaying
	}
	return false
}

// GameState is the per-session scalar record mutated every frame
// It holds no pointers so a fresh session compares equal to NewGameState
type GameState struct {
	Phase Phase

	// Speed
	Speed                 float64
	InitSpeed             float64
	BaseSpeed             float64
	TargetBaseSpeed       float64
	IncrementSpeedByTime  float64
	IncrementSpeedByLevel float64

	// Progress
	Distance           float64
	RatioSpeedDistance float64
	Energy             float64
	RatioSpeedEnergy   float64
	Level              int

	// Milestones; Last* hold the most recent crossed multiple
	CoinLastSpawn           float64
	EnemyLastSpawn          float64
	SpeedLastUpdate         float64
	LevelLastUpdate         float64
	DistanceForCoinsSpawn   float64
	DistanceForEnemiesSpawn float64
	DistanceForSpeedUpdate  float64
	DistanceForLevelUpdate  float64

	// Plane
	PlaneDefaultHeight   float64
	PlaneAmpHeight       float64
	PlaneAmpWidth        float64
	PlaneMoveSensitivity float64
	PlaneRotXSensitivity float64
	PlaneRotZSensitivity float64
	PlaneFallSpeed       float64
	PlaneMinSpeed        float64
	PlaneMaxSpeed        float64
	PlaneSpeed           float64

	PlaneCollisionDisplacementX float64
	PlaneCollisionSpeedX        float64
	PlaneCollisionDisplacementY float64
	PlaneCollisionSpeedY        float64

	SeaRadius float64

	// Collectibles and hazards
	CoinDistanceTolerance  float64
	CoinValue              float64
	CoinsSpeed             float64
	EnemyDistanceTolerance float64
	EnemyValue             float64
	EnemiesSpeed           float64

	CameraSensitivity float64

	// AmbientLight is the scene light intensity, flashed on enemy hits
	AmbientLight float64
}

// NewGameState returns the initial record of a session
func NewGameState(cfg config.Config) GameState {
	return GameState{
		Phase: PhasePlaying,

		InitSpeed:             cfg.Speed.Init,
		BaseSpeed:             cfg.Speed.Init,
		TargetBaseSpeed:       cfg.Speed.Init,
		IncrementSpeedByTime:  cfg.Speed.IncrementByTime,
		IncrementSpeedByLevel: cfg.Speed.IncrementByLevel,

		RatioSpeedDistance: cfg.Distance.RatioSpeed,
		Energy:             parameter.EnergyMax,
		RatioSpeedEnergy:   cfg.Energy.RatioSpeed,
		Level:              parameter.InitialLevel,

		DistanceForCoinsSpawn:   cfg.Distance.CoinsSpawn,
		DistanceForEnemiesSpawn: cfg.Distance.EnemiesSpawn,
		DistanceForSpeedUpdate:  cfg.Distance.SpeedUpdate,
		DistanceForLevelUpdate:  cfg.Distance.LevelUpdate,

		PlaneDefaultHeight:   cfg.Plane.DefaultHeight,
		PlaneAmpHeight:       cfg.Plane.AmpHeight,
		PlaneAmpWidth:        cfg.Plane.AmpWidth,
		PlaneMoveSensitivity: cfg.Plane.MoveSensitivity,
		PlaneRotXSensitivity: cfg.Plane.RotXSensitivity,
		PlaneRotZSensitivity: cfg.Plane.RotZSensitivity,
		PlaneFallSpeed:       cfg.Plane.FallSpeed,
		PlaneMinSpeed:        cfg.Plane.MinSpeed,
		PlaneMaxSpeed:        cfg.Plane.MaxSpeed,

		SeaRadius: cfg.Sea.Radius,

		CoinDistanceTolerance:  cfg.Coin.DistanceTolerance,
		CoinValue:              cfg.Coin.Value,
		CoinsSpeed:             cfg.Coin.Speed,
		EnemyDistanceTolerance: cfg.Enemy.DistanceTolerance,
		EnemyValue:             cfg.Enemy.Value,
		EnemiesSpeed:           cfg.Enemy.Speed,

		CameraSensitivity: cfg.Camera.Sensitivity,
		AmbientLight:      parameter.AmbientLightRest,
	}
}

// TransitionPhase moves to the given phase if the edge exists
func (gs *GameState) TransitionPhase(to Phase) bool {
	if !CanTransition(gs.Phase, to) {
		return false
	}
	gs.Phase = to
	return true
}

// MustTransition is TransitionPhase for callers that already checked the current phase
func (gs *GameState) MustTransition(to Phase) {
	if !gs.TransitionPhase(to) {
		panic(fmt.Sprintf("engine: invalid phase transition %s -> %s", gs.Phase, to))
	}
}

// AddEnergy raises energy, capped at full
func (gs *GameState) AddEnergy(v float64) {
	gs.Energy = math.Min(gs.Energy+v, parameter.EnergyMax)
}

// RemoveEnergy lowers energy, floored at zero
// Reaching zero while playing ends the run
func (gs *GameState) RemoveEnergy(v float64) {
	gs.Energy = math.Max(gs.Energy-v, 0)
	if gs.Energy <= 0 && gs.Phase == PhasePlaying {
		gs.MustTransition(PhaseGameOver)
	}
}

// LevelProgress is the fraction of the current level interval already flown
func (gs *GameState) LevelProgress() float64 {
	if gs.DistanceForLevelUpdate <= 0 {
		return 0
	}
	return math.Mod(gs.Distance, gs.DistanceForLevelUpdate) / gs.DistanceForLevelUpdate
}

// Milestone reports how many multiples of interval value crossed since *last and
// advances *last to the highest crossed multiple
// Values that jump several multiples in one frame report every one of them
func Milestone(value, interval float64, last *float64) int {
	if interval <= 0 {
		return 0
	}
	reached := math.Floor(value / interval)
	n := int(reached - math.Floor(*last/interval))
	if n <= 0 {
		return 0
	}
	*last = reached * interval
	return n
}
