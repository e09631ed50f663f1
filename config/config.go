// Package config holds session tunables, loaded from TOML over compiled defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/aviator/parameter"
)

// ParticlePolicy decides what happens to in-flight particle bursts on replay
type ParticlePolicy int

const (
	// ParticlesContinue lets bursts finish animating into the new session
	ParticlesContinue ParticlePolicy = iota
	// ParticlesRetire force-releases every in-flight particle on replay
	ParticlesRetire

	// policyUnknown marks an unrecognised name read from a file, rejected by Validate
	policyUnknown ParticlePolicy = -1
)

func (p ParticlePolicy) String() string {
	switch p {
	case ParticlesContinue:
		return "continue"
	case ParticlesRetire:
		return "retire"
	default:
		return fmt.Sprintf("ParticlePolicy(%d)", int(p))
	}
}

// ParseParticlePolicy resolves a policy name
func ParseParticlePolicy(s string) (ParticlePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "continue":
		return ParticlesContinue, nil
	case "retire":
		return ParticlesRetire, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// MarshalText implements encoding.TextMarshaler for TOML round trips
func (p ParticlePolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
// Unknown names decode to an invalid policy that Validate rejects
func (p *ParticlePolicy) UnmarshalText(text []byte) error {
	v, err := ParseParticlePolicy(string(text))
	if err != nil {
		v = policyUnknown
	}
	*p = v
	return nil
}

var (
	ErrUnknownPolicy = errors.New("unknown particle policy")
	ErrInvalid       = errors.New("invalid config")
)

// Config is the full tunable set of a session
type Config struct {
	Speed    SpeedConfig    `toml:"speed"`
	Distance DistanceConfig `toml:"distance"`
	Energy   EnergyConfig   `toml:"energy"`
	Plane    PlaneConfig    `toml:"plane"`
	Camera   CameraConfig   `toml:"camera"`
	Sea      SeaConfig      `toml:"sea"`
	Coin     CoinConfig     `toml:"coin"`
	Enemy    EnemyConfig    `toml:"enemy"`
	Particle ParticleConfig `toml:"particle"`
	Replay   ReplayConfig   `toml:"replay"`
}

type SpeedConfig struct {
	Init             float64 `toml:"init"`
	IncrementByTime  float64 `toml:"increment_by_time"`
	IncrementByLevel float64 `toml:"increment_by_level"`
}

type DistanceConfig struct {
	RatioSpeed   float64 `toml:"ratio_speed"`
	SpeedUpdate  float64 `toml:"speed_update"`
	LevelUpdate  float64 `toml:"level_update"`
	CoinsSpawn   float64 `toml:"coins_spawn"`
	EnemiesSpawn float64 `toml:"enemies_spawn"`
}

type EnergyConfig struct {
	RatioSpeed float64 `toml:"ratio_speed"`
}

type PlaneConfig struct {
	DefaultHeight   float64 `toml:"default_height"`
	AmpHeight       float64 `toml:"amp_height"`
	AmpWidth        float64 `toml:"amp_width"`
	MoveSensitivity float64 `toml:"move_sensitivity"`
	RotXSensitivity float64 `toml:"rot_x_sensitivity"`
	RotZSensitivity float64 `toml:"rot_z_sensitivity"`
	FallSpeed       float64 `toml:"fall_speed"`
	MinSpeed        float64 `toml:"min_speed"`
	MaxSpeed        float64 `toml:"max_speed"`
}

type CameraConfig struct {
	Sensitivity float64 `toml:"sensitivity"`
}

type SeaConfig struct {
	Radius float64 `toml:"radius"`
}

type CoinConfig struct {
	DistanceTolerance float64 `toml:"distance_tolerance"`
	Value             float64 `toml:"value"`
	Speed             float64 `toml:"speed"`
	PoolSize          int     `toml:"pool_size"`
}

type EnemyConfig struct {
	DistanceTolerance float64 `toml:"distance_tolerance"`
	Value             float64 `toml:"value"`
	Speed             float64 `toml:"speed"`
	PoolSize          int     `toml:"pool_size"`
}

type ParticleConfig struct {
	PoolSize int `toml:"pool_size"`
}

type ReplayConfig struct {
	Particles ParticlePolicy `toml:"particles"`
}

// Default returns the stock tuning built from parameter
func Default() Config {
	return Config{
		Speed: SpeedConfig{
			Init:             parameter.InitSpeed,
			IncrementByTime:  parameter.IncrementSpeedByTime,
			IncrementByLevel: parameter.IncrementSpeedByLevel,
		},
		Distance: DistanceConfig{
			RatioSpeed:   parameter.RatioSpeedDistance,
			SpeedUpdate:  parameter.DistanceForSpeedUpdate,
			LevelUpdate:  parameter.DistanceForLevelUpdate,
			CoinsSpawn:   parameter.DistanceForCoinsSpawn,
			EnemiesSpawn: parameter.DistanceForEnemiesSpawn,
		},
		Energy: EnergyConfig{RatioSpeed: parameter.RatioSpeedEnergy},
		Plane: PlaneConfig{
			DefaultHeight:   parameter.PlaneDefaultHeight,
			AmpHeight:       parameter.PlaneAmpHeight,
			AmpWidth:        parameter.PlaneAmpWidth,
			MoveSensitivity: parameter.PlaneMoveSensitivity,
			RotXSensitivity: parameter.PlaneRotXSensitivity,
			RotZSensitivity: parameter.PlaneRotZSensitivity,
			FallSpeed:       parameter.PlaneFallSpeed,
			MinSpeed:        parameter.PlaneMinSpeed,
			MaxSpeed:        parameter.PlaneMaxSpeed,
		},
		Camera: CameraConfig{Sensitivity: parameter.CameraSensitivity},
		Sea:    SeaConfig{Radius: parameter.SeaRadius},
		Coin: CoinConfig{
			DistanceTolerance: parameter.CoinDistanceTolerance,
			Value:             parameter.CoinValue,
			Speed:             parameter.CoinsSpeed,
			PoolSize:          parameter.CoinPoolSize,
		},
		Enemy: EnemyConfig{
			DistanceTolerance: parameter.EnemyDistanceTolerance,
			Value:             parameter.EnemyValue,
			Speed:             parameter.EnemiesSpeed,
			PoolSize:          parameter.EnemyPoolSize,
		},
		Particle: ParticleConfig{PoolSize: parameter.ParticlePoolSize},
		Replay:   ReplayConfig{Particles: ParticlesContinue},
	}
}

// Parse decodes TOML data over the defaults; keys absent from data keep their default
// Unknown keys are rejected
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses a TOML file, empty path yields defaults
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate rejects values that would break simulation contracts
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", name, v))
		}
	}

	positive("distance.ratio_speed", c.Distance.RatioSpeed)
	positive("distance.speed_update", c.Distance.SpeedUpdate)
	positive("distance.level_update", c.Distance.LevelUpdate)
	positive("distance.coins_spawn", c.Distance.CoinsSpawn)
	positive("distance.enemies_spawn", c.Distance.EnemiesSpawn)
	positive("sea.radius", c.Sea.Radius)
	positive("coin.distance_tolerance", c.Coin.DistanceTolerance)
	positive("enemy.distance_tolerance", c.Enemy.DistanceTolerance)
	positive("plane.fall_speed", c.Plane.FallSpeed)

	if c.Plane.AmpHeight <= 0 {
		// The flight band collapses to a single altitude
		errs = append(errs, fmt.Errorf("plane.amp_height must be > 0, got %v", c.Plane.AmpHeight))
	}
	if c.Plane.MinSpeed > c.Plane.MaxSpeed {
		errs = append(errs, fmt.Errorf("plane.min_speed %v exceeds plane.max_speed %v", c.Plane.MinSpeed, c.Plane.MaxSpeed))
	}
	if c.Coin.PoolSize < 0 || c.Enemy.PoolSize < 0 || c.Particle.PoolSize < 0 {
		errs = append(errs, errors.New("pool sizes must be >= 0"))
	}
	if c.Replay.Particles != ParticlesContinue && c.Replay.Particles != ParticlesRetire {
		errs = append(errs, fmt.Errorf("%w: %v", ErrUnknownPolicy, c.Replay.Particles))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
