package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/aviator/config"
)

func TestNewGameStateInitialValues(t *testing.T) {
	gs := NewGameState(config.Default())

	if gs.Energy != 100 {
		t.Errorf("Energy = %v, want 100", gs.Energy)
	}
	if gs.Level != 1 {
		t.Errorf("Level = %v, want 1", gs.Level)
	}
	if gs.Speed != 0 || gs.Distance != 0 {
		t.Errorf("Speed/Distance = %v/%v, want 0/0", gs.Speed, gs.Distance)
	}
	if gs.BaseSpeed != gs.InitSpeed || gs.TargetBaseSpeed != gs.InitSpeed {
		t.Errorf("base/target speed %v/%v should start at init %v", gs.BaseSpeed, gs.TargetBaseSpeed, gs.InitSpeed)
	}
	if gs.AmbientLight != 0.5 {
		t.Errorf("AmbientLight = %v, want 0.5", gs.AmbientLight)
	}
	if gs != NewGameState(config.Default()) {
		t.Error("two fresh states differ")
	}
}

// TestEnergyClamp drives random mutations and checks the bar never leaves [0,100]
func TestEnergyClamp(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	gs := NewGameState(config.Default())

	for i := 0; i < 5000; i++ {
		v := rng.Float64() * 30
		if rng.IntN(2) == 0 {
			gs.AddEnergy(v)
		} else {
			gs.RemoveEnergy(v)
		}
		if gs.Energy < 0 || gs.Energy > 100 {
			t.Fatalf("step %d: energy %v out of range", i, gs.Energy)
		}
	}
}

func TestRemoveEnergyEndsRun(t *testing.T) {
	gs := NewGameState(config.Default())
	gs.Energy = 1

	gs.RemoveEnergy(10)
	if gs.Energy != 0 {
		t.Errorf("Energy = %v, want 0", gs.Energy)
	}
	if gs.Phase != PhaseGameOver {
		t.Fatalf("Phase = %s, want GameOver", gs.Phase)
	}

	// Further hits while falling leave the phase alone
	gs.RemoveEnergy(10)
	if gs.Phase != PhaseGameOver {
		t.Errorf("Phase = %s after second hit, want GameOver", gs.Phase)
	}
}

func TestAddEnergyCaps(t *testing.T) {
	gs := NewGameState(config.Default())
	gs.Energy = 99
	gs.AddEnergy(3)
	if gs.Energy != 100 {
		t.Errorf("Energy = %v, want 100", gs.Energy)
	}
}

func TestLevelProgress(t *testing.T) {
	gs := NewGameState(config.Default())
	gs.Distance = 2250
	if got := gs.LevelProgress(); got != 0.25 {
		t.Errorf("LevelProgress = %v, want 0.25", got)
	}
}

// TestMilestoneLevelUpExactlyTwice flies 0 -> 2500 in irregular steps
func TestMilestoneLevelUpExactlyTwice(t *testing.T) {
	steps := []float64{0.3, 17, 0.01, 480, 502.69, 0.5, 999, 1, 0.25, 499.25}
	var distance, last float64
	fired := 0
	for _, s := range steps {
		distance += s
		fired += Milestone(distance, 1000, &last)
	}
	if distance != 2500 {
		t.Fatalf("test steps sum to %v, want 2500", distance)
	}
	if fired != 2 {
		t.Errorf("level milestone fired %d times, want 2", fired)
	}
	if last != 2000 {
		t.Errorf("last = %v, want 2000", last)
	}
}

func TestMilestone(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		interval float64
		last     float64
		want     int
		wantLast float64
	}{
		{"below first", 99.9, 100, 0, 0, 0},
		{"exact multiple", 100, 100, 0, 1, 100},
		{"same bucket", 150, 100, 100, 0, 100},
		{"skipped multiples", 430, 100, 100, 3, 400},
		{"zero interval", 1e6, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last := tt.last
			if got := Milestone(tt.value, tt.interval, &last); got != tt.want {
				t.Errorf("Milestone = %d, want %d", got, tt.want)
			}
			if last != tt.wantLast {
				t.Errorf("last = %v, want %v", last, tt.wantLast)
			}
		})
	}
}
