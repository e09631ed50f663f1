package systems

import (
	"testing"

	"github.com/lixenwraith/aviator/config"
	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/events"
	"github.com/lixenwraith/aviator/parameter"
)

// TestLevelUpExactlyTwice steps the distance 0 -> 2500 irregularly
func TestLevelUpExactlyTwice(t *testing.T) {
	w := newTestWorld(t, config.Default())
	gs := w.ctx.State

	levelUps := 0
	for _, d := range []float64{0, 10.5, 480, 999.99, 1000.2, 1333, 1999, 2000.01, 2001, 2499.9, 2500} {
		gs.Distance = d
		gs.Energy = 100
		w.progression.Update(w.ctx, frame)
		levelUps += countEvents(w.drain(), events.EventLevelUp)
	}

	if levelUps != 2 || gs.Level != 3 {
		t.Errorf("level-ups = %d, level = %d; want 2 and 3", levelUps, gs.Level)
	}
}

func TestSpawnMilestones(t *testing.T) {
	w := newTestWorld(t, config.Default())
	gs := w.ctx.State

	gs.Distance = 100.3
	w.progression.Update(w.ctx, frame)
	evs := w.drain()

	if countEvents(evs, events.EventCoinsSpawned) != 1 {
		t.Errorf("coin batches = %d, want 1", countEvents(evs, events.EventCoinsSpawned))
	}
	// 50 and 100 were both crossed
	if countEvents(evs, events.EventEnemiesSpawned) != 2 {
		t.Errorf("enemy waves = %d, want 2", countEvents(evs, events.EventEnemiesSpawned))
	}
	if countEvents(evs, events.EventSpeedUp) != 1 {
		t.Errorf("speed ups = %d, want 1", countEvents(evs, events.EventSpeedUp))
	}

	// Same bucket next frame: nothing new
	w.progression.Update(w.ctx, frame)
	if evs := w.drain(); countEvents(evs, events.EventCoinsSpawned)+countEvents(evs, events.EventEnemiesSpawned) != 0 {
		t.Errorf("re-fired milestones: %+v", evs)
	}
}

func TestPlayingAdvancesDistanceAndDrainsEnergy(t *testing.T) {
	w := newTestWorld(t, config.Default())
	gs := w.ctx.State
	w.pointer.pos.X = 0.5

	w.step(frame) // PlaneSpeed set, Speed becomes non-zero
	if gs.PlaneSpeed != gs.PlaneMaxSpeed {
		t.Fatalf("plane speed = %v, want max", gs.PlaneSpeed)
	}
	if gs.Speed <= 0 {
		t.Fatalf("speed = %v after first frame", gs.Speed)
	}

	speed := gs.Speed
	dist, energy := gs.Distance, gs.Energy
	w.step(frame)

	ms := engine.Milliseconds(frame)
	if want := dist + speed*ms*parameter.RatioSpeedDistance; gs.Distance != want {
		t.Errorf("distance = %v, want %v", gs.Distance, want)
	}
	if want := energy - speed*ms*parameter.RatioSpeedEnergy; gs.Energy != want {
		t.Errorf("energy = %v, want %v", gs.Energy, want)
	}
}

// TestFallReachesWaitingReplayOnce runs the game-over dive to completion
func TestFallReachesWaitingReplayOnce(t *testing.T) {
	w := newTestWorld(t, config.Default())
	gs := w.ctx.State
	gs.RemoveEnergy(100)
	if gs.Phase != engine.PhaseGameOver {
		t.Fatal("setup: expected GameOver")
	}

	waiting, frames := 0, 0
	for i := 0; i < 1000; i++ {
		w.step(frame)
		waiting += countEvents(w.drain(), events.EventWaitingReplay)
		if gs.Phase == engine.PhaseGameOver {
			frames++
		}
	}

	if gs.Phase != engine.PhaseWaitingReplay {
		t.Fatalf("phase = %s after 1000 frames", gs.Phase)
	}
	if waiting != 1 {
		t.Errorf("WaitingReplay fired %d times, want 1", waiting)
	}
	if frames < 100 || frames > 200 {
		t.Errorf("fall took %d frames, expected roughly 140", frames)
	}
	if y := w.aircraft.Aircraft().Position.Y; y >= parameter.PlaneFallFloor {
		t.Errorf("aircraft y = %v, want below floor", y)
	}
}

func TestGameOverDecaysSpeed(t *testing.T) {
	w := newTestWorld(t, config.Default())
	gs := w.ctx.State
	gs.Speed = 0.001
	gs.RemoveEnergy(100)

	w.progression.Update(w.ctx, frame)
	if gs.Speed != 0.001*parameter.GameOverSpeedDecay {
		t.Errorf("speed = %v, want decayed", gs.Speed)
	}
	if gs.Distance != 0 {
		t.Errorf("distance advanced during game over: %v", gs.Distance)
	}
}

func TestLevelUpResetsTargetSpeed(t *testing.T) {
	w := newTestWorld(t, config.Default())
	gs := w.ctx.State

	gs.Distance = 1000.5
	w.progression.Update(w.ctx, frame)

	if gs.Level != 2 {
		t.Fatalf("level = %d, want 2", gs.Level)
	}
	if want := gs.InitSpeed + gs.IncrementSpeedByLevel*2; gs.TargetBaseSpeed != want {
		t.Errorf("target base speed = %v, want %v", gs.TargetBaseSpeed, want)
	}
}
