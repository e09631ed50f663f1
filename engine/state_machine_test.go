package engine

import (
	"testing"

	"github.com/lixenwraith/aviator/config"
)

// TestCanTransition checks the lifecycle edge table exhaustively
func TestCanTransition(t *testing.T) {
	valid := map[Phase]Phase{
		PhasePlaying:       PhaseGameOver,
		PhaseGameOver:      PhaseWaitingReplay,
		PhaseWaitingReplay: PhasePlaying,
	}
	phases := []Phase{PhasePlaying, PhaseGameOver, PhaseWaitingReplay}

	for _, from := range phases {
		for _, to := range phases {
			want := valid[from] == to
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			} else if want {
				t.Logf("✓ Valid transition: %s -> %s", from, to)
			}
		}
	}
}

// TestTransitionPhaseCycle walks a full session lifecycle
func TestTransitionPhaseCycle(t *testing.T) {
	gs := NewGameState(config.Default())

	if gs.Phase != PhasePlaying {
		t.Fatalf("initial phase = %s, want Playing", gs.Phase)
	}
	if gs.TransitionPhase(PhaseWaitingReplay) {
		t.Fatal("Playing -> WaitingReplay must be rejected")
	}
	for _, to := range []Phase{PhaseGameOver, PhaseWaitingReplay, PhasePlaying} {
		from := gs.Phase
		if !gs.TransitionPhase(to) {
			t.Fatalf("transition %s -> %s rejected", from, to)
		}
		t.Logf("✓ Transitioned %s -> %s", from, to)
	}
}

func TestMustTransitionPanicsOnInvalidEdge(t *testing.T) {
	gs := NewGameState(config.Default())
	defer func() {
		if recover() == nil {
			t.Error("expected panic for Playing -> Playing")
		}
	}()
	gs.MustTransition(PhasePlaying)
}

func TestPhaseString(t *testing.T) {
	if s := Phase(7).String(); s != "Phase(7)" {
		t.Errorf("unknown phase string = %q", s)
	}
	if s := PhaseWaitingReplay.String(); s != "WaitingReplay" {
		t.Errorf("WaitingReplay string = %q", s)
	}
}
