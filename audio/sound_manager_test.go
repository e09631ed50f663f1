package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/aviator/events"
)

// TestSoundManagerSilentWithoutDevice checks every path is safe before Initialize
func TestSoundManagerSilentWithoutDevice(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound operations panicked without initialization: %v", r)
		}
	}()

	for _, et := range sm.EventTypes() {
		sm.HandleEvent(nil, events.GameEvent{Type: et})
	}
	sm.SetThrottle(1.4)
	sm.SetMuted(true)
	sm.Cleanup()

	if sm.Triggered(CueCoin) != 1 || sm.Triggered(CueImpact) != 1 || sm.Triggered(CueCrash) != 1 || sm.Triggered(CueLevelUp) != 1 {
		t.Errorf("cue counts = %d %d %d %d", sm.Triggered(CueCoin), sm.Triggered(CueImpact), sm.Triggered(CueCrash), sm.Triggered(CueLevelUp))
	}
	if !sm.Muted() {
		t.Error("mute flag lost")
	}
}

func TestDronePausesOnGameOver(t *testing.T) {
	sm := NewSoundManager()

	sm.HandleEvent(nil, events.GameEvent{Type: events.EventGameOver})
	if !sm.DronePaused() {
		t.Error("drone still running after game over")
	}
	sm.HandleEvent(nil, events.GameEvent{Type: events.EventReplay})
	if sm.DronePaused() {
		t.Error("drone paused after replay")
	}
}

func TestThrottleSetsDronePitch(t *testing.T) {
	sm := NewSoundManager()
	sm.SetThrottle(1.6)
	if got := sm.drone.Frequency(); got != droneBaseFreq*1.6 {
		t.Errorf("drone frequency = %v, want %v", got, droneBaseFreq*1.6)
	}
}

// TestGeneratorsStayInRange streams every generator and checks sample bounds
func TestGeneratorsStayInRange(t *testing.T) {
	gens := map[string]beep.Streamer{
		"chime":    NewChimeGenerator(sampleRate),
		"impact":   NewImpactGenerator(sampleRate),
		"crash":    NewCrashGenerator(sampleRate, time.Second),
		"arpeggio": NewArpeggioGenerator(sampleRate, 120*time.Millisecond),
		"drone":    NewDroneGenerator(sampleRate),
	}

	buf := make([][2]float64, 512)
	for name, g := range gens {
		total := 0
		for total < sampleRate.N(1500*time.Millisecond) {
			n, ok := g.Stream(buf)
			if !ok || n != len(buf) {
				t.Fatalf("%s: Stream returned %d, %v", name, n, ok)
			}
			for i := 0; i < n; i++ {
				for c := 0; c < 2; c++ {
					if v := buf[i][c]; v < -1 || v > 1 {
						t.Fatalf("%s: sample %d = %v out of [-1,1]", name, total+i, v)
					}
				}
			}
			total += n
		}
		if err := g.Err(); err != nil {
			t.Errorf("%s: Err = %v", name, err)
		}
	}
}

func TestTakeBoundsOneShot(t *testing.T) {
	s := beep.Take(sampleRate.N(180*time.Millisecond), NewChimeGenerator(sampleRate))
	buf := make([][2]float64, 1024)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := sampleRate.N(180 * time.Millisecond); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}
