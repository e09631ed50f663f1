package input

import (
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/aviator/vmath"
)

func TestFromScreen(t *testing.T) {
	tests := []struct {
		name         string
		px, py       float64
		w, h         float64
		wantX, wantY float64
	}{
		{"top left", 0, 0, 800, 600, -1, 1},
		{"center", 400, 300, 800, 600, 0, 0},
		{"bottom right", 800, 600, 800, 600, 1, -1},
		{"quarter", 200, 450, 800, 600, -0.5, -0.5},
		{"zero width", 10, 10, 0, 600, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromScreen(tt.px, tt.py, tt.w, tt.h)
			if got.X != tt.wantX || got.Y != tt.wantY {
				t.Errorf("FromScreen(%v,%v,%v,%v) = %+v, want (%v,%v)", tt.px, tt.py, tt.w, tt.h, got, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPointerLastValueWins(t *testing.T) {
	p := NewPointer()
	if got := p.Get(); got != (vmath.Vec2{}) {
		t.Fatalf("fresh pointer = %+v, want origin", got)
	}

	p.Set(vmath.Vec2{X: 0.2, Y: -0.4})
	p.Set(vmath.Vec2{X: 3, Y: -7})
	if got := p.Get(); got != (vmath.Vec2{X: 1, Y: -1}) {
		t.Errorf("Get = %+v, want clamped (1,-1)", got)
	}
	t.Logf("✓ last write wins and is clamped")
}

func TestPointerConcurrentWriters(t *testing.T) {
	p := NewPointer()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				v := float64(i) / 8
				p.Set(vmath.Vec2{X: v, Y: v})
			}
		}(i)
	}
	for j := 0; j < 1000; j++ {
		got := p.Get()
		if got.X < 0 || got.X > 1 {
			t.Fatalf("torn read %+v", got)
		}
	}
	wg.Wait()
}

func TestKeyTableClassify(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		ev   tcell.Event
		want IntentType
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), IntentPause},
		{tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentMute},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentReplay},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), IntentNone},
		{tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), IntentDebug},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentReplay},
		{tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone), IntentReplay},
		{tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone), IntentNone},
		{tcell.NewEventResize(80, 24), IntentResize},
	}

	for _, tt := range tests {
		if got := kt.Classify(tt.ev); got != tt.want {
			t.Errorf("Classify(%T) = %s, want %s", tt.ev, got, tt.want)
		}
	}
}

func TestTouchTrackerFollowsFirstFinger(t *testing.T) {
	var tr TouchTracker

	pos, touching, released := tr.Update([]int{7}, []vmath.Vec2{{X: 10, Y: 20}})
	if !touching || released || pos != (vmath.Vec2{X: 10, Y: 20}) {
		t.Fatalf("first touch = %+v %v %v", pos, touching, released)
	}

	// A second finger joins; the first keeps steering
	pos, _, _ = tr.Update([]int{3, 7}, []vmath.Vec2{{X: 99, Y: 99}, {X: 15, Y: 25}})
	if pos != (vmath.Vec2{X: 15, Y: 25}) {
		t.Errorf("steering switched to second finger: %+v", pos)
	}

	// First finger lifts while the second stays: hand over, no release
	pos, touching, released = tr.Update([]int{3}, []vmath.Vec2{{X: 50, Y: 60}})
	if !touching || released || pos != (vmath.Vec2{X: 50, Y: 60}) {
		t.Errorf("hand over = %+v %v %v", pos, touching, released)
	}
	t.Logf("✓ Steering finger held until lifted")
}

func TestTouchTrackerReleaseOnce(t *testing.T) {
	var tr TouchTracker

	if _, touching, released := tr.Update(nil, nil); touching || released {
		t.Fatal("idle tracker reported activity")
	}
	tr.Update([]int{1}, []vmath.Vec2{{X: 4, Y: 8}})

	pos, touching, released := tr.Update(nil, nil)
	if touching || !released {
		t.Fatalf("lift = touching %v released %v, want false true", touching, released)
	}
	if pos != (vmath.Vec2{X: 4, Y: 8}) {
		t.Errorf("lift position = %+v, want last touch", pos)
	}
	if _, _, released := tr.Update(nil, nil); released {
		t.Error("release reported twice")
	}
	if tr.Touching() {
		t.Error("tracker still touching after lift")
	}
	t.Logf("✓ Lifting the last finger releases exactly once")
}
