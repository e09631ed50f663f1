package events

import (
	"sync"
	"testing"
)

func TestEventQueueFIFO(t *testing.T) {
	eq := NewEventQueue()

	eq.Push(GameEvent{Type: EventCoinCollected, Payload: "a", Frame: 1})
	eq.Push(GameEvent{Type: EventEnemyHit, Payload: "b", Frame: 2})
	eq.Push(GameEvent{Type: EventLevelUp, Payload: "c", Frame: 3})

	if eq.Len() != 3 {
		t.Errorf("Len = %d, want 3", eq.Len())
	}

	got := eq.Consume()
	if len(got) != 3 {
		t.Fatalf("consumed %d events, want 3", len(got))
	}
	for i, want := range []EventType{EventCoinCollected, EventEnemyHit, EventLevelUp} {
		if got[i].Type != want || got[i].Frame != int64(i+1) {
			t.Errorf("event %d = %s frame %d, want %s frame %d", i, got[i].Type, got[i].Frame, want, i+1)
		}
	}

	if again := eq.Consume(); again != nil {
		t.Errorf("second consume returned %d events", len(again))
	}
}

func TestEventQueueOverflowKeepsNewest(t *testing.T) {
	eq := NewEventQueue()
	total := QueueSize + 10
	for i := 0; i < total; i++ {
		eq.Push(GameEvent{Type: EventCoinsSpawned, Frame: int64(i)})
	}

	got := eq.Consume()
	if len(got) != QueueSize {
		t.Fatalf("consumed %d events, want %d", len(got), QueueSize)
	}
	if got[0].Frame != 10 || got[len(got)-1].Frame != int64(total-1) {
		t.Errorf("window = [%d..%d], want [10..%d]", got[0].Frame, got[len(got)-1].Frame, total-1)
	}
}

func TestEventQueueConcurrentPush(t *testing.T) {
	eq := NewEventQueue()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 16; i++ {
				eq.Push(GameEvent{Type: EventSpeedUp})
			}
		}()
	}
	wg.Wait()

	if got := len(eq.Consume()); got != 128 {
		t.Errorf("consumed %d events, want 128", got)
	}
}

type recordingHandler struct {
	name  string
	types []EventType
	log   *[]string
}

func (h *recordingHandler) HandleEvent(ctx *int, ev GameEvent) {
	*ctx++
	*h.log = append(*h.log, h.name+":"+ev.Type.String())
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func TestRouterDispatchOrder(t *testing.T) {
	eq := NewEventQueue()
	r := NewRouter[*int](eq)

	var log []string
	r.Register(&recordingHandler{name: "sound", types: []EventType{EventCoinCollected, EventEnemyHit}, log: &log})
	r.Register(&recordingHandler{name: "stats", types: []EventType{EventCoinCollected}, log: &log})

	if r.HandlerCount(EventCoinCollected) != 2 || r.HandlerCount(EventGameOver) != 0 {
		t.Fatalf("handler counts = %d/%d", r.HandlerCount(EventCoinCollected), r.HandlerCount(EventGameOver))
	}

	eq.Push(GameEvent{Type: EventEnemyHit})
	eq.Push(GameEvent{Type: EventCoinCollected})
	eq.Push(GameEvent{Type: EventGameOver})

	calls := 0
	if n := r.DispatchAll(&calls); n != 3 {
		t.Errorf("dispatched %d events, want 3", n)
	}

	want := []string{"sound:enemy_hit", "sound:coin_collected", "stats:coin_collected"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %s, want %s", i, log[i], want[i])
		}
	}
	if calls != 3 {
		t.Errorf("handler calls = %d, want 3", calls)
	}
	if r.Delivered(EventCoinCollected) != 1 || r.Delivered(EventGameOver) != 1 || r.Delivered(EventType(-1)) != 0 {
		t.Errorf("delivered counts = %d/%d", r.Delivered(EventCoinCollected), r.Delivered(EventGameOver))
	}
}

func TestEventTypeNames(t *testing.T) {
	for _, et := range AllTypes() {
		name := et.String()
		if name == "unknown" {
			t.Errorf("event type %d has no name", int(et))
			continue
		}
		back, ok := ParseEventType(name)
		if !ok || back != et {
			t.Errorf("ParseEventType(%q) = %v, %v", name, back, ok)
		}
	}
	if EventType(-1).String() != "unknown" {
		t.Error("negative type should be unknown")
	}
}
