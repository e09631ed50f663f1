package events

import "sync/atomic"

const (
	// QueueSize must be a power of two
	QueueSize = 256
	queueMask = QueueSize - 1
)

// EventQueue is a lock-free MPSC ring buffer for game events
// Push is safe from any goroutine, Consume only from the frame loop
// Oldest events are overwritten when full
type EventQueue struct {
	events    [QueueSize]GameEvent
	published [QueueSize]atomic.Bool
	head      atomic.Uint64
	tail      atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds an event, claiming a slot with CAS and publishing it after the write
func (eq *EventQueue) Push(event GameEvent) {
	for {
		tail := eq.tail.Load()
		next := tail + 1
		if !eq.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & queueMask
		eq.events[idx] = event
		eq.published[idx].Store(true)

		if head := eq.head.Load(); next-head > QueueSize {
			eq.head.CompareAndSwap(head, next-QueueSize)
		}
		return
	}
}

// Consume returns all published events in FIFO order and advances head
func (eq *EventQueue) Consume() []GameEvent {
	for {
		head := eq.head.Load()
		tail := eq.tail.Load()
		if tail == head {
			return nil
		}

		available := tail - head
		if available > QueueSize {
			available = QueueSize
			head = tail - QueueSize
		}

		result := make([]GameEvent, 0, available)
		for i := uint64(0); i < available; i++ {
			idx := (head + i) & queueMask
			if !eq.published[idx].Load() {
				break
			}
			result = append(result, eq.events[idx])
			eq.published[idx].Store(false)
		}

		if eq.head.CompareAndSwap(head, head+uint64(len(result))) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	n := eq.tail.Load() - eq.head.Load()
	if n > QueueSize {
		return QueueSize
	}
	return int(n)
}
