package events

// Handler reacts to the event types it declares
type Handler[T any] interface {
	HandleEvent(ctx T, event GameEvent)
	EventTypes() []EventType
}

// Router fans queued events out to handlers, once per frame on the frame goroutine
// Handlers of one type run in registration order
type Router[T any] struct {
	queue     *EventQueue
	handlers  [eventTypeCount][]Handler[T]
	delivered [eventTypeCount]int
}

func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{queue: queue}
}

// Register subscribes handler to every type it declares; unknown types are ignored
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		if t.valid() {
			r.handlers[t] = append(r.handlers[t], handler)
		}
	}
}

// DispatchAll drains the queue in push order and returns how many events it took
// Events pushed from inside a handler wait for the next call
func (r *Router[T]) DispatchAll(ctx T) int {
	batch := r.queue.Consume()
	for _, ev := range batch {
		if !ev.Type.valid() {
			continue
		}
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
		r.delivered[ev.Type]++
	}
	return len(batch)
}

func (r *Router[T]) HandlerCount(t EventType) int {
	if !t.valid() {
		return 0
	}
	return len(r.handlers[t])
}

// Delivered returns how many events of type t have been dispatched so far
func (r *Router[T]) Delivered(t EventType) int {
	if !t.valid() {
		return 0
	}
	return r.delivered[t]
}

func (t EventType) valid() bool {
	return t >= 0 && t < eventTypeCount
}
