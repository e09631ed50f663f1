package engine

import "time"

// FrameClock turns successive readings of a time source into per-frame deltas
// Deltas are capped at maxDelta so a stall does not teleport entities
type FrameClock struct {
	source   TimeProvider
	last     time.Time
	started  bool
	maxDelta time.Duration
}

// NewFrameClock creates a frame clock; maxDelta <= 0 disables the cap
func NewFrameClock(source TimeProvider, maxDelta time.Duration) *FrameClock {
	return &FrameClock{source: source, maxDelta: maxDelta}
}

// Tick returns the elapsed time since the previous tick, zero on the first one
func (fc *FrameClock) Tick() time.Duration {
	now := fc.source.Now()
	if !fc.started {
		fc.started = true
		fc.last = now
		return 0
	}
	dt := now.Sub(fc.last)
	fc.last = now
	if dt < 0 {
		return 0
	}
	if fc.maxDelta > 0 && dt > fc.maxDelta {
		return fc.maxDelta
	}
	return dt
}

// Reset makes the next tick return zero
func (fc *FrameClock) Reset() {
	fc.started = false
}

// Milliseconds converts a frame delta into the per-ms unit all rates are tuned in
func Milliseconds(dt time.Duration) float64 {
	return float64(dt) / float64(time.Millisecond)
}
