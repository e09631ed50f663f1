package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 the frame loop writes and front ends read
// The zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(v float64) { f.bits.Store(math.Float64bits(v)) }
func (f *AtomicFloat) Get() float64  { return math.Float64frombits(f.bits.Load()) }

// Add adds delta and returns the result
func (f *AtomicFloat) Add(delta float64) float64 {
	return f.update(func(old float64) float64 { return old + delta })
}

// Max raises the value to v if v is larger and returns the result
func (f *AtomicFloat) Max(v float64) float64 {
	return f.update(func(old float64) float64 { return math.Max(old, v) })
}

func (f *AtomicFloat) update(fn func(float64) float64) float64 {
	for {
		old := f.bits.Load()
		next := fn(math.Float64frombits(old))
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// AtomicString is a label such as the current phase name
type AtomicString struct {
	v atomic.Value
}

func (s *AtomicString) Store(v string) { s.v.Store(v) }

// Load returns the last stored label, empty before the first Store
func (s *AtomicString) Load() string {
	v, _ := s.v.Load().(string)
	return v
}
