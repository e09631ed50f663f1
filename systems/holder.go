package systems

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/aviator/components"
	"github.com/lixenwraith/aviator/engine"
	"github.com/lixenwraith/aviator/events"
	"github.com/lixenwraith/aviator/parameter"
	"github.com/lixenwraith/aviator/vmath"
)

// Orbital is a pooled entity that travels the orbit
type Orbital interface {
	engine.Poolable
	Orbit() *components.Orbiter
}

// HolderStrategy supplies what differs between coins and enemies
type HolderStrategy interface {
	// BatchSize returns the number of entities the next spawn places
	BatchSize(ctx *engine.GameContext) int
	// BatchAmplitude returns the radial wave amplitude shared by a batch
	BatchAmplitude(ctx *engine.GameContext) float64
	// RadiusOffset returns the radial offset of batch index i
	RadiusOffset(i int, amp float64) float64
	AngleStep() float64
	SpeedFactor(gs *engine.GameState) float64
	Tolerance(gs *engine.GameState) float64
	// Collide applies the effect of the aircraft touching an entity at pos
	// diff points from the entity to the aircraft, d is its length
	Collide(ctx *engine.GameContext, pos, diff vmath.Vec3, d float64)
	SpawnEvent() events.EventType
}

// OrbitalHolder spawns batches on the orbit, advances them and retires them on contact or exit
type OrbitalHolder[T Orbital] struct {
	kind     HolderStrategy
	pool     *engine.Pool[T]
	aircraft *components.Aircraft
	priority int
	spawned  *atomic.Int64
	total    *atomic.Int64
}

// NewOrbitalHolder creates a holder whose group handle hangs off the scene root
func NewOrbitalHolder[T Orbital](ctx *engine.GameContext, kind HolderStrategy, aircraft *components.Aircraft,
	construct func() T, prefill, priority int, spawnedKey, totalKey string) *OrbitalHolder[T] {
	group := ctx.Scene.NewHandle(engine.KindGroup)
	group.Attach(ctx.Scene.Root())

	h := &OrbitalHolder[T]{
		kind:     kind,
		pool:     engine.NewPool(group, construct, prefill),
		aircraft: aircraft,
		priority: priority,
		spawned:  ctx.Status.Ints.Get(spawnedKey),
		total:    ctx.Status.Ints.Get(totalKey),
	}
	h.total.Store(int64(h.pool.Total()))
	return h
}

func (h *OrbitalHolder[T]) Priority() int {
	return h.priority
}

// Spawn places one batch trailing behind angle zero and returns its size
// The batch shares one radius jittered within the aircraft height band
func (h *OrbitalHolder[T]) Spawn(ctx *engine.GameContext) int {
	gs := ctx.State
	n := h.kind.BatchSize(ctx)
	base := gs.SeaRadius + gs.PlaneDefaultHeight + (-1+ctx.Rand.Float64()*2)*(gs.PlaneAmpHeight-parameter.SpawnHeightMargin)
	amp := h.kind.BatchAmplitude(ctx)
	step := h.kind.AngleStep()

	for i := 0; i < n; i++ {
		e := h.pool.Acquire()
		o := e.Orbit()
		o.Angle = -(float64(i) * step)
		o.Distance = base + h.kind.RadiusOffset(i, amp)
		o.Place(gs.SeaRadius)
		e.Item().Handle().SetPosition(o.Position.X, o.Position.Y, o.Position.Z)
	}

	h.spawned.Add(int64(n))
	h.total.Store(int64(h.pool.Total()))
	ctx.PushEvent(h.kind.SpawnEvent(), &events.SpawnPayload{Count: n, Radius: base})
	return n
}

// Update advances every entity along the orbit and resolves contact and exit
func (h *OrbitalHolder[T]) Update(ctx *engine.GameContext, dt time.Duration) {
	gs := ctx.State
	ms := engine.Milliseconds(dt)
	rate := gs.Speed * h.kind.SpeedFactor(gs)
	tolerance := h.kind.Tolerance(gs)
	plane := h.aircraft.Position

	h.pool.Sweep(func(e T) bool {
		o := e.Orbit()
		o.Angle = vmath.OrbitAdvance(o.Angle, rate, ms)
		o.Place(gs.SeaRadius)
		o.Rotation.Y += ctx.Rand.Float64() * parameter.RotationJitter
		o.Rotation.Z += ctx.Rand.Float64() * parameter.RotationJitter

		hd := e.Item().Handle()
		hd.SetPosition(o.Position.X, o.Position.Y, o.Position.Z)
		hd.SetRotation(o.Rotation.X, o.Rotation.Y, o.Rotation.Z)

		diff := vmath.V3Sub(plane, o.Position)
		if d := vmath.V3Mag(diff); d < tolerance {
			h.kind.Collide(ctx, o.Position, diff, d)
			return true
		}
		return o.Angle > math.Pi
	})
}

// Active returns the number of entities on the orbit
func (h *OrbitalHolder[T]) Active() int {
	return h.pool.InUseCount()
}

// Pool exposes the holder's pool for inspection
func (h *OrbitalHolder[T]) Pool() *engine.Pool[T] {
	return h.pool
}
