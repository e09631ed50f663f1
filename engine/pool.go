package engine

import "fmt"

// Lifecycle is the pool membership of an entity
type Lifecycle uint8

const (
	InPool Lifecycle = iota
	InUse
)

func (l Lifecycle) String() string {
	if l == InUse {
		return "in-use"
	}
	return "in-pool"
}

// PoolItem is embedded by every pooled entity
// The handle is bound at construction and never replaced
type PoolItem struct {
	handle Handle
	state  Lifecycle
	slot   int // index in the in-use list, -1 while pooled
}

// NewPoolItem binds a handle to a fresh pooled entity
func NewPoolItem(h Handle) PoolItem {
	return PoolItem{handle: h, slot: -1}
}

// Item exposes the embedded record, satisfying Poolable
func (p *PoolItem) Item() *PoolItem { return p }

// Handle returns the entity's visual handle
func (p *PoolItem) Handle() Handle { return p.handle }

// Lifecycle returns the current pool membership
func (p *PoolItem) Lifecycle() Lifecycle { return p.state }

// Poolable is any entity embedding PoolItem
type Poolable interface {
	Item() *PoolItem
}

// Pool recycles entities of one kind so steady-state frames construct nothing
// Free list is a stack: the most recently released entity is acquired first
type Pool[T Poolable] struct {
	group     Handle
	construct func() T
	free      []T
	inUse     []T
	total     int
}

// NewPool creates a pool whose acquired entities attach to group
// prefill entities are constructed up front and parked hidden
func NewPool[T Poolable](group Handle, construct func() T, prefill int) *Pool[T] {
	p := &Pool[T]{
		group:     group,
		construct: construct,
		free:      make([]T, 0, prefill),
		inUse:     make([]T, 0, prefill),
	}
	for i := 0; i < prefill; i++ {
		e := p.newEntity()
		e.Item().handle.SetVisible(false)
		p.free = append(p.free, e)
	}
	return p
}

func (p *Pool[T]) newEntity() T {
	e := p.construct()
	it := e.Item()
	it.state = InPool
	it.slot = -1
	p.total++
	return e
}

// Acquire pops the top of the free list, constructing only when it is empty
// The entity is appended to the in-use list and its handle attached and shown
func (p *Pool[T]) Acquire() T {
	var e T
	if n := len(p.free); n > 0 {
		e = p.free[n-1]
		var zero T
		p.free[n-1] = zero
		p.free = p.free[:n-1]
	} else {
		e = p.newEntity()
	}

	it := e.Item()
	if it.state != InPool {
		panic("engine: acquire of entity already in use")
	}
	it.state = InUse
	it.slot = len(p.inUse)
	p.inUse = append(p.inUse, e)

	it.handle.Attach(p.group)
	it.handle.SetVisible(true)
	return e
}

// Release returns an in-use entity to the top of the free list
// The last in-use entity takes the vacated slot
func (p *Pool[T]) Release(e T) {
	it := e.Item()
	if it.state != InUse || it.slot < 0 || it.slot >= len(p.inUse) || p.inUse[it.slot].Item() != it {
		panic("engine: release of entity not in use")
	}

	last := len(p.inUse) - 1
	if it.slot != last {
		moved := p.inUse[last]
		p.inUse[it.slot] = moved
		moved.Item().slot = it.slot
	}
	var zero T
	p.inUse[last] = zero
	p.inUse = p.inUse[:last]

	it.state = InPool
	it.slot = -1
	it.handle.Detach()
	it.handle.SetVisible(false)
	p.free = append(p.free, e)
}

// Sweep visits every in-use entity once and releases those for which fn returns true
// fn may release the visited entity itself; it must not release other entities of this pool
func (p *Pool[T]) Sweep(fn func(T) bool) {
	for i := 0; i < len(p.inUse); {
		e := p.inUse[i]
		retire := fn(e)
		if i >= len(p.inUse) || p.inUse[i].Item() != e.Item() {
			// fn released e; the swapped-in entity now occupies i
			continue
		}
		if retire {
			p.Release(e)
			continue
		}
		i++
	}
}

// ReleaseAll returns every in-use entity to the pool
func (p *Pool[T]) ReleaseAll() {
	for n := len(p.inUse); n > 0; n = len(p.inUse) {
		p.Release(p.inUse[n-1])
	}
}

// InUse returns the live in-use list; callers must not retain or modify it
func (p *Pool[T]) InUse() []T { return p.inUse }

func (p *Pool[T]) InUseCount() int { return len(p.inUse) }
func (p *Pool[T]) FreeCount() int  { return len(p.free) }

// Total is the number of entities ever constructed by this pool
func (p *Pool[T]) Total() int { return p.total }

// Verify checks the partition invariants, used by tests and debug builds
func (p *Pool[T]) Verify() error {
	if len(p.free)+len(p.inUse) != p.total {
		return fmt.Errorf("pool: free %d + in-use %d != total %d", len(p.free), len(p.inUse), p.total)
	}
	seen := make(map[*PoolItem]struct{}, p.total)
	for i, e := range p.inUse {
		it := e.Item()
		if it.state != InUse || it.slot != i {
			return fmt.Errorf("pool: in-use slot %d holds %s entity at slot %d", i, it.state, it.slot)
		}
		seen[it] = struct{}{}
	}
	for _, e := range p.free {
		it := e.Item()
		if it.state != InPool {
			return fmt.Errorf("pool: free list holds %s entity", it.state)
		}
		if _, dup := seen[it]; dup {
			return fmt.Errorf("pool: entity present twice")
		}
		seen[it] = struct{}{}
	}
	return nil
}
