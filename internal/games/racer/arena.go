package racer

// EntityID addresses a slot in an Arena. The generation distinguishes the
// current occupant of a slot from earlier ones, so a stale id never
// resolves to a newer entity that reused the slot.
type EntityID struct {
	Index uint32
	Gen   uint32
}

// Valid reports whether the id was issued by an arena.
func (id EntityID) Valid() bool {
	return id.Gen != 0
}

type slot[T any] struct {
	gen   uint32
	alive bool
	value T
}

// Arena is a slot pool with O(1) insert, lookup and removal.
// Iteration visits live entries in slot order, which keeps it deterministic.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

// NewArena creates an arena with room for capacity entries before growing.
func NewArena[T any](capacity int) *Arena[T] {
	return &Arena[T]{
		slots: make([]slot[T], 0, capacity),
	}
}

// Insert stores a value and returns its id.
func (a *Arena[T]) Insert(v T) EntityID {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot[T]{})
		idx = uint32(len(a.slots) - 1) //#nosec G115 -- slot count is bounded by entity caps
	}
	s := &a.slots[idx]
	s.gen++
	s.alive = true
	s.value = v
	a.live++
	return EntityID{Index: idx, Gen: s.gen}
}

// Get returns the value for id, or false if it is no longer live.
func (a *Arena[T]) Get(id EntityID) (T, bool) {
	if s := a.lookup(id); s != nil {
		return s.value, true
	}
	var zero T
	return zero, false
}

// Set replaces the value for a live id.
func (a *Arena[T]) Set(id EntityID, v T) bool {
	s := a.lookup(id)
	if s == nil {
		return false
	}
	s.value = v
	return true
}

// Remove frees the slot for id. Removing a stale id is a no-op.
func (a *Arena[T]) Remove(id EntityID) bool {
	s := a.lookup(id)
	if s == nil {
		return false
	}
	var zero T
	s.alive = false
	s.value = zero
	a.free = append(a.free, id.Index)
	a.live--
	return true
}

// Len returns the number of live entries.
func (a *Arena[T]) Len() int {
	return a.live
}

// Each calls fn with a pointer to every live value in slot order.
// fn must not insert into or remove from the arena.
func (a *Arena[T]) Each(fn func(id EntityID, v *T)) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.alive {
			fn(EntityID{Index: uint32(i), Gen: s.gen}, &s.value) //#nosec G115
		}
	}
}

// IDs returns the ids of all live entries in slot order.
func (a *Arena[T]) IDs() []EntityID {
	ids := make([]EntityID, 0, a.live)
	a.Each(func(id EntityID, _ *T) {
		ids = append(ids, id)
	})
	return ids
}

// Values returns copies of all live values in slot order.
func (a *Arena[T]) Values() []T {
	out := make([]T, 0, a.live)
	a.Each(func(_ EntityID, v *T) {
		out = append(out, *v)
	})
	return out
}

// Clear removes every entry. Generations are kept so old ids stay stale.
func (a *Arena[T]) Clear() {
	var zero T
	a.free = a.free[:0]
	for i := len(a.slots) - 1; i >= 0; i-- {
		a.slots[i].alive = false
		a.slots[i].value = zero
		a.free = append(a.free, uint32(i)) //#nosec G115
	}
	a.live = 0
}

func (a *Arena[T]) lookup(id EntityID) *slot[T] {
	if int(id.Index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[id.Index]
	if !s.alive || s.gen != id.Gen {
		return nil
	}
	return s
}
