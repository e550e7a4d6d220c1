// Package slot: generational arena implementation.
//
// This file declares Key, Arena, and the full allocate/free/lookup protocol.
// Invariants maintained by every operation:
//   - a slot's generation strictly increases each time its occupant is freed;
//   - the free list only threads empty slots;
//   - Len() equals the number of occupied slots at all times.

package slot

import "fmt"

// noFree terminates the free list.
const noFree = -1

// firstGeneration is the generation assigned to a freshly grown slot.
// Starting at 1 keeps the zero Key permanently invalid.
const firstGeneration uint32 = 1

// Key identifies one record inside an Arena: a slot index paired with the
// generation the slot carried when the record was inserted. A Key is valid
// iff the index is in range, the slot is occupied, and the generations match.
//
// The zero Key is never valid.
type Key struct {
	// Index is the position of the slot in the arena's backing sequence.
	Index uint32

	// Generation is the slot's generation at insertion time.
	Generation uint32
}

// IsZero reports whether k is the zero Key (the "no record" sentinel).
func (k Key) IsZero() bool { return k.Generation == 0 }

// String renders the key as "index@generation".
func (k Key) String() string { return fmt.Sprintf("%d@%d", k.Index, k.Generation) }

// entry is a single slot: occupied (generation + value) or empty (free link).
type entry[T any] struct {
	generation uint32
	nextFree   int32 // next empty slot, noFree terminator; valid only when !occupied
	occupied   bool
	value      T
}

// Arena is a growable generational slot store for values of type T.
// The zero value is not usable; construct with New.
type Arena[T any] struct {
	slots    []entry[T]
	freeHead int32
	length   int
}

// New returns an empty arena with room for capacity values before the
// backing sequence first grows. A negative capacity is treated as 0.
// Complexity: O(1).
func New[T any](capacity int) *Arena[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Arena[T]{
		slots:    make([]entry[T], 0, capacity),
		freeHead: noFree,
	}
}

// Insert stores value and returns its Key. Freed slots are reused before the
// backing sequence grows. Complexity: O(1) amortized.
func (a *Arena[T]) Insert(value T) Key {
	if a.freeHead != noFree {
		idx := a.freeHead
		s := &a.slots[idx]
		a.freeHead = s.nextFree
		s.occupied = true
		s.value = value
		a.length++

		return Key{Index: uint32(idx), Generation: s.generation}
	}

	a.slots = append(a.slots, entry[T]{
		generation: firstGeneration,
		nextFree:   noFree,
		occupied:   true,
		value:      value,
	})
	a.length++

	return Key{Index: uint32(len(a.slots) - 1), Generation: firstGeneration}
}

// Remove frees the slot addressed by key and returns the stored value.
// The slot's generation is bumped before it rejoins the free list, so key
// (and every copy of it) is stale from this point on. Removing a stale or
// out-of-range key returns the zero value and false. Complexity: O(1).
func (a *Arena[T]) Remove(key Key) (T, bool) {
	var zero T
	s := a.lookup(key)
	if s == nil {
		return zero, false
	}

	value := s.value
	s.value = zero // release payload references to the garbage collector
	s.occupied = false
	s.generation++
	if s.generation == 0 {
		// Generation counter wrapped; skip 0 so the zero Key stays invalid.
		s.generation = firstGeneration
	}
	s.nextFree = a.freeHead
	a.freeHead = int32(key.Index)
	a.length--

	return value, true
}

// Get returns a pointer to the value addressed by key, or false when key is
// stale or out of range. The pointer stays valid until the next Insert
// (which may grow the backing sequence) or until the slot is freed.
// Complexity: O(1).
func (a *Arena[T]) Get(key Key) (*T, bool) {
	s := a.lookup(key)
	if s == nil {
		return nil, false
	}

	return &s.value, true
}

// Contains reports whether key addresses a live value. Complexity: O(1).
func (a *Arena[T]) Contains(key Key) bool {
	return a.lookup(key) != nil
}

// Len returns the number of occupied slots. Complexity: O(1).
func (a *Arena[T]) Len() int { return a.length }

// Cap returns the number of allocated slots, occupied or free.
// Complexity: O(1).
func (a *Arena[T]) Cap() int { return len(a.slots) }

// Clear frees every occupied slot. All outstanding keys become stale: each
// occupied slot's generation is bumped, exactly as if it had been removed
// individually. The backing sequence is retained. Complexity: O(Cap).
func (a *Arena[T]) Clear() {
	var zero T
	a.freeHead = noFree
	for i := len(a.slots) - 1; i >= 0; i-- {
		s := &a.slots[i]
		if s.occupied {
			s.occupied = false
			s.value = zero
			s.generation++
			if s.generation == 0 {
				s.generation = firstGeneration
			}
		}
		s.nextFree = a.freeHead
		a.freeHead = int32(i)
	}
	a.length = 0
}

// Scan returns the key of the first occupied slot at index from or beyond,
// together with the index to resume the scan from. ok is false when no
// occupied slot remains. Storage order, skipping empty slots.
// Complexity: O(gap to the next occupied slot).
func (a *Arena[T]) Scan(from int) (key Key, next int, ok bool) {
	for i := from; i < len(a.slots); i++ {
		if a.slots[i].occupied {
			return Key{Index: uint32(i), Generation: a.slots[i].generation}, i + 1, true
		}
	}

	return Key{}, len(a.slots), false
}

// lookup resolves key to its slot, or nil when the key is stale/out of range.
func (a *Arena[T]) lookup(key Key) *entry[T] {
	if key.IsZero() || int(key.Index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[key.Index]
	if !s.occupied || s.generation != key.Generation {
		return nil
	}

	return s
}
