// Package slot provides a growable generational slot arena: a storage
// primitive that hands out stable, reusable, use-after-free-detecting
// handles for opaque records.
//
// The arena is an ordered sequence of slots. Each slot is either occupied
// (holding one value plus the slot's current generation) or empty (part of a
// free list threaded through the empty slots). Insert pops the free list, or
// grows the sequence when the list is empty; Remove bumps the slot's
// generation before returning it to the free list. The generation bump is the
// sole use-after-free defense: a Key captured before a Remove is permanently
// invalid, even after the slot is reused.
//
// Generations start at 1, so the zero Key never addresses a live value.
// Callers may therefore use the zero Key as a "no record" sentinel.
//
// Core operations, all O(1) amortized:
//
//	Insert(value) Key           // allocate, reusing freed slots first
//	Remove(key) (value, bool)   // free; second Remove of the same key → false
//	Get(key) (*value, bool)     // nil-safe lookup; stale keys → false
//	Contains(key) bool
//	Len() int                   // occupied slots
//	Cap() int                   // allocated slots (occupied + free)
//	Clear()                     // frees everything; all live keys go stale
//	Scan(from) (Key, next, ok)  // next occupied slot in storage order
//
// The arena is not safe for concurrent use; callers that share one across
// goroutines must supply their own mutual exclusion.
package slot
