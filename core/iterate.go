// Package core: lazy cursors over vertices and adjacency chains.
//
// Cursors are single-pass and produced on demand; a fresh call to Vertices,
// Edges, or EdgesBetween yields a fresh cursor over the current state.
// Search configuration (direction, payload filter, label, limit) is applied
// fluently on the cursor before the first Next; filters are charged before
// the limit. Every cursor captures the graph's version at creation and stops
// with ErrConcurrentMutation when a structural mutation overtakes it.

package core

// edge cursor phases: which chain of the anchor vertex is being walked.
const (
	phaseOut = iota
	phaseIn
)

// Vertices returns a cursor over all live vertices in storage order
// (occupied slots ascending, empty slots skipped).
//
// Complexity: O(capacity) for a full scan; each Next is O(gap to the next
// occupied slot).
func (g *Graph[V, E]) Vertices() *VertexIter[V, E] {
	return &VertexIter[V, E]{g: g, version: g.version, limit: -1}
}

// Edges returns a cursor over the edges incident to vertex, walking the
// selected chain(s) head-to-tail, i.e. most-recently-inserted first. The
// default direction is Both: the outgoing chain, then the incoming chain
// (a self-loop is yielded once per chain). An unknown or stale vertex yields
// an empty cursor.
//
// Complexity: O(degree(vertex)) for a full walk.
func (g *Graph[V, E]) Edges(vertex VertexID) *EdgeIter[V, E] {
	return &EdgeIter[V, E]{g: g, version: g.version, anchor: vertex, direction: Both, limit: -1}
}

// EdgesBetween returns a cursor over every parallel edge source→target, in
// most-recently-inserted-first order. Complexity: O(out-degree(source)).
func (g *Graph[V, E]) EdgesBetween(source, target VertexID) *EdgeIter[V, E] {
	it := g.Edges(source).Direction(Outgoing)
	it.matchTarget = target
	it.hasTarget = true

	return it
}

// FilterEdges removes every edge failing the predicate and returns the number
// removed. Removal is two-phase (collect, then unsplice) so the scan never
// observes its own mutations. A call that removes nothing is not a structural
// mutation and leaves live cursors valid. Complexity: O(E + removed).
func (g *Graph[V, E]) FilterEdges(pred func(EdgeRef[E]) bool) int {
	var doomed []EdgeID
	for i := 0; ; {
		key, next, ok := g.edges.Scan(i)
		if !ok {
			break
		}
		i = next
		rec, _ := g.edges.Get(key)
		id := EdgeID{key: key}
		if !pred(EdgeRef[E]{id: id, weight: rec.weight, source: rec.source, target: rec.target}) {
			doomed = append(doomed, id)
		}
	}
	for _, id := range doomed {
		g.RemoveEdge(id)
	}

	return len(doomed)
}

// VertexIter is a lazy, single-pass cursor over vertices.
//
// Usage follows bufio.Scanner: configure, then loop Next, then check Err.
type VertexIter[V, E any] struct {
	g       *Graph[V, E]
	version uint64

	cursor  int
	filter  func(V) bool
	limit   int // -1 = unlimited
	yielded int

	cur     VertexRef[V]
	err     error
	started bool
	done    bool
}

// Where restricts the cursor to vertices whose weight satisfies pred.
// Multiple Where calls conjoin. Must be called before the first Next.
func (it *VertexIter[V, E]) Where(pred func(V) bool) *VertexIter[V, E] {
	it.ensureNotStarted()
	prev := it.filter
	if prev == nil {
		it.filter = pred
	} else {
		it.filter = func(w V) bool { return prev(w) && pred(w) }
	}

	return it
}

// Labeled restricts the cursor to vertices whose weight implements Labeled
// and reports the given label. Must be called before the first Next.
func (it *VertexIter[V, E]) Labeled(label string) *VertexIter[V, E] {
	return it.Where(func(w V) bool {
		l, ok := any(w).(Labeled)

		return ok && l.Label() == label
	})
}

// Limit caps the number of vertices yielded. Filters apply before the limit
// is charged. A negative n means unlimited. Must be called before the first
// Next.
func (it *VertexIter[V, E]) Limit(n int) *VertexIter[V, E] {
	it.ensureNotStarted()
	it.limit = n

	return it
}

// Next advances to the next matching vertex. It returns false when the scan
// is exhausted, the limit is reached, or the graph was structurally mutated
// (check Err to distinguish).
func (it *VertexIter[V, E]) Next() bool {
	it.started = true
	if it.err != nil || it.done {
		return false
	}
	if it.version != it.g.version {
		it.err = ErrConcurrentMutation

		return false
	}
	for {
		if it.limit >= 0 && it.yielded >= it.limit {
			it.done = true

			return false
		}
		key, next, ok := it.g.vertices.Scan(it.cursor)
		if !ok {
			it.done = true

			return false
		}
		it.cursor = next
		rec, _ := it.g.vertices.Get(key)
		if it.filter != nil && !it.filter(rec.weight) {
			continue
		}
		it.yielded++
		it.cur = VertexRef[V]{id: VertexID{key: key}, weight: rec.weight}

		return true
	}
}

// Vertex returns the reference produced by the last successful Next.
func (it *VertexIter[V, E]) Vertex() VertexRef[V] { return it.cur }

// Err returns ErrConcurrentMutation if the cursor detected a structural
// mutation, nil otherwise.
func (it *VertexIter[V, E]) Err() error { return it.err }

func (it *VertexIter[V, E]) ensureNotStarted() {
	if it.started {
		panic("core: search configured after iteration began")
	}
}

// EdgeIter is a lazy, single-pass cursor over the adjacency chains of one
// vertex. Within one chain edges are yielded head-to-tail, i.e. in
// reverse-insertion order.
type EdgeIter[V, E any] struct {
	g       *Graph[V, E]
	version uint64

	anchor    VertexID
	direction Direction
	phase     int
	cur       EdgeID

	filter      func(E) bool
	matchTarget VertexID
	hasTarget   bool
	limit       int // -1 = unlimited
	yielded     int

	ref     EdgeRef[E]
	err     error
	started bool
	done    bool
}

// Direction selects which chain(s) to walk. Must be called before the first
// Next.
func (it *EdgeIter[V, E]) Direction(d Direction) *EdgeIter[V, E] {
	it.ensureNotStarted()
	it.direction = d

	return it
}

// Where restricts the cursor to edges whose weight satisfies pred. Multiple
// Where calls conjoin. Must be called before the first Next.
func (it *EdgeIter[V, E]) Where(pred func(E) bool) *EdgeIter[V, E] {
	it.ensureNotStarted()
	prev := it.filter
	if prev == nil {
		it.filter = pred
	} else {
		it.filter = func(w E) bool { return prev(w) && pred(w) }
	}

	return it
}

// Labeled restricts the cursor to edges whose weight implements Labeled and
// reports the given label. Must be called before the first Next.
func (it *EdgeIter[V, E]) Labeled(label string) *EdgeIter[V, E] {
	return it.Where(func(w E) bool {
		l, ok := any(w).(Labeled)

		return ok && l.Label() == label
	})
}

// Limit caps the number of edges yielded. Filters apply before the limit is
// charged. A negative n means unlimited. Must be called before the first
// Next.
func (it *EdgeIter[V, E]) Limit(n int) *EdgeIter[V, E] {
	it.ensureNotStarted()
	it.limit = n

	return it
}

// Next advances to the next matching edge. It returns false when the walk is
// exhausted, the limit is reached, or the graph was structurally mutated
// (check Err to distinguish).
func (it *EdgeIter[V, E]) Next() bool {
	if it.err != nil || it.done {
		it.started = true

		return false
	}
	if it.version != it.g.version {
		it.started = true
		it.err = ErrConcurrentMutation

		return false
	}
	if !it.started {
		it.started = true
		rec, ok := it.g.vertices.Get(it.anchor.key)
		if !ok {
			// Unknown anchor: empty cursor, not an error.
			it.done = true

			return false
		}
		if it.direction == Incoming {
			it.phase = phaseIn
			it.cur = rec.inHead
		} else {
			it.phase = phaseOut
			it.cur = rec.outHead
		}
	}
	for {
		if it.limit >= 0 && it.yielded >= it.limit {
			it.done = true

			return false
		}
		if it.cur.IsZero() {
			if it.phase == phaseOut && it.direction == Both {
				// Outgoing chain drained; switch to the incoming chain.
				it.phase = phaseIn
				it.cur = it.g.mustVertex(it.anchor).inHead

				continue
			}
			it.done = true

			return false
		}
		id := it.cur
		rec := it.g.mustEdge(id)
		if it.phase == phaseOut {
			it.cur = rec.outNext
		} else {
			it.cur = rec.inNext
		}
		if it.hasTarget && rec.target != it.matchTarget {
			continue
		}
		if it.filter != nil && !it.filter(rec.weight) {
			continue
		}
		it.yielded++
		it.ref = EdgeRef[E]{id: id, weight: rec.weight, source: rec.source, target: rec.target}

		return true
	}
}

// Edge returns the reference produced by the last successful Next.
func (it *EdgeIter[V, E]) Edge() EdgeRef[E] { return it.ref }

// Err returns ErrConcurrentMutation if the cursor detected a structural
// mutation, nil otherwise.
func (it *EdgeIter[V, E]) Err() error { return it.err }

func (it *EdgeIter[V, E]) ensureNotStarted() {
	if it.started {
		panic("core: search configured after iteration began")
	}
}
