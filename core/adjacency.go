// Package core: intrusive adjacency maintenance.
//
// This file owns the only code paths that mutate chain links. Every edge
// belongs to exactly two doubly-linked chains - its source's outgoing chain
// and its target's incoming chain - whose prev/next fields live inside the
// edge records. Splice and unsplice are O(1); a dangling link encountered
// while following a chain means the structure is corrupt and panics.

package core

import "fmt"

// AddEdge inserts a directed edge source→target carrying weight and returns
// its fresh identifier. The new edge is spliced at the head of both chains,
// so it becomes the first edge yielded by subsequent traversals. Parallel
// edges and self-loops are always permitted.
//
// Returns ErrVertexNotFound when either endpoint is stale or unknown.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddEdge(source, target VertexID, weight E) (EdgeID, error) {
	if !g.vertices.Contains(source.key) || !g.vertices.Contains(target.key) {
		return EdgeID{}, ErrVertexNotFound
	}

	id := EdgeID{key: g.edges.Insert(edgeRecord[E]{
		weight: weight,
		source: source,
		target: target,
	})}
	// Re-resolve records after the insert: growing the edge arena may have
	// moved its backing sequence.
	rec := g.mustEdge(id)
	src := g.mustVertex(source)
	dst := g.mustVertex(target)

	// Head-splice into source's outgoing chain.
	rec.outNext = src.outHead
	if !src.outHead.IsZero() {
		g.mustEdge(src.outHead).outPrev = id
	}
	src.outHead = id

	// Head-splice into target's incoming chain. For a self-loop src and dst
	// are the same record; the two chains use disjoint fields.
	rec.inNext = dst.inHead
	if !dst.inHead.IsZero() {
		g.mustEdge(dst.inHead).inPrev = id
	}
	dst.inHead = id

	g.version++

	return id, nil
}

// RemoveEdge deletes the edge and returns its weight. A stale or unknown id
// returns the zero weight and false; so does a second removal of the same
// id. Complexity: O(1).
func (g *Graph[V, E]) RemoveEdge(id EdgeID) (E, bool) {
	var zero E
	rec, ok := g.edges.Get(id.key)
	if !ok {
		return zero, false
	}

	g.unsplice(id, rec)
	removed, _ := g.edges.Remove(id.key)
	g.version++

	return removed.weight, true
}

// unsplice detaches the edge from both of its chains, fixing the chain head
// when the edge was the most recent insertion.
func (g *Graph[V, E]) unsplice(id EdgeID, rec *edgeRecord[E]) {
	// Outgoing chain of rec.source.
	if rec.outPrev.IsZero() {
		g.mustVertex(rec.source).outHead = rec.outNext
	} else {
		g.mustEdge(rec.outPrev).outNext = rec.outNext
	}
	if !rec.outNext.IsZero() {
		g.mustEdge(rec.outNext).outPrev = rec.outPrev
	}

	// Incoming chain of rec.target.
	if rec.inPrev.IsZero() {
		g.mustVertex(rec.target).inHead = rec.inNext
	} else {
		g.mustEdge(rec.inPrev).inNext = rec.inNext
	}
	if !rec.inNext.IsZero() {
		g.mustEdge(rec.inNext).inPrev = rec.inPrev
	}
}

// HasEdge reports whether at least one edge source→target exists, by walking
// source's outgoing chain. A stale or unknown endpoint yields false.
//
// Complexity: O(out-degree(source)) - not O(1). Callers needing constant-time
// existence checks should maintain a secondary index (see slotgraph/index)
// keyed by endpoint pair alongside their mutations.
func (g *Graph[V, E]) HasEdge(source, target VertexID) bool {
	rec, ok := g.vertices.Get(source.key)
	if !ok {
		return false
	}
	for cur := rec.outHead; !cur.IsZero(); {
		e := g.mustEdge(cur)
		if e.target == target {
			return true
		}
		cur = e.outNext
	}

	return false
}

// OutDegree returns the number of edges whose source is id.
// Returns ErrVertexNotFound for a stale or unknown id.
// Complexity: O(out-degree(id)).
func (g *Graph[V, E]) OutDegree(id VertexID) (int, error) {
	rec, ok := g.vertices.Get(id.key)
	if !ok {
		return 0, ErrVertexNotFound
	}
	n := 0
	for cur := rec.outHead; !cur.IsZero(); cur = g.mustEdge(cur).outNext {
		n++
	}

	return n, nil
}

// InDegree returns the number of edges whose target is id.
// Returns ErrVertexNotFound for a stale or unknown id.
// Complexity: O(in-degree(id)).
func (g *Graph[V, E]) InDegree(id VertexID) (int, error) {
	rec, ok := g.vertices.Get(id.key)
	if !ok {
		return 0, ErrVertexNotFound
	}
	n := 0
	for cur := rec.inHead; !cur.IsZero(); cur = g.mustEdge(cur).inNext {
		n++
	}

	return n, nil
}

// Degree returns OutDegree + InDegree. A self-loop counts once in each.
// Returns ErrVertexNotFound for a stale or unknown id.
// Complexity: O(degree(id)).
func (g *Graph[V, E]) Degree(id VertexID) (int, error) {
	out, err := g.OutDegree(id)
	if err != nil {
		return 0, err
	}
	in, _ := g.InDegree(id)

	return out + in, nil
}

// mustEdge resolves a chain link that is required to be live. Failure means
// the adjacency structure is corrupt (a bug in this package, not bad input).
func (g *Graph[V, E]) mustEdge(id EdgeID) *edgeRecord[E] {
	rec, ok := g.edges.Get(id.key)
	if !ok {
		panic(fmt.Sprintf("core: corrupt adjacency: dangling edge link %s", id))
	}

	return rec
}

// mustVertex resolves an endpoint that is required to be live. Failure means
// an edge outlived one of its endpoints, which the cascade delete forbids.
func (g *Graph[V, E]) mustVertex(id VertexID) *vertexRecord[V] {
	rec, ok := g.vertices.Get(id.key)
	if !ok {
		panic(fmt.Sprintf("core: corrupt adjacency: edge references removed vertex %s", id))
	}

	return rec
}
