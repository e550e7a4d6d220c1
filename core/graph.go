// Package core: Graph construction, vertex lifecycle, and element accessors.
//
// Structural mutations in this file (AddVertex, RemoveVertex, Clear) bump the
// graph's version counter; cursors capture the counter at creation and stop
// with ErrConcurrentMutation when it moves. Topology links are only ever
// touched by the adjacency algorithms in adjacency.go.

package core

import "github.com/katalvlaran/slotgraph/slot"

// Graph is an in-memory directed multigraph with vertex payloads of type V
// and edge payloads of type E.
//
// The zero value is not usable; construct with New. See the package
// documentation for the storage model and the concurrency contract.
type Graph[V, E any] struct {
	vertices *slot.Arena[vertexRecord[V]]
	edges    *slot.Arena[edgeRecord[E]]

	// version increments on every structural mutation; live cursors compare
	// against it to detect invalidation.
	version uint64
}

// New creates an empty graph. Complexity: O(1).
func New[V, E any](opts ...Option) *Graph[V, E] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V, E]{
		vertices: slot.New[vertexRecord[V]](cfg.vertexCapacity),
		edges:    slot.New[edgeRecord[E]](cfg.edgeCapacity),
	}
}

// AddVertex inserts a new isolated vertex carrying weight and returns its
// fresh identifier. Complexity: O(1) amortized.
func (g *Graph[V, E]) AddVertex(weight V) VertexID {
	g.version++

	return VertexID{key: g.vertices.Insert(vertexRecord[V]{weight: weight})}
}

// RemoveVertex deletes the vertex and every edge incident to it (cascade
// delete), returning the vertex weight. A stale or unknown id returns the
// zero weight and false; so does a second removal of the same id.
// Complexity: O(degree(id)).
func (g *Graph[V, E]) RemoveVertex(id VertexID) (V, bool) {
	var zero V
	rec, ok := g.vertices.Get(id.key)
	if !ok {
		return zero, false
	}

	// Drain the outgoing chain. Each RemoveEdge rewrites outHead during
	// unlink, so re-reading the head always lands on a live edge; a self-loop
	// removed here also disappears from the incoming chain below.
	for !rec.outHead.IsZero() {
		g.RemoveEdge(rec.outHead)
	}
	// Drain what remains of the incoming chain (edges from other sources).
	for !rec.inHead.IsZero() {
		g.RemoveEdge(rec.inHead)
	}

	removed, _ := g.vertices.Remove(id.key)
	g.version++

	return removed.weight, true
}

// Vertex returns a read-only reference to the vertex, or false when id is
// stale or unknown. Complexity: O(1).
func (g *Graph[V, E]) Vertex(id VertexID) (VertexRef[V], bool) {
	rec, ok := g.vertices.Get(id.key)
	if !ok {
		return VertexRef[V]{}, false
	}

	return VertexRef[V]{id: id, weight: rec.weight}, true
}

// VertexMut returns a mutable reference to the vertex, or false when id is
// stale or unknown. The reference writes through to the stored weight; it is
// invalidated by any structural mutation of the graph. Complexity: O(1).
func (g *Graph[V, E]) VertexMut(id VertexID) (VertexRefMut[V], bool) {
	rec, ok := g.vertices.Get(id.key)
	if !ok {
		return VertexRefMut[V]{}, false
	}

	return VertexRefMut[V]{id: id, weight: &rec.weight}, true
}

// Edge returns a read-only reference to the edge, or false when id is stale
// or unknown. Complexity: O(1).
func (g *Graph[V, E]) Edge(id EdgeID) (EdgeRef[E], bool) {
	rec, ok := g.edges.Get(id.key)
	if !ok {
		return EdgeRef[E]{}, false
	}

	return EdgeRef[E]{id: id, weight: rec.weight, source: rec.source, target: rec.target}, true
}

// EdgeMut returns a mutable reference to the edge, or false when id is stale
// or unknown. Only the weight is writable; endpoints are immutable for the
// life of an edge (re-pointing an edge means remove + re-add).
// Complexity: O(1).
func (g *Graph[V, E]) EdgeMut(id EdgeID) (EdgeRefMut[E], bool) {
	rec, ok := g.edges.Get(id.key)
	if !ok {
		return EdgeRefMut[E]{}, false
	}

	return EdgeRefMut[E]{id: id, weight: &rec.weight, source: rec.source, target: rec.target}, true
}

// EdgeEndpoints returns the source and target of the edge, or false when id
// is stale or unknown. Complexity: O(1).
func (g *Graph[V, E]) EdgeEndpoints(id EdgeID) (source, target VertexID, ok bool) {
	rec, ok := g.edges.Get(id.key)
	if !ok {
		return VertexID{}, VertexID{}, false
	}

	return rec.source, rec.target, true
}

// ContainsVertex reports whether id addresses a live vertex. Complexity: O(1).
func (g *Graph[V, E]) ContainsVertex(id VertexID) bool {
	return g.vertices.Contains(id.key)
}

// ContainsEdge reports whether id addresses a live edge. Complexity: O(1).
func (g *Graph[V, E]) ContainsEdge(id EdgeID) bool {
	return g.edges.Contains(id.key)
}

// VertexCount returns the number of live vertices. Complexity: O(1).
func (g *Graph[V, E]) VertexCount() int { return g.vertices.Len() }

// EdgeCount returns the number of live edges. Complexity: O(1).
func (g *Graph[V, E]) EdgeCount() int { return g.edges.Len() }

// IsEmpty reports whether the graph holds no vertices and no edges.
// Complexity: O(1).
func (g *Graph[V, E]) IsEmpty() bool {
	return g.vertices.Len() == 0 && g.edges.Len() == 0
}

// Clear removes every vertex and edge. All outstanding identifiers become
// stale, exactly as if each element had been removed individually; slot
// storage is retained for reuse. Complexity: O(capacity).
func (g *Graph[V, E]) Clear() {
	g.vertices.Clear()
	g.edges.Clear()
	g.version++
}
