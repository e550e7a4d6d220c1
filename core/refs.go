// Package core: alias-safe references to vertex and edge payloads.
//
// Read-only references carry a copy of the weight taken at lookup time, so
// they can never write back and never observe later mutations. Mutable
// references write through to the stored weight but expose nothing
// structural: chain heads, links, and endpoints stay out of reach, keeping
// all topology changes on the Graph's own methods.
//
// Go has no borrow checker, so the aliasing discipline is a contract rather
// than a compile-time guarantee: a mutable reference is invalidated by any
// structural mutation of its graph (the backing storage may move), and
// callers must not hold more than one writer into the same graph at a time.

package core

// VertexRef is a read-only view of one vertex.
type VertexRef[V any] struct {
	id     VertexID
	weight V
}

// ID returns the vertex identifier.
func (r VertexRef[V]) ID() VertexID { return r.id }

// Weight returns the vertex payload as captured at lookup time.
func (r VertexRef[V]) Weight() V { return r.weight }

// VertexRefMut is a writable view of one vertex. Only the payload is
// writable; adjacency heads are not exposed.
type VertexRefMut[V any] struct {
	id     VertexID
	weight *V
}

// ID returns the vertex identifier.
func (r VertexRefMut[V]) ID() VertexID { return r.id }

// Weight returns the current vertex payload.
func (r VertexRefMut[V]) Weight() V { return *r.weight }

// WeightMut returns a pointer to the stored payload. The pointer is valid
// until the next structural mutation of the graph.
func (r VertexRefMut[V]) WeightMut() *V { return r.weight }

// EdgeRef is a read-only view of one edge.
type EdgeRef[E any] struct {
	id             EdgeID
	weight         E
	source, target VertexID
}

// ID returns the edge identifier.
func (r EdgeRef[E]) ID() EdgeID { return r.id }

// Weight returns the edge payload as captured at lookup time.
func (r EdgeRef[E]) Weight() E { return r.weight }

// Source returns the source vertex identifier.
func (r EdgeRef[E]) Source() VertexID { return r.source }

// Target returns the target vertex identifier.
func (r EdgeRef[E]) Target() VertexID { return r.target }

// EdgeRefMut is a writable view of one edge. Only the payload is writable;
// endpoints are immutable for the life of an edge.
type EdgeRefMut[E any] struct {
	id             EdgeID
	weight         *E
	source, target VertexID
}

// ID returns the edge identifier.
func (r EdgeRefMut[E]) ID() EdgeID { return r.id }

// Weight returns the current edge payload.
func (r EdgeRefMut[E]) Weight() E { return *r.weight }

// WeightMut returns a pointer to the stored payload. The pointer is valid
// until the next structural mutation of the graph.
func (r EdgeRefMut[E]) WeightMut() *E { return r.weight }

// Source returns the source vertex identifier.
func (r EdgeRefMut[E]) Source() VertexID { return r.source }

// Target returns the target vertex identifier.
func (r EdgeRefMut[E]) Target() VertexID { return r.target }
