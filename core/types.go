// Package core provides the Graph type and its supporting identity,
// reference, and iteration layers on top of the slot arena.
//
// This file declares VertexID, EdgeID, the internal vertex/edge records with
// their intrusive chain links, sentinel errors, Direction, and the graph
// construction options.
//
// Errors:
//
//	ErrVertexNotFound     - an endpoint or degree query referenced a stale or
//	                        unknown vertex.
//	ErrConcurrentMutation - the graph was structurally mutated while a cursor
//	                        derived from it was still active.
package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/slotgraph/slot"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent
	// (never added, removed, or stale-handled) vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrConcurrentMutation indicates a cursor detected a structural mutation
	// of its graph after the cursor was created. The cursor stops; restart
	// the search to observe the new state.
	ErrConcurrentMutation = errors.New("core: graph mutated during iteration")
)

// VertexID identifies a vertex. It is a typed wrapper over a slot.Key and is
// never interchangeable with an EdgeID. The zero VertexID identifies nothing.
// VertexIDs are comparable and usable as map keys.
type VertexID struct {
	key slot.Key
}

// VertexIDFromKey wraps a raw slot key as a VertexID. Intended for external
// index layers that persist or order identifiers; a fabricated key never
// resolves unless it matches a live slot generation.
func VertexIDFromKey(k slot.Key) VertexID { return VertexID{key: k} }

// Key returns the underlying slot key.
func (id VertexID) Key() slot.Key { return id.key }

// IsZero reports whether id is the zero ("no vertex") identifier.
func (id VertexID) IsZero() bool { return id.key.IsZero() }

// String renders the identifier as "v<index>@<generation>".
func (id VertexID) String() string { return fmt.Sprintf("v%s", id.key) }

// EdgeID identifies an edge. It is a typed wrapper over a slot.Key and is
// never interchangeable with a VertexID. The zero EdgeID identifies nothing
// and doubles as the adjacency chain terminator.
type EdgeID struct {
	key slot.Key
}

// EdgeIDFromKey wraps a raw slot key as an EdgeID.
func EdgeIDFromKey(k slot.Key) EdgeID { return EdgeID{key: k} }

// Key returns the underlying slot key.
func (id EdgeID) Key() slot.Key { return id.key }

// IsZero reports whether id is the zero ("no edge") identifier.
func (id EdgeID) IsZero() bool { return id.key.IsZero() }

// String renders the identifier as "e<index>@<generation>".
func (id EdgeID) String() string { return fmt.Sprintf("e%s", id.key) }

// Direction selects which adjacency chain(s) an edge search walks,
// relative to the search's anchor vertex.
type Direction uint8

const (
	// Outgoing walks the anchor's outgoing chain (anchor is the source).
	Outgoing Direction = iota

	// Incoming walks the anchor's incoming chain (anchor is the target).
	Incoming

	// Both walks the outgoing chain, then the incoming chain. A self-loop
	// lives in both chains and is therefore yielded twice, once per
	// direction.
	Both
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Outgoing:
		return "outgoing"
	case Incoming:
		return "incoming"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Labeled is the optional capability an edge or vertex weight may implement
// to participate in label-filtered searches. Weights without it simply never
// match a label search; the core imposes no other requirement on payloads.
type Labeled interface {
	Label() string
}

// vertexRecord is the stored form of a vertex: the user payload plus the
// heads of the two intrusive adjacency chains.
type vertexRecord[V any] struct {
	weight  V
	outHead EdgeID // most recently inserted outgoing edge
	inHead  EdgeID // most recently inserted incoming edge
}

// edgeRecord is the stored form of an edge: the user payload, the endpoints,
// and the sibling links of the two chains it belongs to. Links hold EdgeIDs,
// never pointers, so slot reuse cannot dangle them.
type edgeRecord[E any] struct {
	weight E
	source VertexID
	target VertexID

	outPrev, outNext EdgeID // siblings in source's outgoing chain
	inPrev, inNext   EdgeID // siblings in target's incoming chain
}

// Option configures a Graph at construction time.
type Option func(*config)

// config collects construction-time knobs before the arenas are allocated.
type config struct {
	vertexCapacity int
	edgeCapacity   int
}

// WithVertexCapacity pre-allocates room for n vertices. A negative n is
// treated as 0.
func WithVertexCapacity(n int) Option {
	return func(c *config) { c.vertexCapacity = n }
}

// WithEdgeCapacity pre-allocates room for n edges. A negative n is treated
// as 0.
func WithEdgeCapacity(n int) Option {
	return func(c *config) { c.edgeCapacity = n }
}
