// Package core implements a directed multigraph over a generational slot
// arena, with intrusive doubly-linked adjacency chains threaded through the
// edge records themselves.
//
// The Graph G = (V,E) is generic over its payloads:
//
//	g := core.New[CityInfo, RoadInfo]()
//	a := g.AddVertex(CityInfo{Name: "A"})
//	b := g.AddVertex(CityInfo{Name: "B"})
//	e, err := g.AddEdge(a, b, RoadInfo{Km: 12})
//
// Storage model
//
//   - Vertices and edges live in two slot arenas; their identifiers are
//     (index, generation) handles. Removing an element bumps the slot's
//     generation, so a handle captured before the removal stays invalid
//     forever, even after the slot is reused.
//   - Each vertex heads two intrusive chains: its outgoing edges and its
//     incoming edges. The prev/next links live inside the edge records and
//     hold EdgeIDs, never pointers. New edges splice in at the chain head,
//     so per-chain traversal order is always most-recent-first; this order
//     is part of the public contract and pinned by tests.
//   - Edge insert and remove are O(1); vertex removal cascades over every
//     incident edge in O(degree); HasEdge and the degree queries walk one
//     or two chains, O(degree). Callers that need O(1) exact lookups can
//     maintain a slotgraph/index structure alongside the graph.
//
// Parallel edges between the same ordered endpoint pair are always allowed
// (multigraph semantics), as are self-loops. A self-loop occupies both of
// its vertex's chains: it adds 1 to the out-degree and 1 to the in-degree,
// and a Both-direction search yields it twice, once per chain.
//
// Lookup and removal of a stale or unknown handle report absence via a
// comma-ok result - never an error, never a panic. Sentinel errors are
// reserved for AddEdge with missing endpoints and the degree queries
// (ErrVertexNotFound), and for cursors that detect structural mutation
// mid-flight (ErrConcurrentMutation). A broken chain link discovered during
// traversal is internal corruption and panics.
//
// Search entry points return lazy single-pass cursors in the style of
// bufio.Scanner:
//
//	it := g.Edges(a).Direction(core.Outgoing).Where(isHighway).Limit(10)
//	for it.Next() {
//		ref := it.Edge()
//		_ = ref.Target()
//	}
//	if err := it.Err(); err != nil { ... }
//
// Filters are applied before the limit is charged. Every structural mutation
// (add/remove vertex or edge, Clear, and any FilterEdges call that removes at
// least one edge) invalidates all live cursors; the next Next returns false
// and Err reports ErrConcurrentMutation.
//
// Concurrency: the graph performs no internal locking and has no blocking
// operations. A Graph may be handed off between goroutines wholesale, but
// concurrent mutation - or mutation concurrent with reads - requires mutual
// exclusion supplied by the caller.
package core
