// Package slotgraph is an in-memory property-graph storage engine built on
// generational slot handles and intrusive adjacency chains.
//
// 🚀 What is slotgraph?
//
//	A compact, pure-Go storage substrate for directed multigraphs:
//		• Generational arena: stable, reusable, use-after-free-detecting handles
//		• Intrusive adjacency: O(1) edge insert/remove, O(degree) cascade delete
//		• Generic payloads: any vertex/edge weight type, no interface required
//		• Lazy cursors: filterable, limit-aware traversal with mutation detection
//		• Optional secondary indexes: exact-match and range lookups by payload
//
// ✨ Why choose slotgraph?
//
//   - Handle safety – a removed vertex or edge stays removed; slot reuse can
//     never resurrect a stale identifier
//   - Predictable costs – every operation is bounded by current graph size,
//     no hidden rehashing or index maintenance on the mutation path
//   - Pure Go – no cgo, two small dependencies
//   - Deterministic order – per-chain traversal is always most-recent-first
//
// Everything is organized under three subpackages:
//
//	slot/  — the generational slot arena: Arena[T] and Key
//	core/  — Graph[V,E], identifiers, references, cursors and the facade
//	index/ — optional exact-match (hash) and range (B-tree) vertex indexes
//
// Quick ASCII example:
//
//	    A ──w1──▶ B
//	    │         │
//	    w2        w3
//	    ▼         ▼
//	    C ◀───────┘
//
//	three vertices, three directed weighted edges; removing A cascades
//	A→B and A→C away and leaves B→C untouched.
//
//	go get github.com/katalvlaran/slotgraph/core
package slotgraph
