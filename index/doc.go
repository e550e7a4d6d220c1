// Package index provides optional secondary indexes over graph payloads:
// exact-match lookups backed by a hash table and ordered numeric lookups
// backed by a B-tree.
//
// The core graph deliberately keeps its mutation path free of index
// maintenance, which makes HasEdge and label scans O(degree). When a caller
// needs O(1) exact matches or O(log n) range queries, it maintains one of
// these structures next to the graph, updating it alongside every relevant
// mutation:
//
//	byName := index.NewHash[string]()
//	id := g.AddVertex(City{Name: "Aarhus"})
//	byName.Add("Aarhus", id)
//	...
//	for _, id := range byName.Lookup("Aarhus") {
//		if ref, ok := g.Vertex(id); ok { ... }
//	}
//
// Indexes never observe graph mutations on their own. A forgotten Remove
// leaves a stale identifier behind, which is harmless by construction:
// lookups return identifiers, and resolving a stale identifier against the
// graph reports absence.
//
// None of the types here are safe for concurrent use; apply the same
// external mutual exclusion that guards the graph.
package index
