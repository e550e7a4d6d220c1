// Package core_test provides benchmarks for Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/slotgraph/core"
)

// BenchmarkAddVertex measures vertex insertion into a growing arena.
func BenchmarkAddVertex(b *testing.B) {
	g := core.New[int, int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddVertex(i)
	}
}

// BenchmarkAddEdge measures edge insertion in a star topology: every new
// edge head-splices into the center's outgoing chain.
func BenchmarkAddEdge(b *testing.B) {
	g := core.New[int, int]()
	center := g.AddVertex(0)
	leaves := make([]core.VertexID, 100)
	for i := range leaves {
		leaves[i] = g.AddVertex(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge(center, leaves[i%len(leaves)], i)
	}
}

// BenchmarkAddRemoveEdge measures the full splice/unsplice cycle with slot
// reuse: the arena should never grow after warm-up.
func BenchmarkAddRemoveEdge(b *testing.B) {
	g := core.New[int, int]()
	a := g.AddVertex(0)
	c := g.AddVertex(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, _ := g.AddEdge(a, c, i)
		_, _ = g.RemoveEdge(e)
	}
}

// BenchmarkHasEdge measures the outgoing-chain walk on a vertex with 1000
// outgoing edges, probing the worst case (absent target).
func BenchmarkHasEdge(b *testing.B) {
	g := core.New[int, int]()
	center := g.AddVertex(0)
	for i := 0; i < 1000; i++ {
		leaf := g.AddVertex(i)
		_, _ = g.AddEdge(center, leaf, i)
	}
	absent := g.AddVertex(-1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.HasEdge(center, absent)
	}
}

// BenchmarkEdgeIteration measures a full outgoing-chain walk through the
// cursor layer on a 1000-edge star.
func BenchmarkEdgeIteration(b *testing.B) {
	g := core.New[int, int]()
	center := g.AddVertex(0)
	for i := 0; i < 1000; i++ {
		leaf := g.AddVertex(i)
		_, _ = g.AddEdge(center, leaf, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := g.Edges(center).Direction(core.Outgoing)
		for it.Next() {
			_ = it.Edge()
		}
	}
}

// BenchmarkRemoveVertexCascade measures cascade delete of a 100-edge hub,
// rebuilding the hub outside the timed sections.
func BenchmarkRemoveVertexCascade(b *testing.B) {
	g := core.New[int, int]()
	leaves := make([]core.VertexID, 100)
	for i := range leaves {
		leaves[i] = g.AddVertex(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		hub := g.AddVertex(-1)
		for _, leaf := range leaves {
			_, _ = g.AddEdge(hub, leaf, 0)
			_, _ = g.AddEdge(leaf, hub, 0)
		}
		b.StartTimer()
		_, _ = g.RemoveVertex(hub)
	}
}
