// Package core_test: cursor behavior - laziness, filters, limits, label
// search, direction selection, and mutation detection.
package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slotgraph/core"
)

// road is an edge payload implementing the Labeled capability.
type road struct {
	kind string
	km   int
}

func (r road) Label() string { return r.kind }

func TestVertexScanSkipsRemovedSlots(t *testing.T) {
	g := core.New[string, string]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")
	_, ok := g.RemoveVertex(b)
	require.True(t, ok)

	var ids []core.VertexID
	it := g.Vertices()
	for it.Next() {
		ids = append(ids, it.Vertex().ID())
	}
	require.NoError(t, it.Err())
	require.Equal(t, []core.VertexID{a, c}, ids)
}

func TestVertexFilterAppliesBeforeLimit(t *testing.T) {
	g := core.New[string, string]()
	for _, w := range []string{"keep1", "drop1", "drop2", "keep2", "keep3"} {
		g.AddVertex(w)
	}

	it := g.Vertices().
		Where(func(w string) bool { return strings.HasPrefix(w, "keep") }).
		Limit(2)
	var got []string
	for it.Next() {
		got = append(got, it.Vertex().Weight())
	}
	require.NoError(t, it.Err())
	// Non-matching vertices must not consume the limit.
	require.Equal(t, []string{"keep1", "keep2"}, got)
}

func TestVertexLimitZeroYieldsNothing(t *testing.T) {
	g := core.New[string, string]()
	g.AddVertex("a")

	it := g.Vertices().Limit(0)
	require.False(t, it.Next())
	require.NoError(t, it.Err())
}

func TestEdgeDirectionSelection(t *testing.T) {
	g := core.New[string, string]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")

	ab, err := g.AddEdge(a, b, "ab")
	require.NoError(t, err)
	ca, err := g.AddEdge(c, a, "ca")
	require.NoError(t, err)

	out := collectEdges(t, g.Edges(a).Direction(core.Outgoing))
	require.Len(t, out, 1)
	require.Equal(t, ab, out[0].ID())

	in := collectEdges(t, g.Edges(a).Direction(core.Incoming))
	require.Len(t, in, 1)
	require.Equal(t, ca, in[0].ID())

	// Both: outgoing chain first, then incoming.
	both := collectEdges(t, g.Edges(a))
	require.Len(t, both, 2)
	require.Equal(t, ab, both[0].ID())
	require.Equal(t, ca, both[1].ID())
}

func TestEdgeLabelSearch(t *testing.T) {
	g := core.New[string, road]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")

	_, err := g.AddEdge(a, b, road{kind: "dirt", km: 3})
	require.NoError(t, err)
	highway, err := g.AddEdge(a, b, road{kind: "highway", km: 120})
	require.NoError(t, err)
	_, err = g.AddEdge(a, b, road{kind: "dirt", km: 9})
	require.NoError(t, err)

	it := g.Edges(a).Direction(core.Outgoing).Labeled("highway")
	require.True(t, it.Next())
	require.Equal(t, highway, it.Edge().ID())
	require.False(t, it.Next())
	require.NoError(t, it.Err())
}

func TestEdgeLabelSearchWithoutCapabilityMatchesNothing(t *testing.T) {
	// string does not implement Labeled, so a label search yields nothing.
	g := core.New[string, string]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	_, err := g.AddEdge(a, b, "w")
	require.NoError(t, err)

	it := g.Edges(a).Labeled("w")
	require.False(t, it.Next())
	require.NoError(t, it.Err())
}

func TestEdgeFilterAndLimitCompose(t *testing.T) {
	g := core.New[string, road]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	for km := 1; km <= 6; km++ {
		_, err := g.AddEdge(a, b, road{kind: "dirt", km: km})
		require.NoError(t, err)
	}

	// Chain yields km 6,5,4,3,2,1; filter keeps even; limit takes two.
	it := g.Edges(a).
		Direction(core.Outgoing).
		Where(func(r road) bool { return r.km%2 == 0 }).
		Limit(2)
	var kms []int
	for it.Next() {
		kms = append(kms, it.Edge().Weight().km)
	}
	require.NoError(t, it.Err())
	require.Equal(t, []int{6, 4}, kms)
}

func TestEdgesOfUnknownVertexIsEmpty(t *testing.T) {
	g := core.New[string, string]()
	v := g.AddVertex("a")
	_, ok := g.RemoveVertex(v)
	require.True(t, ok)

	it := g.Edges(v)
	require.False(t, it.Next())
	require.NoError(t, it.Err(), "unknown anchor is emptiness, not an error")
}

func TestVertexCursorDetectsMutation(t *testing.T) {
	g := core.New[string, string]()
	g.AddVertex("a")
	g.AddVertex("b")

	it := g.Vertices()
	require.True(t, it.Next())

	g.AddVertex("c") // structural mutation invalidates the cursor

	require.False(t, it.Next())
	require.ErrorIs(t, it.Err(), core.ErrConcurrentMutation)
	// The cursor stays stopped.
	require.False(t, it.Next())
}

func TestEdgeCursorDetectsMutation(t *testing.T) {
	g := core.New[string, string]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	_, err := g.AddEdge(a, b, "w1")
	require.NoError(t, err)
	_, err = g.AddEdge(a, b, "w2")
	require.NoError(t, err)

	it := g.Edges(a).Direction(core.Outgoing)
	require.True(t, it.Next())

	_, err = g.AddEdge(a, b, "w3")
	require.NoError(t, err)

	require.False(t, it.Next())
	require.ErrorIs(t, it.Err(), core.ErrConcurrentMutation)
}

func TestPayloadWriteDoesNotInvalidateCursor(t *testing.T) {
	g := core.New[string, string]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	_, err := g.AddEdge(a, b, "w1")
	require.NoError(t, err)
	_, err = g.AddEdge(a, b, "w2")
	require.NoError(t, err)

	it := g.Edges(a).Direction(core.Outgoing)
	require.True(t, it.Next())

	// Weight mutation is not structural; the cursor keeps going.
	mut, ok := g.VertexMut(a)
	require.True(t, ok)
	*mut.WeightMut() = "renamed"

	require.True(t, it.Next())
	require.NoError(t, it.Err())
}

func TestConfigureAfterStartPanics(t *testing.T) {
	g := core.New[string, string]()
	g.AddVertex("a")

	it := g.Vertices()
	require.True(t, it.Next())
	require.Panics(t, func() { it.Limit(1) })

	eit := g.Edges(core.VertexID{})
	_ = eit.Next()
	require.Panics(t, func() { eit.Direction(core.Outgoing) })
}

func TestFilterEdges(t *testing.T) {
	g := core.New[string, road]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	_, err := g.AddEdge(a, b, road{kind: "dirt", km: 3})
	require.NoError(t, err)
	_, err = g.AddEdge(a, b, road{kind: "highway", km: 120})
	require.NoError(t, err)
	_, err = g.AddEdge(b, a, road{kind: "dirt", km: 7})
	require.NoError(t, err)

	removed := g.FilterEdges(func(r core.EdgeRef[road]) bool {
		return r.Weight().kind == "highway"
	})
	require.Equal(t, 2, removed)
	require.Equal(t, 1, g.EdgeCount())

	out := collectRoadEdges(t, g.Edges(a).Direction(core.Outgoing))
	require.Len(t, out, 1)
	require.Equal(t, "highway", out[0].Weight().kind)
	require.False(t, g.HasEdge(b, a))
}

func TestFilterEdgesRemovingNothingKeepsCursorsValid(t *testing.T) {
	g := core.New[string, road]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	_, err := g.AddEdge(a, b, road{kind: "highway", km: 1})
	require.NoError(t, err)
	_, err = g.AddEdge(a, b, road{kind: "highway", km: 2})
	require.NoError(t, err)

	it := g.Edges(a).Direction(core.Outgoing)
	require.True(t, it.Next())

	// Everything passes the predicate: no removal, no invalidation.
	removed := g.FilterEdges(func(core.EdgeRef[road]) bool { return true })
	require.Zero(t, removed)
	require.True(t, it.Next())
	require.NoError(t, it.Err())

	// Removing one edge is structural and stops a live cursor.
	it2 := g.Edges(a).Direction(core.Outgoing)
	require.True(t, it2.Next())
	removed = g.FilterEdges(func(r core.EdgeRef[road]) bool { return r.Weight().km > 1 })
	require.Equal(t, 1, removed)
	require.False(t, it2.Next())
	require.ErrorIs(t, it2.Err(), core.ErrConcurrentMutation)
}

// collectRoadEdges mirrors collectEdges for road-weighted graphs.
func collectRoadEdges(t *testing.T, it *core.EdgeIter[string, road]) []core.EdgeRef[road] {
	t.Helper()
	var out []core.EdgeRef[road]
	for it.Next() {
		out = append(out, it.Edge())
	}
	require.NoError(t, it.Err())

	return out
}
