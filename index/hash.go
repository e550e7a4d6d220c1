// Package index: exact-match vertex index.

package index

import (
	"sort"

	"github.com/katalvlaran/slotgraph/core"
)

// Hash maps comparable payload-derived keys to sets of vertex identifiers,
// giving O(1) exact-match lookups. One key may index any number of vertices
// and one vertex may appear under any number of keys.
type Hash[K comparable] struct {
	buckets map[K]map[core.VertexID]struct{}
	size    int
}

// NewHash returns an empty exact-match index. Complexity: O(1).
func NewHash[K comparable]() *Hash[K] {
	return &Hash[K]{buckets: make(map[K]map[core.VertexID]struct{})}
}

// Add records id under key. Adding the same pair twice is a no-op.
// Complexity: O(1).
func (h *Hash[K]) Add(key K, id core.VertexID) {
	bucket, ok := h.buckets[key]
	if !ok {
		bucket = make(map[core.VertexID]struct{})
		h.buckets[key] = bucket
	}
	if _, dup := bucket[id]; dup {
		return
	}
	bucket[id] = struct{}{}
	h.size++
}

// Remove forgets the (key, id) pair, reporting whether it was present.
// Complexity: O(1).
func (h *Hash[K]) Remove(key K, id core.VertexID) bool {
	bucket, ok := h.buckets[key]
	if !ok {
		return false
	}
	if _, present := bucket[id]; !present {
		return false
	}
	delete(bucket, id)
	if len(bucket) == 0 {
		delete(h.buckets, key)
	}
	h.size--

	return true
}

// Contains reports whether the (key, id) pair is indexed. Complexity: O(1).
func (h *Hash[K]) Contains(key K, id core.VertexID) bool {
	_, ok := h.buckets[key][id]

	return ok
}

// Lookup returns the identifiers indexed under key, sorted by slot position
// for reproducible output. Complexity: O(k log k) for k matches.
func (h *Hash[K]) Lookup(key K) []core.VertexID {
	bucket := h.buckets[key]
	if len(bucket) == 0 {
		return nil
	}
	out := make([]core.VertexID, 0, len(bucket))
	for id := range bucket {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return vertexIDLess(out[i], out[j]) })

	return out
}

// Len returns the number of (key, id) pairs indexed. Complexity: O(1).
func (h *Hash[K]) Len() int { return h.size }

// Clear forgets everything. Complexity: O(1).
func (h *Hash[K]) Clear() {
	h.buckets = make(map[K]map[core.VertexID]struct{})
	h.size = 0
}

// vertexIDLess orders identifiers by slot index, then generation. The order
// carries no semantic meaning; it only makes lookups reproducible.
func vertexIDLess(a, b core.VertexID) bool {
	ka, kb := a.Key(), b.Key()
	if ka.Index != kb.Index {
		return ka.Index < kb.Index
	}

	return ka.Generation < kb.Generation
}
