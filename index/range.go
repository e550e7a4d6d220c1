// Package index: ordered numeric vertex index.

package index

import (
	"github.com/tidwall/btree"

	"github.com/katalvlaran/slotgraph/core"
)

// rangeItem is one (value, id) pair in the B-tree. The identifier
// participates in the ordering so equal values stay distinct.
type rangeItem struct {
	value int64
	id    core.VertexID
}

// rangeItemLess orders items by value, then by identifier slot position to
// keep duplicates apart.
func rangeItemLess(a, b rangeItem) bool {
	if a.value != b.value {
		return a.value < b.value
	}

	return vertexIDLess(a.id, b.id)
}

// Range is an ordered index from int64 keys to vertex identifiers, backed by
// a B-tree. Exact and range lookups are O(log n + k) for k matches.
type Range struct {
	tree *btree.BTreeG[rangeItem]
}

// NewRange returns an empty ordered index. Complexity: O(1).
func NewRange() *Range {
	return &Range{tree: btree.NewBTreeG[rangeItem](rangeItemLess)}
}

// Add records id under value. Adding the same pair twice is a no-op.
// Complexity: O(log n).
func (r *Range) Add(value int64, id core.VertexID) {
	r.tree.Set(rangeItem{value: value, id: id})
}

// Remove forgets the (value, id) pair, reporting whether it was present.
// Complexity: O(log n).
func (r *Range) Remove(value int64, id core.VertexID) bool {
	_, existed := r.tree.Delete(rangeItem{value: value, id: id})

	return existed
}

// Lookup returns the identifiers recorded under exactly value, in ascending
// slot order. Complexity: O(log n + k).
func (r *Range) Lookup(value int64) []core.VertexID {
	return r.Between(value, value)
}

// Between returns the identifiers recorded under values in [min, max],
// inclusive on both ends, ascending by value then slot order.
// Complexity: O(log n + k).
func (r *Range) Between(min, max int64) []core.VertexID {
	if min > max {
		return nil
	}
	var out []core.VertexID
	r.tree.Ascend(rangeItem{value: min}, func(item rangeItem) bool {
		if item.value > max {
			return false
		}
		out = append(out, item.id)

		return true
	})

	return out
}

// Min returns the smallest indexed value. ok is false when the index is
// empty. Complexity: O(log n).
func (r *Range) Min() (int64, bool) {
	item, ok := r.tree.Min()

	return item.value, ok
}

// Max returns the largest indexed value. ok is false when the index is
// empty. Complexity: O(log n).
func (r *Range) Max() (int64, bool) {
	item, ok := r.tree.Max()

	return item.value, ok
}

// Len returns the number of (value, id) pairs indexed. Complexity: O(1).
func (r *Range) Len() int { return r.tree.Len() }

// Clear forgets everything. Complexity: O(1).
func (r *Range) Clear() {
	r.tree = btree.NewBTreeG[rangeItem](rangeItemLess)
}
