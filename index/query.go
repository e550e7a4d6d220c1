// Package index: combined string/int vertex query helper.

package index

import "github.com/katalvlaran/slotgraph/core"

// VertexQuery bundles the two common payload indexes behind one type: an
// exact-match index over strings and an ordered index over int64 values.
// It is a convenience for callers that tag vertices with one name and one
// number (a label and a rank, a key and a timestamp, ...).
//
// Like every index in this package it is maintained manually, next to the
// graph mutations it mirrors.
type VertexQuery struct {
	strings *Hash[string]
	ints    *Range
}

// NewVertexQuery returns an empty query helper. Complexity: O(1).
func NewVertexQuery() *VertexQuery {
	return &VertexQuery{
		strings: NewHash[string](),
		ints:    NewRange(),
	}
}

// AddString records id under the string value. Complexity: O(1).
func (q *VertexQuery) AddString(value string, id core.VertexID) {
	q.strings.Add(value, id)
}

// RemoveString forgets the (value, id) pair, reporting whether it was
// present. Complexity: O(1).
func (q *VertexQuery) RemoveString(value string, id core.VertexID) bool {
	return q.strings.Remove(value, id)
}

// QueryString returns the identifiers recorded under exactly value.
// Complexity: O(k log k) for k matches.
func (q *VertexQuery) QueryString(value string) []core.VertexID {
	return q.strings.Lookup(value)
}

// AddInt records id under the numeric value. Complexity: O(log n).
func (q *VertexQuery) AddInt(value int64, id core.VertexID) {
	q.ints.Add(value, id)
}

// RemoveInt forgets the (value, id) pair, reporting whether it was present.
// Complexity: O(log n).
func (q *VertexQuery) RemoveInt(value int64, id core.VertexID) bool {
	return q.ints.Remove(value, id)
}

// QueryInt returns the identifiers recorded under exactly value.
// Complexity: O(log n + k).
func (q *VertexQuery) QueryInt(value int64) []core.VertexID {
	return q.ints.Lookup(value)
}

// QueryIntBetween returns the identifiers recorded under values in
// [min, max], inclusive. Complexity: O(log n + k).
func (q *VertexQuery) QueryIntBetween(min, max int64) []core.VertexID {
	return q.ints.Between(min, max)
}

// Clear forgets everything in both indexes.
func (q *VertexQuery) Clear() {
	q.strings.Clear()
	q.ints.Clear()
}
