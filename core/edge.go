// SPDX-License-Identifier: MIT
// Package core: edge value types emitted by Edges() snapshots.
//
// Both edge kinds are small comparable structs. DirectedEdge compares
// positionally, as an ordered pair should. UndirectedEdge carries no
// endpoint order, so == on it is representation equality only; use Equal
// for the symmetric comparison an unordered pair requires.

package core

// DirectedEdge is an ordered node pair: an edge From → To.
type DirectedEdge[T comparable] struct {
	// From is the source node.
	From T

	// To is the destination node.
	To T
}

// Reverse returns the opposite orientation of e.
// Complexity: O(1).
func (e DirectedEdge[T]) Reverse() DirectedEdge[T] {
	return DirectedEdge[T]{From: e.To, To: e.From}
}

// UndirectedEdge is an unordered node pair {U, V}.
//
// Field names are placement only: {a,b} and {b,a} denote the same edge.
// Go's == cannot express that, so compare with Equal.
type UndirectedEdge[T comparable] struct {
	// U is one endpoint.
	U T

	// V is the other endpoint.
	V T
}

// Equal reports whether e and o join the same two nodes, in either
// orientation.
// Complexity: O(1).
func (e UndirectedEdge[T]) Equal(o UndirectedEdge[T]) bool {
	return (e.U == o.U && e.V == o.V) || (e.U == o.V && e.V == o.U)
}

// Has reports whether v is one of e's endpoints.
// Complexity: O(1).
func (e UndirectedEdge[T]) Has(v T) bool {
	return e.U == v || e.V == v
}

// Other returns the endpoint opposite v, and whether v is an endpoint at
// all. For v not on e, the zero T is returned with ok == false.
// Complexity: O(1).
func (e UndirectedEdge[T]) Other(v T) (other T, ok bool) {
	switch v {
	case e.U:
		return e.V, true
	case e.V:
		return e.U, true
	default:
		return other, false
	}
}

// pair is an ordered key for deduplicating unordered adjacency: each
// undirected edge appears in the adjacency maps under both orientations,
// and snapshotting records the mirror so the second visit is skipped.
// Keying on an ordered struct avoids demanding any ordering of T itself.
type pair[T comparable] struct{ a, b T }
