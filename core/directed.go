// SPDX-License-Identifier: MIT
// Package core: directed adjacency-set graph.
//
// DirectedAdjacency keeps two mirrored map-of-set indexes, out and in, so
// successor and predecessor queries are both O(degree) and edge existence
// is O(1). The in index costs one extra set entry per edge and buys
// InDegree/InNeighbors without scanning the whole graph.

package core

import (
	"iter"
	"maps"
)

// DirectedAdjacency is a simple directed graph G = (V, E) over node type T,
// E ⊆ V×V without self-loops, stored as adjacency sets.
//
// The zero value is not usable; construct with NewDirected.
type DirectedAdjacency[T comparable] struct {
	// out[u] holds the successors of u: v ∈ out[u] ⇔ (u,v) ∈ E.
	out map[T]nodeSet[T]

	// in[v] holds the predecessors of v, mirroring out.
	in map[T]nodeSet[T]

	// numEdges is maintained incrementally; never recomputed by scanning.
	numEdges int
}

// Compile-time contract check.
var _ Directed[int] = (*DirectedAdjacency[int])(nil)

// NewDirected returns an empty directed graph.
// Complexity: O(1).
func NewDirected[T comparable](opts ...Option) *DirectedAdjacency[T] {
	o := newOptions(opts...)

	return &DirectedAdjacency[T]{
		out: make(map[T]nodeSet[T], o.capacity),
		in:  make(map[T]nodeSet[T], o.capacity),
	}
}

// AddNode inserts v as an isolated node.
// If v is already present, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *DirectedAdjacency[T]) AddNode(v T) {
	if _, exists := g.out[v]; exists {
		return // no-op for existing node
	}
	g.out[v] = make(nodeSet[T])
	g.in[v] = make(nodeSet[T])
}

// ContainsNode reports whether v is a node of the graph.
// Complexity: O(1).
func (g *DirectedAdjacency[T]) ContainsNode(v T) bool {
	_, exists := g.out[v]

	return exists
}

// AddEdge inserts the edge (u,v), adding absent endpoints on demand.
// Self-loops (u == v) and already-present edges are silently ignored.
// Complexity: O(1) amortized.
func (g *DirectedAdjacency[T]) AddEdge(u, v T) {
	if u == v || g.Adjacent(u, v) {
		return // self-loop or duplicate
	}
	// Ensure both endpoints exist (idempotent).
	g.AddNode(u)
	g.AddNode(v)

	g.out[u].add(v)
	g.in[v].add(u)
	g.numEdges++
}

// RemoveNode deletes v and every edge incident to it.
// If v is absent, this is a no-op.
// Complexity: O(deg⁻(v) + deg⁺(v)) expected.
func (g *DirectedAdjacency[T]) RemoveNode(v T) {
	if !g.ContainsNode(v) {
		return
	}
	// Unlink v from the predecessor sets of its successors.
	for w := range g.out[v] {
		g.in[w].remove(v)
		g.numEdges--
	}
	// Unlink v from the successor sets of its predecessors.
	for w := range g.in[v] {
		g.out[w].remove(v)
		g.numEdges--
	}
	delete(g.out, v)
	delete(g.in, v)
}

// RemoveEdge deletes the edge (u,v); both endpoints stay.
// If the edge is absent, this is a no-op.
// Complexity: O(1) expected.
func (g *DirectedAdjacency[T]) RemoveEdge(u, v T) {
	if !g.Adjacent(u, v) {
		return
	}
	g.out[u].remove(v)
	g.in[v].remove(u)
	g.numEdges--
}

// Adjacent reports whether the edge (u,v) exists.
// Absent endpoints yield false, never an error.
// Complexity: O(1) expected.
func (g *DirectedAdjacency[T]) Adjacent(u, v T) bool {
	succ, exists := g.out[u]
	if !exists {
		return false
	}

	return succ.has(v)
}

// NumNodes returns the number of nodes.
// Complexity: O(1).
func (g *DirectedAdjacency[T]) NumNodes() int {
	return len(g.out)
}

// NumEdges returns the number of edges.
// Complexity: O(1).
func (g *DirectedAdjacency[T]) NumEdges() int {
	return g.numEdges
}

// Nodes returns a restartable sequence over all nodes, in no particular
// order. The view is live: mutations made between iterations are visible,
// mutation during an iteration has Go map-range semantics.
// Complexity: O(1); draining is O(n).
func (g *DirectedAdjacency[T]) Nodes() iter.Seq[T] {
	return maps.Keys(g.out)
}

// Edges returns a snapshot of all edges, in no particular order.
// The slice is freshly allocated; later mutation of g does not alter it.
// Complexity: O(n + m).
func (g *DirectedAdjacency[T]) Edges() []DirectedEdge[T] {
	edges := make([]DirectedEdge[T], 0, g.numEdges)
	for u, succ := range g.out {
		for v := range succ {
			edges = append(edges, DirectedEdge[T]{From: u, To: v})
		}
	}

	return edges
}

// InDegree returns the number of predecessors of v, 0 when v is absent.
// Complexity: O(1).
func (g *DirectedAdjacency[T]) InDegree(v T) int {
	return len(g.in[v])
}

// OutDegree returns the number of successors of v, 0 when v is absent.
// Complexity: O(1).
func (g *DirectedAdjacency[T]) OutDegree(v T) int {
	return len(g.out[v])
}

// InNeighbors returns a sequence over the predecessors of v.
// Returns ErrNodeNotFound when v is not a node; an isolated node yields an
// empty sequence instead.
// Complexity: O(1); draining is O(deg⁻(v)).
func (g *DirectedAdjacency[T]) InNeighbors(v T) (iter.Seq[T], error) {
	pred, exists := g.in[v]
	if !exists {
		return nil, ErrNodeNotFound
	}

	return maps.Keys(pred), nil
}

// OutNeighbors returns a sequence over the successors of v.
// Returns ErrNodeNotFound when v is not a node; an isolated node yields an
// empty sequence instead.
// Complexity: O(1); draining is O(deg⁺(v)).
func (g *DirectedAdjacency[T]) OutNeighbors(v T) (iter.Seq[T], error) {
	succ, exists := g.out[v]
	if !exists {
		return nil, ErrNodeNotFound
	}

	return maps.Keys(succ), nil
}

// Clone returns a deep copy of g sharing no storage with it.
// Complexity: O(n + m).
func (g *DirectedAdjacency[T]) Clone() *DirectedAdjacency[T] {
	c := &DirectedAdjacency[T]{
		out:      make(map[T]nodeSet[T], len(g.out)),
		in:       make(map[T]nodeSet[T], len(g.in)),
		numEdges: g.numEdges,
	}
	for v, succ := range g.out {
		c.out[v] = maps.Clone(succ)
	}
	for v, pred := range g.in {
		c.in[v] = maps.Clone(pred)
	}

	return c
}

// Clear resets g to the empty graph.
// Complexity: O(1); frees the old storage for collection.
func (g *DirectedAdjacency[T]) Clear() {
	g.out = make(map[T]nodeSet[T])
	g.in = make(map[T]nodeSet[T])
	g.numEdges = 0
}
