// SPDX-License-Identifier: MIT
// Package core: undirected adjacency-set graph.
//
// UndirectedAdjacency keeps a single symmetric index: every edge {u,v} is
// stored twice, as v ∈ adj[u] and u ∈ adj[v]. The mirror makes Adjacent
// and Neighbors O(1)/O(degree) from either endpoint; NumEdges still counts
// each edge once via the maintained counter.

package core

import (
	"iter"
	"maps"
)

// UndirectedAdjacency is a simple undirected graph G = (V, E) over node
// type T, E a set of unordered node pairs without self-loops, stored as
// adjacency sets.
//
// The zero value is not usable; construct with NewUndirected.
type UndirectedAdjacency[T comparable] struct {
	// adj[v] holds the neighbors of v; symmetric by construction.
	adj map[T]nodeSet[T]

	// numEdges counts unordered pairs once, maintained incrementally.
	numEdges int
}

// Compile-time contract check.
var _ Undirected[int] = (*UndirectedAdjacency[int])(nil)

// NewUndirected returns an empty undirected graph.
// Complexity: O(1).
func NewUndirected[T comparable](opts ...Option) *UndirectedAdjacency[T] {
	o := newOptions(opts...)

	return &UndirectedAdjacency[T]{
		adj: make(map[T]nodeSet[T], o.capacity),
	}
}

// AddNode inserts v as an isolated node.
// If v is already present, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *UndirectedAdjacency[T]) AddNode(v T) {
	if _, exists := g.adj[v]; exists {
		return // no-op for existing node
	}
	g.adj[v] = make(nodeSet[T])
}

// ContainsNode reports whether v is a node of the graph.
// Complexity: O(1).
func (g *UndirectedAdjacency[T]) ContainsNode(v T) bool {
	_, exists := g.adj[v]

	return exists
}

// AddEdge inserts the edge {u,v}, adding absent endpoints on demand.
// Self-loops (u == v) and already-present edges are silently ignored;
// AddEdge(u,v) and AddEdge(v,u) insert the same edge.
// Complexity: O(1) amortized.
func (g *UndirectedAdjacency[T]) AddEdge(u, v T) {
	if u == v || g.Adjacent(u, v) {
		return // self-loop or duplicate
	}
	// Ensure both endpoints exist (idempotent).
	g.AddNode(u)
	g.AddNode(v)

	// Mirror the pair so adjacency is symmetric.
	g.adj[u].add(v)
	g.adj[v].add(u)
	g.numEdges++
}

// RemoveNode deletes v and every edge incident to it.
// If v is absent, this is a no-op.
// Complexity: O(deg(v)) expected.
func (g *UndirectedAdjacency[T]) RemoveNode(v T) {
	if !g.ContainsNode(v) {
		return
	}
	// Unlink v from each neighbor's set before dropping v's own.
	for w := range g.adj[v] {
		g.adj[w].remove(v)
		g.numEdges--
	}
	delete(g.adj, v)
}

// RemoveEdge deletes the edge {u,v}; both endpoints stay.
// If the edge is absent, this is a no-op.
// Complexity: O(1) expected.
func (g *UndirectedAdjacency[T]) RemoveEdge(u, v T) {
	if !g.Adjacent(u, v) {
		return
	}
	g.adj[u].remove(v)
	g.adj[v].remove(u)
	g.numEdges--
}

// Adjacent reports whether the edge {u,v} exists; symmetric in its
// arguments. Absent endpoints yield false, never an error.
// Complexity: O(1) expected.
func (g *UndirectedAdjacency[T]) Adjacent(u, v T) bool {
	nbrs, exists := g.adj[u]
	if !exists {
		return false
	}

	return nbrs.has(v)
}

// NumNodes returns the number of nodes.
// Complexity: O(1).
func (g *UndirectedAdjacency[T]) NumNodes() int {
	return len(g.adj)
}

// NumEdges returns the number of edges; each unordered pair counts once.
// Complexity: O(1).
func (g *UndirectedAdjacency[T]) NumEdges() int {
	return g.numEdges
}

// Nodes returns a restartable sequence over all nodes, in no particular
// order. The view is live: mutations made between iterations are visible,
// mutation during an iteration has Go map-range semantics.
// Complexity: O(1); draining is O(n).
func (g *UndirectedAdjacency[T]) Nodes() iter.Seq[T] {
	return maps.Keys(g.adj)
}

// Edges returns a snapshot with exactly one entry per edge, in no
// particular order and arbitrary endpoint orientation. The slice is
// freshly allocated; later mutation of g does not alter it.
// Complexity: O(n + m).
func (g *UndirectedAdjacency[T]) Edges() []UndirectedEdge[T] {
	edges := make([]UndirectedEdge[T], 0, g.numEdges)
	// Each edge sits in adj under both orientations; record the mirror of
	// every emitted pair so its second visit is skipped.
	seen := make(map[pair[T]]struct{}, g.numEdges)
	for u, nbrs := range g.adj {
		for v := range nbrs {
			if _, mirrored := seen[pair[T]{u, v}]; mirrored {
				continue
			}
			seen[pair[T]{v, u}] = struct{}{}
			edges = append(edges, UndirectedEdge[T]{U: u, V: v})
		}
	}

	return edges
}

// Degree returns the number of neighbors of v, 0 when v is absent.
// Complexity: O(1).
func (g *UndirectedAdjacency[T]) Degree(v T) int {
	return len(g.adj[v])
}

// Neighbors returns a sequence over the neighbors of v.
// Returns ErrNodeNotFound when v is not a node; an isolated node yields an
// empty sequence instead.
// Complexity: O(1); draining is O(deg(v)).
func (g *UndirectedAdjacency[T]) Neighbors(v T) (iter.Seq[T], error) {
	nbrs, exists := g.adj[v]
	if !exists {
		return nil, ErrNodeNotFound
	}

	return maps.Keys(nbrs), nil
}

// Clone returns a deep copy of g sharing no storage with it.
// Complexity: O(n + m).
func (g *UndirectedAdjacency[T]) Clone() *UndirectedAdjacency[T] {
	c := &UndirectedAdjacency[T]{
		adj:      make(map[T]nodeSet[T], len(g.adj)),
		numEdges: g.numEdges,
	}
	for v, nbrs := range g.adj {
		c.adj[v] = maps.Clone(nbrs)
	}

	return c
}

// Clear resets g to the empty graph.
// Complexity: O(1); frees the old storage for collection.
func (g *UndirectedAdjacency[T]) Clear() {
	g.adj = make(map[T]nodeSet[T])
	g.numEdges = 0
}
