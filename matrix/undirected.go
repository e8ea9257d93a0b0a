// SPDX-License-Identifier: MIT
// Package matrix: undirected adjacency-matrix graph.
//
// The matrix is kept symmetric on every write, so a single row scan
// serves as the full neighborhood of a node. Slot order supplies the
// deduplication for Edges(): only the upper triangle (ui < vi) is
// emitted, with no per-snapshot bookkeeping.

package matrix

import (
	"iter"
	"maps"
	"slices"

	"github.com/katalvlaran/adjset/core"
)

// UndirectedMatrix is a simple undirected graph over node type T backed
// by a symmetric dense boolean matrix. It satisfies core.Undirected[T]
// with the same total-mutator semantics as the adjacency-set
// representation.
//
// The zero value is not usable; construct with NewUndirected.
type UndirectedMatrix[T comparable] struct {
	slots slotTable[T]

	// cells stays symmetric: cells[u][v] == cells[v][u] for u ≠ v.
	cells [][]bool

	// deg holds per-slot neighbor counts.
	deg []int

	// numEdges counts unordered pairs once.
	numEdges int
}

// Compile-time contract check.
var _ core.Undirected[int] = (*UndirectedMatrix[int])(nil)

// NewUndirected returns an empty undirected matrix graph.
// Complexity: O(capacity) for the reserved slot table.
func NewUndirected[T comparable](opts ...Option) *UndirectedMatrix[T] {
	o := newOptions(opts...)

	return &UndirectedMatrix[T]{
		slots: newSlotTable[T](o.capacity),
		cells: make([][]bool, 0, o.capacity),
		deg:   make([]int, 0, o.capacity),
	}
}

// grow appends one column to every row and one fresh row.
func (g *UndirectedMatrix[T]) grow() {
	for r := range g.cells {
		g.cells[r] = append(g.cells[r], false)
	}
	g.cells = append(g.cells, make([]bool, g.slots.width()))
	g.deg = append(g.deg, 0)
}

// AddNode inserts v as an isolated node.
// If v is already present, this is a no-op (idempotent).
// Complexity: O(n) amortized when a fresh slot is appended, O(1) on reuse.
func (g *UndirectedMatrix[T]) AddNode(v T) {
	if _, exists := g.slots.slot(v); exists {
		return // no-op for existing node
	}
	if _, grew := g.slots.insert(v); grew {
		g.grow()
	}
}

// ContainsNode reports whether v is a node of the graph.
// Complexity: O(1).
func (g *UndirectedMatrix[T]) ContainsNode(v T) bool {
	_, exists := g.slots.slot(v)

	return exists
}

// AddEdge inserts the edge {u,v}, adding absent endpoints on demand.
// Self-loops (u == v) and already-present edges are silently ignored;
// AddEdge(u,v) and AddEdge(v,u) insert the same edge.
// Complexity: O(1) once endpoints hold slots; endpoint insertion may
// grow the matrix (see AddNode).
func (g *UndirectedMatrix[T]) AddEdge(u, v T) {
	if u == v {
		return // self-loop
	}
	g.AddNode(u)
	g.AddNode(v)

	ui, _ := g.slots.slot(u)
	vi, _ := g.slots.slot(v)
	if g.cells[ui][vi] {
		return // duplicate
	}
	// Mirror the pair to keep the matrix symmetric.
	g.cells[ui][vi] = true
	g.cells[vi][ui] = true
	g.deg[ui]++
	g.deg[vi]++
	g.numEdges++
}

// RemoveNode deletes v and every edge incident to it, then recycles v's
// slot. If v is absent, this is a no-op.
// Complexity: O(n).
func (g *UndirectedMatrix[T]) RemoveNode(v T) {
	vi, exists := g.slots.slot(v)
	if !exists {
		return
	}
	row := g.cells[vi]
	for j := range row {
		if row[j] {
			row[j] = false
			g.cells[j][vi] = false // mirrored cell
			g.deg[j]--
			g.numEdges--
		}
	}
	g.deg[vi] = 0

	g.slots.release(v, vi)
}

// RemoveEdge deletes the edge {u,v}; both endpoints stay.
// If the edge is absent, this is a no-op.
// Complexity: O(1).
func (g *UndirectedMatrix[T]) RemoveEdge(u, v T) {
	ui, ok := g.slots.slot(u)
	if !ok {
		return
	}
	vi, ok := g.slots.slot(v)
	if !ok {
		return
	}
	if !g.cells[ui][vi] {
		return
	}
	g.cells[ui][vi] = false
	g.cells[vi][ui] = false
	g.deg[ui]--
	g.deg[vi]--
	g.numEdges--
}

// Adjacent reports whether the edge {u,v} exists; symmetric in its
// arguments. Absent endpoints yield false, never an error.
// Complexity: O(1).
func (g *UndirectedMatrix[T]) Adjacent(u, v T) bool {
	ui, ok := g.slots.slot(u)
	if !ok {
		return false
	}
	vi, ok := g.slots.slot(v)
	if !ok {
		return false
	}

	return g.cells[ui][vi]
}

// NumNodes returns the number of nodes.
// Complexity: O(1).
func (g *UndirectedMatrix[T]) NumNodes() int {
	return g.slots.count()
}

// NumEdges returns the number of edges; each unordered pair counts once.
// Complexity: O(1).
func (g *UndirectedMatrix[T]) NumEdges() int {
	return g.numEdges
}

// Nodes returns a restartable sequence over all nodes, in no particular
// order. The view is live, as in the adjacency-set representation.
// Complexity: O(1); draining is O(n).
func (g *UndirectedMatrix[T]) Nodes() iter.Seq[T] {
	return maps.Keys(g.slots.index)
}

// Edges returns a snapshot with exactly one entry per edge: the upper
// triangle of the symmetric matrix.
// Complexity: O(n²).
func (g *UndirectedMatrix[T]) Edges() []core.UndirectedEdge[T] {
	edges := make([]core.UndirectedEdge[T], 0, g.numEdges)
	for ui, row := range g.cells {
		for vi := ui + 1; vi < len(row); vi++ {
			if row[vi] {
				edges = append(edges, core.UndirectedEdge[T]{U: g.slots.nodes[ui], V: g.slots.nodes[vi]})
			}
		}
	}

	return edges
}

// Degree returns the number of neighbors of v, 0 when v is absent.
// Complexity: O(1).
func (g *UndirectedMatrix[T]) Degree(v T) int {
	vi, exists := g.slots.slot(v)
	if !exists {
		return 0
	}

	return g.deg[vi]
}

// Neighbors returns a sequence over the neighbors of v: a row scan.
// Returns core.ErrNodeNotFound when v is not a node.
// Complexity: O(1); draining is O(n).
func (g *UndirectedMatrix[T]) Neighbors(v T) (iter.Seq[T], error) {
	vi, exists := g.slots.slot(v)
	if !exists {
		return nil, core.ErrNodeNotFound
	}

	return func(yield func(T) bool) {
		for j, set := range g.cells[vi] {
			if set && !yield(g.slots.nodes[j]) {
				return
			}
		}
	}, nil
}

// Clone returns a deep copy of g sharing no storage with it.
// Complexity: O(n²).
func (g *UndirectedMatrix[T]) Clone() *UndirectedMatrix[T] {
	c := &UndirectedMatrix[T]{
		slots: slotTable[T]{
			index: maps.Clone(g.slots.index),
			nodes: slices.Clone(g.slots.nodes),
			free:  slices.Clone(g.slots.free),
		},
		cells:    make([][]bool, len(g.cells)),
		deg:      slices.Clone(g.deg),
		numEdges: g.numEdges,
	}
	for i, row := range g.cells {
		c.cells[i] = slices.Clone(row)
	}

	return c
}

// Clear resets g to the empty graph, releasing the matrix storage.
// Complexity: O(1).
func (g *UndirectedMatrix[T]) Clear() {
	g.slots = newSlotTable[T](0)
	g.cells = nil
	g.deg = nil
	g.numEdges = 0
}
