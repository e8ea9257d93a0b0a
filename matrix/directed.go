// SPDX-License-Identifier: MIT
// Package matrix: directed adjacency-matrix graph.

package matrix

import (
	"iter"
	"maps"
	"slices"

	"github.com/katalvlaran/adjset/core"
)

// DirectedMatrix is a simple directed graph over node type T backed by a
// dense boolean matrix: cells[u][v] == true ⇔ edge (u,v). It satisfies
// core.Directed[T] with the same total-mutator semantics as the
// adjacency-set representation.
//
// The zero value is not usable; construct with NewDirected.
type DirectedMatrix[T comparable] struct {
	slots slotTable[T]

	// cells is square over the slot space; rows and columns of freed
	// slots are kept cleared for reuse.
	cells [][]bool

	// outDeg and inDeg are per-slot counters so degree queries do not
	// scan matrix lines.
	outDeg []int
	inDeg  []int

	numEdges int
}

// Compile-time contract check.
var _ core.Directed[int] = (*DirectedMatrix[int])(nil)

// NewDirected returns an empty directed matrix graph.
// Complexity: O(capacity) for the reserved slot table.
func NewDirected[T comparable](opts ...Option) *DirectedMatrix[T] {
	o := newOptions(opts...)

	return &DirectedMatrix[T]{
		slots:  newSlotTable[T](o.capacity),
		cells:  make([][]bool, 0, o.capacity),
		outDeg: make([]int, 0, o.capacity),
		inDeg:  make([]int, 0, o.capacity),
	}
}

// grow appends one column to every row and one fresh row, keeping the
// matrix square over the widened slot space.
func (g *DirectedMatrix[T]) grow() {
	for r := range g.cells {
		g.cells[r] = append(g.cells[r], false)
	}
	g.cells = append(g.cells, make([]bool, g.slots.width()))
	g.outDeg = append(g.outDeg, 0)
	g.inDeg = append(g.inDeg, 0)
}

// AddNode inserts v as an isolated node.
// If v is already present, this is a no-op (idempotent).
// Complexity: O(n) amortized when a fresh slot is appended, O(1) on reuse.
func (g *DirectedMatrix[T]) AddNode(v T) {
	if _, exists := g.slots.slot(v); exists {
		return // no-op for existing node
	}
	if _, grew := g.slots.insert(v); grew {
		g.grow()
	}
}

// ContainsNode reports whether v is a node of the graph.
// Complexity: O(1).
func (g *DirectedMatrix[T]) ContainsNode(v T) bool {
	_, exists := g.slots.slot(v)

	return exists
}

// AddEdge inserts the edge (u,v), adding absent endpoints on demand.
// Self-loops (u == v) and already-present edges are silently ignored.
// Complexity: O(1) once endpoints hold slots; endpoint insertion may
// grow the matrix (see AddNode).
func (g *DirectedMatrix[T]) AddEdge(u, v T) {
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
	g.cells[ui][vi] = true
	g.outDeg[ui]++
	g.inDeg[vi]++
	g.numEdges++
}

// RemoveNode deletes v and every edge incident to it, then recycles v's
// slot. If v is absent, this is a no-op.
// Complexity: O(n).
func (g *DirectedMatrix[T]) RemoveNode(v T) {
	vi, exists := g.slots.slot(v)
	if !exists {
		return
	}
	// Clear v's row: outgoing edges.
	row := g.cells[vi]
	for j := range row {
		if row[j] {
			row[j] = false
			g.inDeg[j]--
			g.numEdges--
		}
	}
	g.outDeg[vi] = 0
	// Clear v's column: incoming edges.
	for i := range g.cells {
		if g.cells[i][vi] {
			g.cells[i][vi] = false
			g.outDeg[i]--
			g.numEdges--
		}
	}
	g.inDeg[vi] = 0

	g.slots.release(v, vi)
}

// RemoveEdge deletes the edge (u,v); both endpoints stay.
// If the edge is absent, this is a no-op.
// Complexity: O(1).
func (g *DirectedMatrix[T]) RemoveEdge(u, v T) {
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
	g.outDeg[ui]--
	g.inDeg[vi]--
	g.numEdges--
}

// Adjacent reports whether the edge (u,v) exists.
// Absent endpoints yield false, never an error.
// Complexity: O(1).
func (g *DirectedMatrix[T]) Adjacent(u, v T) bool {
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
func (g *DirectedMatrix[T]) NumNodes() int {
	return g.slots.count()
}

// NumEdges returns the number of edges.
// Complexity: O(1).
func (g *DirectedMatrix[T]) NumEdges() int {
	return g.numEdges
}

// Nodes returns a restartable sequence over all nodes, in no particular
// order. The view is live, as in the adjacency-set representation.
// Complexity: O(1); draining is O(n).
func (g *DirectedMatrix[T]) Nodes() iter.Seq[T] {
	return maps.Keys(g.slots.index)
}

// Edges returns a snapshot of all edges, in no particular order.
// Complexity: O(n²).
func (g *DirectedMatrix[T]) Edges() []core.DirectedEdge[T] {
	edges := make([]core.DirectedEdge[T], 0, g.numEdges)
	for ui, row := range g.cells {
		for vi, set := range row {
			if set {
				edges = append(edges, core.DirectedEdge[T]{From: g.slots.nodes[ui], To: g.slots.nodes[vi]})
			}
		}
	}

	return edges
}

// InDegree returns the number of predecessors of v, 0 when v is absent.
// Complexity: O(1).
func (g *DirectedMatrix[T]) InDegree(v T) int {
	vi, exists := g.slots.slot(v)
	if !exists {
		return 0
	}

	return g.inDeg[vi]
}

// OutDegree returns the number of successors of v, 0 when v is absent.
// Complexity: O(1).
func (g *DirectedMatrix[T]) OutDegree(v T) int {
	vi, exists := g.slots.slot(v)
	if !exists {
		return 0
	}

	return g.outDeg[vi]
}

// InNeighbors returns a sequence over the predecessors of v: a column
// scan. Returns core.ErrNodeNotFound when v is not a node.
// Complexity: O(1); draining is O(n).
func (g *DirectedMatrix[T]) InNeighbors(v T) (iter.Seq[T], error) {
	vi, exists := g.slots.slot(v)
	if !exists {
		return nil, core.ErrNodeNotFound
	}

	return func(yield func(T) bool) {
		for i := range g.cells {
			if g.cells[i][vi] && !yield(g.slots.nodes[i]) {
				return
			}
		}
	}, nil
}

// OutNeighbors returns a sequence over the successors of v: a row scan.
// Returns core.ErrNodeNotFound when v is not a node.
// Complexity: O(1); draining is O(n).
func (g *DirectedMatrix[T]) OutNeighbors(v T) (iter.Seq[T], error) {
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
func (g *DirectedMatrix[T]) Clone() *DirectedMatrix[T] {
	c := &DirectedMatrix[T]{
		slots: slotTable[T]{
			index: maps.Clone(g.slots.index),
			nodes: slices.Clone(g.slots.nodes),
			free:  slices.Clone(g.slots.free),
		},
		cells:    make([][]bool, len(g.cells)),
		outDeg:   slices.Clone(g.outDeg),
		inDeg:    slices.Clone(g.inDeg),
		numEdges: g.numEdges,
	}
	for i, row := range g.cells {
		c.cells[i] = slices.Clone(row)
	}

	return c
}

// Clear resets g to the empty graph, releasing the matrix storage.
// Complexity: O(1).
func (g *DirectedMatrix[T]) Clear() {
	g.slots = newSlotTable[T](0)
	g.cells = nil
	g.outDeg = nil
	g.inDeg = nil
	g.numEdges = 0
}
