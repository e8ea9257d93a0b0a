// SPDX-License-Identifier: MIT

// Package core provides sparse in-memory graphs over an arbitrary comparable
// node type, stored as adjacency sets.
//
// Two graph kinds share one design:
//
//   - DirectedAdjacency[T]   — edges are ordered pairs (u,v), u ≠ v.
//   - UndirectedAdjacency[T] — edges are unordered pairs {u,v}, u ≠ v.
//
// Both are simple graphs: no self-loops, no parallel edges. Both satisfy the
// matching contract interface (Directed[T] / Undirected[T]) so that derived
// algorithms and alternative representations interoperate freely.
//
// What
//
//   - Nodes of any comparable type T: map-key equality is node identity.
//   - Adjacency sets: neighbor membership in O(1), neighbor iteration in
//     O(degree), node and edge counts in O(1) via maintained counters.
//   - Lazy node and neighbor sequences (iter.Seq[T]) over the live maps;
//     Edges() materializes a point-in-time snapshot instead.
//   - Degree queries (InDegree/OutDegree/Degree) total: absent node → 0.
//
// Why adjacency sets?
//
//   - Sparse graphs (m ≪ n²) dominate real data; a dense matrix wastes both
//     memory and iteration time on absent edges.
//   - Set-valued adjacency keeps addEdge/removeEdge/adjacent at O(1) expected
//     while neighbor enumeration stays proportional to actual degree.
//
// Mutation semantics
//
//	Every mutator is total and returns nothing. Inserting a present node or
//	edge, removing an absent one, and attempting a self-loop are all silent
//	no-ops. AddEdge inserts absent endpoints on demand, so edge data can be
//	loaded without priming the node set first.
//
// Absent vs. empty
//
//	Neighbor queries distinguish a node with no neighbors (empty sequence,
//	nil error) from a node not in the graph (nil sequence, ErrNodeNotFound).
//	This is the only error in the package.
//
// Core Methods (n = |nodes|, m = |edges|)
//
//	// Node lifecycle
//	AddNode(v T)                 // O(1) amortized
//	ContainsNode(v T) bool       // O(1)
//	RemoveNode(v T)              // O(deg(v)) expected
//
//	// Edge lifecycle
//	AddEdge(u, v T)              // O(1) amortized
//	RemoveEdge(u, v T)           // O(1) expected
//	Adjacent(u, v T) bool        // O(1) expected
//
//	// Enumeration
//	Nodes() iter.Seq[T]          // O(1); O(n) to drain; live view
//	Edges() []DirectedEdge[T]    // O(n+m) snapshot (UndirectedEdge for undirected)
//	OutNeighbors(v T) (iter.Seq[T], error) // O(1); O(outdeg(v)) to drain
//	InNeighbors(v T)  (iter.Seq[T], error) // directed only
//	Neighbors(v T)    (iter.Seq[T], error) // undirected only
//
//	// Degrees & counts
//	OutDegree(v T) int           // O(1); directed only
//	InDegree(v T) int            // O(1); directed only
//	Degree(v T) int              // O(1); undirected only
//	NumNodes() int               // O(1)
//	NumEdges() int               // O(1)
//
//	// Maintenance
//	Clone() *...Adjacency[T]     // O(n+m) deep copy
//	Clear()                      // O(1): drop all nodes and edges
//
// Usage
//
//	g := core.NewDirected[string]()
//	g.AddEdge("a", "b") // inserts "a" and "b" on demand
//	g.AddEdge("b", "a")
//	g.AddEdge("b", "c")
//	for v := range g.Nodes() {
//	    _ = v
//	}
//	succ, err := g.OutNeighbors("b")
//	if err != nil {
//	    // errors.Is(err, core.ErrNodeNotFound): "b" is not a node
//	}
//	for w := range succ {
//	    _ = w
//	}
//
// Errors
//
//	ErrNodeNotFound – neighbor query on a node that is not in the graph.
//
// Concurrency
//
//	Instances are not synchronized. Guard shared instances externally; the
//	types themselves add no locking overhead for the common single-goroutine
//	case.
package core
