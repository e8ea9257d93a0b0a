// SPDX-License-Identifier: MIT

// Package matrix provides dense adjacency-matrix graphs satisfying the same
// core contracts as the adjacency-set types, trading memory and enumeration
// cost for branch-free edge probes.
//
// What
//
//   - DirectedMatrix[T]   — boolean n×n matrix, cells[u][v] ⇔ edge (u,v).
//   - UndirectedMatrix[T] — symmetric boolean matrix, mirrored on write.
//   - Both satisfy core.Directed[T] / core.Undirected[T], so every algorithm
//     written against the contracts runs on them unchanged.
//
// Why a second representation?
//
//   - Dense neighborhoods (m approaching n²) make per-edge set overhead
//     dominate; a bit of matrix row is cheaper to probe and scan.
//   - Keeping two interchangeable representations also keeps the contracts
//     honest: nothing downstream may peek past the interface.
//
// Node slots
//
//	Nodes map to matrix slots through an index (node → slot) with a reverse
//	lookup slice (slot → node). Removing a node clears its row and column
//	and recycles the slot through a free list, so churn does not grow the
//	matrix. Growth appends one row and one column per fresh slot.
//
// Semantics
//
//	Identical to package core: total mutators, silent no-ops for self-loops,
//	duplicates and absent removals, auto-insertion of edge endpoints, live
//	node/neighbor sequences, snapshot Edges(), and core.ErrNodeNotFound as
//	the only failure — shared with core so errors.Is works across
//	representations.
//
// Complexity (n = |nodes|, m = |edges|)
//
//	AddNode      O(n) amortized (column append per row)
//	AddEdge      O(1) after slot lookup; endpoint insertion may pay O(n)
//	RemoveNode   O(n)
//	RemoveEdge   O(1)
//	Adjacent     O(1)
//	Degrees      O(1) (maintained counters)
//	Neighbors    O(n) per drain
//	Edges        O(n²)
//	NumNodes/NumEdges O(1)
//
// Usage
//
//	g := matrix.NewDirected[string](matrix.WithCapacity(128))
//	g.AddEdge("a", "b")
//	n := triads.CountTransitiveTriples[string](g) // same contract, same counters
//
// Errors
//
//	core.ErrNodeNotFound – neighbor query on a node that is not in the graph.
package matrix
