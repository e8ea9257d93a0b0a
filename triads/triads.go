// SPDX-License-Identifier: MIT
// Package triads: the two edge-closing counters.
//
// Both counters share one skeleton: snapshot the edges, then close each
// edge against the smaller of the two endpoint neighborhoods. Membership
// tests run through Adjacent, so the per-edge cost is the smaller degree,
// not the product of both.

package triads

import (
	"github.com/katalvlaran/adjset/core"
)

// CountTransitiveTriples returns the number of ordered triples (u, w, v)
// of distinct nodes whose edges u→w, w→v, u→v are all present in g.
//
// Every edge (u,v) is closed against either out(u) or in(v), whichever is
// smaller; ties scan out(u). A nil graph counts as empty.
// Complexity: O(Σ_(u,v)∈E min(deg⁺(u), deg⁻(v))) plus the edge snapshot.
func CountTransitiveTriples[T comparable](g core.Directed[T]) int {
	if g == nil {
		return 0
	}

	count := 0
	for _, e := range g.Edges() {
		u, v := e.From, e.To
		if g.OutDegree(u) <= g.InDegree(v) {
			// Scan the successors of u, test the w→v closure.
			succ, err := g.OutNeighbors(u)
			if err != nil {
				continue // snapshot endpoint vanished: g mutated mid-count
			}
			for w := range succ {
				if g.Adjacent(w, v) {
					count++
				}
			}
		} else {
			// Scan the predecessors of v, test the u→w closure.
			pred, err := g.InNeighbors(v)
			if err != nil {
				continue
			}
			for w := range pred {
				if g.Adjacent(u, w) {
					count++
				}
			}
		}
	}

	return count
}

// CountTriangles returns the number of unordered triples {u, v, w} whose
// three pairwise edges are all present in g.
//
// Every edge {u,v} is closed against the sparser endpoint's neighborhood;
// ties scan u's side. Each triangle closes all three of its edges, so the
// raw total divides by exactly 3. A nil graph counts as empty.
// Complexity: O(Σ_{u,v}∈E min(deg(u), deg(v))) plus the edge snapshot.
func CountTriangles[T comparable](g core.Undirected[T]) int {
	if g == nil {
		return 0
	}

	total := 0
	for _, e := range g.Edges() {
		u, v := e.U, e.V
		if g.Degree(u) > g.Degree(v) {
			u, v = v, u // scan from the sparser endpoint
		}
		nbrs, err := g.Neighbors(u)
		if err != nil {
			continue // snapshot endpoint vanished: g mutated mid-count
		}
		for w := range nbrs {
			// w == v never closes: Adjacent(v, v) is false in a simple graph.
			if g.Adjacent(w, v) {
				total++
			}
		}
	}

	return total / 3
}
