// SPDX-License-Identifier: MIT

// Package triads counts three-node patterns over the core graph contracts:
// transitive triples in directed graphs and triangles in undirected ones.
//
// What
//
//   - CountTransitiveTriples(g): ordered triples (u, w, v) of distinct nodes
//     with edges u→w, w→v, and u→v all present — the closed two-paths that
//     transitivity and clustering coefficients are built on.
//   - CountTriangles(g): unordered triples {u, v, w} with all three pairwise
//     edges present.
//
// Why
//
//   - Triad counts are the raw ingredients of clustering, transitivity
//     ratios, and triadic-census analysis of sparse networks.
//   - Counting here never materializes candidate triples: each edge is
//     closed against one endpoint neighborhood, chosen adaptively.
//
// How the degree split works
//
//	For an edge (u,v) the third node w must lie in out(u) ∩ in(v)
//	(neighbors(u) ∩ neighbors(v) in the undirected case). Scanning the
//	smaller of the two sides and testing membership on the other bounds the
//	per-edge work by O(min(deg)) with O(1) adjacency probes, which is what
//	makes the counters practical on skewed degree distributions. Ties scan
//	the first endpoint's side.
//
// Both functions take the contract interface, not a concrete type: any
// representation satisfying core.Directed / core.Undirected — adjacency
// sets, matrices, or third-party wrappers — is countable unchanged.
//
// Complexity (m = |edges|)
//
//   - Time:   O(Σ_(u,v)∈E min-side(u,v)) plus the O(n+m) edge snapshot.
//   - Memory: O(n+m) for the snapshot; counting itself allocates nothing.
//
// Usage
//
//	g := core.NewDirected[string]()
//	g.AddEdge("a", "b")
//	g.AddEdge("b", "c")
//	g.AddEdge("a", "c")
//	n := triads.CountTransitiveTriples(g) // 1: a→b→c closed by a→c
//
// Errors
//
//	None. A nil graph counts as empty and yields 0.
package triads
