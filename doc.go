// Package adjset is a generics-first toolkit for sparse in-memory graphs —
// adjacency-set storage over any comparable node type, with interchangeable
// representations and triad analytics on top.
//
// 🚀 What is adjset?
//
//	A small, zero-dependency library that brings together:
//		• Core primitives: directed & undirected simple graphs as adjacency sets
//		• Generic nodes: any comparable T is a node, no string-ID ceremony
//		• Contracts: Directed[T] / Undirected[T] interfaces every representation satisfies
//		• Matrix views: dense boolean matrices behind the very same contracts
//		• Triads: transitive-triple and triangle counters with degree-aware scanning
//
// ✨ Why choose adjset?
//
//   - Total mutators – inserts, removals and self-loop attempts never fail, they no-op
//   - Honest queries – absent node vs. empty neighborhood are distinct answers
//   - O(1) where it counts – adjacency probes, degrees and counts off maintained state
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	core/   — contracts, edge types, and the adjacency-set graphs
//	matrix/ — dense matrix graphs satisfying the same contracts
//	triads/ — transitive triples (directed) and triangles (undirected)
//
// Quick ASCII example:
//
//	    A ⇄ B → C      D
//
//	two mutual edges, a tail, and an isolated node — four nodes, three edges.
//
//	go get github.com/katalvlaran/adjset
package adjset
