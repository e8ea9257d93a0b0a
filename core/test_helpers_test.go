// SPDX-License-Identifier: MIT
// Package core_test: shared fixtures and small utilities for core tests.
//
// Node constants keep test bodies free of magic strings; the sequence
// helpers drain iter.Seq views into deterministic sorted slices so that
// assertions never depend on map iteration order.

package core_test

import (
	"iter"
	"sort"

	"github.com/katalvlaran/adjset/core"
)

// Common node IDs used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeE = "E"

	NodeX = "X"
	NodeY = "Y"
	NodeZ = "Z"
)

// collectSorted drains seq into a sorted slice for order-independent
// comparison. A nil seq yields nil.
func collectSorted(seq iter.Seq[string]) []string {
	if seq == nil {
		return nil
	}
	var out []string
	for v := range seq {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// seqLen counts the elements of seq without materializing them.
func seqLen(seq iter.Seq[string]) int {
	n := 0
	for range seq {
		n++
	}

	return n
}

// directedPairs normalizes a directed edge snapshot into sorted "u->v"
// strings for order-independent comparison.
func directedPairs(edges []core.DirectedEdge[string]) []string {
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.From+"->"+e.To)
	}
	sort.Strings(out)

	return out
}

// undirectedPairs normalizes an undirected edge snapshot into sorted
// "min-max" strings, erasing the arbitrary endpoint orientation.
func undirectedPairs(edges []core.UndirectedEdge[string]) []string {
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		u, v := e.U, e.V
		if v < u {
			u, v = v, u
		}
		out = append(out, u+"-"+v)
	}
	sort.Strings(out)

	return out
}

// buildSampleDirected wires the directed fixture used by several tests:
// A ↔ B, B → C, plus the isolated node D.
func buildSampleDirected() *core.DirectedAdjacency[string] {
	g := core.NewDirected[string]()
	g.AddEdge(NodeA, NodeB)
	g.AddEdge(NodeB, NodeA)
	g.AddEdge(NodeB, NodeC)
	g.AddNode(NodeD)

	return g
}

// buildSampleUndirected wires the undirected fixture A–B, B–C, plus the
// isolated node D.
func buildSampleUndirected() *core.UndirectedAdjacency[string] {
	g := core.NewUndirected[string]()
	g.AddEdge(NodeA, NodeB)
	g.AddEdge(NodeB, NodeC)
	g.AddNode(NodeD)

	return g
}
