// SPDX-License-Identifier: MIT
// Package core_test: contract coverage for DirectedAdjacency.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/adjset/core"
)

type DirectedSuite struct {
	suite.Suite
	g *core.DirectedAdjacency[string]
}

func (s *DirectedSuite) SetupTest() {
	s.g = core.NewDirected[string]()
}

func (s *DirectedSuite) TestAddNodeAndContainsNode() {
	require := require.New(s.T())
	require.False(s.g.ContainsNode(NodeA), "empty graph should not contain A")
	require.Zero(s.g.NumNodes())

	s.g.AddNode(NodeA)
	require.True(s.g.ContainsNode(NodeA), "graph should contain A after AddNode")
	require.Equal(1, s.g.NumNodes())

	// Idempotence: re-adding changes nothing.
	s.g.AddNode(NodeA)
	require.Equal(1, s.g.NumNodes(), "duplicate AddNode should not grow the graph")
}

func (s *DirectedSuite) TestAddEdgeAutoAddsEndpoints() {
	require := require.New(s.T())
	s.g.AddEdge(NodeA, NodeB)

	require.True(s.g.ContainsNode(NodeA) && s.g.ContainsNode(NodeB), "AddEdge should auto-add endpoints")
	require.True(s.g.Adjacent(NodeA, NodeB), "expected edge A→B")
	require.False(s.g.Adjacent(NodeB, NodeA), "reverse edge B→A must not appear")
	require.Equal(2, s.g.NumNodes())
	require.Equal(1, s.g.NumEdges())
}

func (s *DirectedSuite) TestAddEdgeSelfLoopIgnored() {
	require := require.New(s.T())
	s.g.AddEdge(NodeA, NodeA)

	require.False(s.g.Adjacent(NodeA, NodeA), "self-loop must not exist")
	require.Zero(s.g.NumEdges(), "self-loop attempt must not count as an edge")
	require.False(s.g.ContainsNode(NodeA), "rejected self-loop must not insert its endpoint")
}

func (s *DirectedSuite) TestAddEdgeDuplicateIgnored() {
	require := require.New(s.T())
	s.g.AddEdge(NodeA, NodeB)
	s.g.AddEdge(NodeA, NodeB)

	require.Equal(1, s.g.NumEdges(), "duplicate AddEdge should be a no-op")

	// Mutual edges are two distinct edges, not a duplicate.
	s.g.AddEdge(NodeB, NodeA)
	require.Equal(2, s.g.NumEdges())
}

func (s *DirectedSuite) TestRemoveEdge() {
	require := require.New(s.T())
	s.g.AddEdge(NodeA, NodeB)
	s.g.AddEdge(NodeB, NodeA)

	s.g.RemoveEdge(NodeA, NodeB)
	require.False(s.g.Adjacent(NodeA, NodeB), "edge A→B should be removed")
	require.True(s.g.Adjacent(NodeB, NodeA), "reverse edge B→A must survive")
	require.Equal(1, s.g.NumEdges())
	require.True(s.g.ContainsNode(NodeA) && s.g.ContainsNode(NodeB), "RemoveEdge must keep endpoints")

	// Removing an absent edge is a no-op, even with absent endpoints.
	s.g.RemoveEdge(NodeA, NodeB)
	s.g.RemoveEdge(NodeX, NodeY)
	require.Equal(1, s.g.NumEdges())
}

func (s *DirectedSuite) TestRemoveNodeCascades() {
	require := require.New(s.T())
	g := buildSampleDirected() // A ↔ B, B → C, isolated D

	require.Equal(4, g.NumNodes())
	require.Equal(3, g.NumEdges())

	g.RemoveNode(NodeA)
	require.False(g.ContainsNode(NodeA), "A should be removed")
	require.Equal(3, g.NumNodes())
	require.Equal(1, g.NumEdges(), "both A↔B edges must vanish with A")
	require.True(g.Adjacent(NodeB, NodeC), "unrelated edge B→C must survive")
	require.Zero(g.InDegree(NodeB), "B lost its only predecessor")
	for v := range g.Nodes() {
		require.False(g.Adjacent(v, NodeA), "no survivor may still reach A")
		require.False(g.Adjacent(NodeA, v), "A may not still reach any survivor")
	}

	// Absent node removal is a no-op.
	g.RemoveNode(NodeA)
	require.Equal(3, g.NumNodes())
	require.Equal(1, g.NumEdges())
}

func (s *DirectedSuite) TestAdjacentOnAbsentEndpoints() {
	require := require.New(s.T())
	s.g.AddNode(NodeA)

	require.False(s.g.Adjacent(NodeA, NodeX), "absent head must yield false")
	require.False(s.g.Adjacent(NodeX, NodeA), "absent tail must yield false")
	require.False(s.g.Adjacent(NodeX, NodeY), "both absent must yield false")
}

func (s *DirectedSuite) TestCountsMatchEnumeration() {
	require := require.New(s.T())
	g := buildSampleDirected()

	require.Equal(g.NumNodes(), seqLen(g.Nodes()), "NumNodes must agree with draining Nodes()")
	require.Equal(g.NumEdges(), len(g.Edges()), "NumEdges must agree with the snapshot length")

	g.RemoveNode(NodeB)
	require.Equal(g.NumNodes(), seqLen(g.Nodes()))
	require.Equal(g.NumEdges(), len(g.Edges()))
}

func (s *DirectedSuite) TestNeighborSetsMirrorEachOther() {
	require := require.New(s.T())
	g := buildSampleDirected()

	// v ∈ out(u) exactly when u ∈ in(v), for every edge of the snapshot.
	for _, e := range g.Edges() {
		succ, err := g.OutNeighbors(e.From)
		require.NoError(err)
		require.Contains(collectSorted(succ), e.To)

		pred, err := g.InNeighbors(e.To)
		require.NoError(err)
		require.Contains(collectSorted(pred), e.From)
	}
}

func (s *DirectedSuite) TestDegreesAreTotal() {
	require := require.New(s.T())
	g := buildSampleDirected()

	require.Equal(2, g.OutDegree(NodeB), "B → {A, C}")
	require.Equal(1, g.InDegree(NodeB), "A → B")
	require.False(g.Adjacent(NodeC, NodeB), "C never gained a back-edge")
	require.Zero(g.OutDegree(NodeD), "isolated node has no successors")
	require.Zero(g.InDegree(NodeD), "isolated node has no predecessors")
	require.Zero(g.OutDegree(NodeX), "absent node reports 0, not an error")
	require.Zero(g.InDegree(NodeX), "absent node reports 0, not an error")

	// Handshake: degrees sum to the edge count on both sides.
	var inSum, outSum int
	for v := range g.Nodes() {
		inSum += g.InDegree(v)
		outSum += g.OutDegree(v)
	}
	require.Equal(g.NumEdges(), inSum)
	require.Equal(g.NumEdges(), outSum)
}

func (s *DirectedSuite) TestNeighborsAbsentVersusEmpty() {
	require := require.New(s.T())
	g := buildSampleDirected()

	// Absent node: sentinel error, nil sequence.
	seq, err := g.OutNeighbors(NodeX)
	require.ErrorIs(err, core.ErrNodeNotFound)
	require.Nil(seq)
	_, err = g.InNeighbors(NodeX)
	require.ErrorIs(err, core.ErrNodeNotFound)

	// Isolated node: empty sequence, no error.
	seq, err = g.OutNeighbors(NodeD)
	require.NoError(err)
	require.Zero(seqLen(seq), "isolated node yields an empty sequence")

	// Populated node: exact neighbor sets.
	seq, err = g.OutNeighbors(NodeB)
	require.NoError(err)
	require.Equal([]string{NodeA, NodeC}, collectSorted(seq))

	seq, err = g.InNeighbors(NodeC)
	require.NoError(err)
	require.Equal([]string{NodeB}, collectSorted(seq))
}

func (s *DirectedSuite) TestNeighborSequenceIsRestartable() {
	require := require.New(s.T())
	g := buildSampleDirected()

	seq, err := g.OutNeighbors(NodeB)
	require.NoError(err)
	first := collectSorted(seq)
	second := collectSorted(seq)
	require.Equal(first, second, "draining twice must yield the same elements")
}

func (s *DirectedSuite) TestNodesIsLiveView() {
	require := require.New(s.T())
	s.g.AddNode(NodeA)
	nodes := s.g.Nodes()
	require.Equal([]string{NodeA}, collectSorted(nodes))

	// The same sequence observes a later insertion.
	s.g.AddNode(NodeB)
	require.Equal([]string{NodeA, NodeB}, collectSorted(nodes))
}

func (s *DirectedSuite) TestEdgesSnapshot() {
	require := require.New(s.T())
	g := buildSampleDirected()

	snap := g.Edges()
	require.Len(snap, g.NumEdges())
	require.Equal([]string{"A->B", "B->A", "B->C"}, directedPairs(snap))

	// Snapshot stability: mutating g must not alter the obtained slice.
	g.RemoveNode(NodeB)
	require.Equal([]string{"A->B", "B->A", "B->C"}, directedPairs(snap))
	require.Equal([]string{}, directedPairs(g.Edges()), "fresh snapshot reflects the mutation")
}

func (s *DirectedSuite) TestClone() {
	require := require.New(s.T())
	g := buildSampleDirected()
	c := g.Clone()

	require.Equal(g.NumNodes(), c.NumNodes())
	require.Equal(g.NumEdges(), c.NumEdges())
	require.Equal(directedPairs(g.Edges()), directedPairs(c.Edges()))

	// Divergence after cloning: storage is not shared.
	c.RemoveNode(NodeA)
	require.True(g.ContainsNode(NodeA), "mutating the clone must not touch the original")
	require.Equal(3, g.NumEdges())
	g.AddEdge(NodeC, NodeD)
	require.False(c.Adjacent(NodeC, NodeD), "mutating the original must not touch the clone")
}

func (s *DirectedSuite) TestClear() {
	require := require.New(s.T())
	g := buildSampleDirected()
	g.Clear()

	require.Zero(g.NumNodes())
	require.Zero(g.NumEdges())
	require.False(g.ContainsNode(NodeA))

	// The cleared graph stays fully usable.
	g.AddEdge(NodeA, NodeB)
	require.Equal(1, g.NumEdges())
}

func (s *DirectedSuite) TestWithCapacity() {
	require := require.New(s.T())
	g := core.NewDirected[int](core.WithCapacity(64))
	for i := 0; i < 64; i++ {
		g.AddNode(i)
	}
	require.Equal(64, g.NumNodes())

	// Hints below 1 are ignored; construction stays total.
	h := core.NewDirected[int](core.WithCapacity(-5))
	h.AddEdge(1, 2)
	require.Equal(1, h.NumEdges())
}

func TestDirectedSuite(t *testing.T) {
	suite.Run(t, new(DirectedSuite))
}
