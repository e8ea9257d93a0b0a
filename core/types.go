// SPDX-License-Identifier: MIT
// Package core: contract interfaces, sentinel errors, and constructor options.
//
// This file declares the Directed and Undirected graph contracts that every
// representation in this module satisfies, the ErrNodeNotFound sentinel, the
// Option mechanism shared by all constructors, and the internal nodeSet
// storage primitive.

package core

import (
	"errors"
	"iter"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates a neighbor query referenced a node that is
	// not in the graph. Degree and adjacency queries never return it: they
	// report 0 / false for absent nodes instead.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Directed is the contract of a simple directed graph over node type T.
//
// Node identity is Go map-key equality on T. Mutators are total: duplicate
// insertions, removals of absent elements, and self-loop attempts are silent
// no-ops. The only failure mode is a neighbor query on an absent node, which
// reports ErrNodeNotFound to keep "not a node" distinct from "no neighbors".
type Directed[T comparable] interface {
	// AddNode inserts v as an isolated node; present nodes are untouched.
	AddNode(v T)

	// ContainsNode reports whether v is a node of the graph.
	ContainsNode(v T) bool

	// AddEdge inserts the edge (u,v), adding absent endpoints on demand.
	// Self-loops (u == v) and present edges are ignored.
	AddEdge(u, v T)

	// RemoveNode deletes v and every edge incident to it.
	RemoveNode(v T)

	// RemoveEdge deletes the edge (u,v); its endpoints stay.
	RemoveEdge(u, v T)

	// Adjacent reports whether the edge (u,v) exists.
	// Absent endpoints yield false.
	Adjacent(u, v T) bool

	// NumNodes returns the number of nodes.
	NumNodes() int

	// NumEdges returns the number of edges.
	NumEdges() int

	// Nodes returns a restartable sequence over all nodes, in no
	// particular order. The view is live: it reflects mutations made
	// between iterations.
	Nodes() iter.Seq[T]

	// Edges returns a snapshot of all edges, in no particular order.
	// Later mutation of the graph does not alter the returned slice.
	Edges() []DirectedEdge[T]

	// InDegree returns the number of predecessors of v, 0 when absent.
	InDegree(v T) int

	// OutDegree returns the number of successors of v, 0 when absent.
	OutDegree(v T) int

	// InNeighbors returns a sequence over the predecessors of v, or
	// ErrNodeNotFound when v is not a node.
	InNeighbors(v T) (iter.Seq[T], error)

	// OutNeighbors returns a sequence over the successors of v, or
	// ErrNodeNotFound when v is not a node.
	OutNeighbors(v T) (iter.Seq[T], error)
}

// Undirected is the contract of a simple undirected graph over node type T.
//
// Semantics mirror Directed with a single symmetric adjacency relation:
// AddEdge(u,v) and AddEdge(v,u) insert the same edge, and Adjacent is
// symmetric by construction.
type Undirected[T comparable] interface {
	// AddNode inserts v as an isolated node; present nodes are untouched.
	AddNode(v T)

	// ContainsNode reports whether v is a node of the graph.
	ContainsNode(v T) bool

	// AddEdge inserts the edge {u,v}, adding absent endpoints on demand.
	// Self-loops (u == v) and present edges are ignored.
	AddEdge(u, v T)

	// RemoveNode deletes v and every edge incident to it.
	RemoveNode(v T)

	// RemoveEdge deletes the edge {u,v}; its endpoints stay.
	RemoveEdge(u, v T)

	// Adjacent reports whether the edge {u,v} exists; symmetric in its
	// arguments. Absent endpoints yield false.
	Adjacent(u, v T) bool

	// NumNodes returns the number of nodes.
	NumNodes() int

	// NumEdges returns the number of edges; {u,v} counts once.
	NumEdges() int

	// Nodes returns a restartable sequence over all nodes, in no
	// particular order. The view is live: it reflects mutations made
	// between iterations.
	Nodes() iter.Seq[T]

	// Edges returns a snapshot of all edges with one entry per unordered
	// pair, in no particular order and arbitrary endpoint orientation.
	// Later mutation of the graph does not alter the returned slice.
	Edges() []UndirectedEdge[T]

	// Degree returns the number of neighbors of v, 0 when absent.
	Degree(v T) int

	// Neighbors returns a sequence over the neighbors of v, or
	// ErrNodeNotFound when v is not a node.
	Neighbors(v T) (iter.Seq[T], error)
}

// Option tunes a graph constructor before first use.
// Options never fail: out-of-range values are clamped, keeping
// construction total.
type Option func(*options)

// options collects constructor tuning shared by all representations.
type options struct {
	capacity int // expected node count; 0 means implementation default
}

// newOptions folds opts over the zero configuration.
func newOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithCapacity pre-sizes internal node storage for an expected node count,
// reducing rehash churn during bulk loading. Hints below 1 are ignored.
// Complexity: O(1).
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// nodeSet is the adjacency storage primitive: a hash set of nodes.
type nodeSet[T comparable] map[T]struct{}

// add inserts v into the set.
func (s nodeSet[T]) add(v T) { s[v] = struct{}{} }

// remove deletes v from the set; absent v is a no-op.
func (s nodeSet[T]) remove(v T) { delete(s, v) }

// has reports membership of v.
func (s nodeSet[T]) has(v T) bool {
	_, ok := s[v]

	return ok
}
