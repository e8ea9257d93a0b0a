// SPDX-License-Identifier: MIT
// Package matrix: node ↔ slot translation shared by both matrix kinds.
//
// A slot is a row/column position. Freed slots go through a free list and
// are reused before the matrix grows, so node churn keeps the dimension
// bounded by the historical peak, not the insertion total.

package matrix

// slotTable maps nodes to matrix slots and back.
type slotTable[T comparable] struct {
	index map[T]int // node → slot
	nodes []T       // slot → node; stale entries for freed slots
	free  []int     // freed slots pending reuse
}

// newSlotTable reserves room for capacity nodes.
func newSlotTable[T comparable](capacity int) slotTable[T] {
	return slotTable[T]{
		index: make(map[T]int, capacity),
		nodes: make([]T, 0, capacity),
	}
}

// slot returns v's slot; ok is false when v is not indexed.
func (t *slotTable[T]) slot(v T) (s int, ok bool) {
	s, ok = t.index[v]

	return s, ok
}

// insert indexes v, reusing a freed slot when one exists. grew reports
// that a fresh slot was appended, obliging the caller to grow its matrix
// by one row and one column. Callers ensure v is not yet indexed.
func (t *slotTable[T]) insert(v T) (s int, grew bool) {
	if n := len(t.free); n > 0 {
		s = t.free[n-1]
		t.free = t.free[:n-1]
		t.index[v] = s
		t.nodes[s] = v

		return s, false
	}
	s = len(t.nodes)
	t.nodes = append(t.nodes, v)
	t.index[v] = s

	return s, true
}

// release unindexes v and queues its slot for reuse. The caller clears the
// slot's matrix row and column first.
func (t *slotTable[T]) release(v T, s int) {
	var zero T
	t.nodes[s] = zero // drop the reference for the collector
	delete(t.index, v)
	t.free = append(t.free, s)
}

// count returns the live node count.
func (t *slotTable[T]) count() int {
	return len(t.index)
}

// width returns the allocated slot count: the matrix dimension.
func (t *slotTable[T]) width() int {
	return len(t.nodes)
}
