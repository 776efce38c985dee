// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package maxheap reorganizes complete binary trees, as represented by
// package binarytree, into max-heaps and provides a heap sort built on
// top of them.
package maxheap

import (
	"cloudeng.io/heaptree/binarytree"
)

// SiftDown moves the element at position i of values down the heap,
// swapping it with its larger child, until neither of its children is
// larger than it. It returns values, unchanged if i is not a position
// within values.
func SiftDown[V binarytree.Number](values []V, i int) []V {
	if i < 0 || i >= len(values) {
		return values
	}
	down(values, i, len(values))
	return values
}

// BuildMaxHeap reorders values into a max-heap by sifting down every
// internal node, starting with the last, and returns values.
func BuildMaxHeap[V binarytree.Number](values []V) []V {
	n := len(values)
	for i := (n - 1) / 2; i >= 0 && n > 1; i-- {
		down(values, i, n)
	}
	return values
}

// Heapify returns a new tree with the same values as t arranged as a
// max-heap. t is not modified.
func Heapify[V binarytree.Number](t *binarytree.Node[V]) (*binarytree.Node[V], error) {
	if err := binarytree.Validate(t); err != nil {
		return nil, err
	}
	return binarytree.FromArray(BuildMaxHeap(binarytree.Flatten(t)))
}

// HeapifyInPlace arranges the values in t as a max-heap. The root node
// of t is retained, but its value and both of its subtrees are replaced
// by those of the newly created heap. t is unchanged if an error is
// returned.
func HeapifyInPlace[V binarytree.Number](t *binarytree.Node[V]) error {
	h, err := Heapify(t)
	if err != nil {
		return err
	}
	t.Value, t.Left, t.Right = h.Value, h.Left, h.Right
	return nil
}

// larger returns the position of the larger of the children of i within
// the first n elements of values, preferring the right child when they are
// equal and any child over an absent one. ok is false if i has no children.
func larger[V binarytree.Number](values []V, i, n int) (int, bool) {
	l, r, lok, rok := binarytree.Children(n, i)
	switch {
	case lok && rok:
		if values[l] > values[r] {
			return l, true
		}
		return r, true
	case lok:
		return l, true
	case rok:
		return r, true
	}
	return 0, false
}

func down[V binarytree.Number](values []V, i, n int) {
	for {
		j, ok := larger(values, i, n)
		if !ok || !(values[j] > values[i]) {
			return
		}
		values[i], values[j] = values[j], values[i]
		i = j
	}
}
