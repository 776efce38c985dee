// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package binarytree provides a linked representation of complete binary
// trees of numbers and conversions between that representation and the
// implicit array layout in which the children of position i are stored at
// positions 2i+1 and 2i+2.
//
//	tree, err := binarytree.FromArray([]int{3, 5, 2, 8, 7, 1, 6, 4})
//	...
//	values := binarytree.Flatten(tree) // 3 5 2 8 7 1 6 4
//
// The shape of a tree is recovered from index arithmetic alone, no value
// comparisons are made when converting between the two forms.
package binarytree

import "fmt"

// Number represents the set of types that can be stored in a Node.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Node represents a node in a complete binary tree. A nil Left or Right
// represents an empty subtree. Total is the number of elements in the
// entire tree that the node belongs to and is the same for every node
// in that tree.
type Node[V Number] struct {
	Value V
	Left  *Node[V]
	Right *Node[V]
	Total int
}

// New creates a node from a value, its two subtrees and the number of
// elements in the tree being constructed. The subtrees must have been
// created with the same total. New does not check the supplied values,
// use Validate once the tree is complete.
func New[V Number](value V, left, right *Node[V], total int) *Node[V] {
	return &Node[V]{
		Value: value,
		Left:  left,
		Right: right,
		Total: total,
	}
}

// String implements fmt.Stringer, it returns the array form of the tree.
func (n *Node[V]) String() string {
	return fmt.Sprint(Flatten(n))
}
