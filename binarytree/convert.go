// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package binarytree

import (
	"cmp"
	"fmt"
	"slices"

	"cloudeng.io/errors"
)

// Children returns the positions of the structural children of position i
// in an array of length size. A child that falls outside of the array
// is reported as absent via leftOK or rightOK.
func Children(size, i int) (left, right int, leftOK, rightOK bool) {
	left, right = (2*i)+1, (2*i)+2
	return left, right, left >= 0 && left < size, right >= 0 && right < size
}

// Partition determines the root, left and right subtrees of the subtree
// whose positions, within an array of length size, are given by indices.
// The first index is the root, the second is the root of the left subtree
// and the third the root of the right subtree. Every other index is
// assigned, via its structural children, to whichever side already contains
// its parent. A nil or empty indices is taken to mean all of the positions
// in the array. Partition returns a root of -1 for an empty array.
// The supplied indices are never modified.
func Partition(size int, indices []int) (root int, left, right []int) {
	if len(indices) == 0 {
		if size <= 0 {
			return -1, nil, nil
		}
		indices = make([]int, size)
		for i := range indices {
			indices[i] = i
		}
	}
	root = indices[0]
	if len(indices) > 1 {
		left = append(left, indices[1])
	}
	if len(indices) > 2 {
		right = append(right, indices[2])
	}
	inLeft := map[int]bool{}
	for _, l := range left {
		inLeft[l] = true
	}
	for _, i := range indices {
		if i == root {
			continue
		}
		l, r, lok, rok := Children(size, i)
		if inLeft[i] {
			if lok {
				left = append(left, l)
				inLeft[l] = true
			}
			if rok {
				left = append(left, r)
				inLeft[r] = true
			}
			continue
		}
		if lok {
			right = append(right, l)
		}
		if rok {
			right = append(right, r)
		}
	}
	return root, left, right
}

// Build creates a tree from the elements of values at the positions
// given by indices, a nil or empty indices selects all of values. Every
// node in the returned tree records len(values) as its Total.
func Build[V Number](values []V, indices []int) (*Node[V], error) {
	if len(values) == 0 {
		return nil, errors.WithCaller(ErrEmptyInput)
	}
	for _, i := range indices {
		if i < 0 || i >= len(values) {
			return nil, errors.WithCaller(fmt.Errorf("%w: %v is not in [0, %v)", ErrInvalidIndex, i, len(values)))
		}
	}
	return build(values, indices), nil
}

func build[V Number](values []V, indices []int) *Node[V] {
	root, left, right := Partition(len(values), indices)
	n := &Node[V]{Value: values[root], Total: len(values)}
	if len(left) > 0 {
		n.Left = build(values, left)
	}
	if len(right) > 0 {
		n.Right = build(values, right)
	}
	return n
}

// FromArray creates a tree from all of the supplied values.
func FromArray[V Number](values []V) (*Node[V], error) {
	return Build(values, nil)
}

type position[V Number] struct {
	index int
	value V
}

// Flatten returns the array form of the tree rooted at t. Positions
// that are not occupied by a node are omitted and hence the length of the
// returned slice is always the number of nodes in the tree.
func Flatten[V Number](t *Node[V]) []V {
	if t == nil {
		return []V{}
	}
	positions := flatten(t, 0, nil)
	slices.SortFunc(positions, func(a, b position[V]) int {
		return cmp.Compare(a.index, b.index)
	})
	values := make([]V, len(positions))
	for i, p := range positions {
		values[i] = p.value
	}
	return values
}

func flatten[V Number](n *Node[V], i int, positions []position[V]) []position[V] {
	positions = append(positions, position[V]{index: i, value: n.Value})
	if n.Left != nil {
		positions = flatten(n.Left, (2*i)+1, positions)
	}
	if n.Right != nil {
		positions = flatten(n.Right, (2*i)+2, positions)
	}
	return positions
}
