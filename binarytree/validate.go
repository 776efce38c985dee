// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package binarytree

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrEmptyInput is returned when a tree is requested for no values.
	ErrEmptyInput = errors.New("a tree must contain at least one element")
	// ErrSizeMismatch is returned when the Total recorded by the nodes
	// of a tree does not agree with the tree's array form.
	ErrSizeMismatch = errors.New("tree size mismatch")
	// ErrInvalidIndex is returned when an index does not refer to an
	// element of the array that a tree is being built from.
	ErrInvalidIndex = errors.New("invalid array index")
)

// Validate checks that t is a complete tree whose nodes all record the
// number of nodes in the tree as their Total. All of the violations found
// are returned, each of which wraps ErrSizeMismatch. A nil tree results in
// ErrEmptyInput.
func Validate[V Number](t *Node[V]) error {
	if t == nil {
		return errors.WithCaller(ErrEmptyInput)
	}
	errs := &errors.M{}
	if n := validate(t, 0, t.Total, errs); n != t.Total {
		errs.Append(fmt.Errorf("%w: tree has %v nodes, but a total of %v", ErrSizeMismatch, n, t.Total))
	}
	return errs.Err()
}

func validate[V Number](n *Node[V], i, total int, errs *errors.M) int {
	if n == nil {
		return 0
	}
	if n.Total != total {
		errs.Append(fmt.Errorf("%w: node at position %v has a total of %v, not %v", ErrSizeMismatch, i, n.Total, total))
	}
	if i < 0 || i >= total {
		errs.Append(fmt.Errorf("%w: node at position %v is outside of [0, %v)", ErrSizeMismatch, i, total))
	}
	return 1 + validate(n.Left, (2*i)+1, total, errs) + validate(n.Right, (2*i)+2, total, errs)
}
