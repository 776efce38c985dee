// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package maxheap_test

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"cloudeng.io/errors"
	"cloudeng.io/heaptree/binarytree"
	"cloudeng.io/heaptree/maxheap"
)

func verify[V binarytree.Number](t *testing.T, values []V) {
	t.Helper()
	verifyAt(t, values, 0)
}

func verifyAt[V binarytree.Number](t *testing.T, values []V, p int) {
	t.Helper()
	n := len(values)
	l, r := (2*p)+1, (2*p)+2
	if l < n {
		if values[l] > values[p] {
			t.Errorf("heap inconsistent: left sub tree for %v (%v < [%v]: %v)", p, values[p], l, values[l])
			return
		}
		verifyAt(t, values, l)
	}
	if r < n {
		if values[r] > values[p] {
			t.Errorf("heap inconsistent: right sub tree for %v (%v < [%v]: %v)", p, values[p], r, values[r])
			return
		}
		verifyAt(t, values, r)
	}
}

func randomValues(rnd *rand.Rand, n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = rnd.IntN(50) - 25
	}
	return values
}

func ExampleHeapifyInPlace() {
	tree, err := binarytree.FromArray([]int{3, 5, 2, 8, 7, 1, 6, 4})
	if err != nil {
		panic(err)
	}
	if err := maxheap.HeapifyInPlace(tree); err != nil {
		panic(err)
	}
	fmt.Println(tree)
	// Output:
	// [8 7 6 5 3 1 2 4]
}

func TestSiftDown(t *testing.T) {
	for i, tc := range []struct {
		values []int
		pos    int
		want   []int
	}{
		{[]int{1}, 0, []int{1}},
		{[]int{1, 2}, 0, []int{2, 1}},
		{[]int{2, 1}, 0, []int{2, 1}},
		{[]int{1, 2, 3}, 0, []int{3, 2, 1}},
		{[]int{1, 3, 2}, 0, []int{3, 1, 2}},
		{[]int{1, 9, 8, 7, 6, 5, 4}, 0, []int{9, 7, 8, 1, 6, 5, 4}},
		{[]int{9, 1, 8, 7, 6}, 1, []int{9, 7, 8, 1, 6}},
		{[]int{9, 1, 8, 7, 6}, 4, []int{9, 1, 8, 7, 6}},
		{[]int{9, 1, 8, 7, 6}, 5, []int{9, 1, 8, 7, 6}},
		{[]int{1, 9, 8}, -1, []int{1, 9, 8}},
		{[]int{}, 0, []int{}},
	} {
		got := maxheap.SiftDown(slices.Clone(tc.values), tc.pos)
		if want := tc.want; !slices.Equal(got, want) {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestBuildMaxHeap(t *testing.T) {
	for i, tc := range []struct {
		values, want []int
	}{
		{[]int{}, []int{}},
		{[]int{1}, []int{1}},
		{[]int{2, 1}, []int{2, 1}},
		{[]int{1, 2}, []int{2, 1}},
		{[]int{3, 5, 2, 8, 7, 1, 6, 4}, []int{8, 7, 6, 5, 3, 1, 2, 4}},
	} {
		got := maxheap.BuildMaxHeap(slices.Clone(tc.values))
		if want := tc.want; !slices.Equal(got, want) {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestHeapify(t *testing.T) {
	input := []int{3, 5, 2, 8, 7, 1, 6, 4}
	tree, err := binarytree.FromArray(input)
	if err != nil {
		t.Fatal(err)
	}
	heap, err := maxheap.Heapify(tree)
	if err != nil {
		t.Fatal(err)
	}
	values := binarytree.Flatten(heap)
	verify(t, values)
	if got, want := slices.Sorted(slices.Values(values)), slices.Sorted(slices.Values(input)); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := heap.Total, len(input); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// The input tree is unchanged.
	if got, want := binarytree.Flatten(tree), input; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestHeapifyInPlace(t *testing.T) {
	tree, err := binarytree.FromArray([]int{3, 5, 2, 8, 7, 1, 6, 4})
	if err != nil {
		t.Fatal(err)
	}
	root, left := tree, tree.Left
	if err := maxheap.HeapifyInPlace(tree); err != nil {
		t.Fatal(err)
	}
	if tree != root {
		t.Errorf("root node was replaced")
	}
	if tree.Left == left {
		t.Errorf("left subtree was not replaced")
	}
	verify(t, binarytree.Flatten(tree))
	if err := binarytree.Validate(tree); err != nil {
		t.Fatal(err)
	}

	single, _ := binarytree.FromArray([]int{1})
	if err := maxheap.HeapifyInPlace(single); err != nil {
		t.Fatal(err)
	}
	if single.Value != 1 || single.Left != nil || single.Right != nil {
		t.Errorf("unexpected tree: %v", single)
	}

	pair, _ := binarytree.FromArray([]int{1, 2})
	if err := maxheap.HeapifyInPlace(pair); err != nil {
		t.Fatal(err)
	}
	if got, want := binarytree.Flatten(pair), []int{2, 1}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	invalid := binarytree.New(1, binarytree.New(2, nil, nil, 2), nil, 3)
	if err := maxheap.HeapifyInPlace(invalid); !errors.Is(err, binarytree.ErrSizeMismatch) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if invalid.Value != 1 || invalid.Left.Value != 2 {
		t.Errorf("invalid tree was modified: %v", invalid)
	}
	if _, err := maxheap.Heapify[int](nil); !errors.Is(err, binarytree.ErrEmptyInput) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestHeapifyProperties(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 11))
	for n := 1; n <= 64; n++ {
		input := randomValues(rnd, n)
		tree, err := binarytree.FromArray(input)
		if err != nil {
			t.Fatal(err)
		}
		once, err := maxheap.Heapify(tree)
		if err != nil {
			t.Fatal(err)
		}
		values := binarytree.Flatten(once)
		verify(t, values)
		if got, want := slices.Sorted(slices.Values(values)), slices.Sorted(slices.Values(input)); !slices.Equal(got, want) {
			t.Errorf("%v: got %v, want %v", n, got, want)
		}
		twice, err := maxheap.Heapify(once)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := binarytree.Flatten(twice), values; !slices.Equal(got, want) {
			t.Errorf("%v: not idempotent: got %v, want %v", n, got, want)
		}
	}
}
