// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package maxheap

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"cloudeng.io/errors"
	"cloudeng.io/heaptree/binarytree"
	"cloudeng.io/logging/ctxlog"
)

// Strategy determines how Sort restores the heap after each maximum
// has been moved into place.
type Strategy int

const (
	// Rebuild creates and heapifies a new tree over the remaining
	// elements on every pass.
	Rebuild Strategy = iota
	// InPlace sifts the new root down within the array.
	InPlace
)

var strategyNames = map[Strategy]string{
	Rebuild: "rebuild",
	InPlace: "in-place",
}

// String implements fmt.Stringer.
func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy returns the Strategy with the given name.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown sort strategy %q: use rebuild or in-place", name)
}

type options struct {
	strategy Strategy
}

// Option represents an option to Sort and SortArray.
type Option func(*options)

// WithStrategy sets the strategy used to sort, the default is Rebuild.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// Sort returns the values in t in ascending order. t need not be a heap
// and is not modified. The logger carried by ctx, see ctxlog, is used for
// debug output.
func Sort[V binarytree.Number](ctx context.Context, t *binarytree.Node[V], opts ...Option) ([]V, error) {
	if err := binarytree.Validate(t); err != nil {
		return nil, err
	}
	return sortValues(ctx, binarytree.Flatten(t), opts)
}

// SortArray is like Sort but for values, which are not modified.
func SortArray[V binarytree.Number](ctx context.Context, values []V, opts ...Option) ([]V, error) {
	if len(values) == 0 {
		return nil, errors.WithCaller(binarytree.ErrEmptyInput)
	}
	return sortValues(ctx, slices.Clone(values), opts)
}

func sortValues[V binarytree.Number](ctx context.Context, values []V, opts []Option) ([]V, error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	logger := ctxlog.Logger(ctx)
	logger.Debug("heap sort", "strategy", o.strategy.String(), "size", len(values))
	BuildMaxHeap(values)
	switch o.strategy {
	case Rebuild:
		return sortRebuild(logger, values)
	case InPlace:
		return sortInPlace(logger, values), nil
	}
	return nil, errors.WithCaller(fmt.Errorf("unsupported sort strategy: %v", o.strategy))
}

func sortRebuild[V binarytree.Number](logger *slog.Logger, values []V) ([]V, error) {
	for last := len(values) - 1; last >= 1; last-- {
		values[0], values[last] = values[last], values[0]
		tree, err := binarytree.FromArray(values[:last])
		if err != nil {
			return nil, err
		}
		heap, err := Heapify(tree)
		if err != nil {
			return nil, err
		}
		copy(values, binarytree.Flatten(heap))
		logger.Debug("sort pass", "remaining", last, "placed", values[last])
	}
	return values, nil
}

func sortInPlace[V binarytree.Number](logger *slog.Logger, values []V) []V {
	for last := len(values) - 1; last >= 1; last-- {
		values[0], values[last] = values[last], values[0]
		down(values, 0, last)
		logger.Debug("sort pass", "remaining", last, "placed", values[last])
	}
	return values
}
