// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"cloudeng.io/errors"
	"cloudeng.io/heaptree/binarytree"
	"cloudeng.io/heaptree/maxheap"
	"cloudeng.io/logging/ctxlog"
)

var demoValues = []float64{3, 5, 2, 8, 7, 1, 6, 4}

// run parses the configuration and numbers and then calls fn with a
// context that carries the configured logger.
func run(ctx context.Context, cf *CommonFlags, strategy string, args []string, fn func(context.Context, Config, []float64) error) (err error) {
	cfg, err := cf.config(strategy)
	if err != nil {
		return err
	}
	values, err := parseNumbers(args)
	if err != nil {
		return err
	}
	ctx, closer, err := cfg.withLogger(ctx)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.NewM(err, closer())
	}()
	return fn(ctx, cfg, values)
}

func (c *command) demo(ctx context.Context, values any, _ []string) error {
	fv := values.(*demoFlags)
	return run(ctx, &fv.CommonFlags, fv.Strategy, nil, func(ctx context.Context, cfg Config, _ []float64) error {
		strategy, err := cfg.strategy()
		if err != nil {
			return err
		}
		tree, err := binarytree.FromArray(demoValues)
		if err != nil {
			return err
		}
		heap, err := maxheap.Heapify(tree)
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Info("heapified", "input", tree.String(), "heap", heap.String())
		r := result{Input: binarytree.Flatten(tree), Heap: binarytree.Flatten(heap)}
		if r.Sorted, err = maxheap.Sort(ctx, heap, maxheap.WithStrategy(strategy)); err != nil {
			return err
		}
		return cfg.write(c.out, r, func(out io.Writer) error {
			if err := binarytree.Display(out, tree); err != nil {
				return err
			}
			if err := binarytree.Display(out, heap); err != nil {
				return err
			}
			_, err := fmt.Fprintln(out, r.Sorted)
			return err
		})
	})
}

func (c *command) display(ctx context.Context, values any, args []string) error {
	fv := values.(*displayFlags)
	return run(ctx, &fv.CommonFlags, "", args, func(_ context.Context, cfg Config, input []float64) error {
		tree, err := binarytree.FromArray(input)
		if err != nil {
			return err
		}
		return cfg.write(c.out, result{Input: input}, func(out io.Writer) error {
			return binarytree.Display(out, tree)
		})
	})
}

func (c *command) heapify(ctx context.Context, values any, args []string) error {
	fv := values.(*heapifyFlags)
	return run(ctx, &fv.CommonFlags, "", args, func(ctx context.Context, cfg Config, input []float64) error {
		tree, err := binarytree.FromArray(input)
		if err != nil {
			return err
		}
		if err := maxheap.HeapifyInPlace(tree); err != nil {
			return err
		}
		ctxlog.Logger(ctx).Info("heapified", "size", tree.Total)
		r := result{Input: input, Heap: binarytree.Flatten(tree)}
		return cfg.write(c.out, r, func(out io.Writer) error {
			if fv.Display {
				if err := binarytree.Display(out, tree); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintln(out, r.Heap)
			return err
		})
	})
}

func (c *command) sort(ctx context.Context, values any, args []string) error {
	fv := values.(*sortFlags)
	return run(ctx, &fv.CommonFlags, fv.Strategy, args, func(ctx context.Context, cfg Config, input []float64) error {
		strategy, err := cfg.strategy()
		if err != nil {
			return err
		}
		tree, err := binarytree.FromArray(input)
		if err != nil {
			return err
		}
		sorted, err := maxheap.Sort(ctx, tree, maxheap.WithStrategy(strategy))
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Info("sorted", "size", len(sorted), "strategy", strategy.String())
		return cfg.write(c.out, result{Input: input, Sorted: sorted}, func(out io.Writer) error {
			_, err := fmt.Fprintln(out, sorted)
			return err
		})
	})
}
