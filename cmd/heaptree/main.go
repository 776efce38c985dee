// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command heaptree builds complete binary trees from the numbers given
// on its command line and displays, heapifies or heap sorts them.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: heaptree
summary: build, display, heapify and heap sort complete binary trees of numbers
commands:
  - name: demo
    summary: display, heapify, display again and then sort the tree built from 3 5 2 8 7 1 6 4
  - name: display
    summary: display the tree built from the supplied numbers
    arguments:
      - <number>
      - ...
  - name: heapify
    summary: arrange the tree built from the supplied numbers as a max-heap
    arguments:
      - <number>
      - ...
  - name: sort
    summary: heap sort the supplied numbers into ascending order
    arguments:
      - <number>
      - ...
`

type command struct {
	out io.Writer
}

func cli(out io.Writer) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	c := &command{out: out}
	cmdSet.Set("demo").MustRunnerAndFlags(c.demo,
		subcmd.MustRegisteredFlagSet(&demoFlags{}))
	cmdSet.Set("display").MustRunnerAndFlags(c.display,
		subcmd.MustRegisteredFlagSet(&displayFlags{}))
	cmdSet.Set("heapify").MustRunnerAndFlags(c.heapify,
		subcmd.MustRegisteredFlagSet(&heapifyFlags{}))
	cmdSet.Set("sort").MustRunnerAndFlags(c.sort,
		subcmd.MustRegisteredFlagSet(&sortFlags{}))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), cli(os.Stdout))
}
