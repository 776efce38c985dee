// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package binarytree

import (
	"fmt"
	"io"
	"math/bits"
	"strings"
)

// Display writes t to w one level per line, with the root on the first
// line and each level indented less than the one above it.
func Display[V Number](w io.Writer, t *Node[V]) error {
	if err := Validate(t); err != nil {
		return err
	}
	values := Flatten(t)
	height := bits.Len(uint(t.Total)) // floor(log2(total)) + 1
	width, perLevel := height, 1
	for range height {
		row := &strings.Builder{}
		for j := 0; j < perLevel && len(values) > 0; j++ {
			row.WriteString(strings.Repeat(" ", width))
			fmt.Fprint(row, values[0])
			values = values[1:]
		}
		if _, err := fmt.Fprintln(w, strings.Repeat(" ", 2*width), row.String()); err != nil {
			return err
		}
		width--
		perLevel *= 2
	}
	return nil
}
