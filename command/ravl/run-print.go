// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, _, err := buildTree(c, m)
	if nil != err {
		return err
	}

	if tree.IsEmpty() {
		fmt.Fprintf(m.w, "empty\n")
		return nil
	}

	depth := tree.Print(m.w, c.Bool("balance"))
	if m.verbose {
		fmt.Fprintf(m.e, "depth: %d\n", depth)
	}
	return nil
}
