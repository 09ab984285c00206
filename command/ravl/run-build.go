// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ravl/avl"
)

func runBuild(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, files, err := buildTree(c, m)
	if nil != err {
		return err
	}

	m.log.Infof("built from: %v", files)
	return report(m.w, tree, m)
}

// shape summary common to several commands
func report(w io.Writer, tree *avl.Tree[value], m *metadata) error {
	err := tree.Check()

	fmt.Fprintf(w, "size:   %d\n", tree.Size())
	fmt.Fprintf(w, "height: %d  (limit: %d)\n", tree.Height(), avl.MaxHeight(tree.Size()))
	if v, ok := tree.First(); ok {
		fmt.Fprintf(w, "first:  %s\n", v)
	}
	if v, ok := tree.Last(); ok {
		fmt.Fprintf(w, "last:   %s\n", v)
	}
	if nil == err {
		fmt.Fprintf(w, "check:  ok\n")
	} else {
		fmt.Fprintf(w, "check:  %s\n", err)
	}
	if m.verbose {
		m.stats.print(w)
	}
	return err
}
