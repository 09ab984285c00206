// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, _, err := buildTree(c, m)
	if nil != err {
		return err
	}

	// also exercise delete: empty a copy from both ends, checking
	// after 1, 2, 4, 8… deletes
	drained := tree
	for n := 1; !drained.IsEmpty(); n += 1 {
		if 0 == n%2 {
			_, _, drained = drained.DeleteMax()
		} else {
			_, _, drained = drained.DeleteMin()
		}
		if 0 != n&(n-1) {
			continue
		}
		if err := drained.Check(); nil != err {
			m.log.Errorf("check failed after %d deletes: %s", n, err)
			return err
		}
	}

	if err := tree.Check(); nil != err {
		return err
	}

	if m.verbose {
		m.stats.print(m.e)
	}
	fmt.Fprintf(m.w, "ok: %d values\n", tree.Size())
	return nil
}
