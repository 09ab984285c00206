// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ravl/fault"
)

func runRemove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	values := c.StringSlice("value")
	if 0 == len(values) {
		return fault.ErrMissingInput
	}

	before, _, err := buildTree(c, m)
	if nil != err {
		return err
	}

	after := before
	for _, s := range values {
		v, err := m.parser.parse(s)
		if nil != err {
			return err
		}

		var removed bool
		_, removed, after = after.Take(v)
		if !removed {
			fmt.Fprintf(m.e, "%s: %s\n", fault.ErrValueNotFound, v)
			continue
		}
		m.log.Infof("removed: %s", v)
	}

	printBalance := c.Bool("balance")

	fmt.Fprintf(m.w, "before: %d values\n", before.Size())
	before.Print(m.w, printBalance)

	fmt.Fprintf(m.w, "after: %d values\n", after.Size())
	after.Print(m.w, printBalance)

	// the original must be untouched by the removals
	if err := before.Check(); nil != err {
		return err
	}
	return after.Check()
}
