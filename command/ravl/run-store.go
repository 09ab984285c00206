// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ravl/storage"
)

func runStore(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, _, err := buildTree(c, m)
	if nil != err {
		return err
	}

	prefix, err := databasePrefix(m)
	if nil != err {
		return err
	}

	if err := os.MkdirAll(m.config.Database.Directory, 0700); nil != err {
		return err
	}

	db, err := storage.Open(m.config.Database.Name, storage.ReadWrite)
	if nil != err {
		return err
	}
	defer db.Close()

	err = db.Put(prefix, m.parser.elements(tree.Values())...)
	if nil != err {
		return err
	}

	m.log.Infof("stored: %d values in: %s", tree.Size(), m.config.Database.Name)
	fmt.Fprintf(m.w, "stored: %d values\n", tree.Size())
	return nil
}
