// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ravl/avl"
	"github.com/bitmark-inc/ravl/storage"
)

func runLoad(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	prefix, err := databasePrefix(m)
	if nil != err {
		return err
	}

	db, err := storage.Open(m.config.Database.Name, storage.ReadOnly)
	if nil != err {
		return err
	}
	defer db.Close()

	tree, err := m.parser.load(m.parser.newTree().WithObserver(m.stats), db.NewFetchCursor(prefix))
	if nil != err {
		return err
	}

	if c.Bool("print") {
		tree.Print(m.w, false)
	}
	return report(m.w, tree, m)
}

// load - add the value text of every record under the cursor
func (p *parser) load(tree *avl.Tree[value], cursor *storage.FetchCursor) (*avl.Tree[value], error) {
	err := cursor.Map(func(key []byte, data []byte) error {
		v, err := p.parse(string(data))
		if nil != err {
			return err
		}
		tree = tree.Add(v)
		return nil
	})
	return tree, err
}
