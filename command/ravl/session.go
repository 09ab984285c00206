// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ravl/avl"
	"github.com/bitmark-inc/ravl/history"
	"github.com/bitmark-inc/ravl/util"
)

// rebuilder - background process that rebuilds the tree of a file
// each time the watcher reports a change
type rebuilder struct {
	log      *logger.L
	parser   *parser
	file     string
	observer avl.Observer
	history  *history.History[value]
	channel  watcherChannel
	rebuilt  chan<- uint64 // optional, receives each new generation
}

// Run - wait for changes until shutdown
func (r *rebuilder) Run(args interface{}, shutdown <-chan struct{}) {
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-r.channel.remove:
			r.log.Warn("input removed, keeping last snapshot")
		case <-r.channel.change:
			if _, err := r.rebuild(); nil != err {
				r.log.Errorf("rebuild error: %s", err)
			}
		}
	}
}

// rebuild - read the file and record a new snapshot
//
// the new tree is derived from the latest snapshot so unchanged
// sub-trees are shared with it; values missing from the file are
// removed
func (r *rebuilder) rebuild() (uint64, error) {
	values, err := r.parser.readFile(r.file)
	if nil != err {
		return 0, err
	}

	fresh := r.parser.newTree().AddAll(values...)

	previous, _, ok := r.history.Latest()
	if !ok {
		previous = r.parser.newTree()
	}

	added, removed := history.Diff(previous, fresh)

	tree := previous.WithObserver(r.observer)
	for _, v := range removed {
		tree = tree.Remove(v)
	}
	for _, v := range added {
		tree = tree.Add(v)
	}

	if err := tree.Check(); nil != err {
		return 0, err
	}

	generation := r.history.Push(tree)
	r.log.Infof("generation: %d  size: %d  height: %d  added: %d  removed: %d",
		generation, tree.Size(), tree.Height(), len(added), len(removed))
	util.LogDiff(r.log, added, removed)

	if nil != r.rebuilt {
		r.rebuilt <- generation
	}
	return generation, nil
}
