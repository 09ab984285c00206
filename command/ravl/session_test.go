// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ravl/avl"
	"github.com/bitmark-inc/ravl/background"
	"github.com/bitmark-inc/ravl/configuration"
	"github.com/bitmark-inc/ravl/history"
)

func newTestRebuilder(t *testing.T, file string, rebuilt chan<- uint64) (*rebuilder, *statistics) {
	p, _ := newParser(configuration.ComparatorInteger)
	h, err := history.New[value](3)
	if nil != err {
		t.Fatalf("history error: %s", err)
	}
	s := newStatistics(nil)
	return &rebuilder{
		log:      logger.New(logCategory),
		parser:   p,
		file:     file,
		observer: s,
		history:  h,
		channel:  newWatcherChannel(),
		rebuilt:  rebuilt,
	}, s
}

func TestRebuildSharesHistory(t *testing.T) {
	dir, file := writeInput(t, "1\n2\n3\n4\n5\n")
	defer os.RemoveAll(dir)

	r, s := newTestRebuilder(t, file, nil)

	g, err := r.rebuild()
	assert.Nil(t, err, "first rebuild")
	assert.Equal(t, uint64(1), g, "first generation")
	assert.Equal(t, uint64(5), s.count(avl.EventInsert), "inserts")

	err = os.WriteFile(file, []byte("2\n3\n4\n5\n6\n7\n"), 0600)
	assert.Nil(t, err, "rewrite")

	g, err = r.rebuild()
	assert.Nil(t, err, "second rebuild")
	assert.Equal(t, uint64(2), g, "second generation")

	first, ok := r.history.Get(1)
	assert.True(t, ok, "first kept")
	second, ok := r.history.Get(2)
	assert.True(t, ok, "second kept")

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, texts(first.Values()), "first unchanged")
	assert.Equal(t, []string{"2", "3", "4", "5", "6", "7"}, texts(second.Values()), "second content")

	// only the changes went through the tree
	assert.Equal(t, uint64(7), s.count(avl.EventInsert), "inserts after change")
}

func TestRebuildError(t *testing.T) {
	dir, file := writeInput(t, "1\nnot-a-number\n")
	defer os.RemoveAll(dir)

	r, _ := newTestRebuilder(t, file, nil)
	_, err := r.rebuild()
	assert.NotNil(t, err, "parse error")
	assert.Equal(t, 0, r.history.Count(), "nothing recorded")
}

func TestRebuilderProcess(t *testing.T) {
	dir, file := writeInput(t, "3\n1\n2\n")
	defer os.RemoveAll(dir)

	rebuilt := make(chan uint64, 4)
	r, _ := newTestRebuilder(t, file, rebuilt)

	bg := background.Start(background.Processes{r}, nil)
	defer bg.Stop()

	r.channel.change <- struct{}{}

	select {
	case g := <-rebuilt:
		assert.Equal(t, uint64(1), g, "generation")
	case <-time.After(5 * time.Second):
		t.Fatal("no rebuild")
	}

	// a removal keeps the snapshot
	r.channel.remove <- struct{}{}
	tree, _, ok := r.history.Latest()
	assert.True(t, ok, "latest")
	assert.Equal(t, 3, tree.Size(), "size")
}
