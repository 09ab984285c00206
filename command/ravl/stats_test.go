// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ravl/avl"
	"github.com/bitmark-inc/ravl/avl/mocks"
	"github.com/bitmark-inc/ravl/background"
)

func TestStatisticsCounts(t *testing.T) {
	s := newStatistics(nil)

	tree := avl.New[int]().WithObserver(s).AddAll(1, 2, 3)
	assert.Equal(t, uint64(3), s.count(avl.EventInsert), "inserts")
	assert.Equal(t, uint64(1), s.count(avl.EventRebalance), "rotations")

	tree = tree.Remove(2)
	assert.Equal(t, uint64(1), s.count(avl.EventDelete), "deletes")
	assert.Equal(t, uint64(1), s.count(avl.EventExtreme), "replacement")

	buffer := &bytes.Buffer{}
	s.print(buffer)
	assert.Contains(t, buffer.String(), "insert: 3", "printed")

	previous := s.reset()
	assert.Equal(t, uint64(3), previous[avl.EventInsert], "reset returns counts")
	assert.Equal(t, uint64(0), s.count(avl.EventInsert), "reset clears")
	assert.Equal(t, 2, tree.Size(), "size")
}

func TestStatisticsForwards(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockObserver(ctl)
	m.EXPECT().Observe(avl.Event{Kind: avl.EventInsert, Value: 7}).Times(1)

	s := newStatistics(m)
	avl.New[int]().WithObserver(s).Add(7)

	assert.Equal(t, uint64(1), s.count(avl.EventInsert), "counted")
}

func TestReporterStops(t *testing.T) {
	s := newStatistics(nil)
	avl.New[int]().WithObserver(s).AddAll(1, 2, 3, 4)

	r := &reporter{
		log:      logger.New(logCategory),
		stats:    s,
		interval: time.Hour,
	}

	bg := background.Start(background.Processes{r}, nil)
	bg.Stop()

	// final report clears counts
	assert.Equal(t, uint64(0), s.count(avl.EventInsert), "cleared on stop")
}
