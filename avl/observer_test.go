// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ravl/avl"
	"github.com/bitmark-inc/ravl/avl/mocks"
)

func TestObserveInsertLeaf(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockObserver(ctl)

	m.EXPECT().Observe(avl.Event{Kind: avl.EventInsert, Value: "a", Balance: 0, Depth: 1}).Times(1)

	tree := avl.From("b").WithObserver(m).Add("a")
	assert.Equal(t, []string{"a", "b"}, tree.Values())
}

func TestObserveRotation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockObserver(ctl)

	gomock.InOrder(
		m.EXPECT().Observe(avl.Event{Kind: avl.EventInsert, Value: "c", Balance: 0, Depth: 2}),
		m.EXPECT().Observe(avl.Event{Kind: avl.EventRebalance, Value: "b", Balance: 0, Depth: 0}),
		m.EXPECT().Observe(avl.Event{Kind: avl.EventSettle, Value: "b", Balance: 0, Depth: 0}),
	)

	tree := avl.From("a", "b").WithObserver(m).Add("c")
	assert.Equal(t, "b", tree.Root().Value())
}

func TestObserveDelete(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockObserver(ctl)

	// b(a,c): deleting b pulls a up from the left, the right side
	// keeps the height so the replacement settles immediately
	gomock.InOrder(
		m.EXPECT().Observe(avl.Event{Kind: avl.EventDelete, Value: "b", Balance: 0, Depth: 0}),
		m.EXPECT().Observe(avl.Event{Kind: avl.EventExtreme, Value: "a", Balance: 0, Depth: 1}),
	)

	tree := avl.From("b", "a", "c").WithObserver(m).Remove("b")
	assert.Equal(t, []string{"a", "c"}, tree.Values())
	assert.Equal(t, 1, tree.Root().Balance())
}

// depths of the replacement steps are counted from the tree root
func TestObserveDeleteDepth(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockObserver(ctl)

	//       4
	//     2   6
	//    1 3 5 7
	gomock.InOrder(
		m.EXPECT().Observe(avl.Event{Kind: avl.EventDelete, Value: 4, Balance: 0, Depth: 0}),
		m.EXPECT().Observe(avl.Event{Kind: avl.EventExtreme, Value: 3, Balance: 0, Depth: 2}),
		m.EXPECT().Observe(avl.Event{Kind: avl.EventSettle, Value: 2, Balance: -1, Depth: 1}),
	)

	tree := avl.From(4, 2, 6, 1, 3, 5, 7).WithObserver(m).Remove(4)
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7}, tree.Values())
	assert.Equal(t, 3, tree.Root().Value())
	assert.Nil(t, tree.Check())
}

// the observer is carried to derived versions and can be removed
func TestObserverIsInherited(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockObserver(ctl)

	m.EXPECT().Observe(gomock.Any()).MinTimes(2)

	tree := avl.New[int]().WithObserver(m).Add(1).Add(2)
	tree.WithObserver(nil).Add(3)
}

// observing must not change the result
func TestLogObserver(t *testing.T) {
	o := avl.NewLogObserver(logger.New(logCategory))

	plain := avl.New[int]()
	watched := avl.New[int]().WithObserver(o)
	for i := 0; i < 100; i += 1 {
		v := (i * 37) % 101
		plain = plain.Add(v)
		watched = watched.Add(v)
	}
	for i := 0; i < 100; i += 3 {
		plain = plain.Remove(i)
		watched = watched.Remove(i)
	}

	assert.Equal(t, plain.Values(), watched.Values())
	assert.Equal(t, plain.Height(), watched.Height())
	assert.Nil(t, watched.Check())
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "insert", avl.EventInsert.String())
	assert.Equal(t, "delete", avl.EventDelete.String())
	assert.Equal(t, "extreme", avl.EventExtreme.String())
	assert.Equal(t, "rebalance", avl.EventRebalance.String())
	assert.Equal(t, "settle", avl.EventSettle.String())
	assert.Equal(t, "unknown", avl.EventKind(99).String())
}
