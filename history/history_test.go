// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package history_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ravl/avl"
	"github.com/bitmark-inc/ravl/fault"
	"github.com/bitmark-inc/ravl/history"
)

func TestPushAndExpire(t *testing.T) {
	h, err := history.New[int](2)
	if !assert.Nil(t, err, "new") {
		return
	}

	_, _, ok := h.Latest()
	assert.False(t, ok, "empty history")

	t1 := avl.From(1)
	t2 := t1.Add(2)
	t3 := t2.Add(3)

	assert.Equal(t, uint64(1), h.Push(t1), "generation 1")
	assert.Equal(t, uint64(2), h.Push(t2), "generation 2")
	assert.Equal(t, uint64(3), h.Push(t3), "generation 3")

	assert.Equal(t, 2, h.Count(), "retained")

	_, ok = h.Get(1)
	assert.False(t, ok, "oldest dropped")

	tree, ok := h.Get(2)
	assert.True(t, ok, "generation 2 kept")
	assert.Equal(t, []int{1, 2}, tree.Values(), "generation 2 content")

	tree, generation, ok := h.Latest()
	assert.True(t, ok, "latest")
	assert.Equal(t, uint64(3), generation, "latest generation")
	assert.True(t, t3 == tree, "latest snapshot")
}

func TestInvalidKeep(t *testing.T) {
	_, err := history.New[string](0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero keep")
}

func TestDiff(t *testing.T) {
	older := avl.From(1, 3, 5, 7, 9)
	newer := older.Remove(3).Remove(9).Add(4).Add(10).Add(0)

	added, removed := history.Diff(older, newer)
	assert.Equal(t, []int{0, 4, 10}, added, "added")
	assert.Equal(t, []int{3, 9}, removed, "removed")

	added, removed = history.Diff(newer, older)
	assert.Equal(t, []int{3, 9}, added, "reverse added")
	assert.Equal(t, []int{0, 4, 10}, removed, "reverse removed")

	added, removed = history.Diff(older, older)
	assert.Nil(t, added, "same added")
	assert.Nil(t, removed, "same removed")

	added, removed = history.Diff(avl.New[int](), older)
	assert.Equal(t, older.Values(), added, "from empty")
	assert.Nil(t, removed, "from empty")
}
