// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package history - keep recent versions of a tree and compare them
package history

import (
	"iter"
	"strconv"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/ravl/avl"
	"github.com/bitmark-inc/ravl/fault"
)

// History - numbered snapshots, only the newest few are retained
type History[T any] struct {
	sync.Mutex
	cache      *cache.Cache
	generation uint64
	keep       uint64
}

// New - history retaining up to keep snapshots
//
// snapshots never expire by age, only by count
func New[T any](keep int) (*History[T], error) {
	return newHistory[T](keep, cache.NoExpiration)
}

// internal: the cache default expiration only matters to tests,
// every snapshot is stored without one
func newHistory[T any](keep int, expiration time.Duration) (*History[T], error) {
	if keep < 1 {
		return nil, fault.ErrInvalidCount
	}
	return &History[T]{
		cache: cache.New(expiration, expiration),
		keep:  uint64(keep),
	}, nil
}

func key(generation uint64) string {
	return strconv.FormatUint(generation, 10)
}

// Push - record a new snapshot, returns its generation number
//
// generations start at 1, the oldest is discarded once more than
// keep are held
func (h *History[T]) Push(tree *avl.Tree[T]) uint64 {
	h.Lock()
	defer h.Unlock()

	h.generation += 1
	h.cache.Set(key(h.generation), tree, cache.NoExpiration)
	if h.generation > h.keep {
		h.cache.Delete(key(h.generation - h.keep))
	}
	return h.generation
}

// Get - fetch a snapshot by generation
func (h *History[T]) Get(generation uint64) (*avl.Tree[T], bool) {
	obj, found := h.cache.Get(key(generation))
	if !found {
		return nil, false
	}
	return obj.(*avl.Tree[T]), true
}

// Latest - the newest snapshot and its generation
func (h *History[T]) Latest() (*avl.Tree[T], uint64, bool) {
	h.Lock()
	generation := h.generation
	h.Unlock()

	if 0 == generation {
		return nil, 0, false
	}
	tree, ok := h.Get(generation)
	return tree, generation, ok
}

// Count - number of snapshots currently held
func (h *History[T]) Count() int {
	return h.cache.ItemCount()
}

// Diff - values only in newer and values only in older
//
// both trees must use the same ordering; the result is in ascending
// order and is found with a single merge of the two sequences
func Diff[T any](older *avl.Tree[T], newer *avl.Tree[T]) (added []T, removed []T) {
	compare := newer.Comparator()

	nextOld, stopOld := iter.Pull(older.All())
	defer stopOld()
	nextNew, stopNew := iter.Pull(newer.All())
	defer stopNew()

	o, okOld := nextOld()
	n, okNew := nextNew()
	for okOld && okNew {
		c := compare(o, n)
		switch {
		case c < 0:
			removed = append(removed, o)
			o, okOld = nextOld()
		case c > 0:
			added = append(added, n)
			n, okNew = nextNew()
		default:
			o, okOld = nextOld()
			n, okNew = nextNew()
		}
	}
	for ; okOld; o, okOld = nextOld() {
		removed = append(removed, o)
	}
	for ; okNew; n, okNew = nextNew() {
		added = append(added, n)
	}
	return added, removed
}
