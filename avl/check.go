// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math"

	"github.com/bitmark-inc/ravl/fault"
)

// Check - verify ordering, balance factors and size
//
// heights are recomputed from scratch so this is O(n)
func (tree *Tree[T]) Check() error {
	n, _, err := check(tree.compare, tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrSizeMismatch
	}
	return nil
}

// internal: consistency checker, returns node count and height
//
// lower and upper are the exclusive bounds imposed by the ancestors
func check[T any](compare Comparator[T], p *Node[T], lower *T, upper *T) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if nil != lower && compare(*lower, p.value) >= 0 {
		return 0, 0, fault.ErrOrder
	}
	if nil != upper && compare(p.value, *upper) >= 0 {
		return 0, 0, fault.ErrOrder
	}
	ln, lh, err := check(compare, p.child[left], lower, &p.value)
	if nil != err {
		return 0, 0, err
	}
	rn, rh, err := check(compare, p.child[right], &p.value, upper)
	if nil != err {
		return 0, 0, err
	}
	if rh-lh != p.balance {
		return 0, 0, fault.ErrBalanceFactor
	}
	if p.balance < -1 || p.balance > 1 {
		return 0, 0, fault.ErrUnbalanced
	}
	h := lh
	if rh > h {
		h = rh
	}
	return 1 + ln + rn, 1 + h, nil
}

// MaxHeight - the greatest height an AVL tree of size values can have
//
// ⌈1.44·log2(size + 2)⌉
func MaxHeight(size int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(size)+2)))
}
