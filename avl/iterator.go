// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// All - the values in ascending order
//
// the sequence may be ranged over any number of times and always
// yields this version's values, whatever changes are made later
func (tree *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		tree.Traverse(yield)
	}
}

// Traverse - call f on each value in ascending order until f
// returns false
func (tree *Tree[T]) Traverse(f func(T) bool) {
	stack := make([]*Node[T], 0, tree.Height())
	p := tree.root
	for nil != p || len(stack) > 0 {
		for ; nil != p; p = p.child[left] {
			stack = append(stack, p)
		}
		p, stack = stack[len(stack)-1], stack[:len(stack)-1]
		if !f(p.value) {
			return
		}
		p = p.child[right]
	}
}

// Values - a slice of all the values in ascending order
func (tree *Tree[T]) Values() []T {
	values := make([]T, 0, tree.count)
	tree.Traverse(func(v T) bool {
		values = append(values, v)
		return true
	})
	return values
}
