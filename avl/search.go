// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - the stored value equal to value
//
// returns false if there is no such value
func (tree *Tree[T]) Find(value T) (T, bool) {
	for p := tree.root; nil != p; {
		switch c := tree.compare(value, p.value); {
		case c < 0:
			p = p.child[left]
		case c > 0:
			p = p.child[right]
		default:
			return p.value, true
		}
	}
	var zero T
	return zero, false
}

// Has - true if a value equal to value is stored
func (tree *Tree[T]) Has(value T) bool {
	_, found := tree.Find(value)
	return found
}

// First - the lowest value in the tree
func (tree *Tree[T]) First() (T, bool) {
	return tree.root.extreme(left)
}

// Last - the highest value in the tree
func (tree *Tree[T]) Last() (T, bool) {
	return tree.root.extreme(right)
}

// internal: lowest (left) or highest (right) value in a sub-tree
func (p *Node[T]) extreme(d direction) (T, bool) {
	if nil == p {
		var zero T
		return zero, false
	}
	for nil != p.child[d] {
		p = p.child[d]
	}
	return p.value, true
}
