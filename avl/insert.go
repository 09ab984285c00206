// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Add - new version of the tree that also holds value
//
// if an equal value is already present the receiver is returned
func (tree *Tree[T]) Add(value T) *Tree[T] {
	t, _ := tree.insert(value, false)
	return t
}

// AddAll - add each value in turn
func (tree *Tree[T]) AddAll(values ...T) *Tree[T] {
	for _, v := range values {
		tree = tree.Add(v)
	}
	return tree
}

// Insert - like Add, also reporting whether value was added
func (tree *Tree[T]) Insert(value T) (*Tree[T], bool) {
	return tree.insert(value, false)
}

// Replace - like Add, but an equal value already present is
// overwritten by value; shape and size do not change in that case
func (tree *Tree[T]) Replace(value T) *Tree[T] {
	t, _ := tree.insert(value, true)
	return t
}

// internal routine for insert
func (tree *Tree[T]) insert(value T, overwrite bool) (*Tree[T], bool) {
	if nil == tree.root {
		leaf := newLeaf(value)
		if nil != tree.observer {
			tree.observer.Observe(Event{Kind: EventInsert, Value: value})
		}
		return tree.derive(leaf, 1), true
	}

	stack := newPath[T](tree.observer, tree.pathCapacity())

	p := tree.root
	for nil != p {
		c := tree.compare(value, p.value)
		if 0 == c {
			if !overwrite {
				return tree, false
			}
			// same position and balance, relink the ancestors only
			n := *p
			n.value = value
			root, _ := stack.unwind(&n, true, grown)
			return tree.derive(root, tree.count), false
		}
		d := right
		if c < 0 {
			d = left
		}
		stack.push(d, p)
		p = p.child[d]
	}

	leaf := newLeaf(value)
	stack.notify(EventInsert, leaf)

	root, _ := stack.unwind(leaf, false, grown)
	return tree.derive(root, tree.count+1), true
}
