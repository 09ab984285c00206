// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - new version of the tree without value
//
// if value is not present the receiver is returned
func (tree *Tree[T]) Remove(value T) *Tree[T] {
	_, _, t := tree.Take(value)
	return t
}

// Take - remove value returning the stored value that was removed
// and the new version of the tree
//
// if value is not present returns the zero value, false and the receiver
func (tree *Tree[T]) Take(value T) (T, bool, *Tree[T]) {
	var zero T
	if nil == tree.root {
		return zero, false, tree
	}

	stack := newPath[T](tree.observer, tree.pathCapacity())

	p := tree.root
	for {
		if nil == p { // value not in tree
			return zero, false, tree
		}
		c := tree.compare(value, p.value)
		if 0 == c {
			break
		}
		d := right
		if c < 0 {
			d = left
		}
		stack.push(d, p)
		p = p.child[d]
	}

	stack.notify(EventDelete, p)

	replacement, settled := stack.replace(p)
	root, _ := stack.unwind(replacement, settled, shrunk)
	return p.value, true, tree.derive(root, tree.count-1)
}

// DeleteMin - remove the lowest value
func (tree *Tree[T]) DeleteMin() (T, bool, *Tree[T]) {
	return tree.deleteExtreme(left)
}

// DeleteMax - remove the highest value
func (tree *Tree[T]) DeleteMax() (T, bool, *Tree[T]) {
	return tree.deleteExtreme(right)
}

// internal: remove the lowest or highest value
func (tree *Tree[T]) deleteExtreme(d direction) (T, bool, *Tree[T]) {
	if nil == tree.root {
		var zero T
		return zero, false, tree
	}
	stack := newPath[T](tree.observer, tree.pathCapacity())
	value, root, _ := stack.removeExtreme(tree.root, d)
	return value, true, tree.derive(root, tree.count-1)
}

// replace - the sub-tree that takes the place of a deleted node
//
// returns the new sub-tree and whether its height is unchanged
func (p *path[T]) replace(q *Node[T]) (*Node[T], bool) {
	switch {
	case nil == q.child[left]:
		return q.child[right], false
	case nil == q.child[right]:
		return q.child[left], false
	}

	// two children: pull the nearest value from the taller side,
	// or from the left when they are equal
	d := left
	if q.balance > 0 {
		d = right
	}

	extra := p.below()
	value, sub, settled := extra.removeExtreme(q.child[d], d.opposite())

	r := &Node[T]{
		value:   value,
		balance: q.balance,
	}
	r.child[d] = sub
	r.child[d.opposite()] = q.child[d.opposite()]
	if settled {
		return r, true
	}

	// d side is one shorter, q was not heavier on the other side so
	// the result is within range
	r.balance += shrunk.delta(d)
	return r, shrunk.absorbed(r.balance)
}

// removeExtreme - remove the node furthest in direction d from the
// sub-tree rooted at n, "shift" for the minimum and "pop" for the
// maximum
//
// returns the removed value, the new sub-tree and whether its
// height is unchanged
func (p *path[T]) removeExtreme(n *Node[T], d direction) (T, *Node[T], bool) {
	for nil != n.child[d] {
		p.push(d, n)
		n = n.child[d]
	}
	p.notify(EventExtreme, n)

	// an extreme node has at most one child, on the opposite side
	sub, settled := p.unwind(n.child[d.opposite()], false, shrunk)
	return n.value, sub, settled
}
