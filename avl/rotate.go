// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotateRight - lift the left child
//
//	    A              B
//	   / \            / \
//	  B   z   ==>    x   A
//	 / \                / \
//	x   y              y   z
//
// A and B are rebuilt; x, y and z are shared.  The new balance
// factors come only from the two old ones:
//
//	A' = A + 1 - min(B, 0)
//	B' = B + 1 + max(A', 0)
func rotateRight[T any](p *Node[T]) *Node[T] {
	b := p.child[left]

	balance := p.balance + 1
	if b.balance < 0 {
		balance -= b.balance
	}
	a := &Node[T]{
		child:   [2]*Node[T]{b.child[right], p.child[right]},
		value:   p.value,
		balance: balance,
	}

	balance = b.balance + 1
	if a.balance > 0 {
		balance += a.balance
	}
	return &Node[T]{
		child:   [2]*Node[T]{b.child[left], a},
		value:   b.value,
		balance: balance,
	}
}

// rotateLeft - lift the right child, mirror of rotateRight
//
//	  A                  B
//	 / \                / \
//	x   B     ==>      A   z
//	   / \            / \
//	  y   z          x   y
//
//	A' = A - 1 - max(B, 0)
//	B' = B - 1 + min(A', 0)
func rotateLeft[T any](p *Node[T]) *Node[T] {
	b := p.child[right]

	balance := p.balance - 1
	if b.balance > 0 {
		balance -= b.balance
	}
	a := &Node[T]{
		child:   [2]*Node[T]{p.child[left], b.child[left]},
		value:   p.value,
		balance: balance,
	}

	balance = b.balance - 1
	if a.balance < 0 {
		balance += a.balance
	}
	return &Node[T]{
		child:   [2]*Node[T]{a, b.child[right]},
		value:   b.value,
		balance: balance,
	}
}

// rebalance - restore a balance factor of ±2 with a single or double
// rotation
//
// returns the new sub-tree root and whether a rotation was done.
// After an insert a rotation always absorbs the height increase.
// After a delete the sub-tree is one shorter unless the new root is
// left with a balance factor of ±1, the caller decides by looking at
// the returned node.
func rebalance[T any](p *Node[T]) (*Node[T], bool) {
	switch {
	case p.balance < -1: // left heavy
		if 1 == p.child[left].balance {
			p = p.with(left, rotateLeft(p.child[left]))
		}
		return rotateRight(p), true

	case p.balance > 1: // right heavy
		if -1 == p.child[right].balance {
			p = p.with(right, rotateRight(p.child[right]))
		}
		return rotateLeft(p), true
	}
	return p, false
}
