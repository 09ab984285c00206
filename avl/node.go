// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// which child of a node
type direction int

const (
	left  direction = 0
	right direction = 1
)

// the other child
func (d direction) opposite() direction {
	return 1 - d
}

// the balance factor change when the sub-tree on this side grows by one
func (d direction) sign() int {
	if left == d {
		return -1
	}
	return +1
}

// Node - a node in the tree
//
// once a node is reachable from a published tree it is never
// modified, so it may be shared by any number of tree versions
type Node[T any] struct {
	child   [2]*Node[T] // left and right sub-trees
	value   T           // ordered by the tree's comparator
	balance int         // height(right) - height(left): -1, 0, +1
}

// a new leaf
func newLeaf[T any](value T) *Node[T] {
	return &Node[T]{
		value: value,
	}
}

// internal: shallow copy of a node with one child replaced
func (p *Node[T]) with(d direction, child *Node[T]) *Node[T] {
	n := *p
	n.child[d] = child
	return &n
}

// Value - read the value from a node
func (p *Node[T]) Value() T {
	return p.value
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node[T]) Balance() int {
	return p.balance
}

// Left - the left sub-tree or nil
func (p *Node[T]) Left() *Node[T] {
	return p.child[left]
}

// Right - the right sub-tree or nil
func (p *Node[T]) Right() *Node[T] {
	return p.child[right]
}

// Height - number of levels in the sub-tree rooted at this node
//
// follows the taller side as given by the balance factors so it is
// O(log n) for a well formed tree
func (p *Node[T]) Height() int {
	h := 0
	for p != nil {
		h += 1
		if p.balance < 0 {
			p = p.child[left]
		} else {
			p = p.child[right]
		}
	}
	return h
}

// GetChildrenByDepth - returns all nodes at a specific depth below this node
func (p *Node[T]) GetChildrenByDepth(depth uint) []*Node[T] {
	if nil == p {
		return nil
	}
	if 0 == depth {
		return []*Node[T]{p}
	}
	nodes := []*Node[T]{}
	for _, c := range p.child {
		if nil != c {
			nodes = append(nodes, c.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}
