// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// how a sub-tree height changed at the bottom of a path
type change int

const (
	grown  change = iota // insert: sub-tree is one taller
	shrunk               // delete: sub-tree is one shorter
)

// balance factor adjustment on a parent whose d side changed
func (c change) delta(d direction) int {
	if grown == c {
		return d.sign()
	}
	return -d.sign()
}

// whether the parent's own height is unchanged given its new balance
//
// after growth a balance of 0 means the shorter side caught up; after
// shrinking a balance of ±1 means the taller side is still there.
// A rotation after an insert always leaves 0.
func (c change) absorbed(balance int) bool {
	if grown == c {
		return 0 == balance
	}
	return 0 != balance
}

// one level of the descent: the node and which child was followed
type step[T any] struct {
	dir  direction
	node *Node[T]
}

// path - the ancestors visited on the way down from a root
//
// base is the depth of the first node on the path, non-zero when
// the path starts part way down
type path[T any] struct {
	steps    []step[T]
	base     int
	observer Observer
}

func newPath[T any](observer Observer, capacity int) *path[T] {
	return &path[T]{
		steps:    make([]step[T], 0, capacity),
		observer: observer,
	}
}

// a path continuing below the current bottom of p through its child
func (p *path[T]) below() *path[T] {
	return &path[T]{
		steps:    make([]step[T], 0, cap(p.steps)-len(p.steps)),
		base:     p.base + len(p.steps) + 1,
		observer: p.observer,
	}
}

func (p *path[T]) push(d direction, node *Node[T]) {
	p.steps = append(p.steps, step[T]{dir: d, node: node})
}

func (p *path[T]) empty() bool {
	return 0 == len(p.steps)
}

func (p *path[T]) depth() int {
	return len(p.steps)
}

func (p *path[T]) notify(kind EventKind, n *Node[T]) {
	if nil == p.observer || nil == n {
		return
	}
	p.observer.Observe(Event{
		Kind:    kind,
		Value:   n.value,
		Balance: n.balance,
		Depth:   p.base + len(p.steps),
	})
}

// unwind - rebuild every ancestor on the path above child
//
// each ancestor is copied with the new child attached.  While the
// height change c has not been absorbed (settled is false) the copy's
// balance factor is adjusted and rotated back into range if needed;
// after that the remaining ancestors are only relinked.  Returns the
// new root and whether the change was absorbed below it.
func (p *path[T]) unwind(child *Node[T], settled bool, c change) (*Node[T], bool) {
	for !p.empty() {
		last := len(p.steps) - 1
		s := p.steps[last]
		p.steps = p.steps[:last]

		n := s.node.with(s.dir, child)
		if !settled {
			n.balance += c.delta(s.dir)
			rotated := false
			n, rotated = rebalance(n)
			if rotated {
				p.notify(EventRebalance, n)
			}
			settled = c.absorbed(n.balance)
			if settled {
				p.notify(EventSettle, n)
			}
		}
		child = n
	}
	return child, settled
}
