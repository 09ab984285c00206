// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/ravl/fault"
)

// Tree - one immutable version of a tree
type Tree[T any] struct {
	root     *Node[T]
	count    int
	compare  Comparator[T]
	observer Observer
}

// New - create an initially empty tree using the natural ordering
func New[T cmp.Ordered]() *Tree[T] {
	return NewWithComparator[T](DefaultCompare[T])
}

// NewWithComparator - create an initially empty tree with a specific
// ordering that is fixed for all versions derived from it
func NewWithComparator[T any](compare Comparator[T]) *Tree[T] {
	if nil == compare {
		fault.Panicf("avl.NewWithComparator: %s", fault.ErrNilComparator)
	}
	return &Tree[T]{
		root:    nil,
		count:   0,
		compare: compare,
	}
}

// From - create a tree with the natural ordering holding the values
func From[T cmp.Ordered](values ...T) *Tree[T] {
	return New[T]().AddAll(values...)
}

// internal: a new version sharing ordering and observer
func (tree *Tree[T]) derive(root *Node[T], count int) *Tree[T] {
	return &Tree[T]{
		root:     root,
		count:    count,
		compare:  tree.compare,
		observer: tree.observer,
	}
}

// WithObserver - same content reporting the steps of later changes
// to an observer, nil to stop reporting
func (tree *Tree[T]) WithObserver(observer Observer) *Tree[T] {
	t := tree.derive(tree.root, tree.count)
	t.observer = observer
	return t
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of values currently in the tree
func (tree *Tree[T]) Size() int {
	return tree.count
}

// Comparator - the ordering of this tree
func (tree *Tree[T]) Comparator() Comparator[T] {
	return tree.compare
}

// Root - return the root node of the tree, nil if empty
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Height - number of levels in the tree
func (tree *Tree[T]) Height() int {
	return tree.root.Height()
}

// internal: stack capacity for a descent
func (tree *Tree[T]) pathCapacity() int {
	return tree.Height() + 1
}
