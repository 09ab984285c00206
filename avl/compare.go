// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Comparator - total order on values
//
// returns negative if a orders before b, positive if after and zero
// if they are equal.  Must be deterministic for the life of a tree
// and all of the versions derived from it.
type Comparator[T any] func(a T, b T) int

// Item - a key that knows its own ordering
type Item[T any] interface {
	Compare(T) int // for left/right ordering of items
}

// DefaultCompare - natural ordering of a value type
func DefaultCompare[T cmp.Ordered](a T, b T) int {
	if a < b {
		return -1
	}
	if b < a {
		return 1
	}
	return 0
}

// ItemCompare - ordering for types that implement Item
func ItemCompare[T Item[T]](a T, b T) int {
	return a.Compare(b)
}
