// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"encoding/hex"

	"github.com/bitmark-inc/ravl/avl"
)

// String - hex of the key, used when a tree of elements is printed
func (e Element) String() string {
	return hex.EncodeToString(e.Key)
}

// CompareElements - order elements by key bytes only
func CompareElements(a Element, b Element) int {
	return bytes.Compare(a.Key, b.Key)
}

// NewTree - empty tree of elements ordered by key
func NewTree() *avl.Tree[Element] {
	return avl.NewWithComparator(CompareElements)
}

// LoadTree - add every element in the cursor range to a tree
//
// the tree argument is not modified, the new version is returned
// together with the number of elements read
func LoadTree(tree *avl.Tree[Element], cursor *FetchCursor) (*avl.Tree[Element], int, error) {
	n := 0
	err := cursor.Map(func(key []byte, value []byte) error {
		tree = tree.Replace(Element{Key: key, Value: value})
		n += 1
		return nil
	})
	return tree, n, err
}

// LoadTreeLimited - add up to count elements from the cursor
func LoadTreeLimited(tree *avl.Tree[Element], cursor *FetchCursor, count int) (*avl.Tree[Element], int, error) {
	elements, err := cursor.Fetch(count)
	if nil != err {
		return tree, 0, err
	}
	for _, e := range elements {
		tree = tree.Replace(e)
	}
	return tree, len(elements), nil
}
