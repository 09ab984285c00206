// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print - display an ASCII graphic representation of the tree
//
// the right sub-tree is drawn above its parent so the picture reads
// as the tree rotated a quarter turn anticlockwise.  Returns the
// maximum depth of the tree.
func (tree *Tree[T]) Print(w io.Writer, printBalance bool) int {
	return printTree(w, tree.root, "", rootBranch, printBalance)
}

// internal print - returns the maximum depth of the sub-tree
func printTree[T any](w io.Writer, p *Node[T], prefix string, br branch, printBalance bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.child[right] {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = printTree(w, p.child[right], prefix+t, rightBranch, printBalance)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printBalance {
		fmt.Fprintf(w, "%v %+d\n", p.value, p.balance)
	} else {
		fmt.Fprintf(w, "%v\n", p.value)
	}
	if nil != p.child[left] {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = printTree(w, p.child[left], prefix+t, leftBranch, printBalance)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
