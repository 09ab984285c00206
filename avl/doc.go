// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a persistent (immutable) AVL balanced tree
//
// Every operation that changes the tree returns a new *Tree and
// leaves the receiver untouched. Unchanged sub-trees are shared
// between the old and new versions, so a change only allocates the
// nodes on the path from the root to the point of change.
//
// Since a published node is never written to, any number of go
// routines may read the same or different versions of a tree without
// locking.  Building a sequence of versions is the caller's business:
// keep the latest *Tree under a mutex or in a single go routine.
//
// Nodes do not store heights or parent pointers; only the balance
// factor height(right) - height(left) is kept.  Insert and delete
// record the descent on an explicit path stack and rebuild the
// ancestors bottom up, stopping the balance factor arithmetic as soon
// as the height change of a sub-tree has been absorbed.
package avl
