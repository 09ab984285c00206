// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - load the keys of a LevelDB database into trees
//
// A database is opened read only for inspection or read/write when
// values are being saved.  Keys are grouped by an optional byte
// prefix:
//
//	prefix ++ key  →  value
//
// Notes:
// 1. ++ = concatenation of byte data
// 2. the prefix is stripped from every key returned by a cursor
// 3. an empty prefix selects the whole database
package storage
