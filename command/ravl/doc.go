// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// ravl - build, inspect and watch persistent AVL trees
//
// Input files hold one value per line; blank lines and lines
// starting with "#" are skipped.  Values are ordered as strings or
// as integers depending on the "comparator" configuration setting.
//
//	ravl build values.txt
//	ravl --config=ravl.conf print
//	ravl remove --value=42 values.txt
//	ravl watch values.txt
package main
