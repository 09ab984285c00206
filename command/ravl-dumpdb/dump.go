// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/ravl/avl"
	"github.com/bitmark-inc/ravl/storage"
	"github.com/bitmark-inc/ravl/util"
)

// colours
const (
	keyColour1 = "\033[1;36m"
	keyColour2 = "\033[1;31m"
	valColour1 = "\033[1;33m"
	valColour2 = "\033[1;34m"
	endColour  = "\033[0m"
)

// dumper - output settings for records
type dumper struct {
	w      io.Writer
	colour bool
	ascii  bool
	golang bool
}

// elements - write every record of a tree in key order
func (d *dumper) elements(tree *avl.Tree[storage.Element]) {
	ck1 := ""
	ck2 := ""
	cv1 := ""
	cv2 := ""
	ce := ""
	if d.colour {
		ck1 = keyColour1
		ck2 = keyColour2
		cv1 = valColour1
		cv2 = valColour2
		ce = endColour
	}

	i := 0
	for e := range tree.All() {
		if d.golang {
			fmt.Fprintf(d.w, "%s\n", util.FormatBytes(fmt.Sprintf("key%d", i), e.Key))
			fmt.Fprintf(d.w, "%s\n", util.FormatBytes(fmt.Sprintf("value%d", i), e.Value))
			i += 1
			continue
		}
		fmt.Fprintf(d.w, "%d: %sKey: %s%x%s\n", i, ck1, ck2, e.Key, ce)
		if d.ascii {
			prefix := fmt.Sprintf("%d: %sVal: %s", i, cv1, cv2)
			hexDump(d.w, prefix, ce, e.Value)
		} else {
			fmt.Fprintf(d.w, "%d: %sVal: %s%x%s\n", i, cv1, cv2, e.Value, ce)
		}
		i += 1
	}
}

// dump hex data
func hexDump(w io.Writer, prefix string, suffix string, data []byte) {
	address := 0
	const bytesPerLine = 32
	for i := 0; i < len(data); i += bytesPerLine {
		fmt.Fprintf(w, "%s%04x  ", prefix, address)
		address += bytesPerLine
		for j := 0; j < bytesPerLine; j += 1 {
			if bytesPerLine/2 == j {
				fmt.Fprintf(w, " ")
			}
			if i+j < len(data) {
				fmt.Fprintf(w, "%02x ", data[i+j])
			} else {
				fmt.Fprintf(w, "   ")
			}
		}
		fmt.Fprintf(w, " |")
	ascii_loop:
		for j := 0; j < bytesPerLine; j += 1 {
			if i+j < len(data) {
				c := data[i+j]
				if c < 32 || c >= 127 {
					c = '.'
				}
				fmt.Fprintf(w, "%c", c)

			} else {
				break ascii_loop
			}
		}
		fmt.Fprintf(w, "|%s\n", suffix)
	}
}
