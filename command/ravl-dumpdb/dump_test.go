// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ravl/storage"
)

func testTree() []storage.Element {
	return []storage.Element{
		{Key: []byte{0x02}, Value: []byte("two")},
		{Key: []byte{0x01}, Value: []byte("one")},
	}
}

func TestDumpInKeyOrder(t *testing.T) {
	tree := storage.NewTree().AddAll(testTree()...)

	buffer := &bytes.Buffer{}
	d := &dumper{w: buffer}
	d.elements(tree)

	expected := "0: Key: 01\n" +
		"0: Val: 6f6e65\n" +
		"1: Key: 02\n" +
		"1: Val: 74776f\n"
	assert.Equal(t, expected, buffer.String())
}

func TestDumpGo(t *testing.T) {
	tree := storage.NewTree().AddAll(testTree()...)

	buffer := &bytes.Buffer{}
	d := &dumper{w: buffer, golang: true}
	d.elements(tree)

	assert.True(t, strings.HasPrefix(buffer.String(), "key0 := []byte{\n\t0x01, \n}\n"), "go output: %q", buffer.String())
}

func TestHexDump(t *testing.T) {
	buffer := &bytes.Buffer{}
	hexDump(buffer, "> ", "", []byte("AB\x00"))

	line := buffer.String()
	assert.True(t, strings.HasPrefix(line, "> 0000  41 42 00 "), "hex: %q", line)
	assert.True(t, strings.HasSuffix(line, " |AB.|\n"), "ascii: %q", line)
}
