// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ravl/configuration"
	"github.com/bitmark-inc/ravl/fault"
)

func texts(values []value) []string {
	s := make([]string, 0, len(values))
	for _, v := range values {
		s = append(s, v.text)
	}
	return s
}

func TestParserOrdering(t *testing.T) {
	input := "10\n9\n# comment\n\n  100 \n-3\n010\n"

	p, err := newParser(configuration.ComparatorString)
	assert.Nil(t, err, "string parser")
	values, err := p.read(strings.NewReader(input))
	assert.Nil(t, err, "string read")
	tree := p.newTree().AddAll(values...)
	assert.Equal(t, []string{"-3", "010", "10", "100", "9"}, texts(tree.Values()), "string order")

	p, err = newParser(configuration.ComparatorInteger)
	assert.Nil(t, err, "integer parser")
	values, err = p.read(strings.NewReader(input))
	assert.Nil(t, err, "integer read")
	tree = p.newTree().AddAll(values...)

	// "010" and "10" are the same integer
	assert.Equal(t, []string{"-3", "9", "10", "100"}, texts(tree.Values()), "integer order")
}

func TestParserErrors(t *testing.T) {
	_, err := newParser("float")
	assert.Equal(t, fault.ErrInvalidComparator, err, "unknown comparator")

	p, _ := newParser(configuration.ComparatorInteger)
	_, err = p.read(strings.NewReader("1\ntwo\n"))
	assert.NotNil(t, err, "not an integer")

	_, err = p.build(p.newTree())
	assert.Equal(t, fault.ErrMissingInput, err, "no files")

	_, err = p.build(p.newTree(), "/no/such/file")
	assert.NotNil(t, err, "missing file")
}

func TestBuildFromFiles(t *testing.T) {
	dir1, file1 := writeInput(t, "c\na\nb\n")
	defer os.RemoveAll(dir1)
	dir2, file2 := writeInput(t, "b\nd\n")
	defer os.RemoveAll(dir2)

	p, _ := newParser(configuration.ComparatorString)
	tree, err := p.build(p.newTree(), file1, file2)
	assert.Nil(t, err, "build")
	assert.Equal(t, []string{"a", "b", "c", "d"}, texts(tree.Values()), "merged")
	assert.Nil(t, tree.Check(), "check")

	buffer := &bytes.Buffer{}
	tree.Print(buffer, false)
	assert.Contains(t, buffer.String(), "+ b\n", "printed with String")
}

func TestDatabaseKeyOrder(t *testing.T) {
	p, _ := newParser(configuration.ComparatorInteger)
	values, err := p.read(strings.NewReader("5\n-1\n0\n-9223372036854775808\n9223372036854775807\n300\n"))
	if !assert.Nil(t, err, "read") {
		return
	}

	tree := p.newTree().AddAll(values...)
	elements := p.elements(tree.Values())

	assert.True(t, sort.SliceIsSorted(elements, func(i, j int) bool {
		return bytes.Compare(elements[i].Key, elements[j].Key) < 0
	}), "keys sort like values")

	for i, e := range elements {
		assert.Equal(t, 8, len(e.Key), "key %d length", i)
	}

	s, _ := newParser(configuration.ComparatorString)
	assert.Equal(t, []byte("abc"), s.databaseKey(value{text: "abc"}), "string key")
}
