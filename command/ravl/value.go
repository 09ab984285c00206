// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/ravl/avl"
	"github.com/bitmark-inc/ravl/configuration"
	"github.com/bitmark-inc/ravl/fault"
)

// value - one line of input
//
// number is only meaningful under the integer ordering
type value struct {
	text   string
	number int64
}

func (v value) String() string {
	return v.text
}

func compareText(a value, b value) int {
	return strings.Compare(a.text, b.text)
}

func compareNumber(a value, b value) int {
	return avl.DefaultCompare(a.number, b.number)
}

// parser - turns lines into values for one ordering
type parser struct {
	integer bool
	compare avl.Comparator[value]
}

func newParser(comparator string) (*parser, error) {
	switch comparator {
	case configuration.ComparatorString:
		return &parser{compare: compareText}, nil
	case configuration.ComparatorInteger:
		return &parser{integer: true, compare: compareNumber}, nil
	default:
		return nil, fault.ErrInvalidComparator
	}
}

// empty tree with the parser's ordering
func (p *parser) newTree() *avl.Tree[value] {
	return avl.NewWithComparator(p.compare)
}

func (p *parser) parse(s string) (value, error) {
	s = strings.TrimSpace(s)
	if !p.integer {
		return value{text: s}, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if nil != err {
		return value{}, err
	}
	return value{text: strconv.FormatInt(n, 10), number: n}, nil
}

// read all values from a stream
func (p *parser) read(r io.Reader) ([]value, error) {
	values := []value{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := p.parse(line)
		if nil != err {
			return nil, err
		}
		values = append(values, v)
	}
	return values, scanner.Err()
}

// readFile - values from a named file
func (p *parser) readFile(name string) ([]value, error) {
	f, err := os.Open(name)
	if nil != err {
		return nil, err
	}
	defer f.Close()
	return p.read(f)
}

// build - add the values of each file in turn to tree
func (p *parser) build(tree *avl.Tree[value], files ...string) (*avl.Tree[value], error) {
	if 0 == len(files) {
		return nil, fault.ErrMissingInput
	}
	for _, name := range files {
		values, err := p.readFile(name)
		if nil != err {
			return nil, err
		}
		tree = tree.AddAll(values...)
	}
	return tree, nil
}
