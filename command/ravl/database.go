// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/bitmark-inc/ravl/fault"
	"github.com/bitmark-inc/ravl/storage"
)

// databaseKey - key bytes that sort in the same order as the values
//
// integers are big endian with the sign bit flipped
func (p *parser) databaseKey(v value) []byte {
	if !p.integer {
		return []byte(v.text)
	}
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(v.number)^(1<<63))
	return key
}

// elements - database records for a list of values, the text is
// kept as the record data
func (p *parser) elements(values []value) []storage.Element {
	elements := make([]storage.Element, 0, len(values))
	for _, v := range values {
		elements = append(elements, storage.Element{
			Key:   p.databaseKey(v),
			Value: []byte(v.text),
		})
	}
	return elements
}

// databasePrefix - decode the configured hex key prefix
func databasePrefix(m *metadata) ([]byte, error) {
	prefix, err := hex.DecodeString(m.config.Database.Prefix)
	if nil != err {
		return nil, fault.ErrInvalidPrefix
	}
	return prefix, nil
}
