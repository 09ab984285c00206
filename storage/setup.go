// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/ravl/fault"
)

// access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Handle - an open database
type Handle struct {
	sync.RWMutex
	database *leveldb.DB
	readOnly bool
}

// Element - a binary key/value pair
type Element struct {
	Key   []byte
	Value []byte
}

// Open - open a database
//
// a read only database must already exist
func Open(name string, readOnly bool) (*Handle, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	return &Handle{
		database: db,
		readOnly: readOnly,
	}, nil
}

// Close - close the database, the handle cannot be used afterwards
func (h *Handle) Close() error {
	h.Lock()
	defer h.Unlock()
	if nil == h.database {
		return fault.ErrNotInitialised
	}
	err := h.database.Close()
	h.database = nil
	return err
}

// Put - store a set of elements under a prefix in one batch
func (h *Handle) Put(prefix []byte, elements ...Element) error {
	h.RLock()
	defer h.RUnlock()
	if nil == h.database {
		return fault.ErrNotInitialised
	}
	if h.readOnly {
		return fault.ErrReadOnly
	}

	batch := new(leveldb.Batch)
	for _, e := range elements {
		batch.Put(prefixKey(prefix, e.Key), e.Value)
	}
	return h.database.Write(batch, nil)
}

// Delete - remove keys under a prefix in one batch
func (h *Handle) Delete(prefix []byte, keys ...[]byte) error {
	h.RLock()
	defer h.RUnlock()
	if nil == h.database {
		return fault.ErrNotInitialised
	}
	if h.readOnly {
		return fault.ErrReadOnly
	}

	batch := new(leveldb.Batch)
	for _, key := range keys {
		batch.Delete(prefixKey(prefix, key))
	}
	return h.database.Write(batch, nil)
}

// Get - read a value, nil if the key is not present
func (h *Handle) Get(prefix []byte, key []byte) ([]byte, error) {
	h.RLock()
	defer h.RUnlock()
	if nil == h.database {
		return nil, fault.ErrNotInitialised
	}
	value, err := h.database.Get(prefixKey(prefix, key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// prepend the prefix onto the key
func prefixKey(prefix []byte, key []byte) []byte {
	prefixedKey := make([]byte, len(prefix), len(prefix)+len(key))
	copy(prefixedKey, prefix)
	return append(prefixedKey, key...)
}
