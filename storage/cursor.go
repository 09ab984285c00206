// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/ravl/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	handle   *Handle
	prefix   []byte
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of a key range
func (h *Handle) NewFetchCursor(prefix []byte) *FetchCursor {
	p := make([]byte, len(prefix))
	copy(p, prefix)
	return &FetchCursor{
		handle:   h,
		prefix:   p,
		maxRange: *util.BytesPrefix(p),
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = prefixKey(cursor.prefix, key)
	return cursor
}

// Fetch - return some elements starting from the cursor and advance
// past the last one returned
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.iterate(func(key []byte, value []byte) error {
		results = append(results, Element{
			Key:   key,
			Value: value,
		})
		if len(results) >= count {
			return errStop
		}
		return nil
	})

	if n := len(results); n > 0 {
		// smallest key greater than the last one
		last := prefixKey(cursor.prefix, results[n-1].Key)
		cursor.maxRange.Start = append(last, 0)
	}
	return results, err
}

// Map - run a function on all elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}
	return cursor.iterate(f)
}

// internal marker to end an iteration early without error
type stopError struct{}

func (stopError) Error() string { return "stop" }

var errStop error = stopError{}

func (cursor *FetchCursor) iterate(f func(key []byte, value []byte) error) error {
	cursor.handle.RLock()
	defer cursor.handle.RUnlock()

	if nil == cursor.handle.database {
		return fault.ErrNotInitialised
	}

	iter := cursor.handle.database.NewIterator(&cursor.maxRange, nil)

	var err error
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-len(cursor.prefix)) // strip the prefix
		copy(dataKey, key[len(cursor.prefix):])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		err = f(dataKey, dataValue)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if errStop == err {
		err = nil
	}
	if nil == err {
		err = iter.Error()
	}
	return err
}
