// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrBalanceFactor           = RecordError("balance factor does not match subtree heights")
	ErrConfigDirPath           = InvalidError("config is not a folder")
	ErrInvalidComparator       = InvalidError("invalid comparator")
	ErrInvalidConfiguration    = InvalidError("configuration must return a table")
	ErrInvalidCount            = InvalidError("invalid count")
	ErrInvalidCursor           = InvalidError("invalid cursor")
	ErrInvalidDataDirectory    = InvalidError("invalid data directory")
	ErrInvalidPrefix           = LengthError("invalid prefix")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrMissingInput            = NotFoundError("missing input")
	ErrNilComparator           = InvalidError("nil comparator")
	ErrNotAPlainFileName       = InvalidError("not a plain file name")
	ErrNotFoundConfigFile      = NotFoundError("config file is not found")
	ErrNotInitialised          = NotFoundError("not initialised")
	ErrOrder                   = RecordError("values are not in comparator order")
	ErrReadOnly                = ProcessError("database is read only")
	ErrSizeMismatch            = RecordError("size does not match number of nodes")
	ErrUnbalanced              = RecordError("balance factor outside -1..+1")
	ErrValueNotFound           = NotFoundError("value not found")
	ErrWatchTargetDoesNotExist = NotFoundError("watch target does not exist")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
