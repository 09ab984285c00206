// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/logger"
)

// EventKind - the step of an operation being reported
type EventKind int

// kinds of event
const (
	EventInsert    EventKind = iota // new leaf created
	EventDelete                     // value removed from its node
	EventExtreme                    // minimum or maximum pulled up to replace a deleted node
	EventRebalance                  // rotation done at a node
	EventSettle                     // height change absorbed, balance factors above are unchanged
)

// String - name of the event kind
func (k EventKind) String() string {
	switch k {
	case EventInsert:
		return "insert"
	case EventDelete:
		return "delete"
	case EventExtreme:
		return "extreme"
	case EventRebalance:
		return "rebalance"
	case EventSettle:
		return "settle"
	default:
		return "unknown"
	}
}

// Event - a copy of the state at one step of an insert or delete
type Event struct {
	Kind    EventKind
	Value   interface{} // value of the node concerned
	Balance int         // balance factor after the step
	Depth   int         // distance from the root
}

//go:generate mockgen -destination=mocks/observer.go -package=mocks github.com/bitmark-inc/ravl/avl Observer

// Observer - diagnostic hook called during insert and delete
//
// it only ever receives copies, so it cannot influence the result
type Observer interface {
	Observe(Event)
}

// LogObserver - write every event to a logger channel at debug level
type LogObserver struct {
	log *logger.L
}

// NewLogObserver - observer for a logger channel
func NewLogObserver(log *logger.L) *LogObserver {
	return &LogObserver{
		log: log,
	}
}

// Observe - implement Observer
func (o *LogObserver) Observe(e Event) {
	o.log.Debugf("%s: value: %v  balance: %+d  depth: %d", e.Kind, e.Value, e.Balance, e.Depth)
}
