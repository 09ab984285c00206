// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ravl/avl"
	"github.com/bitmark-inc/ravl/counter"
)

// all event kinds in display order
var eventKinds = []avl.EventKind{
	avl.EventInsert,
	avl.EventDelete,
	avl.EventExtreme,
	avl.EventRebalance,
	avl.EventSettle,
}

// statistics - count the steps taken by tree changes
type statistics struct {
	counts map[avl.EventKind]*counter.Counter
	next   avl.Observer
}

// newStatistics - counting observer that also forwards each event
// to next if that is not nil
func newStatistics(next avl.Observer) *statistics {
	s := &statistics{
		counts: make(map[avl.EventKind]*counter.Counter, len(eventKinds)),
		next:   next,
	}
	for _, k := range eventKinds {
		s.counts[k] = new(counter.Counter)
	}
	return s
}

func (s *statistics) Observe(e avl.Event) {
	if c, ok := s.counts[e.Kind]; ok {
		c.Increment()
	}
	if nil != s.next {
		s.next.Observe(e)
	}
}

func (s *statistics) count(k avl.EventKind) uint64 {
	c, ok := s.counts[k]
	if !ok {
		return 0
	}
	return c.Uint64()
}

// write counts as a single line
func (s *statistics) print(w io.Writer) {
	fmt.Fprintf(w, "events:")
	for _, k := range eventKinds {
		fmt.Fprintf(w, " %s: %d", k, s.count(k))
	}
	fmt.Fprintf(w, "\n")
}

// reset all counts, returning the previous values
func (s *statistics) reset() map[avl.EventKind]uint64 {
	previous := make(map[avl.EventKind]uint64, len(eventKinds))
	for _, k := range eventKinds {
		previous[k] = s.counts[k].Reset()
	}
	return previous
}

// reporter - background process that logs and clears the counts
// at a fixed interval
type reporter struct {
	log      *logger.L
	stats    *statistics
	interval time.Duration
}

func (r *reporter) Run(args interface{}, shutdown <-chan struct{}) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.log.Info("starting…")
loop:
	for {
		select {
		case <-ticker.C:
			r.report()
		case <-shutdown:
			break loop
		}
	}
	r.report()
	r.log.Info("stopped")
}

func (r *reporter) report() {
	previous := r.stats.reset()
	r.log.Infof("inserts: %d  deletes: %d  rotations: %d",
		previous[avl.EventInsert],
		previous[avl.EventDelete],
		previous[avl.EventRebalance],
	)
}
