// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ravl/background"
	"github.com/bitmark-inc/ravl/history"
)

const (
	defaultReportInterval = time.Minute
)

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	files := inputFiles(c, m)
	if 1 != len(files) {
		return fmt.Errorf("watch needs exactly one file, not: %d", len(files))
	}
	file := files[0]

	interval := c.Duration("interval")
	if interval <= 0 {
		interval = defaultReportInterval
	}

	h, err := history.New[value](m.config.History)
	if nil != err {
		return err
	}

	channel := newWatcherChannel()
	log := logger.New(watcherLoggerPrefix)

	watcher, err := newFileWatcher(file, log, channel)
	if nil != err {
		return err
	}

	r := &rebuilder{
		log:      log,
		parser:   m.parser,
		file:     file,
		observer: m.stats,
		history:  h,
		channel:  channel,
	}

	// first snapshot before any change is seen
	if _, err := r.rebuild(); nil != err {
		watcher.watcher.Close()
		return err
	}

	processes := background.Processes{
		watcher,
		r,
		&reporter{
			log:      logger.New("stats"),
			stats:    m.stats,
			interval: interval,
		},
	}
	bg := background.Start(processes, nil)

	fmt.Fprintf(m.w, "watching: %s  (interrupt to stop)\n", file)

	// wait for termination
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	m.log.Infof("received signal: %v", sig)

	bg.Stop()

	if tree, generation, ok := h.Latest(); ok {
		fmt.Fprintf(m.w, "generation: %d\n", generation)
		return report(m.w, tree, m)
	}
	return nil
}
