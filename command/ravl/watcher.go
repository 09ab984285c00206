// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/ravl/fault"
	"github.com/bitmark-inc/ravl/util"
)

const (
	watcherLoggerPrefix = "watch"
)

// watcherChannel - notifications from a file watcher
//
// both channels are buffered with size 1 so bursts of events
// collapse into one
type watcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newWatcherChannel() watcherChannel {
	return watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

// fileWatcher - report writes to a single file
//
// the parent directory is watched so that editors replacing the
// file by rename are still seen as a change
type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	channel  watcherChannel
	filePath string
}

func newFileWatcher(targetFile string, log *logger.L, channel watcherChannel) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if !util.EnsureFileExists(filePath) {
		return nil, fault.ErrWatchTargetDoesNotExist
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(filePath)); nil != err {
		watcher.Close()
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		channel:  channel,
		filePath: filePath,
	}, nil
}

// Run - forward file events until shutdown
func (w *fileWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	w.log.Infof("watching: %s", w.filePath)
loop:
	for {
		select {
		case <-shutdown:
			break loop

		case err := <-w.watcher.Errors:
			w.log.Errorf("watcher error: %s", err)

		case event := <-w.watcher.Events:
			w.log.Debugf("file event: %v", event)

			if filepath.Clean(event.Name) != w.filePath {
				continue loop
			}

			switch {
			case watcherEventFileRemove(event):
				w.log.Warnf("file %s removed", w.filePath)
				w.sendEvent(w.channel.remove, "remove")

			case watcherEventFileChange(event):
				w.sendEvent(w.channel.change, "change")
			}
		}
	}
	w.log.Info("stopped")
}

func (w *fileWatcher) isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

func (w *fileWatcher) sendEvent(ch chan<- struct{}, name string) {
	if !w.isChannelFull(ch) {
		ch <- struct{}{}
	} else {
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

// a rename away counts as removal unless the file is recreated
func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
