// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// ravl-dumpdb - load the keys of a LevelDB database into a tree and
// show them in order
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ravl/avl"
	"github.com/bitmark-inc/ravl/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "colour", HasArg: getoptions.NO_ARGUMENT, Short: 'g'},
		{Long: "ascii", HasArg: getoptions.NO_ARGUMENT, Short: 'a'},
		{Long: "go", HasArg: getoptions.NO_ARGUMENT, Short: 'G'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "balance", HasArg: getoptions.NO_ARGUMENT, Short: 'b'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 1 != len(options["file"]) || len(arguments) > 1 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--colour] [--ascii|--go] [--print [--balance]] [--count=N] --file=FILE [hex-key-prefix]", program)
	}

	verbose := len(options["verbose"]) > 0

	count := 0 // all
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		if count < 1 {
			exitwithstatus.Message("%s: invalid count: %d", program, count)
		}
	}

	filename := options["file"][0]

	prefix := []byte(nil)
	if len(arguments) > 0 {
		prefix, err = hex.DecodeString(arguments[0])
		if nil != err {
			exitwithstatus.Message("%s: convert prefix error: %s", program, err)
		}
	}
	if verbose {
		fmt.Printf("read prefix: %x from file: %q\n", prefix, filename)
	}

	logging := logger.Configuration{
		Directory: ".",
		File:      "ravl-dumpdb.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("dump")

	// start of main processing
	db, err := storage.Open(filename, storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer db.Close()

	tree := storage.NewTree()
	if verbose {
		tree = tree.WithObserver(avl.NewLogObserver(log))
	}

	cursor := db.NewFetchCursor(prefix)
	n := 0
	if count > 0 {
		tree, n, err = storage.LoadTreeLimited(tree, cursor, count)
	} else {
		tree, n, err = storage.LoadTree(tree, cursor)
	}
	if nil != err {
		exitwithstatus.Message("%s: error on load: %s", program, err)
	}
	log.Infof("read: %d records", n)

	d := &dumper{
		w:      os.Stdout,
		colour: len(options["colour"]) > 0,
		ascii:  len(options["ascii"]) > 0,
		golang: len(options["go"]) > 0,
	}
	d.elements(tree)

	if len(options["print"]) > 0 {
		tree.Print(os.Stdout, len(options["balance"]) > 0)
	}

	if err := tree.Check(); nil != err {
		exitwithstatus.Message("%s: check failed: %s", program, err)
	}
	if verbose {
		fmt.Printf("records: %d  height: %d  limit: %d\n", tree.Size(), tree.Height(), avl.MaxHeight(tree.Size()))
	}
}
