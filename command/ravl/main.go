// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ravl/avl"
	"github.com/bitmark-inc/ravl/configuration"
	"github.com/bitmark-inc/ravl/fault"
)

type metadata struct {
	config  *configuration.Configuration
	parser  *parser
	stats   *statistics
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "ravl"
	app.Usage = "build, inspect and watch persistent AVL trees"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE` [built in defaults]",
		},
		cli.BoolFlag{
			Name:  "integer, i",
			Usage: " order values as integers",
		},
		cli.BoolFlag{
			Name:  "trace, t",
			Usage: " log every tree step at debug level",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "build",
			Usage:     "build a tree from files and report its shape",
			ArgsUsage: "FILE...  (default: configured input)",
			Action:    runBuild,
		},
		{
			Name:      "print",
			Usage:     "draw a tree",
			ArgsUsage: "FILE...  (default: configured input)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "balance, b",
					Usage: " show balance factors",
				},
			},
			Action: runPrint,
		},
		{
			Name:      "remove",
			Usage:     "remove a value and show both versions",
			ArgsUsage: "FILE...  (default: configured input)\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "value, V",
					Usage: "*`VALUE` to remove, may be repeated",
				},
				cli.BoolFlag{
					Name:  "balance, b",
					Usage: " show balance factors",
				},
			},
			Action: runRemove,
		},
		{
			Name:      "check",
			Usage:     "verify order, balance and size",
			ArgsUsage: "FILE...  (default: configured input)",
			Action:    runCheck,
		},
		{
			Name:      "store",
			Usage:     "save values as keys in the configured database",
			ArgsUsage: "FILE...  (default: configured input)",
			Action:    runStore,
		},
		{
			Name:  "load",
			Usage: "build a tree from the keys in the configured database",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "print, p",
					Usage: " draw the tree",
				},
			},
			Action: runLoad,
		},
		{
			Name:      "watch",
			Usage:     "rebuild a tree each time its file changes",
			ArgsUsage: "FILE  (default: configured input)",
			Flags: []cli.Flag{
				cli.DurationFlag{
					Name:  "interval, n",
					Value: defaultReportInterval,
					Usage: " statistics report `INTERVAL`",
				},
			},
			Action: runWatch,
		},
		{
			Name:  "version",
			Usage: "display ravl version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		var options *configuration.Configuration
		var err error

		file := c.GlobalString("config")
		if "" == file {
			options, err = configuration.Default()
		} else {
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}
			variables := map[string]string{
				"command": command,
			}
			options, err = configuration.GetConfiguration(file, variables)
		}
		if nil != err {
			return err
		}

		if c.GlobalBool("integer") {
			options.Comparator = configuration.ComparatorInteger
		}

		p, err := newParser(options.Comparator)
		if nil != err {
			return err
		}

		logging, err := options.LoggerConfiguration()
		if nil != err {
			return err
		}
		if err := logger.Initialise(logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			return err
		}

		log := logger.New("main")
		log.Infof("comparator: %s", options.Comparator)

		var next avl.Observer
		if c.GlobalBool("trace") {
			next = avl.NewLogObserver(logger.New("trace"))
		}

		c.App.Metadata["config"] = &metadata{
			config:  options,
			parser:  p,
			stats:   newStatistics(next),
			log:     log,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// flush the logs
	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// input files from the command line or the configured default
func inputFiles(c *cli.Context, m *metadata) []string {
	files := []string(c.Args())
	if 0 == len(files) {
		files = []string{m.config.Input}
	}
	return files
}

// build an observed tree from the input files
func buildTree(c *cli.Context, m *metadata) (*avl.Tree[value], []string, error) {
	files := inputFiles(c, m)
	if m.verbose {
		for _, f := range files {
			fmt.Fprintf(m.e, "input: %s\n", f)
		}
	}
	tree, err := m.parser.build(m.parser.newTree().WithObserver(m.stats), files...)
	return tree, files, err
}
