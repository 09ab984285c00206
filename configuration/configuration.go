// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ravl/fault"
	"github.com/bitmark-inc/ravl/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultComparator = ComparatorString
	defaultInput      = "values.txt"
	defaultHistory    = 16

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "values.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "ravl.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// comparator names
const (
	ComparatorString  = "string"
	ComparatorInteger = "integer"
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"watch":           "info",
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of a leveldb whose keys can be loaded
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
	Prefix    string `gluamapper:"prefix" json:"prefix"`
}

// LoggerType - log file setup
type LoggerType struct {
	Directory string            `gluamapper:"directory" json:"directory"`
	File      string            `gluamapper:"file" json:"file"`
	Size      int               `gluamapper:"size" json:"size"`
	Count     int               `gluamapper:"count" json:"count"`
	Console   bool              `gluamapper:"console" json:"console"`
	Levels    map[string]string `gluamapper:"levels" json:"levels"`
}

// Configuration - the decoded configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	Comparator    string       `gluamapper:"comparator" json:"comparator"`
	Input         string       `gluamapper:"input" json:"input"`
	History       int          `gluamapper:"history" json:"history"`
	Database      DatabaseType `gluamapper:"database" json:"database"`
	Logging       LoggerType   `gluamapper:"logging" json:"logging"`
}

// Default - configuration used when no file is given
//
// all paths are relative to the current directory
func Default() (*Configuration, error) {
	options := defaults()
	directory, err := os.Getwd()
	if nil != err {
		return nil, err
	}
	options.DataDirectory = directory
	if err := options.resolve(); nil != err {
		return nil, err
	}
	return options, nil
}

func defaults() *Configuration {
	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Comparator:    defaultComparator,
		Input:         defaultInput,
		History:       defaultHistory,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Logging: LoggerType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// GetConfiguration - read decode and verify the configuration
func GetConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if !util.EnsureFileExists(configurationFileName) {
		return nil, fault.ErrNotFoundConfigFile
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaults()

	if err := ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrInvalidDataDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	if err := options.resolve(); nil != err {
		return nil, err
	}
	return options, nil
}

// check values and expand all paths relative to the data directory
func (options *Configuration) resolve() error {

	options.Comparator = strings.ToLower(options.Comparator)
	switch options.Comparator {
	case ComparatorString, ComparatorInteger:
	default:
		return fault.ErrInvalidComparator
	}

	if options.History < 1 {
		return fault.ErrInvalidCount
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fault.ErrConfigDirPath
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Input,
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return fault.ErrNotAPlainFileName
		}
	}

	return nil
}

// LoggerConfiguration - settings for logger.Initialise
//
// the log directory is created if it does not already exist
func (options *Configuration) LoggerConfiguration() (logger.Configuration, error) {
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return logger.Configuration{}, err
	}
	return logger.Configuration{
		Directory: options.Logging.Directory,
		File:      options.Logging.File,
		Size:      options.Logging.Size,
		Count:     options.Logging.Count,
		Console:   options.Logging.Console,
		Levels:    options.Logging.Levels,
	}, nil
}
