// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/coinjoin/configuration"
	"github.com/bitmark-inc/coinjoin/digest"
	"github.com/bitmark-inc/coinjoin/wire"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDigest    = digest.SHA256Name
	defaultByteOrder = "big"
	defaultUnits     = 100000000 // smallest units per coin

	defaultLogDirectory = "log"
	defaultLogFile      = "coinjoin.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"merge":           "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Digest        string               `gluamapper:"digest" json:"digest"`
	ByteOrder     string               `gluamapper:"byte_order" json:"byte_order"`
	Seed          int64                `gluamapper:"seed" json:"seed"`
	Units         uint64               `gluamapper:"units" json:"units"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// an empty file name gives the defaults with the data directory in
// the system temporary directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	dataDirectory := filepath.Join(os.TempDir(), "coinjoin")

	if "" != configurationFileName {
		var err error
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// absolute path to the main directory
		dataDirectory, _ = filepath.Split(configurationFileName)
	}

	options := &Configuration{
		DataDirectory: ".",
		Digest:        defaultDigest,
		ByteOrder:     defaultByteOrder,
		Seed:          0, // from the clock
		Units:         defaultUnits,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    make(map[string]string),
		},
	}
	for tag, level := range defaultLogLevels {
		options.Logging.Levels[tag] = level
	}

	if "" != configurationFileName {
		if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}
	}

	// reject unknown names early
	options.Digest = strings.ToLower(options.Digest)
	if _, err := digest.ByName(options.Digest); nil != err {
		return nil, err
	}
	options.ByteOrder = strings.ToLower(options.ByteOrder)
	if _, err := wire.OrderFromName(options.ByteOrder); nil != err {
		return nil, err
	}
	if 0 == options.Units {
		return nil, ErrInvalidUnits
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "." == options.DataDirectory {
		options.DataDirectory = dataDirectory
	}
	options.DataDirectory = configuration.EnsureAbsolute(dataDirectory, options.DataDirectory)

	if "" != configurationFileName {
		// this directory must exist - i.e. must be created prior to running
		if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
			return nil, err
		} else if !fileInfo.IsDir() {
			return nil, ErrNotDataDirectory
		}
	}

	// log file must be a plain name within the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, ErrNotPlainFileName
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = configuration.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// selected digest
func (c *Configuration) digester() digest.Digester {
	d, err := digest.ByName(c.Digest)
	logger.PanicIfError("digest", err)
	return d
}

// byte order of fixed width fields when parsing
func (c *Configuration) byteOrder() binary.ByteOrder {
	order, err := wire.OrderFromName(c.ByteOrder)
	logger.PanicIfError("byte order", err)
	return order
}
