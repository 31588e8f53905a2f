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

	"github.com/bitmark-inc/coinjoin/digest"
	"github.com/bitmark-inc/coinjoin/display"
	"github.com/bitmark-inc/coinjoin/transactionrecord"
)

type metadata struct {
	config   *Configuration
	digester digest.Digester
	parser   transactionrecord.Parser
	log      *logger.L
	verbose  bool
	r        io.Reader
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(r io.Reader, w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "coinjoin"
	app.Usage = "merge raw transactions from several participants"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	fileFlag := cli.StringFlag{
		Name:  "file, f",
		Value: "",
		Usage: " read hex transactions from `FILE` instead of standard input",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " Lua configuration `FILE` [built in defaults]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "merge-signed",
			Usage:     "combine the signatures of partially signed copies of one transaction",
			ArgsUsage: "\n   (one hex transaction per line, blank line to finish)",
			Flags:     []cli.Flag{fileFlag},
			Action:    runMergeSigned,
		},
		{
			Name:      "merge-unsigned",
			Usage:     "join unsigned transactions into one with shuffled inputs and outputs",
			ArgsUsage: "\n   (one hex transaction per line, blank line to finish)",
			Flags:     []cli.Flag{fileFlag},
			Action:    runMergeUnsigned,
		},
		{
			Name:      "decode",
			Usage:     "display transactions as JSON",
			ArgsUsage: "\n   (one hex transaction per line, blank line to finish)",
			Flags:     []cli.Flag{fileFlag},
			Action:    runDecode,
		},
		{
			Name:      "txid",
			Usage:     "display the identity of transactions",
			ArgsUsage: "\n   (one hex transaction per line, blank line to finish)",
			Flags:     []cli.Flag{fileFlag},
			Action:    runTxid,
		},
		{
			Name:   "version",
			Usage:  "display coinjoin version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h":
			return nil
		}

		file := c.GlobalString("config-file")
		if verbose && "" != file {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		configuration, err := getConfiguration(file)
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "configuration:\n")
			_ = display.JSON(e, configuration)
		}

		// start logging
		if err = logger.Initialise(configuration.Logging); nil != err {
			return err
		}

		log := logger.New("main")
		log.Infof("coinjoin version: %s  command: %s", version, command)
		log.Infof("digest: %s  byte order: %s", configuration.Digest, configuration.ByteOrder)

		c.App.Metadata["config"] = &metadata{
			config:   configuration,
			digester: configuration.digester(),
			parser:   transactionrecord.Parser{Order: configuration.byteOrder()},
			log:      log,
			verbose:  verbose,
			r:        r,
			e:        e,
			w:        c.App.Writer,
		}

		return nil
	}

	app.After = func(c *cli.Context) error {
		if m, ok := c.App.Metadata["config"].(*metadata); ok {
			m.log.Info("finished")
			logger.Finalise()
		}
		return nil
	}

	return app
}

// hex transactions from a file or the metadata reader
func readInput(fileName string, m *metadata) ([]*transactionrecord.Transaction, error) {

	r := m.r
	if "" != fileName {
		f, err := os.Open(fileName)
		if nil != err {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	txs, failed, err := readTransactions(r, m.w, m.parser, m.log)
	if nil != err {
		return nil, err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "transactions: %d  skipped: %d\n", len(txs), failed)
	}
	return txs, nil
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
