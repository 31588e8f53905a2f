// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/coinjoin/digest"
	"github.com/bitmark-inc/coinjoin/merge"
	"github.com/bitmark-inc/coinjoin/transactionrecord"
)

func runMergeSigned(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	fmt.Fprintf(m.e, "Welcome to coinjoin merge-signed. Enter each partially-signed raw transaction\n")
	fmt.Fprintf(m.e, "on a separate line, followed by a blank line or EOF to finish.\n")

	return runMerge(c, m, false)
}

func runMergeUnsigned(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	fmt.Fprintf(m.e, "Welcome to coinjoin merge-unsigned. Enter each unsigned raw transaction\n")
	fmt.Fprintf(m.e, "on a separate line, followed by a blank line or EOF to finish.\n")

	return runMerge(c, m, true)
}

func runMerge(c *cli.Context, m *metadata, unsigned bool) error {

	txs, err := readInput(c.String("file"), m)
	if nil != err {
		return err
	}

	merger := merge.New(logger.New("merge"), m.digester, merge.NewShuffler(m.config.Seed))

	tx, err := mergeTransactions(merger, txs, unsigned)
	if nil != err {
		fmt.Fprintf(m.w, "err: %s\n", err)
		fmt.Fprintf(m.w, "err: %s\n", ErrMergeFailed)
		return ErrMergeFailed
	}

	printMerged(m.w, tx, m.digester, m.config.Units, unsigned)
	return nil
}

func mergeTransactions(merger *merge.Merger, txs []*transactionrecord.Transaction, unsigned bool) (*transactionrecord.Transaction, error) {
	if unsigned {
		return merger.Unsigned(txs)
	}
	return merger.Signed(txs)
}

// txid, most popular output and the hex of a merged transaction
//
// the output count is only shown for unsigned merges
func printMerged(w io.Writer, tx *transactionrecord.Transaction, d digest.Digester, units uint64, showCount bool) {
	value, count := tx.MostPopularOutput()

	fmt.Fprintf(w, "txid: %s\n", tx.ID(d))
	fmt.Fprintf(w, "mpo: %s\n", formatAmount(value, units))
	if showCount {
		fmt.Fprintf(w, "mpc: %d\n", count)
	}
	fmt.Fprintf(w, "hex: %s\n", tx)
}

// value in whole coins with no trailing zeros
func formatAmount(value uint64, units uint64) string {
	return strconv.FormatFloat(float64(value)/float64(units), 'f', -1, 64)
}
