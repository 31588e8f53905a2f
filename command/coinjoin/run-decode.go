// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/coinjoin/display"
	"github.com/bitmark-inc/coinjoin/transactionrecord"
)

type decoded struct {
	TxID             transactionrecord.ID           `json:"txid"`
	MostPopular      string                         `json:"most_popular_output"`
	MostPopularCount int                            `json:"most_popular_count"`
	Transaction      *transactionrecord.Transaction `json:"transaction"`
}

func runDecode(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	txs, err := readInput(c.String("file"), m)
	if nil != err {
		return err
	}

	for _, tx := range txs {
		value, count := tx.MostPopularOutput()
		d := decoded{
			TxID:             tx.ID(m.digester),
			MostPopular:      formatAmount(value, m.config.Units),
			MostPopularCount: count,
			Transaction:      tx,
		}
		if err := display.JSON(m.w, d); nil != err {
			return err
		}
	}
	return nil
}

func runTxid(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	txs, err := readInput(c.String("file"), m)
	if nil != err {
		return err
	}

	for _, tx := range txs {
		fmt.Fprintf(m.w, "txid: %s\n", tx.ID(m.digester))
	}
	return nil
}
