// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/coinjoin/transactionrecord"
)

// longest accepted line of hex
const maximumLineLength = 4 * 1024 * 1024

// read hex transactions one per line until a blank line or end of file
//
// a line that is not a transaction is reported on e and skipped;
// also returns the number of lines skipped
func readTransactions(r io.Reader, e io.Writer, parser transactionrecord.Parser, log *logger.L) ([]*transactionrecord.Transaction, int, error) {
	txs := []*transactionrecord.Transaction(nil)
	failed := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maximumLineLength)

	for lineNumber := 1; scanner.Scan(); lineNumber += 1 {
		line := strings.TrimSpace(scanner.Text())
		if "" == line {
			break
		}

		tx, err := decodeLine(line, parser)
		if nil != err {
			log.Warnf("line: %d: %s", lineNumber, err)
			fmt.Fprintf(e, "err: %s\n", ErrDecodeFailed)
			failed += 1
			continue
		}
		log.Debugf("line: %d: %d inputs  %d outputs", lineNumber, len(tx.Inputs), len(tx.Outputs))
		txs = append(txs, tx)
	}

	if err := scanner.Err(); nil != err {
		return nil, failed, err
	}
	return txs, failed, nil
}

func decodeLine(line string, parser transactionrecord.Parser) (*transactionrecord.Transaction, error) {
	packed, err := transactionrecord.PackedFromHex(line)
	if nil != err {
		return nil, err
	}
	tx, _, err := parser.Parse(packed)
	if nil != err {
		return nil, err
	}
	return tx, nil
}
