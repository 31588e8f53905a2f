// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/bitmark-inc/coinjoin/digest"
	"github.com/bitmark-inc/coinjoin/display"
	"github.com/bitmark-inc/coinjoin/transactionrecord"
)

// decoded - the JSON document printed for each transaction
type decoded struct {
	TxID        transactionrecord.ID           `json:"txid"`
	BytesUsed   int                            `json:"bytes_used"`
	BytesUnused int                            `json:"bytes_unused,omitempty"`
	Transaction *transactionrecord.Transaction `json:"transaction"`
}

func main() {
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "little-endian", HasArg: getoptions.NO_ARGUMENT, Short: 'l'},
		{Long: "digest", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("option parse error: %s", err)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--little-endian] [--digest=NAME] HEX...", program)
	}

	digestName := digest.SHA256Name
	if len(options["digest"]) > 0 {
		digestName = options["digest"][0]
	}

	err = run(os.Stdout, arguments, len(options["little-endian"]) > 0, digestName)
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}
}

// decode each hex argument and print it as JSON
//
// stops at the first argument that does not decode
func run(w io.Writer, arguments []string, littleEndian bool, digestName string) error {

	parser := transactionrecord.DefaultParser
	if littleEndian {
		parser = transactionrecord.Parser{Order: binary.LittleEndian}
	}

	digester, err := digest.ByName(digestName)
	if nil != err {
		return fmt.Errorf("digest: %q: %w", digestName, err)
	}

	for i, argument := range arguments {
		result, err := decode(argument, parser, digester)
		if nil != err {
			return fmt.Errorf("argument[%d]: %w", i, err)
		}
		if err := display.JSON(w, result); nil != err {
			return fmt.Errorf("argument[%d]: JSON: %w", i, err)
		}
	}
	return nil
}

// decode one hex transaction
func decode(hexText string, parser transactionrecord.Parser, digester digest.Digester) (*decoded, error) {
	packed, err := transactionrecord.PackedFromHex(hexText)
	if nil != err {
		return nil, err
	}

	tx, n, err := parser.Parse(packed)
	if nil != err {
		return nil, err
	}

	return &decoded{
		TxID:        tx.ID(digester),
		BytesUsed:   n,
		BytesUnused: len(packed) - n,
		Transaction: tx,
	}, nil
}
