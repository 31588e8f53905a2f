// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"encoding/hex"

	"github.com/bitmark-inc/coinjoin/transactionrecord"
)

// block 0 coinbase transaction, fixed width fields little endian
const genesisHex = "01000000" +
	"01" +
	"0000000000000000000000000000000000000000000000000000000000000000" +
	"ffffffff" +
	"4d" +
	"04ffff001d0104455468652054696d65732030332f4a616e2f32303039204368616e63656c6c6f72" +
	"206f6e206272696e6b206f66207365636f6e64206261696c6f757420666f722062616e6b73" +
	"ffffffff" +
	"01" +
	"00f2052a01000000" +
	"43" +
	"4104678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5fac" +
	"00000000"

// its well known identity
const genesisID = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"

func genesisBytes() []byte {
	b, err := hex.DecodeString(genesisHex)
	if nil != err {
		panic(err)
	}
	return b
}

func hash(fill byte) transactionrecord.Hash {
	var h transactionrecord.Hash
	for i := range h {
		h[i] = fill + byte(i)
	}
	return h
}

// two inputs (second unsigned), two outputs (second with empty script)
func makeTransaction() *transactionrecord.Transaction {
	return &transactionrecord.Transaction{
		Version:  0x01020304,
		LockTime: 0x0a0b0c0d,
		Inputs: []transactionrecord.TxIn{
			{
				PrevHash:  hash(0x10),
				PrevIndex: 7,
				ScriptSig: []byte{0x51, 0x52, 0x53},
				Sequence:  0xfffffffe,
			},
			{
				PrevHash:  hash(0x40),
				PrevIndex: 0x01000002,
				ScriptSig: nil,
				Sequence:  0xffffffff,
			},
		},
		Outputs: []transactionrecord.TxOut{
			{
				Value:        5000000000,
				ScriptPubKey: []byte{0x76, 0xa9, 0x14, 0x00, 0x88, 0xac},
			},
			{
				Value:        1,
				ScriptPubKey: nil,
			},
		},
	}
}
