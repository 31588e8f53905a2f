// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/coinjoin/fault"
	"github.com/bitmark-inc/coinjoin/transactionrecord"
)

const makeTransactionHex = "04030201" +
	"02" +
	"101112131415161718191a1b1c1d1e1f202122232425262728292a2b2c2d2e2f" + "07000000" + "03515253" + "feffffff" +
	"404142434445464748494a4b4c4d4e4f505152535455565758595a5b5c5d5e5f" + "02000001" + "00" + "ffffffff" +
	"02" +
	"00f2052a01000000" + "0676a9140088ac" +
	"0100000000000000" + "00" +
	"0d0c0b0a"

func TestPack(t *testing.T) {
	tx := makeTransaction()

	packed := tx.Pack()
	assert.Equal(t, makeTransactionHex, packed.String(), "wrong packed bytes")
	assert.Equal(t, makeTransactionHex, tx.String(), "wrong String")
	assert.Equal(t, len(packed), tx.PackedSize(), "wrong PackedSize")
}

func TestPackGenesis(t *testing.T) {
	raw := genesisBytes()

	tx, n, err := transactionrecord.Parser{Order: binary.LittleEndian}.Parse(raw)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, len(raw), n, "wrong byte count")

	assert.Equal(t, uint32(1), tx.Version, "wrong version")
	assert.Equal(t, 1, len(tx.Inputs), "wrong input count")
	assert.Equal(t, uint32(0xffffffff), tx.Inputs[0].PrevIndex, "wrong prev index")
	assert.Equal(t, 77, len(tx.Inputs[0].ScriptSig), "wrong scriptSig length")
	assert.Equal(t, 1, len(tx.Outputs), "wrong output count")
	assert.Equal(t, uint64(5000000000), tx.Outputs[0].Value, "wrong value")
	assert.Equal(t, 67, len(tx.Outputs[0].ScriptPubKey), "wrong script length")
	assert.Equal(t, uint32(0), tx.LockTime, "wrong lock time")

	assert.Equal(t, transactionrecord.Packed(raw), tx.Pack(), "re-encoding differs")
}

func TestPackLargeScriptUsesWideVarInt(t *testing.T) {
	tx := makeTransaction()
	tx.Outputs[1].ScriptPubKey = make([]byte, 300)

	packed := tx.Pack()
	assert.Equal(t, len(packed), tx.PackedSize(), "wrong PackedSize")

	back, n, err := transactionrecord.Parser{Order: binary.LittleEndian}.Parse(packed)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, len(packed), n, "wrong byte count")
	assert.True(t, tx.Equal(back), "round trip differs")
}

func TestPackedFromHex(t *testing.T) {
	packed, err := transactionrecord.PackedFromHex("  " + makeTransactionHex + "\n")
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, makeTransaction().Pack(), packed, "wrong bytes")

	upper, err := transactionrecord.PackedFromHex("DEADBEEF")
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, transactionrecord.Packed{0xde, 0xad, 0xbe, 0xef}, upper, "wrong bytes")

	invalid := []string{"", "   ", "0", "abc", "zz", "00 11"}
	for i, s := range invalid {
		_, err := transactionrecord.PackedFromHex(s)
		assert.Equal(t, fault.ErrInvalidHexLine, err, "%d: %q: wrong error", i, s)
	}
}
