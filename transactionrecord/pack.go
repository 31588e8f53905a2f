// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/coinjoin/fault"
	"github.com/bitmark-inc/coinjoin/wire"
)

// Packed - packed records are just a byte slice
type Packed []byte

// PackedFromHex - decode a hex line into a packed record
//
// surrounding white space is ignored; upper or lower case accepted
func PackedFromHex(s string) (Packed, error) {
	s = strings.TrimSpace(s)
	if 0 == len(s) {
		return nil, fault.ErrInvalidHexLine
	}
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidHexLine
	}
	return Packed(b), nil
}

// String - lowercase hex of the packed bytes
func (record Packed) String() string {
	return hex.EncodeToString(record)
}

// Pack - canonical wire encoding
//
// Structure:
//   version              u32 little endian
//   VarInt(input count)
//   for each input:      prevHash[32] · prevIndex u32 · VarInt(len) · scriptSig · sequence u32
//   VarInt(output count)
//   for each output:     value u64 · VarInt(len) · scriptPubKey
//   lockTime             u32 little endian
//
// this is also the preimage of the identity hash
func (tx *Transaction) Pack() Packed {
	b := wire.NewBuilder(tx.PackedSize())

	b.AppendUint32(tx.Version)

	b.AppendVarInt(uint64(len(tx.Inputs)))
	for _, in := range tx.Inputs {
		b.AppendBytes(in.PrevHash[:]).
			AppendUint32(in.PrevIndex).
			AppendVarBytes(in.ScriptSig).
			AppendUint32(in.Sequence)
	}

	b.AppendVarInt(uint64(len(tx.Outputs)))
	for _, out := range tx.Outputs {
		b.AppendUint64(out.Value).
			AppendVarBytes(out.ScriptPubKey)
	}

	b.AppendUint32(tx.LockTime)

	return Packed(b.Bytes())
}

// PackedSize - exact number of bytes Pack will produce
func (tx *Transaction) PackedSize() int {
	size := 4 + wire.VarIntSize(uint64(len(tx.Inputs)))
	for _, in := range tx.Inputs {
		size += HashLength + 4 + wire.VarIntSize(uint64(len(in.ScriptSig))) + len(in.ScriptSig) + 4
	}
	size += wire.VarIntSize(uint64(len(tx.Outputs)))
	for _, out := range tx.Outputs {
		size += 8 + wire.VarIntSize(uint64(len(out.ScriptPubKey))) + len(out.ScriptPubKey)
	}
	return size + 4
}

// String - lowercase hex of the canonical encoding
func (tx *Transaction) String() string {
	return tx.Pack().String()
}
