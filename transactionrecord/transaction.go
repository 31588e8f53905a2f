// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"bytes"
	"encoding/hex"
)

// HashLength - size of the hash identifying a previous transaction
const HashLength = 32

// smallest possible encodings, used to bound preallocation
const (
	minimumInputSize  = HashLength + 4 + 1 + 4
	minimumOutputSize = 8 + 1
)

// Hash - opaque reference to a previous transaction
// kept in wire order; to get the bytes just use h[:]
type Hash [HashLength]byte

// String - hex of the hash in wire order
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// MarshalText - hex of the hash in wire order
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// TxIn - a reference to a previous output plus its unlocking script
type TxIn struct {
	PrevHash  Hash
	PrevIndex uint32
	ScriptSig []byte // may be empty
	Sequence  uint32
}

// TxOut - an amount and its locking script
type TxOut struct {
	Value        uint64
	ScriptPubKey []byte
}

// Transaction - the unpacked transaction structure
//
// a well formed transaction has at least one input and one output;
// input and output order is significant
type Transaction struct {
	Version  uint32
	LockTime uint32
	Inputs   []TxIn
	Outputs  []TxOut
}

// SameOutPoint - true if both inputs spend the same previous output
// with the same sequence
//
// the scriptSig is not compared since different signers supply
// different signatures for the same input
func (in TxIn) SameOutPoint(other TxIn) bool {
	return in.PrevHash == other.PrevHash &&
		in.PrevIndex == other.PrevIndex &&
		in.Sequence == other.Sequence
}

// Equal - field-wise equality including the scriptSig
func (in TxIn) Equal(other TxIn) bool {
	return in.SameOutPoint(other) && bytes.Equal(in.ScriptSig, other.ScriptSig)
}

// Clone - copy that shares no byte slices with the original
func (in TxIn) Clone() TxIn {
	in.ScriptSig = cloneBytes(in.ScriptSig)
	return in
}

// Equal - value and script must both match
func (out TxOut) Equal(other TxOut) bool {
	return out.Value == other.Value &&
		bytes.Equal(out.ScriptPubKey, other.ScriptPubKey)
}

// Clone - copy that shares no byte slices with the original
func (out TxOut) Clone() TxOut {
	out.ScriptPubKey = cloneBytes(out.ScriptPubKey)
	return out
}

// Clone - deep copy of a transaction
func (tx *Transaction) Clone() *Transaction {
	result := &Transaction{
		Version:  tx.Version,
		LockTime: tx.LockTime,
		Inputs:   make([]TxIn, len(tx.Inputs)),
		Outputs:  make([]TxOut, len(tx.Outputs)),
	}
	for i, in := range tx.Inputs {
		result.Inputs[i] = in.Clone()
	}
	for i, out := range tx.Outputs {
		result.Outputs[i] = out.Clone()
	}
	return result
}

// Equal - field-wise equality
//
// nil and empty scripts compare equal since both encode identically
func (tx *Transaction) Equal(other *Transaction) bool {
	if nil == tx || nil == other {
		return tx == other
	}
	if tx.Version != other.Version || tx.LockTime != other.LockTime {
		return false
	}
	if len(tx.Inputs) != len(other.Inputs) || len(tx.Outputs) != len(other.Outputs) {
		return false
	}
	for i := range tx.Inputs {
		if !tx.Inputs[i].Equal(other.Inputs[i]) {
			return false
		}
	}
	for i := range tx.Outputs {
		if !tx.Outputs[i].Equal(other.Outputs[i]) {
			return false
		}
	}
	return true
}

func cloneBytes(b []byte) []byte {
	if nil == b {
		return nil
	}
	result := make([]byte, len(b))
	copy(result, b)
	return result
}
