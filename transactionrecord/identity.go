// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/coinjoin/digest"
	"github.com/bitmark-inc/coinjoin/fault"
)

// IDLength - size of a transaction identity
const IDLength = digest.Length

// ID - the transaction identity (txid)
//
// computed as the byte reversal of digest(digest(Pack())) since the
// identifier is conventionally read as a little endian 256 bit
// number; stored already reversed so hex of the bytes is the usual
// display form
type ID [IDLength]byte

// ID - compute the identity of a transaction
func (tx *Transaction) ID(d digest.Digester) ID {
	return ID(digest.Double(d, tx.Pack()).Reversed())
}

// String - convert an identity to hex for use by the fmt package (for %s)
func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

// GoString - convert an identity to hex for use by the fmt package (for %#v)
func (id ID) GoString() string {
	return "<txid:" + hex.EncodeToString(id[:]) + ">"
}

// Scan - convert a hex representation to an identity for use by the format package scan routines
func (id *ID) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if len(token) != hex.EncodedLen(IDLength) {
		return fault.ErrNotTransactionID
	}

	byteCount, err := hex.Decode(id[:], token)
	if nil != err {
		return err
	}
	if IDLength != byteCount {
		return fault.ErrNotTransactionID
	}
	return nil
}

// MarshalText - convert identity to hex text
func (id ID) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(id))
	buffer := make([]byte, size)
	hex.Encode(buffer, id[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an identity
func (id *ID) UnmarshalText(s []byte) error {
	if len(id) != hex.DecodedLen(len(s)) {
		return fault.ErrNotTransactionID
	}
	byteCount, err := hex.Decode(id[:], s)
	if nil != err {
		return err
	}
	if IDLength != byteCount {
		return fault.ErrNotTransactionID
	}
	return nil
}
