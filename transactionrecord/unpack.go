// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/binary"
	"fmt"

	"github.com/bitmark-inc/coinjoin/fault"
	"github.com/bitmark-inc/coinjoin/wire"
)

// ParseError - detail of an unpack failure
//
// errors.Is(err, fault.ErrMalformedTransaction) always holds,
// the wrapped Err is the codec failure (e.g. fault.ErrTruncated) or
// the rejected count (fault.ErrZeroInputCount, fault.ErrZeroOutputCount)
type ParseError struct {
	State  string // parser state that failed
	Offset int    // bytes consumed before the failure
	Err    error
}

// Error - the error interface method
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s at byte %d: %s", fault.ErrMalformedTransaction, e.State, e.Offset, e.Err)
}

// Unwrap - the underlying cause
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is - every parse error is a malformed transaction
func (e *ParseError) Is(target error) bool {
	return fault.ErrMalformedTransaction == target
}

// Parser - state machine turning packed bytes into a Transaction
type Parser struct {
	// byte order of the fixed width fields; nil selects wire.ParseOrder
	Order binary.ByteOrder
}

// DefaultParser - reads fixed width fields in wire.ParseOrder
var DefaultParser = Parser{Order: wire.ParseOrder}

// Unpack - turn a byte slice into a transaction using the DefaultParser
//
// returns the transaction and the number of bytes consumed; bytes
// after the lock time are not examined
func (record Packed) Unpack() (*Transaction, int, error) {
	return DefaultParser.Parse(record)
}

// Parse - turn a byte slice into a transaction
//
// returns the transaction and the number of bytes consumed; trailing
// bytes are not an error.  On failure no partial transaction is
// returned.
func (parser Parser) Parse(record []byte) (*Transaction, int, error) {

	r := wire.NewReaderOrder(record, parser.Order)

	tx := &Transaction{}
	width := uint64(0)
	inputsLeft := uint64(0)
	outputsLeft := uint64(0)

	current := stateReadVersion
	failed := current
	var cause error

	// consume one token, recording the failing state on error
	decode := func(kind wire.Kind) (wire.Token, bool) {
		token, err := r.Decode(kind)
		if nil != err {
			failed = current
			cause = err
			return token, false
		}
		return token, true
	}

	// reject a zero count
	reject := func(err error) {
		failed = current
		cause = err
	}

loop:
	for {
		switch current {

		case stateReadVersion:
			token, ok := decode(wire.FixedUint32)
			if !ok {
				current = stateError
				break
			}
			tx.Version = uint32(token.Integer)
			current = stateReadInputCount

		case stateReadInputCount:
			token, ok := decode(wire.VarInt)
			if !ok {
				current = stateError
				break
			}
			if 0 == token.Integer {
				reject(fault.ErrZeroInputCount)
				current = stateError
				break
			}
			inputsLeft = token.Integer
			tx.Inputs = make([]TxIn, 0, boundedCapacity(inputsLeft, r.Remaining(), minimumInputSize))
			current = stateReadTxinHash

		case stateReadTxinHash:
			token, ok := decode(wire.FixedBytes(HashLength))
			if !ok {
				current = stateError
				break
			}
			in := TxIn{}
			copy(in.PrevHash[:], token.Bytes)
			tx.Inputs = append(tx.Inputs, in)
			current = stateReadTxinIndex

		case stateReadTxinIndex:
			token, ok := decode(wire.FixedUint32)
			if !ok {
				current = stateError
				break
			}
			tx.Inputs[len(tx.Inputs)-1].PrevIndex = uint32(token.Integer)
			current = stateReadTxinScriptSigLen

		case stateReadTxinScriptSigLen:
			token, ok := decode(wire.VarInt)
			if !ok {
				current = stateError
				break
			}
			if 0 == token.Integer {
				current = stateReadTxinSequence // empty scriptSig
				break
			}
			width = token.Integer
			current = stateReadTxinScriptSig

		case stateReadTxinScriptSig:
			token, ok := decode(wire.FixedBytes(width))
			if !ok {
				current = stateError
				break
			}
			tx.Inputs[len(tx.Inputs)-1].ScriptSig = token.Bytes
			current = stateReadTxinSequence

		case stateReadTxinSequence:
			token, ok := decode(wire.FixedUint32)
			if !ok {
				current = stateError
				break
			}
			tx.Inputs[len(tx.Inputs)-1].Sequence = uint32(token.Integer)
			inputsLeft -= 1
			if inputsLeft > 0 {
				current = stateReadTxinHash
			} else {
				current = stateReadOutputCount
			}

		case stateReadOutputCount:
			token, ok := decode(wire.VarInt)
			if !ok {
				current = stateError
				break
			}
			if 0 == token.Integer {
				reject(fault.ErrZeroOutputCount)
				current = stateError
				break
			}
			outputsLeft = token.Integer
			tx.Outputs = make([]TxOut, 0, boundedCapacity(outputsLeft, r.Remaining(), minimumOutputSize))
			current = stateReadTxoutValue

		case stateReadTxoutValue:
			token, ok := decode(wire.FixedUint64)
			if !ok {
				current = stateError
				break
			}
			tx.Outputs = append(tx.Outputs, TxOut{Value: token.Integer})
			current = stateReadTxoutScriptLen

		case stateReadTxoutScriptLen:
			token, ok := decode(wire.VarInt)
			if !ok {
				current = stateError
				break
			}
			if 0 == token.Integer {
				outputsLeft -= 1 // empty scriptPubKey
				current = afterOutput(outputsLeft)
				break
			}
			width = token.Integer
			current = stateReadTxoutScript

		case stateReadTxoutScript:
			token, ok := decode(wire.FixedBytes(width))
			if !ok {
				current = stateError
				break
			}
			tx.Outputs[len(tx.Outputs)-1].ScriptPubKey = token.Bytes
			outputsLeft -= 1
			current = afterOutput(outputsLeft)

		case stateReadLockTime:
			token, ok := decode(wire.FixedUint32)
			if !ok {
				current = stateError
				break
			}
			tx.LockTime = uint32(token.Integer)
			current = stateDone

		case stateError:
			return nil, 0, &ParseError{
				State:  failed.String(),
				Offset: r.Offset(),
				Err:    cause,
			}

		case stateDone:
			break loop

		default:
			reject(fault.ErrMalformedTransaction)
			current = stateError
		}
	}

	return tx, r.Offset(), nil
}

// next state once an output is complete
func afterOutput(outputsLeft uint64) state {
	if outputsLeft > 0 {
		return stateReadTxoutValue
	}
	return stateReadLockTime
}

// limit preallocation by what the remaining bytes could possibly hold
func boundedCapacity(count uint64, remaining int, minimumSize int) int {
	limit := uint64(remaining / minimumSize)
	if count < limit {
		return int(count)
	}
	return int(limit)
}
