// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merge

import (
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/coinjoin/fault"
	"github.com/bitmark-inc/coinjoin/transactionrecord"
)

// FieldMismatchError - version or lock time differ from the accumulator
type FieldMismatchError struct {
	Field       string // "version" or "lock_time"
	Expected    uint32 // accumulator value
	Actual      uint32 // candidate value
	Accumulator transactionrecord.ID
	Candidate   transactionrecord.ID
}

func (e *FieldMismatchError) Error() string {
	return fmt.Sprintf("%s: tx %s did not match %s (%s %d vs %d)",
		fault.ErrFieldMismatch, e.Accumulator, e.Candidate, e.Field, e.Expected, e.Actual)
}

// Unwrap - the sentinel for errors.Is
func (e *FieldMismatchError) Unwrap() error {
	return fault.ErrFieldMismatch
}

// OutputMismatchError - outputs at the same position differ
//
// Expected or Actual is nil when the corresponding transaction has
// no output at Index
type OutputMismatchError struct {
	Index       int
	Expected    *transactionrecord.TxOut // accumulator output
	Actual      *transactionrecord.TxOut // candidate output
	Accumulator transactionrecord.ID
	Candidate   transactionrecord.ID
}

func (e *OutputMismatchError) Error() string {
	return fmt.Sprintf("%s: tx %s did not match %s (output %d: %s vs %s)",
		fault.ErrOutputMismatch, e.Accumulator, e.Candidate, e.Index, outputText(e.Expected), outputText(e.Actual))
}

// Unwrap - the sentinel for errors.Is
func (e *OutputMismatchError) Unwrap() error {
	return fault.ErrOutputMismatch
}

// InputMismatchError - inputs at the same position spend different outputs
//
// Expected or Actual is nil when the corresponding transaction has
// no input at Index
type InputMismatchError struct {
	Index       int
	Expected    *transactionrecord.TxIn // accumulator input
	Actual      *transactionrecord.TxIn // candidate input
	Accumulator transactionrecord.ID
	Candidate   transactionrecord.ID
}

func (e *InputMismatchError) Error() string {
	return fmt.Sprintf("%s: tx %s did not match %s (input %d: %s vs %s)",
		fault.ErrInputMismatch, e.Accumulator, e.Candidate, e.Index, inputText(e.Expected), inputText(e.Actual))
}

// Unwrap - the sentinel for errors.Is
func (e *InputMismatchError) Unwrap() error {
	return fault.ErrInputMismatch
}

// DuplicateInputError - an out point is spent more than once
//
// Existing and Candidate are the same when one transaction repeats
// its own input
type DuplicateInputError struct {
	Input     transactionrecord.TxIn
	Existing  transactionrecord.ID // transaction that first spent the out point
	Candidate transactionrecord.ID // transaction carrying the repeat
}

func (e *DuplicateInputError) Error() string {
	return fmt.Sprintf("%s: %s in tx %s already spent by tx %s",
		fault.ErrDuplicateInput, inputText(&e.Input), e.Candidate, e.Existing)
}

// Unwrap - the sentinel for errors.Is
func (e *DuplicateInputError) Unwrap() error {
	return fault.ErrDuplicateInput
}

// value:script
func outputText(out *transactionrecord.TxOut) string {
	if nil == out {
		return "none"
	}
	return fmt.Sprintf("%d:%s", out.Value, hex.EncodeToString(out.ScriptPubKey))
}

// hash:index/sequence
func inputText(in *transactionrecord.TxIn) string {
	if nil == in {
		return "none"
	}
	return fmt.Sprintf("%s:%d/%d", in.PrevHash, in.PrevIndex, in.Sequence)
}
