// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merge

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/coinjoin/digest"
	"github.com/bitmark-inc/coinjoin/fault"
	"github.com/bitmark-inc/coinjoin/transactionrecord"
)

// Merger - merges lists of transactions
type Merger struct {
	log      *logger.L
	digester digest.Digester
	shuffler Shuffler
}

// New - create a merger
//
// the digester computes the identities used in diagnostics and the
// shuffler randomises the result of Unsigned
func New(log *logger.L, digester digest.Digester, shuffler Shuffler) *Merger {
	return &Merger{
		log:      log,
		digester: digester,
		shuffler: shuffler,
	}
}

// Signed - combine the signatures of transactions that differ only
// in their scriptSigs
//
// the first transaction is the accumulator; every transaction
// (including the first) must match its version, lock time, outputs
// and input out points position by position.  A non-empty scriptSig
// replaces the accumulator's, so later signatures win.
func (m *Merger) Signed(txs []*transactionrecord.Transaction) (*transactionrecord.Transaction, error) {
	if 0 == len(txs) {
		m.log.Warn("signed: nothing to merge")
		return nil, fault.ErrEmptyInput
	}

	accumulator := txs[0].Clone()
	firstID := accumulator.ID(m.digester)

	for i, tx := range txs {
		candidateID := tx.ID(m.digester)
		m.log.Debugf("signed: candidate[%d]: %s", i, candidateID)

		if err := m.matchFields(accumulator, tx, candidateID); nil != err {
			return nil, err
		}

		if len(tx.Outputs) != len(accumulator.Outputs) {
			index := shorter(len(tx.Outputs), len(accumulator.Outputs))
			err := &OutputMismatchError{
				Index:       index,
				Expected:    outputAt(accumulator.Outputs, index),
				Actual:      outputAt(tx.Outputs, index),
				Accumulator: firstID,
				Candidate:   candidateID,
			}
			m.log.Warnf("signed: %s", err)
			return nil, err
		}
		for j := range tx.Outputs {
			if !tx.Outputs[j].Equal(accumulator.Outputs[j]) {
				err := &OutputMismatchError{
					Index:       j,
					Expected:    outputAt(accumulator.Outputs, j),
					Actual:      outputAt(tx.Outputs, j),
					Accumulator: firstID,
					Candidate:   candidateID,
				}
				m.log.Warnf("signed: %s", err)
				return nil, err
			}
		}

		if len(tx.Inputs) != len(accumulator.Inputs) {
			index := shorter(len(tx.Inputs), len(accumulator.Inputs))
			err := &InputMismatchError{
				Index:       index,
				Expected:    inputAt(accumulator.Inputs, index),
				Actual:      inputAt(tx.Inputs, index),
				Accumulator: firstID,
				Candidate:   candidateID,
			}
			m.log.Warnf("signed: %s", err)
			return nil, err
		}
		for j, in := range tx.Inputs {
			if !in.SameOutPoint(accumulator.Inputs[j]) {
				err := &InputMismatchError{
					Index:       j,
					Expected:    inputAt(accumulator.Inputs, j),
					Actual:      inputAt(tx.Inputs, j),
					Accumulator: firstID,
					Candidate:   candidateID,
				}
				m.log.Warnf("signed: %s", err)
				return nil, err
			}
			if len(in.ScriptSig) > 0 {
				accumulator.Inputs[j].ScriptSig = append([]byte{}, in.ScriptSig...)
			}
		}
	}

	m.log.Infof("signed: merged %d transactions: inputs: %d  outputs: %d  txid: %s",
		len(txs), len(accumulator.Inputs), len(accumulator.Outputs), accumulator.ID(m.digester))

	return accumulator, nil
}

// Unsigned - union the inputs and outputs of several transactions
//
// version and lock time come from the first transaction and every
// other transaction must match them.  Outputs are kept even if
// repeated; an input spending an out point already present is an
// error.  The scriptSig of every input is removed and the inputs
// and outputs are shuffled independently.
func (m *Merger) Unsigned(txs []*transactionrecord.Transaction) (*transactionrecord.Transaction, error) {
	if 0 == len(txs) {
		m.log.Warn("unsigned: nothing to merge")
		return nil, fault.ErrEmptyInput
	}

	accumulator := &transactionrecord.Transaction{
		Version:  txs[0].Version,
		LockTime: txs[0].LockTime,
		Inputs:   make([]transactionrecord.TxIn, 0, countInputs(txs)),
		Outputs:  make([]transactionrecord.TxOut, 0, countOutputs(txs)),
	}

	// owners[k] is the transaction that contributed accumulator.Inputs[k]
	owners := make([]transactionrecord.ID, 0, cap(accumulator.Inputs))

	for i, tx := range txs {
		candidateID := tx.ID(m.digester)
		m.log.Debugf("unsigned: candidate[%d]: %s", i, candidateID)

		if err := m.matchFields(accumulator, tx, candidateID); nil != err {
			return nil, err
		}

		for _, out := range tx.Outputs {
			accumulator.Outputs = append(accumulator.Outputs, out.Clone())
		}

		// quadratic, but transaction lists are short
		for _, in := range tx.Inputs {
			for k, existing := range accumulator.Inputs {
				if in.SameOutPoint(existing) {
					err := &DuplicateInputError{
						Input:     in.Clone(),
						Existing:  owners[k],
						Candidate: candidateID,
					}
					m.log.Warnf("unsigned: %s", err)
					return nil, err
				}
			}
			in.ScriptSig = nil
			accumulator.Inputs = append(accumulator.Inputs, in)
			owners = append(owners, candidateID)
		}
	}

	m.shuffler.Shuffle(len(accumulator.Inputs), func(i, j int) {
		accumulator.Inputs[i], accumulator.Inputs[j] = accumulator.Inputs[j], accumulator.Inputs[i]
	})
	m.shuffler.Shuffle(len(accumulator.Outputs), func(i, j int) {
		accumulator.Outputs[i], accumulator.Outputs[j] = accumulator.Outputs[j], accumulator.Outputs[i]
	})

	m.log.Infof("unsigned: merged %d transactions: inputs: %d  outputs: %d  txid: %s",
		len(txs), len(accumulator.Inputs), len(accumulator.Outputs), accumulator.ID(m.digester))

	return accumulator, nil
}

// version and lock time must agree with the accumulator
func (m *Merger) matchFields(accumulator *transactionrecord.Transaction, tx *transactionrecord.Transaction, candidateID transactionrecord.ID) error {
	field := ""
	expected := uint32(0)
	actual := uint32(0)

	switch {
	case tx.Version != accumulator.Version:
		field, expected, actual = "version", accumulator.Version, tx.Version
	case tx.LockTime != accumulator.LockTime:
		field, expected, actual = "lock_time", accumulator.LockTime, tx.LockTime
	default:
		return nil
	}

	err := &FieldMismatchError{
		Field:       field,
		Expected:    expected,
		Actual:      actual,
		Accumulator: accumulator.ID(m.digester),
		Candidate:   candidateID,
	}
	m.log.Warnf("%s", err)
	return err
}

func shorter(a int, b int) int {
	if a < b {
		return a
	}
	return b
}

func outputAt(outputs []transactionrecord.TxOut, index int) *transactionrecord.TxOut {
	if index >= len(outputs) {
		return nil
	}
	out := outputs[index].Clone()
	return &out
}

func inputAt(inputs []transactionrecord.TxIn, index int) *transactionrecord.TxIn {
	if index >= len(inputs) {
		return nil
	}
	in := inputs[index].Clone()
	return &in
}

func countInputs(txs []*transactionrecord.Transaction) int {
	n := 0
	for _, tx := range txs {
		n += len(tx.Inputs)
	}
	return n
}

func countOutputs(txs []*transactionrecord.Transaction) int {
	n := 0
	for _, tx := range txs {
		n += len(tx.Outputs)
	}
	return n
}
