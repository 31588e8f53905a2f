// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merge_test

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/coinjoin/digest"
	"github.com/bitmark-inc/coinjoin/fault"
	"github.com/bitmark-inc/coinjoin/merge"
	"github.com/bitmark-inc/coinjoin/transactionrecord"
)

// two participants with disjoint inputs and outputs
func participants() (*transactionrecord.Transaction, *transactionrecord.Transaction) {
	a := &transactionrecord.Transaction{
		Version: 1,
		Inputs: []transactionrecord.TxIn{
			input(0x11, 0, 0xaa),
			input(0x12, 1, 0xab),
		},
		Outputs: []transactionrecord.TxOut{
			output(50000000, 0x51),
			output(1234, 0x52),
		},
	}
	b := &transactionrecord.Transaction{
		Version: 1,
		Inputs: []transactionrecord.TxIn{
			input(0x21, 0),
			input(0x22, 5, 0xba, 0xbb),
		},
		Outputs: []transactionrecord.TxOut{
			output(50000000, 0x61),
			output(4321, 0x62),
		},
	}
	return a, b
}

func inputKeys(inputs []transactionrecord.TxIn) []string {
	keys := make([]string, len(inputs))
	for i, in := range inputs {
		keys[i] = (&transactionrecord.Transaction{Inputs: []transactionrecord.TxIn{in}}).String()
	}
	sort.Strings(keys)
	return keys
}

func outputKeys(outputs []transactionrecord.TxOut) []string {
	keys := make([]string, len(outputs))
	for i, out := range outputs {
		keys[i] = (&transactionrecord.Transaction{Outputs: []transactionrecord.TxOut{out}}).String()
	}
	sort.Strings(keys)
	return keys
}

func TestUnsignedEmpty(t *testing.T) {
	tx, err := newMerger(noShuffle{}).Unsigned(nil)
	assert.Equal(t, fault.ErrEmptyInput, err, "wrong error")
	assert.Nil(t, tx, "transaction returned")
}

func TestUnsignedConcatenation(t *testing.T) {
	a, b := participants()

	merged, err := newMerger(noShuffle{}).Unsigned([]*transactionrecord.Transaction{a, b})
	assert.Nil(t, err, "wrong error")

	expected := &transactionrecord.Transaction{
		Version: 1,
		Inputs: []transactionrecord.TxIn{
			input(0x11, 0),
			input(0x12, 1),
			input(0x21, 0),
			input(0x22, 5),
		},
		Outputs: []transactionrecord.TxOut{
			output(50000000, 0x51),
			output(1234, 0x52),
			output(50000000, 0x61),
			output(4321, 0x62),
		},
	}
	assert.True(t, expected.Equal(merged), "wrong merge: %s", merged)
	for i, in := range merged.Inputs {
		assert.Nil(t, in.ScriptSig, "%d: scriptSig not cleared", i)
	}

	// arguments untouched
	assert.Equal(t, []byte{0xaa}, a.Inputs[0].ScriptSig, "argument modified")
	assert.Equal(t, []byte{0xba, 0xbb}, b.Inputs[1].ScriptSig, "argument modified")

	// outputs are copies
	merged.Outputs[0].ScriptPubKey[0] = 0
	assert.Equal(t, []byte{0x51}, a.Outputs[0].ScriptPubKey, "output script aliased")
}

func TestUnsignedUnion(t *testing.T) {
	a, b := participants()

	m := newMerger(merge.NewShuffler(1))

	merged, err := m.Unsigned([]*transactionrecord.Transaction{a, b})
	assert.Nil(t, err, "wrong error")

	unsigned := make([]transactionrecord.TxIn, 0, 4)
	for _, tx := range []*transactionrecord.Transaction{a, b} {
		for _, in := range tx.Inputs {
			in.ScriptSig = nil
			unsigned = append(unsigned, in)
		}
	}
	assert.Equal(t, inputKeys(unsigned), inputKeys(merged.Inputs), "input multiset differs")
	assert.Equal(t, outputKeys(append(append([]transactionrecord.TxOut{}, a.Outputs...), b.Outputs...)), outputKeys(merged.Outputs), "output multiset differs")
	assert.Equal(t, uint32(1), merged.Version, "wrong version")
	assert.Equal(t, uint32(0), merged.LockTime, "wrong lock time")
}

func TestUnsignedOrderVaries(t *testing.T) {
	a, b := participants()

	orders := make(map[string]int)
	for seed := int64(1); seed <= 20; seed += 1 {
		m := newMerger(rand.New(rand.NewSource(seed)))
		merged, err := m.Unsigned([]*transactionrecord.Transaction{a, b})
		assert.Nil(t, err, "%d: wrong error", seed)
		orders[merged.String()] += 1
	}
	assert.True(t, len(orders) >= 2, "ordering never changed")
}

func TestUnsignedDeterministicSeed(t *testing.T) {
	a, b := participants()
	list := []*transactionrecord.Transaction{a, b}

	first, err := newMerger(merge.NewShuffler(42)).Unsigned(list)
	assert.Nil(t, err, "wrong error")
	second, err := newMerger(merge.NewShuffler(42)).Unsigned(list)
	assert.Nil(t, err, "wrong error")

	assert.True(t, first.Equal(second), "same seed gave different order")
}

func TestUnsignedDuplicateInput(t *testing.T) {
	a, b := participants()
	b.Inputs[1] = input(0x12, 1, 0xcc) // same out point as a.Inputs[1]

	merged, err := newMerger(noShuffle{}).Unsigned([]*transactionrecord.Transaction{a, b})
	assert.Nil(t, merged, "transaction returned")
	assert.True(t, errors.Is(err, fault.ErrDuplicateInput), "wrong error: %v", err)

	e, ok := err.(*merge.DuplicateInputError)
	if !ok {
		t.Fatalf("wrong error type: %T", err)
	}
	assert.True(t, b.Inputs[1].Equal(e.Input), "wrong input")
	assert.Equal(t, b.ID(digest.SHA256{}), e.Candidate, "wrong candidate")
	assert.Equal(t, a.ID(digest.SHA256{}), e.Existing, "wrong existing")
	assert.Contains(t, err.Error(), "in tx "+e.Candidate.String()+" already spent by tx "+e.Existing.String(), "wrong message")

	// within a single transaction
	c := &transactionrecord.Transaction{
		Version: 1,
		Inputs: []transactionrecord.TxIn{
			input(0x31, 2),
			input(0x31, 2, 0x01),
		},
		Outputs: []transactionrecord.TxOut{output(1)},
	}
	_, err = newMerger(noShuffle{}).Unsigned([]*transactionrecord.Transaction{a, c})
	assert.True(t, errors.Is(err, fault.ErrDuplicateInput), "wrong error: %v", err)
	e, ok = err.(*merge.DuplicateInputError)
	if !ok {
		t.Fatalf("wrong error type: %T", err)
	}
	assert.Equal(t, c.ID(digest.SHA256{}), e.Existing, "wrong existing")
	assert.Equal(t, c.ID(digest.SHA256{}), e.Candidate, "wrong candidate")

	// a different sequence is a different input
	d := &transactionrecord.Transaction{
		Version: 1,
		Inputs: []transactionrecord.TxIn{
			input(0x31, 2),
		},
		Outputs: []transactionrecord.TxOut{output(1)},
	}
	resequenced := d.Clone()
	resequenced.Inputs[0].Sequence = 0
	merged, err = newMerger(noShuffle{}).Unsigned([]*transactionrecord.Transaction{d, resequenced})
	assert.Nil(t, err, "wrong error")
	assert.NotNil(t, merged, "missing transaction")
}

func TestUnsignedDuplicateOutputsKept(t *testing.T) {
	a, b := participants()
	b.Outputs = append(b.Outputs, a.Outputs[0].Clone())

	merged, err := newMerger(noShuffle{}).Unsigned([]*transactionrecord.Transaction{a, b})
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, 5, len(merged.Outputs), "outputs must not be deduplicated")

	value, count := merged.MostPopularOutput()
	assert.Equal(t, uint64(50000000), value, "wrong popular value")
	assert.Equal(t, 3, count, "wrong popular count")
}

func TestUnsignedFieldMismatch(t *testing.T) {
	a, b := participants()
	b.LockTime = 99

	merged, err := newMerger(noShuffle{}).Unsigned([]*transactionrecord.Transaction{a, b})
	assert.Nil(t, merged, "transaction returned")
	assert.True(t, errors.Is(err, fault.ErrFieldMismatch), "wrong error: %v", err)

	e, ok := err.(*merge.FieldMismatchError)
	if !ok {
		t.Fatalf("wrong error type: %T", err)
	}
	assert.Equal(t, "lock_time", e.Field, "wrong field")
	assert.Equal(t, uint32(0), e.Expected, "wrong expected")
	assert.Equal(t, uint32(99), e.Actual, "wrong actual")
	assert.Equal(t, b.ID(digest.SHA256{}), e.Candidate, "wrong candidate")
}
