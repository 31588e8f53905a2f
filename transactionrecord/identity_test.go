// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/coinjoin/digest"
	"github.com/bitmark-inc/coinjoin/digest/mocks"
	"github.com/bitmark-inc/coinjoin/fault"
	"github.com/bitmark-inc/coinjoin/transactionrecord"
)

func TestGenesisID(t *testing.T) {
	tx, _, err := transactionrecord.Parser{Order: binary.LittleEndian}.Parse(genesisBytes())
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}

	id := tx.ID(digest.SHA256{})
	assert.Equal(t, genesisID, id.String(), "wrong txid")
}

func TestTransactionID(t *testing.T) {
	tx := makeTransaction()

	assert.Equal(t, "90fa9511815e62ce16c9abb92954a152002a8943729e6705a2d9b91bf510c1c2", tx.ID(digest.SHA256{}).String(), "wrong sha256 txid")
	assert.Equal(t, "5abf977be50b9a6d71bae36790a5484b7fe9cbf558f19ec2a4e3d9b889e6f228", tx.ID(digest.SHA3{}).String(), "wrong sha3 txid")

	// identity follows the encoding, not the structure
	changed := makeTransaction()
	changed.Inputs[1].ScriptSig = []byte{0x00}
	assert.NotEqual(t, tx.ID(digest.SHA256{}), changed.ID(digest.SHA256{}), "identity ignored a scriptSig")
}

func TestIDComposition(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockDigester(ctl)

	tx := makeTransaction()
	packed := []byte(tx.Pack())

	first := digest.Digest{0x01, 0x02, 0x03}
	second := digest.Digest{0xaa, 0xbb, 0xcc}
	second[digest.Length-1] = 0xff

	gomock.InOrder(
		m.EXPECT().Digest(packed).Return(first).Times(1),
		m.EXPECT().Digest(first[:]).Return(second).Times(1),
	)

	id := tx.ID(m)

	expected := transactionrecord.ID{}
	for i := range expected {
		expected[i] = second[digest.Length-1-i]
	}
	assert.Equal(t, expected, id, "identity is not reverse(d(d(pack)))")
	assert.Equal(t, byte(0xff), id[0], "wrong first byte")
}

func TestIDFormatting(t *testing.T) {
	var id transactionrecord.ID
	n, err := fmt.Sscan(genesisID, &id)
	assert.Nil(t, err, "scan error")
	assert.Equal(t, 1, n, "wrong scan count")
	assert.Equal(t, byte(0x4a), id[0], "wrong first byte")

	assert.Equal(t, genesisID, fmt.Sprintf("%s", id), "wrong %%s")
	assert.Equal(t, genesisID, fmt.Sprintf("%v", id), "wrong %%v")
	assert.Equal(t, "<txid:"+genesisID+">", fmt.Sprintf("%#v", id), "wrong %%#v")

	buffer, err := json.Marshal(id)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `"`+genesisID+`"`, string(buffer), "wrong JSON")

	var back transactionrecord.ID
	err = json.Unmarshal(buffer, &back)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, id, back, "wrong unmarshal")
}

func TestInvalidIDs(t *testing.T) {
	invalid := []string{
		"",
		"4a",  // one byte
		"4a5", // odd number of chars
		"4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda3",     // one byte short
		"4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b00", // one byte over
		"4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdedax3b",   // invalid hex char x
	}

	for i, text := range invalid {
		var id transactionrecord.ID
		n, err := fmt.Sscan(text, &id)
		assert.Equal(t, fault.ErrNotTransactionID, err, "%d: %q: wrong error", i, text)
		assert.Equal(t, 0, n, "%d: %q: wrong scan count", i, text)

		err = id.UnmarshalText([]byte(text))
		assert.NotNil(t, err, "%d: %q: unmarshal accepted", i, text)
	}
}
