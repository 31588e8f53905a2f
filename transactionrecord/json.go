// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"
	"encoding/json"
)

type jsonTxIn struct {
	PrevHash  Hash   `json:"prev_hash"`
	PrevIndex uint32 `json:"prev_index"`
	ScriptSig string `json:"script_sig"` // hex
	Sequence  uint32 `json:"sequence"`
}

type jsonTxOut struct {
	Value        uint64 `json:"value"`
	ScriptPubKey string `json:"script_pub_key"` // hex
}

type jsonTransaction struct {
	Version  uint32      `json:"version"`
	LockTime uint32      `json:"lock_time"`
	Inputs   []jsonTxIn  `json:"inputs"`
	Outputs  []jsonTxOut `json:"outputs"`
}

// MarshalJSON - display form with scripts as hex
func (tx *Transaction) MarshalJSON() ([]byte, error) {
	j := jsonTransaction{
		Version:  tx.Version,
		LockTime: tx.LockTime,
		Inputs:   make([]jsonTxIn, len(tx.Inputs)),
		Outputs:  make([]jsonTxOut, len(tx.Outputs)),
	}
	for i, in := range tx.Inputs {
		j.Inputs[i] = jsonTxIn{
			PrevHash:  in.PrevHash,
			PrevIndex: in.PrevIndex,
			ScriptSig: hex.EncodeToString(in.ScriptSig),
			Sequence:  in.Sequence,
		}
	}
	for i, out := range tx.Outputs {
		j.Outputs[i] = jsonTxOut{
			Value:        out.Value,
			ScriptPubKey: hex.EncodeToString(out.ScriptPubKey),
		}
	}
	return json.Marshal(j)
}
