// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

// a state type for the parser
type state int

// states of the parser; each non-terminal state consumes one token
const (
	stateReadVersion          state = iota
	stateReadInputCount       state = iota
	stateReadTxinHash         state = iota
	stateReadTxinIndex        state = iota
	stateReadTxinScriptSigLen state = iota
	stateReadTxinScriptSig    state = iota
	stateReadTxinSequence     state = iota
	stateReadOutputCount      state = iota
	stateReadTxoutValue       state = iota
	stateReadTxoutScriptLen   state = iota
	stateReadTxoutScript      state = iota
	stateReadLockTime         state = iota

	// terminal states
	stateError state = iota
	stateDone  state = iota
)

func (state state) String() string {
	switch state {
	case stateReadVersion:
		return "ReadVersion"
	case stateReadInputCount:
		return "ReadInputCount"
	case stateReadTxinHash:
		return "ReadTxinHash"
	case stateReadTxinIndex:
		return "ReadTxinIndex"
	case stateReadTxinScriptSigLen:
		return "ReadTxinScriptSigLen"
	case stateReadTxinScriptSig:
		return "ReadTxinScriptSig"
	case stateReadTxinSequence:
		return "ReadTxinSequence"
	case stateReadOutputCount:
		return "ReadOutputCount"
	case stateReadTxoutValue:
		return "ReadTxoutValue"
	case stateReadTxoutScriptLen:
		return "ReadTxoutScriptLen"
	case stateReadTxoutScript:
		return "ReadTxoutScript"
	case stateReadLockTime:
		return "ReadLockTime"
	case stateError:
		return "Error"
	case stateDone:
		return "Done"
	default:
		return "*Unknown*"
	}
}
