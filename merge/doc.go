// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package merge - combine several transactions into one
//
// Signed merges a list of transactions that share the same inputs
// and outputs, collecting the signatures of every participant.
//
// Unsigned merges a list of independently authored transactions
// into one whose inputs and outputs are the union of theirs, with
// all signatures removed and the order of inputs and outputs
// randomised.
//
// Neither operation modifies its arguments and on error no
// transaction is returned.
package merge
