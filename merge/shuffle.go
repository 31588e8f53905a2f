// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merge

import (
	"math/rand"
	"time"
)

// Shuffler - source of random permutations
//
// *rand.Rand satisfies this
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewShuffler - a pseudo-random shuffler
//
// a zero seed selects a seed from the clock
func NewShuffler(seed int64) Shuffler {
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
