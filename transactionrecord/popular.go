// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"sort"
)

// MostPopularOutput - guess the shared payment amount
//
// outputs are grouped by value and the value with the highest count
// wins; on a tie the rounder value (more trailing decimal zeros) wins
// and values that are equally round resolve to the larger one.
// Returns the value and the number of outputs carrying it, or 0, 0
// for a transaction with no outputs.
func (tx *Transaction) MostPopularOutput() (uint64, int) {
	counts := make(map[uint64]int)
	for _, out := range tx.Outputs {
		counts[out.Value] += 1
	}

	values := make([]uint64, 0, len(counts))
	for value := range counts {
		values = append(values, value)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	maxValue := uint64(0)
	maxCount := 0
	for _, value := range values {
		count := counts[value]
		switch {
		case count > maxCount:
			maxValue, maxCount = value, count
		case count < maxCount:
			// keep current
		default:
			maxValue = rounder(maxValue, value)
		}
	}
	return maxValue, maxCount
}

// tie-break between two values with the same count
//
// both are divided by ten while both remain multiples of ten; the one
// that stops being a multiple first loses, and if both stop together
// the candidate wins
func rounder(current uint64, candidate uint64) uint64 {
	if 0 == current && 0 == candidate {
		return 0 // degenerate: cannot occur with distinct grouped values
	}

	currentScan := current
	candidateScan := candidate
	for 0 == currentScan%10 && 0 == candidateScan%10 {
		currentScan /= 10
		candidateScan /= 10
	}
	if 0 == currentScan%10 {
		return current
	}
	return candidate
}
