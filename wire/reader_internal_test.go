// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/coinjoin/fault"
)

func TestDecodeUnknownKind(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8})

	unknown := Kind{class: fixedBytesClass + 1, width: 4}
	token, err := r.Decode(unknown)
	assert.Equal(t, fault.ErrInvalidKind, err, "wrong error")
	assert.Equal(t, Token{}, token, "wrong token")
	assert.Equal(t, 0, r.Offset(), "cursor moved")
	assert.Equal(t, "*Unknown*", unknown.String(), "wrong name")
}
