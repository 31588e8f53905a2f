// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"strings"

	"github.com/bitmark-inc/coinjoin/fault"
)

// byte orders used for fixed width integers
var (
	// ParseOrder - order used by NewReader for fixed width fields
	ParseOrder binary.ByteOrder = binary.BigEndian

	// EncodeOrder - order used by all encoders for fixed width fields
	EncodeOrder binary.ByteOrder = binary.LittleEndian
)

// OrderFromName - convert a configuration name to a byte order
//
// accepts: big, big-endian, little, little-endian (case insensitive)
func OrderFromName(name string) (binary.ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "big", "big-endian", "bigendian", "be":
		return binary.BigEndian, nil
	case "little", "little-endian", "littleendian", "le":
		return binary.LittleEndian, nil
	default:
		return nil, fault.ErrInvalidByteOrder
	}
}
