// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// VarIntMaximumBytes - maximum possible number of bytes in a VarInt
const VarIntMaximumBytes = 9

// prefix bytes selecting a wider payload
const (
	varInt16Prefix = 0xfd
	varInt32Prefix = 0xfe
	varInt64Prefix = 0xff
)

// EncodeVarInt - append a VarInt to a buffer
//
// Structure of the result
//   0x00 .. 0xfc               single byte value
//   0xfd  B0 B1                16 bit little endian
//   0xfe  B0 B1 B2 B3          32 bit little endian
//   0xff  B0 B1 B2 … B7        64 bit little endian
func EncodeVarInt(buffer []byte, value uint64) []byte {
	switch {
	case value < varInt16Prefix:
		return append(buffer, byte(value))
	case value <= 0xffff:
		return append(buffer, varInt16Prefix, byte(value), byte(value>>8))
	case value <= 0xffffffff:
		buffer = append(buffer, varInt32Prefix)
		return EncodeU32LE(buffer, uint32(value))
	default:
		buffer = append(buffer, varInt64Prefix)
		return EncodeU64LE(buffer, value)
	}
}

// ToVarInt - convert a 64 bit unsigned integer to a VarInt
func ToVarInt(value uint64) []byte {
	return EncodeVarInt(make([]byte, 0, VarIntMaximumBytes), value)
}

// VarIntSize - number of bytes EncodeVarInt will append for value
func VarIntSize(value uint64) int {
	switch {
	case value < varInt16Prefix:
		return 1
	case value <= 0xffff:
		return 3
	case value <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// FromVarInt - convert the VarInt at the start of a buffer to a uint64
//
// also return the number of bytes used as second value
// returns 0, 0 if the VarInt buffer is truncated
//
// non-minimal encodings (e.g. 0xfd 0x01 0x00) are accepted
func FromVarInt(buffer []byte) (uint64, int) {
	if 0 == len(buffer) {
		return 0, 0
	}

	width := 0
	switch buffer[0] {
	case varInt16Prefix:
		width = 2
	case varInt32Prefix:
		width = 4
	case varInt64Prefix:
		width = 8
	default:
		return uint64(buffer[0]), 1
	}

	if len(buffer) < 1+width {
		return 0, 0
	}

	// payload is little endian, most significant byte last
	value := uint64(0)
	for i := width; i > 0; i -= 1 {
		value = value<<8 | uint64(buffer[i])
	}
	return value, 1 + width
}

// EncodeU32LE - append a little endian 32 bit unsigned integer
func EncodeU32LE(buffer []byte, value uint32) []byte {
	return append(buffer,
		byte(value),
		byte(value>>8),
		byte(value>>16),
		byte(value>>24),
	)
}

// EncodeU64LE - append a little endian 64 bit unsigned integer
func EncodeU64LE(buffer []byte, value uint64) []byte {
	return append(buffer,
		byte(value),
		byte(value>>8),
		byte(value>>16),
		byte(value>>24),
		byte(value>>32),
		byte(value>>40),
		byte(value>>48),
		byte(value>>56),
	)
}
