// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/bitmark-inc/coinjoin/fault"
)

// the classes of token a Reader can decode
type kindClass int

const (
	fixedUint32Class kindClass = iota
	fixedUint64Class kindClass = iota
	varIntClass      kindClass = iota
	fixedBytesClass  kindClass = iota
)

// Kind - selects what Decode will consume
type Kind struct {
	class kindClass
	width uint64
}

// the integer kinds
var (
	FixedUint32 = Kind{class: fixedUint32Class}
	FixedUint64 = Kind{class: fixedUint64Class}
	VarInt      = Kind{class: varIntClass}
)

// FixedBytes - kind for exactly n verbatim bytes
func FixedBytes(n uint64) Kind {
	return Kind{class: fixedBytesClass, width: n}
}

// String - name of a kind for diagnostics
func (kind Kind) String() string {
	switch kind.class {
	case fixedUint32Class:
		return "FixedUint32"
	case fixedUint64Class:
		return "FixedUint64"
	case varIntClass:
		return "VarInt"
	case fixedBytesClass:
		return fmt.Sprintf("FixedBytes(%d)", kind.width)
	default:
		return "*Unknown*"
	}
}

// Token - result of a Decode
//
// integer kinds fill Integer, FixedBytes fills Bytes
type Token struct {
	Integer uint64
	Bytes   []byte
}

// Reader - forward-only cursor over a byte slice
type Reader struct {
	buffer []byte
	offset int
	order  binary.ByteOrder
}

// NewReader - create a reader using ParseOrder for fixed width integers
func NewReader(buffer []byte) *Reader {
	return NewReaderOrder(buffer, ParseOrder)
}

// NewReaderOrder - create a reader with an explicit fixed width byte order
func NewReaderOrder(buffer []byte, order binary.ByteOrder) *Reader {
	if nil == order {
		order = ParseOrder
	}
	return &Reader{
		buffer: buffer,
		offset: 0,
		order:  order,
	}
}

// Offset - number of bytes consumed so far
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining - number of bytes not yet consumed
func (r *Reader) Remaining() int {
	return len(r.buffer) - r.offset
}

// Decode - consume one token of the given kind
//
// on failure the cursor is not advanced
func (r *Reader) Decode(kind Kind) (Token, error) {
	switch kind.class {
	case fixedUint32Class:
		n, err := r.ReadUint32()
		return Token{Integer: uint64(n)}, err
	case fixedUint64Class:
		n, err := r.ReadUint64()
		return Token{Integer: n}, err
	case varIntClass:
		n, err := r.ReadVarInt()
		return Token{Integer: n}, err
	case fixedBytesClass:
		b, err := r.ReadBytes(kind.width)
		return Token{Bytes: b}, err
	default:
		return Token{}, fault.ErrInvalidKind
	}
}

// ReadUint32 - consume a 4 byte integer
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.take(4)
	if nil != err {
		return 0, err
	}
	return r.order.Uint32(b), nil
}

// ReadUint64 - consume an 8 byte integer
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.take(8)
	if nil != err {
		return 0, err
	}
	return r.order.Uint64(b), nil
}

// ReadVarInt - consume a VarInt (payload always little endian)
func (r *Reader) ReadVarInt() (uint64, error) {
	value, n := FromVarInt(r.buffer[r.offset:])
	if 0 == n {
		return 0, fault.ErrTruncated
	}
	r.offset += n
	return value, nil
}

// ReadBytes - consume exactly n bytes
//
// the result is a copy and never shares the underlying array of the
// reader's buffer
func (r *Reader) ReadBytes(n uint64) ([]byte, error) {
	b, err := r.take(n)
	if nil != err {
		return nil, err
	}
	result := make([]byte, len(b))
	copy(result, b)
	return result, nil
}

// slice off the next n bytes
func (r *Reader) take(n uint64) ([]byte, error) {
	if n > uint64(r.Remaining()) {
		return nil, fault.ErrTruncated
	}
	start := r.offset
	r.offset += int(n)
	return r.buffer[start:r.offset], nil
}
