// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// Builder - owns a growable buffer for chained encoding
//
// e.g.
//   b := wire.NewBuilder(64).AppendUint32(1).AppendVarInt(2)
//   record := b.Bytes()
type Builder struct {
	buffer []byte
}

// NewBuilder - create a builder with an initial capacity
func NewBuilder(capacity int) *Builder {
	if capacity < 0 {
		capacity = 0
	}
	return &Builder{
		buffer: make([]byte, 0, capacity),
	}
}

// AppendUint32 - append a fixed width integer in EncodeOrder
func (b *Builder) AppendUint32(value uint32) *Builder {
	b.buffer = EncodeU32LE(b.buffer, value)
	return b
}

// AppendUint64 - append a fixed width integer in EncodeOrder
func (b *Builder) AppendUint64(value uint64) *Builder {
	b.buffer = EncodeU64LE(b.buffer, value)
	return b
}

// AppendVarInt - append a VarInt
func (b *Builder) AppendVarInt(value uint64) *Builder {
	b.buffer = EncodeVarInt(b.buffer, value)
	return b
}

// AppendBytes - append bytes verbatim (no length prefix)
func (b *Builder) AppendBytes(data []byte) *Builder {
	b.buffer = append(b.buffer, data...)
	return b
}

// AppendVarBytes - append VarInt(len(data)) followed by data
func (b *Builder) AppendVarBytes(data []byte) *Builder {
	return b.AppendVarInt(uint64(len(data))).AppendBytes(data)
}

// Len - number of bytes encoded so far
func (b *Builder) Len() int {
	return len(b.buffer)
}

// Bytes - the encoded bytes, sharing the builder's buffer
func (b *Builder) Bytes() []byte {
	return b.buffer
}
