// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire - primitive codec for raw transactions
//
// decoding runs over a forward-only Reader that yields fixed width
// integers, VarInts and fixed length byte strings; encoding appends
// the same primitives to a growable buffer and cannot fail
//
// byte order contract:
//
//   primitive        decode (Reader)       encode (Builder)
//   ---------------  --------------------  ------------------
//   fixed uint32     ParseOrder  (big)     EncodeOrder (little)
//   fixed uint64     ParseOrder  (big)     EncodeOrder (little)
//   VarInt payload   little endian         little endian
//   byte string      verbatim              verbatim
//
// the fixed width asymmetry is part of the modelled wire format, a
// Reader created with NewReaderOrder(b, EncodeOrder) reads back
// exactly what a Builder wrote
package wire
