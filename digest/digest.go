// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/coinjoin/fault"
)

//go:generate mockgen -destination=mocks/digester.go -package=mocks github.com/bitmark-inc/coinjoin/digest Digester

// Length - number of bytes in the digest
const Length = 32

// names accepted by ByName
const (
	SHA256Name = "sha256"
	SHA3Name   = "sha3-256"
)

// Digest - a raw digest value in the order the hash function produced it
// to convert to bytes just use d[:]
type Digest [Length]byte

// Digester - a single application of a 256 bit hash function
type Digester interface {
	Digest(record []byte) Digest
}

// SHA256 - single SHA-256
type SHA256 struct{}

// Digest - compute SHA-256 of a record
func (SHA256) Digest(record []byte) Digest {
	return Digest(chainhash.HashH(record))
}

// SHA3 - single SHA3-256
type SHA3 struct{}

// Digest - compute SHA3-256 of a record
func (SHA3) Digest(record []byte) Digest {
	return Digest(sha3.Sum256(record))
}

// ByName - select a digester from its configuration name
func ByName(name string) (Digester, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SHA256Name, "sha-256":
		return SHA256{}, nil
	case SHA3Name, "sha3":
		return SHA3{}, nil
	default:
		return nil, fault.ErrUnknownDigest
	}
}

// Double - apply a digester twice
func Double(d Digester, record []byte) Digest {
	first := d.Digest(record)
	return d.Digest(first[:])
}

// Reversed - return a reversed byte order copy of a digest
func (digest Digest) Reversed() Digest {
	var result Digest
	for i := 0; i < Length; i += 1 {
		result[i] = digest[Length-1-i]
	}
	return result
}

// String - convert a binary digest to hex string for use by the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - convert a binary digest to hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<digest:" + hex.EncodeToString(digest[:]) + ">"
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(digest))
	buffer := make([]byte, size)
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if len(digest) != hex.DecodedLen(len(s)) {
		return fault.ErrNotDigest
	}
	byteCount, err := hex.Decode(digest[:], s)
	if nil != err {
		return fault.ErrNotDigest
	}
	if Length != byteCount {
		return fault.ErrNotDigest
	}
	return nil
}
