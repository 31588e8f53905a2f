// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrDuplicateInput        = InvalidError("duplicate input")
	ErrEmptyInput            = InvalidError("no transactions to merge")
	ErrFieldMismatch         = InvalidError("transaction field mismatch")
	ErrInputMismatch         = InvalidError("transaction input mismatch")
	ErrInvalidByteOrder      = InvalidError("invalid byte order")
	ErrInvalidHexLine        = InvalidError("invalid hex line")
	ErrInvalidKind           = InvalidError("invalid token kind")
	ErrInvalidStructPointer  = ProcessError("invalid struct pointer")
	ErrMalformedTransaction  = RecordError("malformed transaction")
	ErrNotDigest             = InvalidError("not a digest")
	ErrNotTransactionID      = InvalidError("not a transaction id")
	ErrOutputMismatch        = InvalidError("transaction output mismatch")
	ErrTruncated             = LengthError("truncated")
	ErrUnknownDigest         = NotFoundError("unknown digest")
	ErrZeroInputCount        = RecordError("transaction has no inputs")
	ErrZeroOutputCount       = RecordError("transaction has no outputs")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
