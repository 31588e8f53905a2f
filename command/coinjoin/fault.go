// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/coinjoin/fault"
)

// common errors - keep in alphabetic order
const (
	ErrDecodeFailed     = fault.InvalidError("Failed to decode transaction.")
	ErrInvalidUnits     = fault.InvalidError("units must be greater than zero")
	ErrMergeFailed      = fault.ProcessError("Failed to merge transactions.")
	ErrNotDataDirectory = fault.InvalidError("data directory is not a directory")
	ErrNotPlainFileName = fault.InvalidError("log file is not a plain name")
)
