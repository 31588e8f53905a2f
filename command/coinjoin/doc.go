// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// coinjoin - merge raw transactions from several participants
//
// transactions are read as hex, one per line, until a blank line or
// end of file.  merge-unsigned builds the joint transaction from each
// participant's unsigned transaction; after every participant has
// signed the joint transaction merge-signed collects the signatures.
//
// an optional Lua configuration file selects the digest, the byte
// order of fixed width fields, the shuffle seed and logging, e.g.:
//
//   local M = {}
//   M.data_directory = "."
//   M.digest = "sha256"
//   M.byte_order = "big"
//   M.seed = 0
//   M.units = 100000000
//   M.logging = {
//       directory = "log",
//       file = "coinjoin.log",
//       size = 1048576,
//       count = 10,
//       console = false,
//       levels = {
//           DEFAULT = "critical",
//           merge = "info",
//       },
//   }
//   return M
package main
