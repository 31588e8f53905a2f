// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest - the 256 bit hash primitive behind transaction identities
//
// callers receive a Digester so that tests can substitute a stub
package digest
