// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package display

import (
	"encoding/json"
	"io"
)

// JSON - write a message as two space indented JSON and a newline
//
// nothing is written if the message cannot be marshalled
func JSON(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	_, err = handle.Write(append(b, '\n'))
	return err
}
