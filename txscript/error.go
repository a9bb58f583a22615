// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Copyright (c) 2024 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "errors"

// ErrScriptUnderflow is returned by ReadOp when a push opcode's declared
// length runs past the end of the script.
var ErrScriptUnderflow = errors.New("script ended before expected push data")
