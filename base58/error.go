// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2024 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import "errors"

var (
	// ErrChecksum indicates that the checksum of a check-encoded string
	// does not verify against the checksum.
	ErrChecksum = errors.New("checksum error")

	// ErrInvalidFormat indicates that the check-encoded string has an
	// invalid format: it contains a character outside the Base58
	// alphabet, it decodes to fewer bytes than a checksum requires, or its
	// payload is longer than the caller's bound.
	ErrInvalidFormat = errors.New("invalid format: version and/or checksum bytes missing")
)
