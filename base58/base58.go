// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2024 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package base58 implements Base58 and Base58Check encoding, as used by
// legacy Bitcoin addresses. The plain Base58 alphabet codec is delegated to
// github.com/decred/base58; this package adds the SHA-256d checksum framing
// Bitcoin's wire format requires on top of it.
package base58

import (
	"crypto/sha256"

	dcrbase58 "github.com/decred/base58"
)

// checksumLen is the number of bytes appended to a Base58Check payload.
const checksumLen = 4

// Encode encodes b using the standard 58-character Bitcoin alphabet, mapping
// each leading zero byte to a leading '1' character.
func Encode(b []byte) string {
	return dcrbase58.Encode(b)
}

// Decode decodes a Base58 string using the standard alphabet. It returns nil
// and ErrInvalidFormat if s contains a character outside the alphabet.
func Decode(s string) ([]byte, error) {
	decoded := dcrbase58.Decode(s)
	// The underlying codec signals an invalid character with an empty
	// result; any non-empty valid string decodes to at least one byte.
	if len(decoded) == 0 && s != "" {
		return nil, ErrInvalidFormat
	}
	return decoded, nil
}

// doubleSHA256 returns SHA-256(SHA-256(b)).
func doubleSHA256(b []byte) [sha256.Size]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

// CheckEncode encodes payload as payload || first4(SHA256(SHA256(payload))),
// Base58-encoded. The caller is responsible for having already prepended any
// network version prefix to payload.
func CheckEncode(payload []byte) string {
	checksum := doubleSHA256(payload)
	full := make([]byte, 0, len(payload)+checksumLen)
	full = append(full, payload...)
	full = append(full, checksum[:checksumLen]...)
	return Encode(full)
}

// CheckDecode decodes a Base58Check string, verifies its trailing 4-byte
// double-SHA-256 checksum, and returns the payload with the checksum
// stripped. It fails if s contains an invalid character, if the decoded
// payload (after stripping the checksum) is longer than maxPayloadLen, or if
// the checksum does not match.
func CheckDecode(s string, maxPayloadLen int) ([]byte, error) {
	decoded, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(decoded) < checksumLen {
		return nil, ErrInvalidFormat
	}

	payload := decoded[:len(decoded)-checksumLen]
	if len(payload) > maxPayloadLen {
		return nil, ErrInvalidFormat
	}

	checksum := doubleSHA256(payload)
	for i := 0; i < checksumLen; i++ {
		if decoded[len(payload)+i] != checksum[i] {
			return nil, ErrChecksum
		}
	}

	return payload, nil
}
