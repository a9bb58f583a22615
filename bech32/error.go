// Copyright (c) 2019 The Decred developers
// Copyright (c) 2024 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import "fmt"

// ErrMixedCaseString is returned when the string being decoded/encoded is
// a mix of uppercase and lowercase characters.
type ErrMixedCaseString string

func (e ErrMixedCaseString) Error() string {
	return fmt.Sprintf("string not all lowercase or all uppercase: %q", string(e))
}

// ErrInvalidLength is returned when the length of the string being
// decoded/encoded does not meet the BIP-173 length constraint.
type ErrInvalidLength int

func (e ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid bech32 string length %d", int(e))
}

// ErrInvalidHRPLength is returned when the human-readable part is outside
// the 1..83 character range.
type ErrInvalidHRPLength struct {
	length int
}

func (e ErrInvalidHRPLength) Error() string {
	return fmt.Sprintf("invalid human-readable part length %d", e.length)
}

// ErrInvalidCharacter is returned when the string has a character outside
// the allowed range for either the human-readable part or the data part.
type ErrInvalidCharacter byte

func (e ErrInvalidCharacter) Error() string {
	return fmt.Sprintf("invalid character in string: %q", byte(e))
}

// ErrInvalidSeparatorIndex is returned when the separator character '1' is
// in an invalid position in the bech32 string.
type ErrInvalidSeparatorIndex int

func (e ErrInvalidSeparatorIndex) Error() string {
	return fmt.Sprintf("invalid separator index %d", int(e))
}

// ErrInvalidChecksum is returned when the extracted checksum does not match
// either the Bech32 or Bech32m checksum constant.
type ErrInvalidChecksum struct{}

func (e ErrInvalidChecksum) Error() string {
	return "invalid checksum"
}

// ErrInvalidDataByte is returned by Encode when a data value is not a valid
// 5-bit symbol.
type ErrInvalidDataByte byte

func (e ErrInvalidDataByte) Error() string {
	return fmt.Sprintf("invalid data byte: %v", byte(e))
}

// ErrInvalidEncoding is returned by Encode when asked to produce an encoding
// other than Bech32 or Bech32m.
type ErrInvalidEncoding Encoding

func (e ErrInvalidEncoding) Error() string {
	return fmt.Sprintf("invalid encoding type: %v", Encoding(e))
}

// ErrInvalidBitGroups is returned by ConvertBits when fromBits or toBits is
// outside the 1..8 range.
type ErrInvalidBitGroups struct{}

func (e ErrInvalidBitGroups) Error() string {
	return "only bit groups between 1 and 8 allowed"
}

// ErrInvalidIncompleteGroup is returned by ConvertBits, with pad set to
// false, when the residual bits left over at the end are not a valid
// zero-padded tail.
type ErrInvalidIncompleteGroup struct{}

func (e ErrInvalidIncompleteGroup) Error() string {
	return "invalid incomplete group"
}

// ErrInvalidDataRange is returned by ConvertBits when an input value does
// not fit in fromBits bits.
type ErrInvalidDataRange struct {
	value byte
	bits  uint
}

func (e ErrInvalidDataRange) Error() string {
	return fmt.Sprintf("invalid data range: %v (bits=%v)", e.value, e.bits)
}
