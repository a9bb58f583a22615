// Copyright (c) 2015-2020 The Decred developers
// Copyright (c) 2024 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdaddr

import "fmt"

// ErrorKind identifies a kind of error. It can be used to programmatically
// determine whether a given error is a specific kind of address-decoding
// failure through errors.Is.
type ErrorKind string

// These constants are used to identify a specific DecodeDestination error.
const (
	// ErrInvalidBase58Length indicates a Base58Check-decoded address whose
	// payload length does not match either the pubkey-hash or script-hash
	// prefix for the requested network.
	ErrInvalidBase58Length = ErrorKind("ErrInvalidBase58Length")

	// ErrUnsupportedBase58 indicates a string that is valid Base58Check but
	// whose prefix matches neither the pubkey-hash nor script-hash prefix
	// of the requested network.
	ErrUnsupportedBase58 = ErrorKind("ErrUnsupportedBase58")

	// ErrInvalidBase58Checksum indicates a string that parses as Base58
	// but fails Base58Check's checksum, or is the wrong length once
	// checksum-stripped.
	ErrInvalidBase58Checksum = ErrorKind("ErrInvalidBase58Checksum")

	// ErrUnsupportedEncoding indicates a string that is neither valid
	// Bech32/Bech32m nor valid Base58.
	ErrUnsupportedEncoding = ErrorKind("ErrUnsupportedEncoding")

	// ErrEmptyBech32Data indicates a syntactically valid Bech32 string
	// whose data section is empty.
	ErrEmptyBech32Data = ErrorKind("ErrEmptyBech32Data")

	// ErrWrongBech32HRP indicates a Bech32 string whose human-readable
	// part does not match the requested network.
	ErrWrongBech32HRP = ErrorKind("ErrWrongBech32HRP")

	// ErrInvalidBech32Padding indicates a Bech32 data section whose 5-bit
	// groups do not convert cleanly back to whole bytes.
	ErrInvalidBech32Padding = ErrorKind("ErrInvalidBech32Padding")

	// ErrInvalidWitnessV0Size indicates a version-0 witness program whose
	// decoded length is neither 20 nor 32 bytes.
	ErrInvalidWitnessV0Size = ErrorKind("ErrInvalidWitnessV0Size")

	// ErrWitnessV0RequiresBech32 indicates a witness version 0 program
	// encoded with the Bech32m checksum instead of Bech32.
	ErrWitnessV0RequiresBech32 = ErrorKind("ErrWitnessV0RequiresBech32")

	// ErrWitnessV1PlusRequiresBech32m indicates a witness version 1 or
	// higher program encoded with the Bech32 checksum instead of Bech32m.
	ErrWitnessV1PlusRequiresBech32m = ErrorKind("ErrWitnessV1PlusRequiresBech32m")

	// ErrInvalidWitnessVersion indicates a decoded witness version outside
	// [0, 16].
	ErrInvalidWitnessVersion = ErrorKind("ErrInvalidWitnessVersion")

	// ErrInvalidWitnessProgramSize indicates a witness version 1-16
	// program (other than a 32-byte version 1 program) whose decoded
	// length falls outside [2, 40].
	ErrInvalidWitnessProgramSize = ErrorKind("ErrInvalidWitnessProgramSize")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error satisfies the error interface and is used to describe errors during
// address decoding in a way that allows the caller to programmatically
// determine the specific failure via errors.Is/errors.As while a human
// reads Description.
type Error struct {
	Err         ErrorKind
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Is implements the interface used by errors.Is to compare this error kind
// against passed error kinds. It lets callers write
// errors.Is(err, stdaddr.ErrInvalidBase58Length).
func (e ErrorKind) Is(target error) bool {
	other, ok := target.(ErrorKind)
	return ok && e == other
}

// Unwrap returns the underlying wrapped error kind, allowing callers to
// inspect the failure reason with errors.Is.
func (e Error) Unwrap() error {
	return e.Err
}

// addrError creates an Error given a set of arguments, formatting the
// description with fmt.Sprintf.
func addrError(kind ErrorKind, desc string, args ...any) Error {
	return Error{Err: kind, Description: fmt.Sprintf(desc, args...)}
}
