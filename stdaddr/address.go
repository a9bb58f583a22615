// Copyright (c) 2015-2020 The Decred developers
// Copyright (c) 2024 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stdaddr implements the textual address codec for standard Bitcoin
// output scripts: turning a scriptPubKey into the address(es) that spend
// it, and turning an address back into the scriptPubKey it represents.
package stdaddr

import (
	"bytes"
	"strings"

	"github.com/zackgall/btcaddr/base58"
	"github.com/zackgall/btcaddr/bech32"
	"github.com/zackgall/btcaddr/chaincfg"
	"github.com/zackgall/btcaddr/txscript"
)

// base58PayloadLen is the length, in bytes, of a Base58Check address payload
// once its one-byte network prefix is stripped: a single RIPEMD160(SHA256())
// hash.
const base58PayloadLen = 20

// maxWitnessProgramLen is the largest program size, in bytes, any witness
// version may carry per BIP141/BIP350.
const maxWitnessProgramLen = 40

func byteWord(n int) string {
	if n == 1 {
		return "byte"
	}
	return "bytes"
}

// encodeBase58Address Base58Check-encodes a prefix followed by payload.
func encodeBase58Address(prefix, payload []byte) string {
	data := make([]byte, 0, len(prefix)+len(payload))
	data = append(data, prefix...)
	data = append(data, payload...)
	return base58.CheckEncode(data)
}

// encodeSegwitAddress converts program to 5-bit groups and Bech32(m)-encodes
// it behind a leading witness-version symbol.
func encodeSegwitAddress(enc bech32.Encoding, hrp string, version byte, program []byte) (string, error) {
	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", err
	}
	data := make([]byte, 0, len(converted)+1)
	data = append(data, version)
	data = append(data, converted...)
	return bech32.Encode(enc, hrp, data)
}

// ExtractDestinations classifies pkScript and returns the textual
// address(es) that can spend it along with whether extraction succeeded.
//
// The returned bool is NOT simply "len(addresses) > 0": a Multisig script
// always reports false here even when one or more addresses were
// successfully extracted into the returned slice, because a multisig output
// is spent by more than one key and no single address represents it.
// Callers that care about the Multisig case must inspect the returned
// slice directly rather than trust the status alone.
func ExtractDestinations(pkScript []byte, params *chaincfg.Params) (bool, []string) {
	class, solutions := txscript.Solver(pkScript)

	pubKeyPrefix := params.Base58Prefixes[chaincfg.PubKeyAddrID]
	scriptPrefix := params.Base58Prefixes[chaincfg.ScriptAddrID]

	switch class {
	case txscript.PubKeyTy:
		if len(solutions[0]) == 0 {
			return false, nil
		}
		// Preserves the non-standard behavior of encoding the full
		// pubkey bytes behind the pubkey-hash prefix, rather than
		// hashing the pubkey first.
		return true, []string{encodeBase58Address(pubKeyPrefix, solutions[0])}

	case txscript.PubKeyHashTy:
		return true, []string{encodeBase58Address(pubKeyPrefix, solutions[0][:base58PayloadLen])}

	case txscript.ScriptHashTy:
		return true, []string{encodeBase58Address(scriptPrefix, solutions[0][:base58PayloadLen])}

	case txscript.WitnessV0KeyHashTy:
		addr, err := encodeSegwitAddress(bech32.Bech32, params.Bech32HRPSegwit, 0, solutions[0])
		if err != nil {
			return false, nil
		}
		return true, []string{addr}

	case txscript.WitnessV0ScriptHashTy:
		addr, err := encodeSegwitAddress(bech32.Bech32, params.Bech32HRPSegwit, 0, solutions[0])
		if err != nil {
			return false, nil
		}
		return true, []string{addr}

	case txscript.WitnessV1TaprootTy:
		addr, err := encodeSegwitAddress(bech32.Bech32m, params.Bech32HRPSegwit, 1, solutions[0])
		if err != nil {
			return false, nil
		}
		return true, []string{addr}

	case txscript.WitnessUnknownTy:
		version := int(solutions[0][0])
		program := solutions[1]
		if version < 1 || version > 16 || len(program) < 2 || len(program) > maxWitnessProgramLen {
			return false, nil
		}
		addr, err := encodeSegwitAddress(bech32.Bech32m, params.Bech32HRPSegwit, byte(version), program)
		if err != nil {
			return false, nil
		}
		return true, []string{addr}

	case txscript.MultiSigTy:
		// solutions is [required, pubkey..., numKeys]; only the
		// pubkeys in between are addresses.
		var addrs []string
		for _, pubKey := range solutions[1 : len(solutions)-1] {
			if len(pubKey) == 0 {
				continue
			}
			addrs = append(addrs, encodeBase58Address(pubKeyPrefix, pubKey))
		}
		// Status is false here even though addrs may be non-empty —
		// a multisig script does not reduce to a single destination.
		return false, addrs
	}

	return false, nil
}

// isBech32Address reports whether addr's prefix, case-folded, matches the
// network's Bech32 human-readable part. This can be false for a string that
// is itself valid Bech32 for a different network.
func isBech32Address(addr string, params *chaincfg.Params) bool {
	hrp := params.Bech32HRPSegwit
	if len(addr) < len(hrp) {
		return false
	}
	return strings.EqualFold(addr[:len(hrp)], hrp)
}

// DecodeDestination parses a textual address and returns the scriptPubKey
// it represents for the given network. The returned error's Description,
// when non-nil, is part of this package's public contract — callers may
// display it directly to a user.
func DecodeDestination(addr string, params *chaincfg.Params) ([]byte, error) {
	pubKeyPrefix := params.Base58Prefixes[chaincfg.PubKeyAddrID]
	scriptPrefix := params.Base58Prefixes[chaincfg.ScriptAddrID]
	isBech32 := isBech32Address(addr, params)

	if !isBech32 {
		if data, err := base58.CheckDecode(addr, 21); err == nil {
			if len(data) == base58PayloadLen+len(pubKeyPrefix) && bytes.HasPrefix(data, pubKeyPrefix) {
				hash := data[len(pubKeyPrefix):]
				script := make([]byte, 0, 25)
				script = append(script, txscript.OP_DUP, txscript.OP_HASH160, txscript.EncodePushBytesN(20))
				script = append(script, hash...)
				script = append(script, txscript.OP_EQUALVERIFY, txscript.OP_CHECKSIG)
				return script, nil
			}
			if len(data) == base58PayloadLen+len(scriptPrefix) && bytes.HasPrefix(data, scriptPrefix) {
				hash := data[len(scriptPrefix):]
				script := make([]byte, 0, 23)
				script = append(script, txscript.OP_HASH160, txscript.EncodePushBytesN(20))
				script = append(script, hash...)
				script = append(script, txscript.OP_EQUAL)
				return script, nil
			}

			if (len(data) >= len(scriptPrefix) && bytes.HasPrefix(data, scriptPrefix)) ||
				(len(data) >= len(pubKeyPrefix) && bytes.HasPrefix(data, pubKeyPrefix)) {
				return nil, addrError(ErrInvalidBase58Length, "Invalid length for Base58 address (P2PKH or P2SH)")
			}
			return nil, addrError(ErrUnsupportedBase58, "Invalid or unsupported Base58-encoded address.")
		}

		// Fall back to a plain (non-checksummed) decode with a much
		// larger length bound to distinguish "not Base58 at all" from
		// "valid Base58 but the checksum or length didn't work out".
		const maxUncheckedPayloadLen = 100
		if decoded, err := base58.Decode(addr); err != nil || len(decoded) > maxUncheckedPayloadLen {
			return nil, addrError(ErrUnsupportedEncoding, "Invalid or unsupported Segwit (Bech32) or Base58 encoding.")
		}
		return nil, addrError(ErrInvalidBase58Checksum, "Invalid checksum or length of Base58 address (P2PKH or P2SH)")
	}

	enc, hrp, data, err := bech32.Decode(addr)
	if err != nil {
		return nil, addrError(ErrUnsupportedEncoding, "Invalid or unsupported Segwit (Bech32) or Base58 encoding.")
	}
	if len(data) == 0 {
		return nil, addrError(ErrEmptyBech32Data, "Empty Bech32 data section")
	}
	if hrp != params.Bech32HRPSegwit {
		return nil, addrError(ErrWrongBech32HRP,
			"Invalid or unsupported prefix for Segwit (Bech32) address (expected %s, got %s).",
			params.Bech32HRPSegwit, hrp)
	}

	version := int(data[0])
	if version == 0 && enc != bech32.Bech32 {
		return nil, addrError(ErrWitnessV0RequiresBech32, "Version 0 witness address must use Bech32 checksum")
	}
	if version != 0 && enc != bech32.Bech32m {
		return nil, addrError(ErrWitnessV1PlusRequiresBech32m, "Version 1+ witness address must use Bech32m checksum")
	}

	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return nil, addrError(ErrInvalidBech32Padding, "Invalid padding in Bech32 data section")
	}

	if version == 0 {
		switch len(program) {
		case 20, 32:
			script := make([]byte, 0, len(program)+2)
			script = append(script, txscript.OP_0, txscript.EncodePushBytesN(len(program)))
			script = append(script, program...)
			return script, nil
		default:
			return nil, addrError(ErrInvalidWitnessV0Size,
				"Invalid Bech32 v0 address program size (%d %s), per BIP141", len(program), byteWord(len(program)))
		}
	}

	if version == 1 && len(program) == 32 {
		script := make([]byte, 0, 34)
		script = append(script, txscript.OP_1, txscript.EncodePushBytesN(32))
		script = append(script, program...)
		return script, nil
	}

	if version > 16 {
		return nil, addrError(ErrInvalidWitnessVersion, "Invalid Bech32 address witness version")
	}

	if len(program) < 2 || len(program) > maxWitnessProgramLen {
		return nil, addrError(ErrInvalidWitnessProgramSize,
			"Invalid Bech32 address program size (%d %s)", len(program), byteWord(len(program)))
	}

	// Preserved from the reference implementation: versions 2-16 (and
	// version 1 with a program other than 32 bytes) are encoded WITHOUT a
	// length-push opcode ahead of the program bytes, unlike the version 0
	// and 32-byte version 1 cases above. A script produced here will
	// not re-classify correctly through Solver, since Solver expects the
	// push opcode's declared length to match the remaining bytes.
	script := make([]byte, 0, len(program)+1)
	script = append(script, txscript.EncodeOpN(version))
	script = append(script, program...)
	return script, nil
}

// IsValid reports whether addr is a syntactically and structurally valid
// address for the given network. It performs no destination extraction and
// returns no diagnostic — use DecodeDestination for that.
func IsValid(addr string, params *chaincfg.Params) bool {
	if addr == "" {
		return false
	}

	pubKeyPrefix := params.Base58Prefixes[chaincfg.PubKeyAddrID]
	scriptPrefix := params.Base58Prefixes[chaincfg.ScriptAddrID]
	isBech32 := isBech32Address(addr, params)

	if !isBech32 {
		data, err := base58.CheckDecode(addr, 21)
		if err != nil {
			return false
		}
		if len(data) == base58PayloadLen+len(pubKeyPrefix) && bytes.HasPrefix(data, pubKeyPrefix) {
			return true
		}
		if len(data) == base58PayloadLen+len(scriptPrefix) && bytes.HasPrefix(data, scriptPrefix) {
			return true
		}
		return false
	}

	enc, hrp, data, err := bech32.Decode(addr)
	if err != nil || len(data) == 0 || hrp != params.Bech32HRPSegwit {
		return false
	}

	version := int(data[0])
	if version == 0 && enc != bech32.Bech32 {
		return false
	}
	if version != 0 && enc != bech32.Bech32m {
		return false
	}

	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return false
	}

	if version == 0 {
		return len(program) == 20 || len(program) == 32
	}
	if version == 1 && len(program) == 32 {
		return true
	}
	return version <= 16 && len(program) >= 2 && len(program) <= maxWitnessProgramLen
}
