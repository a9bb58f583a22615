// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// ScriptClass is an enumeration of the standard output script shapes this
// codec recognizes.
type ScriptClass byte

// Classes of script recognized by Solver. NonStandardTy is the zero value so
// a zeroed ScriptClass reads as "unrecognized" rather than some arbitrary
// standard type.
const (
	NonStandardTy ScriptClass = iota
	PubKeyTy
	PubKeyHashTy
	ScriptHashTy
	MultiSigTy
	NullDataTy
	WitnessV0KeyHashTy
	WitnessV0ScriptHashTy
	WitnessV1TaprootTy
	WitnessUnknownTy
)

var scriptClassToName = [...]string{
	NonStandardTy:         "nonstandard",
	PubKeyTy:              "pubkey",
	PubKeyHashTy:          "pubkeyhash",
	ScriptHashTy:          "scripthash",
	MultiSigTy:            "multisig",
	NullDataTy:            "nulldata",
	WitnessV0KeyHashTy:    "witness_v0_keyhash",
	WitnessV0ScriptHashTy: "witness_v0_scripthash",
	WitnessV1TaprootTy:    "witness_v1_taproot",
	WitnessUnknownTy:      "witness_unknown",
}

// String implements the Stringer interface by returning the name of the
// script class. It returns "invalid" for an out-of-range value.
func (t ScriptClass) String() string {
	if int(t) < 0 || int(t) >= len(scriptClassToName) {
		return "invalid"
	}
	return scriptClassToName[t]
}

// Pubkey size constants. Compressed secp256k1 keys are 33 bytes (a parity
// byte plus the 32-byte X coordinate); uncompressed/hybrid keys are 65
// bytes (a format byte plus both 32-byte coordinates). This codec only ever
// checks that a candidate pubkey has one of these two sizes and a matching
// leading byte — it never touches curve math, per spec.md's scope.
const (
	pubKeyCompressedLen   = 33
	pubKeyUncompressedLen = 65
)

// PubKeyLen returns the expected serialized length for a pubkey whose first
// byte is header, or 0 if header does not identify a known pubkey format.
// This mirrors CPubKey::GetLen from the original implementation, exposed
// here as a standalone helper for callers that want the expected length
// ahead of validating a candidate buffer.
func PubKeyLen(header byte) int {
	switch header {
	case 2, 3:
		return pubKeyCompressedLen
	case 4, 6, 7:
		return pubKeyUncompressedLen
	default:
		return 0
	}
}

// IsValidPubKeySize returns whether pubKey has a well-sized serialized
// public key: compressed (33 bytes, leading byte 2 or 3) or
// uncompressed/hybrid (65 bytes, leading byte 4, 6, or 7). This is a size
// check only — it says nothing about whether the bytes decode to a valid
// point on the curve.
func IsValidPubKeySize(pubKey []byte) bool {
	return len(pubKey) > 0 && PubKeyLen(pubKey[0]) == len(pubKey)
}

// extractScriptHash returns the 20-byte hash from a P2SH fast-path script
// (OP_HASH160 0x14 <20 bytes> OP_EQUAL), or nil if script does not match.
func extractScriptHash(script []byte) []byte {
	if len(script) == 23 &&
		script[0] == OP_HASH160 &&
		script[1] == 0x14 &&
		script[22] == OP_EQUAL {
		return script[2:22]
	}
	return nil
}

// witnessProgram reports whether script has the shape of a witness
// program: a small-integer version opcode followed by a single bare push of
// the remaining bytes, with overall length in [4, 42]. It returns the
// decoded version and the program bytes.
func witnessProgram(script []byte) (version int, program []byte, ok bool) {
	if len(script) < 4 || len(script) > 42 {
		return 0, nil, false
	}
	first := script[0]
	if first != OP_0 && (first < OP_1 || first > OP_16) {
		return 0, nil, false
	}
	if int(script[1])+2 != len(script) {
		return 0, nil, false
	}
	return DecodeOpN(first), script[2:], true
}

// extractPubKey returns the pubkey from a P2PK script (<push 33|65>
// <pubkey> OP_CHECKSIG) with a well-sized pubkey, or nil if script does not
// match.
func extractPubKey(script []byte) []byte {
	matchesShape := func(pushLen int) bool {
		return len(script) == pushLen+2 &&
			script[0] == byte(pushLen) &&
			script[len(script)-1] == OP_CHECKSIG
	}
	switch {
	case matchesShape(pubKeyUncompressedLen):
		pk := script[1 : 1+pubKeyUncompressedLen]
		if IsValidPubKeySize(pk) {
			return pk
		}
	case matchesShape(pubKeyCompressedLen):
		pk := script[1 : 1+pubKeyCompressedLen]
		if IsValidPubKeySize(pk) {
			return pk
		}
	}
	return nil
}

// extractPubKeyHash returns the 20-byte hash from an exact P2PKH script
// (OP_DUP OP_HASH160 0x14 <20 bytes> OP_EQUALVERIFY OP_CHECKSIG), or nil if
// script does not match.
func extractPubKeyHash(script []byte) []byte {
	if len(script) == 25 &&
		script[0] == OP_DUP &&
		script[1] == OP_HASH160 &&
		script[2] == 0x14 &&
		script[23] == OP_EQUALVERIFY &&
		script[24] == OP_CHECKSIG {
		return script[3:23]
	}
	return nil
}

// multiSigDetails holds the parsed components of a standard multisig
// script.
type multiSigDetails struct {
	required int
	pubKeys  [][]byte
	valid    bool
}

// extractMultiSigDetails parses script as a standard multisig script:
// <small int m> <push pubkey>... <small int n> OP_CHECKMULTISIG, with every
// pubkey well-sized, 1 <= m <= n <= 16, and no trailing bytes.
func extractMultiSigDetails(script []byte) multiSigDetails {
	if len(script) < 3 || script[len(script)-1] != OP_CHECKMULTISIG {
		return multiSigDetails{}
	}

	op, _, offset, err := ReadOp(script, 0)
	if err != nil || !IsSmallInteger(op) {
		return multiSigDetails{}
	}
	required := DecodeOpN(op)

	var pubKeys [][]byte
	var lastOp byte
	for offset < len(script) {
		var data []byte
		lastOp, data, offset, err = ReadOp(script, offset)
		if err != nil {
			return multiSigDetails{}
		}
		if IsSmallInteger(lastOp) {
			break
		}
		if !IsValidPubKeySize(data) {
			return multiSigDetails{}
		}
		pubKeys = append(pubKeys, data)
	}

	if !IsSmallInteger(lastOp) {
		return multiSigDetails{}
	}
	numKeys := DecodeOpN(lastOp)
	if numKeys != len(pubKeys) || numKeys < required || numKeys == 0 {
		return multiSigDetails{}
	}

	// The only opcode remaining must be the trailing OP_CHECKMULTISIG
	// already confirmed above.
	if offset != len(script)-1 {
		return multiSigDetails{}
	}

	return multiSigDetails{required: required, pubKeys: pubKeys, valid: true}
}

// Solver classifies a raw output script into a ScriptClass and the byte
// sequences that make up its payload. The shape of the returned solutions
// slice is fixed per class — see spec.md's "Solution payload" table.
//
// Solver never errors: a script that does not match any standard shape
// classifies as NonStandardTy with no solutions. The classification order
// below is significant — earlier rules win when more than one could
// superficially apply (a script that happens to look like both a witness
// program and something else is classified by whichever check runs first).
func Solver(script []byte) (ScriptClass, [][]byte) {
	// P2SH fast path: more constrained than every other shape, so it is
	// checked first to avoid wasted work.
	if hash := extractScriptHash(script); hash != nil {
		return ScriptHashTy, [][]byte{hash}
	}

	if version, program, ok := witnessProgram(script); ok {
		switch {
		case version == 0 && len(program) == 20:
			return WitnessV0KeyHashTy, [][]byte{program}
		case version == 0 && len(program) == 32:
			return WitnessV0ScriptHashTy, [][]byte{program}
		case version == 1 && len(program) == 32:
			return WitnessV1TaprootTy, [][]byte{program}
		case version != 0:
			return WitnessUnknownTy, [][]byte{{byte(version)}, program}
		default:
			// version == 0 with a program length that is neither 20 nor 32.
			return NonStandardTy, nil
		}
	}

	if len(script) >= 1 && script[0] == OP_RETURN && IsPushOnly(script, 1) {
		return NullDataTy, nil
	}

	if pubKey := extractPubKey(script); pubKey != nil {
		return PubKeyTy, [][]byte{pubKey}
	}

	if hash := extractPubKeyHash(script); hash != nil {
		return PubKeyHashTy, [][]byte{hash}
	}

	if details := extractMultiSigDetails(script); details.valid {
		solutions := make([][]byte, 0, len(details.pubKeys)+2)
		solutions = append(solutions, []byte{byte(details.required)})
		solutions = append(solutions, details.pubKeys...)
		solutions = append(solutions, []byte{byte(len(details.pubKeys))})
		return MultiSigTy, solutions
	}

	return NonStandardTy, nil
}
