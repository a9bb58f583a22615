// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019 The Decred developers
// Copyright (c) 2024 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bech32 implements the Bech32 and Bech32m encodings specified by
// BIP-173 and BIP-350, along with the generic power-of-two base conversion
// (ConvertBits) that both segwit address rendering and parsing build on top
// of.
package bech32

import "strings"

// Encoding identifies which of the two checksum constants a Bech32 string
// was produced with. The two encodings share every other piece of the wire
// format (alphabet, HRP expansion, generator polynomial) and differ only in
// the constant XORed into the checksum polymod.
type Encoding int

const (
	// None indicates the decoded string's checksum did not match either
	// known encoding.
	None Encoding = iota

	// Bech32 is the original BIP-173 checksum, residue constant 1.
	Bech32

	// Bech32m is the BIP-350 checksum, residue constant 0x2bc830a3. It was
	// introduced because Bech32's checksum has a weakness when used with
	// witness versions other than 0.
	Bech32m
)

// encodingConst returns the checksum constant XORed into the polymod for the
// given encoding. Encode never calls this with None.
func encodingConst(enc Encoding) uint32 {
	if enc == Bech32m {
		return bech32mConst
	}
	return bech32Const
}

const (
	bech32Const  = 1
	bech32mConst = 0x2bc830a3

	charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

	// maxEncodingLength is the maximum allowed length, in ASCII characters,
	// of a Bech32/Bech32m encoded string per BIP-173.
	maxEncodingLength = 90
)

// charsetRev maps an ASCII byte to its index in charset, or -1 if the byte
// is not part of the data-symbol alphabet.
var charsetRev = buildCharsetRev()

func buildCharsetRev() [128]int8 {
	var rev [128]int8
	for i := range rev {
		rev[i] = -1
	}
	for i := 0; i < len(charset); i++ {
		rev[charset[i]] = int8(i)
	}
	return rev
}

// polymod computes the BIP-173 checksum polynomial over the given 5-bit
// values, which must already include the expanded HRP and any trailing
// checksum placeholder symbols.
func polymod(values []byte) uint32 {
	gen := [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	return chk
}

// hrpExpand expands the HRP into the sequence of 5-bit values used as the
// checksum's implicit prefix, per BIP-173: high bits of each byte, a zero
// separator, then low bits of each byte.
func hrpExpand(hrp string) []byte {
	v := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		v = append(v, hrp[i]>>5)
	}
	v = append(v, 0)
	for i := 0; i < len(hrp); i++ {
		v = append(v, hrp[i]&31)
	}
	return v
}

// ValidateHRP returns an error if hrp is not a valid Bech32 human-readable
// part: 1 to 83 ASCII characters, each in [33, 126].
func ValidateHRP(hrp string) error {
	if len(hrp) < 1 || len(hrp) > 83 {
		return ErrInvalidHRPLength{length: len(hrp)}
	}
	for i := 0; i < len(hrp); i++ {
		c := hrp[i]
		if c < 33 || c > 126 {
			return ErrInvalidCharacter(c)
		}
	}
	return nil
}

// Encode encodes hrp and a sequence of 5-bit data values into a Bech32 or
// Bech32m string, per the requested encoding.
func Encode(enc Encoding, hrp string, data []byte) (string, error) {
	if enc != Bech32 && enc != Bech32m {
		return "", ErrInvalidEncoding(enc)
	}
	lowerHRP := strings.ToLower(hrp)
	if lowerHRP != hrp && strings.ToUpper(hrp) != hrp {
		return "", ErrMixedCaseString(hrp)
	}
	hrp = lowerHRP
	if err := ValidateHRP(hrp); err != nil {
		return "", err
	}
	for _, b := range data {
		if b > 31 {
			return "", ErrInvalidDataByte(b)
		}
	}

	values := hrpExpand(hrp)
	values = append(values, data...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	chk := polymod(values) ^ encodingConst(enc)

	var sb strings.Builder
	sb.Grow(len(hrp) + 1 + len(data) + 6)
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for _, b := range data {
		sb.WriteByte(charset[b])
	}
	for i := 0; i < 6; i++ {
		sb.WriteByte(charset[(chk>>uint(5*(5-i)))&31])
	}

	encoded := sb.String()
	if len(encoded) > maxEncodingLength {
		return "", ErrInvalidLength(len(encoded))
	}
	return encoded, nil
}

// Decode parses a Bech32 or Bech32m string and returns the encoding it was
// checksummed with (None if neither matches), its HRP, and its 5-bit data
// symbols with the 6 trailing checksum symbols stripped.
//
// Decode does not attempt Bech32's error-location diagnostics; a checksum
// mismatch is reported the same way as any other malformed input.
func Decode(bech string) (Encoding, string, []byte, error) {
	if len(bech) < 8 || len(bech) > maxEncodingLength {
		return None, "", nil, ErrInvalidLength(len(bech))
	}

	lower := strings.ToLower(bech)
	upper := strings.ToUpper(bech)
	if bech != lower && bech != upper {
		return None, "", nil, ErrMixedCaseString(bech)
	}
	bech = lower

	one := strings.LastIndexByte(bech, '1')
	if one < 1 || one+7 > len(bech) {
		return None, "", nil, ErrInvalidSeparatorIndex(one)
	}

	hrp := bech[:one]
	if err := ValidateHRP(hrp); err != nil {
		return None, "", nil, err
	}

	dataPart := bech[one+1:]
	data := make([]byte, len(dataPart))
	for i := 0; i < len(dataPart); i++ {
		c := dataPart[i]
		if c >= 128 || charsetRev[c] == -1 {
			return None, "", nil, ErrInvalidCharacter(c)
		}
		data[i] = byte(charsetRev[c])
	}

	values := hrpExpand(hrp)
	values = append(values, data...)
	chk := polymod(values)

	var enc Encoding
	switch chk {
	case bech32Const:
		enc = Bech32
	case bech32mConst:
		enc = Bech32m
	default:
		return None, "", nil, ErrInvalidChecksum{}
	}

	return enc, hrp, data[:len(data)-6], nil
}

// ConvertBits converts a slice of byte values from one power-of-two base to
// another, for example 8 bits/byte to 5 bits/symbol. When pad is true, the
// final group is padded with zero bits and always emitted. When pad is
// false, ConvertBits fails if there are leftover bits that cannot be
// interpreted as zero padding — this is the check a caller must pass to
// prove the input encoded a whole number of from-bits values.
func ConvertBits(data []byte, fromBits, toBits uint, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, ErrInvalidBitGroups{}
	}

	var acc uint32
	var bits uint
	maxVal := uint32(1)<<toBits - 1
	maxAcc := uint32(1)<<(fromBits+toBits-1) - 1

	ret := make([]byte, 0, (len(data)*int(fromBits)+int(toBits)-1)/int(toBits))
	for _, value := range data {
		if uint32(value)>>fromBits != 0 {
			return nil, ErrInvalidDataRange{value: value, bits: fromBits}
		}
		acc = ((acc << fromBits) | uint32(value)) & maxAcc
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			ret = append(ret, byte((acc>>bits)&maxVal))
		}
	}

	if pad {
		if bits > 0 {
			ret = append(ret, byte((acc<<(toBits-bits))&maxVal))
		}
	} else if bits >= fromBits || ((acc<<(toBits-bits))&maxVal) != 0 {
		return nil, ErrInvalidIncompleteGroup{}
	}

	return ret, nil
}
