// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019 The Decred developers
// Copyright (c) 2024 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"bytes"
	"strings"
	"testing"
)

// TestBech32 exercises round-tripping of valid strings drawn from the
// BIP-173 test vectors, across both the original checksum constant and
// case-folding behavior.
func TestBech32(t *testing.T) {
	t.Parallel()

	tests := []string{
		"A12UEL5L",
		"a12uel5l",
		"an83characterlonghumanreadablepartthatcontainsthenumber1andtheexcludedcharactersbio1tt5tgs",
		"abcdef1qpzry9x8gf2tvdw0s3jn54khce6mua7lmqqqxw",
		"11qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqc8247j",
		"split1checkupstagehandshakeupstreamerranterredcaperred2y9e3w",
		"?1ezyfcl",
	}

	for _, test := range tests {
		t.Run(test, func(t *testing.T) {
			enc, hrp, data, err := Decode(test)
			if err != nil {
				t.Fatalf("Decode(%q) returned error: %v", test, err)
			}
			if enc != Bech32 {
				t.Fatalf("Decode(%q) encoding = %v, want Bech32", test, enc)
			}

			reencoded, err := Encode(Bech32, hrp, data)
			if err != nil {
				t.Fatalf("Encode returned error: %v", err)
			}
			if !strings.EqualFold(reencoded, test) {
				t.Fatalf("round trip mismatch: got %q, want %q", reencoded, test)
			}
		})
	}
}

// TestBech32InvalidVectors ensures known-bad BIP-173 vectors are rejected.
func TestBech32InvalidVectors(t *testing.T) {
	t.Parallel()

	tests := []string{
		" 1nwldj5",                  // HRP character out of range
		"\x7f1axkwrx",               // HRP character out of range
		"an84characterslonghumanreadablepartthatcontainstheexcludedcharactersbioandnumber11d6pts4", // overall max length exceeded
		"pzry9x0s0muk",               // No separator character
		"1pzry9x0s0muk",              // Empty HRP
		"x1b4n0q5v",                  // Invalid data character
		"li1dgmt3",                   // Too short checksum
		"de1lg7wt\xff",               // Invalid character in checksum
		"A1G7SGD8",                   // checksum calculated with uppercase form of HRP
		"10a06t8",                    // empty HRP
		"1qzzfhee",                   // empty HRP
	}

	for _, test := range tests {
		t.Run(test, func(t *testing.T) {
			if _, _, _, err := Decode(test); err == nil {
				t.Fatalf("Decode(%q) unexpectedly succeeded", test)
			}
		})
	}
}

// TestBech32m exercises the BIP-350 test vectors, including the BECH32M
// checksum residue distinguishing it from plain Bech32.
func TestBech32m(t *testing.T) {
	t.Parallel()

	tests := []string{
		"A1LQFN3A",
		"a1lqfn3a",
		"an83characterlonghumanreadablepartthatcontainsthetheexcludedcharactersbio1569pvx",
		"abcdef1l7aum6echk45nj3s0wdvt2fg8x9yrzpqzd3ryx",
		"11llllllllllllllllllllllllllllllllllllllllllllllllllllllllllllllllllllllllllludsr8",
		"split1checkupstagehandshakeupstreamerranterredcaperredlc445v",
		"?1v759aa",
	}

	for _, test := range tests {
		t.Run(test, func(t *testing.T) {
			enc, hrp, data, err := Decode(test)
			if err != nil {
				t.Fatalf("Decode(%q) returned error: %v", test, err)
			}
			if enc != Bech32m {
				t.Fatalf("Decode(%q) encoding = %v, want Bech32m", test, enc)
			}

			reencoded, err := Encode(Bech32m, hrp, data)
			if err != nil {
				t.Fatalf("Encode returned error: %v", err)
			}
			if !strings.EqualFold(reencoded, test) {
				t.Fatalf("round trip mismatch: got %q, want %q", reencoded, test)
			}
		})
	}
}

// TestMixedCaseRejected ensures a mixed-case string is rejected by Decode,
// and that all-lowercase/all-uppercase forms of the same string decode to
// the same bytes (the case rule from spec.md's testable properties).
func TestMixedCaseRejected(t *testing.T) {
	t.Parallel()

	const lower = "abcdef1qpzry9x8gf2tvdw0s3jn54khce6mua7lmqqqxw"
	upper := strings.ToUpper(lower)
	mixed := lower[:len(lower)/2] + strings.ToUpper(lower[len(lower)/2:])

	if _, _, _, err := Decode(mixed); err == nil {
		t.Fatal("Decode accepted a mixed-case string")
	}

	_, hrpLower, dataLower, err := Decode(lower)
	if err != nil {
		t.Fatalf("Decode(lower) returned error: %v", err)
	}
	_, hrpUpper, dataUpper, err := Decode(upper)
	if err != nil {
		t.Fatalf("Decode(upper) returned error: %v", err)
	}
	if hrpLower != hrpUpper {
		t.Fatalf("hrp mismatch: %q vs %q", hrpLower, hrpUpper)
	}
	if !bytes.Equal(dataLower, dataUpper) {
		t.Fatalf("data mismatch: %x vs %x", dataLower, dataUpper)
	}
}

// TestConvertBitsRoundTrip verifies the ConvertBits law from spec.md:
// convert_bits(5,8,false, convert_bits(8,5,true, x)) == x for arbitrary x.
func TestConvertBitsRoundTrip(t *testing.T) {
	t.Parallel()

	tests := [][]byte{
		{},
		{0x00},
		{0xff},
		{0x00, 0x01, 0x02, 0x03, 0x04},
		{0x75, 0x1e, 0x76, 0xe8, 0x19, 0x91, 0x96, 0xd4, 0x54, 0x94, 0x1c, 0x45, 0xd1, 0xb3, 0xa3, 0x23, 0xf1, 0x43, 0x3b, 0xd6},
	}

	for _, test := range tests {
		fivebit, err := ConvertBits(test, 8, 5, true)
		if err != nil {
			t.Fatalf("ConvertBits(8->5) returned error: %v", err)
		}
		back, err := ConvertBits(fivebit, 5, 8, false)
		if err != nil {
			t.Fatalf("ConvertBits(5->8) returned error: %v", err)
		}
		if !bytes.Equal(back, test) {
			t.Fatalf("round trip mismatch: got %x, want %x", back, test)
		}
	}
}

// TestConvertBitsPaddingFailure ensures ConvertBits with pad=false rejects
// nonzero padding bits.
func TestConvertBitsPaddingFailure(t *testing.T) {
	t.Parallel()

	// The two 5-bit groups hold 10 bits; after one whole byte is emitted,
	// the last two bits (0b01) are left over, and a nonzero leftover cannot
	// be padding.
	data := []byte{1, 1}
	if _, err := ConvertBits(data, 5, 8, false); err == nil {
		t.Fatal("ConvertBits unexpectedly succeeded on non-zero padding")
	}
}
