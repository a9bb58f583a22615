// Copyright (c) 2015-2020 The Decred developers
// Copyright (c) 2024 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdaddr

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/zackgall/btcaddr/bech32"
	"github.com/zackgall/btcaddr/chaincfg"
)

// mustBuildBech32mVersionZero builds a syntactically valid Bech32m string
// whose data section decodes to witness version 0 with a 20-byte program —
// a combination DecodeDestination must reject.
func mustBuildBech32mVersionZero(t *testing.T, hrp string) string {
	t.Helper()
	program := bytes.Repeat([]byte{0x11}, 20)
	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		t.Fatalf("ConvertBits: %v", err)
	}
	data := append([]byte{0}, converted...)
	addr, err := bech32.Encode(bech32.Bech32m, hrp, data)
	if err != nil {
		t.Fatalf("bech32.Encode: %v", err)
	}
	return addr
}

// mustBuildBech32mWitnessV2 builds a syntactically valid Bech32m string for
// witness version 2 with a 20-byte program.
func mustBuildBech32mWitnessV2(t *testing.T, hrp string) string {
	t.Helper()
	program := bytes.Repeat([]byte{0x22}, 20)
	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		t.Fatalf("ConvertBits: %v", err)
	}
	data := append([]byte{2}, converted...)
	addr, err := bech32.Encode(bech32.Bech32m, hrp, data)
	if err != nil {
		t.Fatalf("bech32.Encode: %v", err)
	}
	return addr
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// TestExtractDestinationsStandardShapes covers spec.md §8 scenarios 1-5: a
// P2PKH, P2SH, P2WPKH, P2WSH, and P2TR script each extracting to their
// canonical mainnet address.
func TestExtractDestinationsStandardShapes(t *testing.T) {
	t.Parallel()

	params := chaincfg.MainNetParams()

	tests := []struct {
		name   string
		script []byte
		want   string
	}{
		{
			name:   "p2pkh",
			script: mustHex(t, "76a91462e907b15cbf27d5425399ebf6f0fb50ebb88f1888ac"),
			want:   "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
		},
		{
			name:   "p2sh",
			script: mustHex(t, "a9148f55563b9a19f321c211e9b9f38cdf686ea0784587"),
			want:   "3EktnHQD7RiAE6uzMj2ZifT9YgRrkSgzQX",
		},
		{
			name:   "p2wpkh",
			script: mustHex(t, "0014751e76e8199196d454941c45d1b3a323f1433bd6"),
			want:   "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
		},
		{
			name:   "p2wsh",
			script: mustHex(t, "00201863143c14c5166804bd19203356da136c985678cd4d27a1b8c6329604903262"),
			want:   "bc1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3qccfmv3",
		},
		{
			name:   "p2tr",
			script: append([]byte{0x51, 0x20}, mustHex(t, "a60869f0dbcf1dc659c9cecbaf8050135ea9e8cdc487053f1dc6880949dc684c")...),
			want:   "bc1p5cyxnuxmeuwuvkwfem96lqzszd02n6xdcjrs20cac6yqjjwudpxqkedrcr",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ok, addrs := ExtractDestinations(test.script, params)
			if !ok {
				t.Fatalf("ExtractDestinations status = false, want true")
			}
			if len(addrs) != 1 || addrs[0] != test.want {
				t.Fatalf("ExtractDestinations = %v, want [%s]", addrs, test.want)
			}

			decoded, err := DecodeDestination(test.want, params)
			if err != nil {
				t.Fatalf("DecodeDestination returned error: %v", err)
			}
			if !bytes.Equal(decoded, test.script) {
				t.Fatalf("DecodeDestination = %x, want %x", decoded, test.script)
			}
		})
	}
}

// TestBech32mVersionZeroRejected covers spec.md §8 scenario 6: a Bech32m
// string encoding witness version 0 must be rejected with the exact
// diagnostic, since version 0 requires the plain Bech32 checksum.
func TestBech32mVersionZeroRejected(t *testing.T) {
	t.Parallel()

	params := chaincfg.MainNetParams()

	// Construct a version-0 program re-encoded under Bech32m directly.
	built := mustBuildBech32mVersionZero(t, params.Bech32HRPSegwit)
	_, err := DecodeDestination(built, params)
	if err == nil {
		t.Fatal("DecodeDestination unexpectedly succeeded")
	}
	var addrErr Error
	if !errors.As(err, &addrErr) {
		t.Fatalf("error is not stdaddr.Error: %v", err)
	}
	const want = "Version 0 witness address must use Bech32 checksum"
	if addrErr.Description != want {
		t.Fatalf("error = %q, want %q", addrErr.Description, want)
	}
}

// TestIsValid covers spec.md §8 scenario 7.
func TestIsValid(t *testing.T) {
	t.Parallel()

	params := chaincfg.MainNetParams()
	if !IsValid("1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2", params) {
		t.Fatal("IsValid = false, want true")
	}
	if IsValid("", params) {
		t.Fatal("IsValid(\"\") = true, want false")
	}
	if IsValid("not-an-address", params) {
		t.Fatal("IsValid(garbage) = true, want false")
	}
}

// TestExtractDestinationsMultisigStatusQuirk pins down the preserved quirk:
// ExtractDestinations reports a false status for MultiSigTy even when it
// successfully populated one or more addresses.
func TestExtractDestinationsMultisigStatusQuirk(t *testing.T) {
	t.Parallel()

	params := chaincfg.MainNetParams()
	compressed1 := append([]byte{0x02}, bytes.Repeat([]byte{0x11}, 32)...)
	compressed2 := append([]byte{0x03}, bytes.Repeat([]byte{0x22}, 32)...)

	var script []byte
	script = append(script, 0x51) // OP_1 (required = 1)
	script = append(script, byte(len(compressed1)))
	script = append(script, compressed1...)
	script = append(script, byte(len(compressed2)))
	script = append(script, compressed2...)
	script = append(script, 0x52) // OP_2 (numKeys = 2)
	script = append(script, 0xae) // OP_CHECKMULTISIG

	ok, addrs := ExtractDestinations(script, params)
	if ok {
		t.Fatal("ExtractDestinations status = true for multisig, want false per preserved quirk")
	}
	if len(addrs) != 2 {
		t.Fatalf("len(addrs) = %d, want 2 even though status is false", len(addrs))
	}
}

// TestDecodeDestinationWitnessV2PreservesMissingPushLength pins down the
// preserved quirk: decoding a witness version 2-16 Bech32m address produces
// a script with no length-push opcode ahead of the program, so the result
// does not re-classify through Solver as a witness program at all.
func TestDecodeDestinationWitnessV2PreservesMissingPushLength(t *testing.T) {
	t.Parallel()

	params := chaincfg.MainNetParams()
	addr := mustBuildBech32mWitnessV2(t, params.Bech32HRPSegwit)

	script, err := DecodeDestination(addr, params)
	if err != nil {
		t.Fatalf("DecodeDestination returned error: %v", err)
	}

	// OP_2 followed immediately by the raw program bytes, no push-length
	// byte in between.
	if script[0] != 0x52 {
		t.Fatalf("script[0] = %#x, want OP_2 (0x52)", script[0])
	}
	if len(script) != 1+20 {
		t.Fatalf("len(script) = %d, want %d (no push-length byte)", len(script), 1+20)
	}
}

func TestDecodeDestinationErrorStrings(t *testing.T) {
	t.Parallel()

	params := chaincfg.MainNetParams()

	tests := []struct {
		name string
		addr string
		want string
	}{
		{"bad checksum", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNb", "Invalid checksum or length of Base58 address (P2PKH or P2SH)"},
		{"garbage", "not-base58-or-bech32-!!!", "Invalid or unsupported Segwit (Bech32) or Base58 encoding."},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := DecodeDestination(test.addr, params)
			if err == nil {
				t.Fatal("DecodeDestination unexpectedly succeeded")
			}
			var addrErr Error
			if !errors.As(err, &addrErr) {
				t.Fatalf("error is not stdaddr.Error: %v", err)
			}
			if addrErr.Description != test.want {
				t.Fatalf("error = %q, want %q", addrErr.Description, test.want)
			}
		})
	}
}
