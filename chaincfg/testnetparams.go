// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// TestNet4Params returns the network parameters for the test Bitcoin
// network (testnet4).
func TestNet4Params() *Params {
	return &Params{
		Name:            "testnet4",
		Base58Prefixes:  base58Prefixes(0x6f, 0xc4),
		Bech32HRPSegwit: "tb",
	}
}

// SigNetParams returns the network parameters for the default public
// Bitcoin signet. Signet reuses testnet's Base58 prefixes; only the
// consensus rules differ, which this codec never touches.
func SigNetParams() *Params {
	return &Params{
		Name:            "signet",
		Base58Prefixes:  base58Prefixes(0x6f, 0xc4),
		Bech32HRPSegwit: "tb",
	}
}
