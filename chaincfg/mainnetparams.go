// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// MainNetParams returns the network parameters for the main Bitcoin network.
func MainNetParams() *Params {
	return &Params{
		Name:            "mainnet",
		Base58Prefixes:  base58Prefixes(0x00, 0x05),
		Bech32HRPSegwit: "bc",
	}
}
