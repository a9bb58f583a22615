// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// RegNetParams returns the network parameters for the regression test
// Bitcoin network.
func RegNetParams() *Params {
	return &Params{
		Name:            "regtest",
		Base58Prefixes:  base58Prefixes(0x6f, 0xc4),
		Bech32HRPSegwit: "bcrt",
	}
}
