// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chaincfg defines chain configuration parameters for the address
codec.

Each supported Bitcoin network (mainnet, testnet4, signet, regtest) has an
associated Params instance that pins the two Base58 address-prefix bytes and
the Bech32 human-readable part used to render and parse textual addresses for
that network. Params carries no other chain state — it is a read-only lookup
table, safe to share across goroutines, and is the only stateful collaborator
the codec depends on.
*/
package chaincfg
