// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// Base58AddrID identifies which of the two Base58 address prefixes a given
// byte belongs to.
type Base58AddrID int

const (
	// PubKeyAddrID is the prefix prepended to a pubkey-hash (and, per the
	// preserved quirk documented on stdaddr.ExtractDestinations, a raw
	// pubkey) payload before Base58Check encoding.
	PubKeyAddrID Base58AddrID = iota

	// ScriptAddrID is the prefix prepended to a script-hash payload before
	// Base58Check encoding.
	ScriptAddrID
)

// Params defines a Bitcoin network parameter set. It binds a textual address
// form to a specific network and is otherwise inert: no deployment
// schedules, no genesis block, no consensus rules. Callers hold a *Params by
// reference; nothing about it is ever mutated after construction, so it may
// be shared freely across goroutines.
type Params struct {
	// Name is the human-readable network name, e.g. "mainnet".
	Name string

	// Base58Prefixes holds the one-byte Base58Check prefixes for
	// pubkey-hash and script-hash addresses on this network.
	Base58Prefixes map[Base58AddrID][]byte

	// Bech32HRPSegwit is the lowercase ASCII human-readable part used for
	// this network's Bech32/Bech32m segwit addresses.
	Bech32HRPSegwit string
}

// base58Prefixes builds the Base58Prefixes map for a given pubkey-hash and
// script-hash prefix byte. A fresh map is returned on every call so that the
// Params returned by the Net*Params functions below never alias shared
// mutable state.
func base58Prefixes(pubKeyID, scriptID byte) map[Base58AddrID][]byte {
	return map[Base58AddrID][]byte{
		PubKeyAddrID: {pubKeyID},
		ScriptAddrID: {scriptID},
	}
}
