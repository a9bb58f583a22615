// Copyright (c) 2024 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/zackgall/btcaddr/chaincfg"
)

// config defines the top-level command line flags accepted by addrtool.
// The positional command and its arguments are parsed separately from
// os.Args after flags.Parse strips the recognized options.
type config struct {
	Net        string `short:"n" long:"net" description:"network to use (mainnet, testnet, signet, regtest)" default:"mainnet"`
	DebugLevel string `long:"debuglevel" description:"logging level {trace, debug, info, warn, error, critical}" default:"info"`
	LogFile    string `long:"logfile" description:"file to write rotated debug logs to; empty disables file logging"`
}

// netParams resolves the configured network name to its parameter set.
func (c *config) netParams() (*chaincfg.Params, error) {
	switch c.Net {
	case "mainnet":
		return chaincfg.MainNetParams(), nil
	case "testnet":
		return chaincfg.TestNet4Params(), nil
	case "signet":
		return chaincfg.SigNetParams(), nil
	case "regtest":
		return chaincfg.RegNetParams(), nil
	default:
		return nil, fmt.Errorf("unknown network %q", c.Net)
	}
}
