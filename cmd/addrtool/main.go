// Copyright (c) 2024 The btcaddr developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command addrtool is a small inspection utility built on top of the
// btcaddr address codec. It classifies raw output scripts, extracts their
// spending address(es), decodes addresses back to scripts, and checks
// address validity, all against a chosen network's parameters.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zackgall/btcaddr/chaincfg"
	"github.com/zackgall/btcaddr/stdaddr"
	"github.com/zackgall/btcaddr/txscript"
	flags "github.com/jessevdk/go-flags"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func usage(parser *flags.Parser) {
	parser.WriteHelp(os.Stderr)
	fmt.Fprintln(os.Stderr, "\ncommands:")
	fmt.Fprintln(os.Stderr, "  classify <hex-script>")
	fmt.Fprintln(os.Stderr, "  extract  <hex-script>")
	fmt.Fprintln(os.Stderr, "  decode   <address>")
	fmt.Fprintln(os.Stderr, "  validate <address>")
	os.Exit(2)
}

func main() {
	cfg := config{
		Net:        "mainnet",
		DebugLevel: "info",
	}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] <command> <argument>"
	args, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := initLogging(&cfg); err != nil {
		fatalf("logging: %v", err)
	}
	defer closeLogging()

	if len(args) != 2 {
		usage(parser)
	}
	command, arg := args[0], args[1]

	params, err := cfg.netParams()
	if err != nil {
		fatalf("%v", err)
	}
	addrLog.Debugf("running %q against %s", command, params.Name)

	switch command {
	case "classify":
		runClassify(arg)
	case "extract":
		runExtract(arg, params)
	case "decode":
		runDecode(arg, params)
	case "validate":
		runValidate(arg, params)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", command)
		usage(parser)
	}
}

func decodeScriptArg(arg string) []byte {
	script, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
	if err != nil {
		fatalf("invalid hex script: %v", err)
	}
	return script
}

func runClassify(arg string) {
	addrLog.Infof("classify: script=%s", arg)
	script := decodeScriptArg(arg)
	class, solutions := txscript.Solver(script)
	addrLog.Debugf("classify: matched %s (%d solution(s))", class, len(solutions))
	fmt.Println(class)
	for i, soln := range solutions {
		fmt.Printf("  solution[%d] = %x\n", i, soln)
	}
}

func runExtract(arg string, params *chaincfg.Params) {
	addrLog.Infof("extract: script=%s net=%s", arg, params.Name)
	script := decodeScriptArg(arg)
	class, _ := txscript.Solver(script)
	addrLog.Debugf("extract: script classified as %s", class)
	ok, addrs := stdaddr.ExtractDestinations(script, params)
	addrLog.Debugf("extract: status=%v addrs=%d", ok, len(addrs))
	fmt.Printf("status=%v\n", ok)
	for _, addr := range addrs {
		fmt.Println(addr)
	}
}

func runDecode(arg string, params *chaincfg.Params) {
	addrLog.Infof("decode: address=%s net=%s", arg, params.Name)
	branch := "base58"
	if strings.HasPrefix(strings.ToLower(arg), strings.ToLower(params.Bech32HRPSegwit)) {
		branch = "bech32"
	}
	addrLog.Debugf("decode: routed to %s branch", branch)
	script, err := stdaddr.DecodeDestination(arg, params)
	if err != nil {
		addrLog.Debugf("decode: failed: %v", err)
		fatalf("%v", err)
	}
	addrLog.Debugf("decode: produced %d-byte script", len(script))
	fmt.Printf("%x\n", script)
}

func runValidate(arg string, params *chaincfg.Params) {
	addrLog.Infof("validate: address=%s net=%s", arg, params.Name)
	valid := stdaddr.IsValid(arg, params)
	addrLog.Debugf("validate: result=%v", valid)
	fmt.Println(valid)
}
