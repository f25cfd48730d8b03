// Copyright (c) 2025 The coinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/coinsuite/bitcoindrpc"
)

const version = "0.1.0"

// config defines the configuration options for bitcoindrpcctl.
type config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	RPCServer   string `short:"s" long:"rpcserver" description:"RPC server to connect to" default:"127.0.0.1:8332"`
	RPCUser     string `short:"u" long:"rpcuser" description:"RPC username"`
	RPCPassword string `short:"P" long:"rpcpass" default-mask:"-" description:"RPC password"`
	RPCCookie   string `long:"rpccookie" description:"Path to the RPC server's auth cookie file"`
	RPCCert     string `short:"c" long:"rpccert" description:"RPC server certificate chain for validation"`
	NoTLS       bool   `long:"notls" description:"Disable TLS"`
	Proxy       string `long:"proxy" description:"Connect via SOCKS5 proxy (eg. 127.0.0.1:9050)"`
	ProxyUser   string `long:"proxyuser" description:"Username for proxy server"`
	ProxyPass   string `long:"proxypass" default-mask:"-" description:"Password for proxy server"`
}

// usage displays the general usage when the help flag is not displayed and
// an invalid command was specified.
func usage(errorMessage string) {
	appName := "bitcoindrpcctl"
	fmt.Fprintln(os.Stderr, errorMessage)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintf(os.Stderr, "  %s [OPTIONS] <method> [params...]\n\n",
		appName)
	fmt.Fprintf(os.Stderr, "For a list of options use: %s -h\n", appName)
}

// marshalParam converts one command line parameter into the raw JSON to
// place in the request's positional parameter list.  Parameters that parse
// as JSON are passed through as-is so numbers, booleans, arrays, and objects
// can be given directly; everything else is sent as a JSON string.
func marshalParam(param string) (json.RawMessage, error) {
	if json.Valid([]byte(param)) {
		return json.RawMessage(param), nil
	}
	return json.Marshal(param)
}

func realMain() error {
	cfg := config{}
	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil
		}
		return err
	}

	if cfg.ShowVersion {
		fmt.Printf("bitcoindrpcctl version %s\n", version)
		return nil
	}

	if len(remainingArgs) < 1 {
		usage("No command specified")
		os.Exit(1)
	}
	method, paramArgs := remainingArgs[0], remainingArgs[1:]

	connCfg := &bitcoindrpc.ConnConfig{
		Host:       cfg.RPCServer,
		User:       cfg.RPCUser,
		Pass:       cfg.RPCPassword,
		CookiePath: cfg.RPCCookie,
		DisableTLS: cfg.NoTLS,
		Proxy:      cfg.Proxy,
		ProxyUser:  cfg.ProxyUser,
		ProxyPass:  cfg.ProxyPass,
	}
	if cfg.RPCCert != "" {
		certs, err := os.ReadFile(cfg.RPCCert)
		if err != nil {
			return fmt.Errorf("unable to read RPC certificate: %w", err)
		}
		connCfg.Certificates = certs
	}

	client, err := bitcoindrpc.New(connCfg)
	if err != nil {
		return err
	}
	defer client.Shutdown()

	params := make([]json.RawMessage, 0, len(paramArgs))
	for _, param := range paramArgs {
		marshalled, err := marshalParam(param)
		if err != nil {
			return fmt.Errorf("invalid parameter %q: %w", param, err)
		}
		params = append(params, marshalled)
	}

	result, err := client.RawRequest(method, params)
	if err != nil {
		return err
	}

	// The result is already JSON; re-indent it for display.  Strings are
	// unquoted since they frequently hold hashes or hex the caller wants
	// to feed to other tools.
	var indented bytes.Buffer
	if err := json.Indent(&indented, result, "", "  "); err != nil {
		return err
	}
	out := indented.String()
	var str string
	if json.Unmarshal(result, &str) == nil {
		out = str
	}
	fmt.Println(out)
	return nil
}

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
