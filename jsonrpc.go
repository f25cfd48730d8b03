// Copyright (c) 2025 The coinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitcoindrpc

import (
	"encoding/json"
	"fmt"
)

// RPCErrorCode represents an error code to be used as a part of an RPCError
// which is in turn used in a JSON-RPC Response object.
//
// A specific type is used to help ensure the wrong errors aren't used.
type RPCErrorCode int

// Error codes reported by bitcoind that this package inspects.  The full
// catalogue lives in the daemon's own documentation; only the codes that
// influence client behavior are enumerated here.
const (
	// ErrRPCInvalidAddressOrKey indicates an invalid address or key.  It
	// is the code bitcoind reports for a getrawtransaction request naming
	// a transaction the daemon has no record of.
	ErrRPCInvalidAddressOrKey RPCErrorCode = -5

	// ErrRPCInWarmup indicates the daemon is still starting up and not
	// yet ready to service requests.
	ErrRPCInWarmup RPCErrorCode = -28
)

// RPCError represents an error that is used as a part of a JSON-RPC Response
// object.
type RPCError struct {
	Code    RPCErrorCode `json:"code,omitempty"`
	Message string       `json:"message,omitempty"`
}

// Guarantee RPCError satisfies the builtin error interface.
var _, _ error = RPCError{}, (*RPCError)(nil)

// Error returns a string describing the RPC error.  This satisfies the
// builtin error interface.
func (e RPCError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Request is a type for raw JSON-RPC 1.0 requests as spoken by bitcoind.
// The Method field names the remote procedure and Params carries its
// positional arguments, already marshalled so that parameter serialization
// problems surface before anything hits the wire.
type Request struct {
	Jsonrpc string            `json:"jsonrpc"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
	ID      interface{}       `json:"id"`
}

// Response is the general form of a JSON-RPC response.  The type of the
// Result field varies from one command to the next, so it is implemented as
// an interface.  The ID field has to be a pointer to allow for a nil value
// when empty.
type Response struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
	ID     *interface{}    `json:"id"`
}
