// Copyright (c) 2025 The coinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bitcoindrpc implements a JSON-RPC client for a Bitcoin-protocol-
compatible daemon such as bitcoind or btcd running in HTTP POST mode.

# Overview

Each exported method on Client maps to one daemon RPC method.  A call builds
the minimal positional parameter list for the request, performs a single
synchronous HTTP POST exchange, and decodes the result into a typed value.
Optional parameters the caller did not set are dropped from the tail of the
parameter list so the daemon applies its own defaults; an unset optional
parameter followed by one that was set is sent as its documented default
since positional calls cannot skip a slot.

Results arrive from the daemon in one of two encodings and are decoded
accordingly: methods returning consensus-serialized objects (getblock,
getblockheader, getrawtransaction) deliver a hex string that is decoded into
the corresponding wire type, while the remaining methods deliver structured
JSON that is unmarshalled into a per-method result type.

Methods with "not found" semantics (GetRawTransaction, GetTxOut) report
absence by returning a nil result together with a nil error; absence is a
legitimate outcome for them, not a failure.

# Errors

All failure modes are reported through the returned error and distinguish
where the exchange broke down: TransportError for network and envelope
problems, SerializationError for parameters that cannot be represented as
JSON, DecodeError for structured results of an unexpected shape, HexError
for malformed hex payloads, and ConsensusDecodeError for hex payloads that
do not deserialize into the expected wire type.  Errors the daemon itself
reports are returned as *RPCError with the daemon's code and message intact.
Use errors.As to inspect a specific kind.  No call is ever retried by this
package.

# Concurrency

The client performs every exchange in the calling goroutine and maintains no
background state, so it makes no concurrency promises beyond those of the
net/http transport it wraps.  Callers that need concurrent RPC traffic
should coordinate access themselves or use one client per goroutine.
*/
package bitcoindrpc
