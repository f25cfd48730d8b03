// Copyright (c) 2025 The coinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitcoindrpc

// The error types in this file distinguish where in the request/response
// pipeline a call failed.  Every facade method returns one of these, an
// *RPCError reported by the server, or nil.  All of them are recoverable from
// the caller's perspective since each call is independent and stateless.

// TransportError wraps a failure to complete the HTTP exchange with the RPC
// server, including network failures and malformed response envelopes.
type TransportError struct {
	Err error
}

// Error satisfies the error interface.
func (e *TransportError) Error() string {
	return "transport error: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// SerializationError wraps a failure to marshal a request parameter to its
// JSON representation.  It is returned before any network activity happens.
type SerializationError struct {
	Err error
}

// Error satisfies the error interface.
func (e *SerializationError) Error() string {
	return "unable to marshal parameter: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *SerializationError) Unwrap() error {
	return e.Err
}

// DecodeError wraps a failure to unmarshal a response payload whose JSON
// shape did not match the expected result type.
type DecodeError struct {
	Err error
}

// Error satisfies the error interface.
func (e *DecodeError) Error() string {
	return "unable to decode response: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// HexError wraps a failure to interpret a response payload that was expected
// to be a hex string.
type HexError struct {
	Err error
}

// Error satisfies the error interface.
func (e *HexError) Error() string {
	return "invalid hex in response: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *HexError) Unwrap() error {
	return e.Err
}

// ConsensusDecodeError wraps a failure to deserialize hex-decoded response
// bytes as a consensus-encoded block, header, or transaction.
type ConsensusDecodeError struct {
	Err error
}

// Error satisfies the error interface.
func (e *ConsensusDecodeError) Error() string {
	return "unable to deserialize response: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ConsensusDecodeError) Unwrap() error {
	return e.Err
}
