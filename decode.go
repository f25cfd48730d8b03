// Copyright (c) 2025 The coinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitcoindrpc

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
)

// consensusDecodable is implemented by the wire types that can deserialize
// themselves from their consensus encoding (blocks, block headers, and
// transactions).
type consensusDecodable interface {
	Deserialize(io.Reader) error
}

// isNullResult reports whether a result payload is the JSON literal null or
// absent altogether.
func isNullResult(res json.RawMessage) bool {
	return len(res) == 0 || bytes.Equal(res, []byte("null"))
}

// unmarshalResult decodes a structured JSON result payload into T.
func unmarshalResult[T any](res json.RawMessage) (T, error) {
	var val T
	if err := json.Unmarshal(res, &val); err != nil {
		var zero T
		return zero, &DecodeError{Err: err}
	}
	return val, nil
}

// unmarshalOptionalResult decodes a structured JSON result payload into T
// for methods whose result may legitimately be absent.  A null result yields
// nil without any decoding.
func unmarshalOptionalResult[T any](res json.RawMessage) (*T, error) {
	if isNullResult(res) {
		return nil, nil
	}
	val := new(T)
	if err := json.Unmarshal(res, val); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return val, nil
}

// unmarshalConsensus decodes a result payload holding a hex string of
// consensus-serialized bytes into target.  Either target is fully populated
// or an error is returned; a partially decoded value is never handed back.
func unmarshalConsensus(res json.RawMessage, target consensusDecodable) error {
	var payloadHex string
	if err := json.Unmarshal(res, &payloadHex); err != nil {
		return &DecodeError{Err: err}
	}

	serialized, err := hex.DecodeString(payloadHex)
	if err != nil {
		return &HexError{Err: err}
	}

	if err := target.Deserialize(bytes.NewReader(serialized)); err != nil {
		return &ConsensusDecodeError{Err: err}
	}
	return nil
}

// unmarshalOptionalConsensus is the variant of unmarshalConsensus for
// methods whose result may legitimately be absent.  It reports whether
// target was populated; a null result short-circuits without attempting hex
// or consensus decoding.
func unmarshalOptionalConsensus(res json.RawMessage, target consensusDecodable) (bool, error) {
	if isNullResult(res) {
		return false, nil
	}
	if err := unmarshalConsensus(res, target); err != nil {
		return false, err
	}
	return true, nil
}
