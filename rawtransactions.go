// Copyright (c) 2025 The coinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitcoindrpc

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// SigHashType enumerates the available signature hashing types that the
// SignRawTransaction function accepts.
type SigHashType string

// Constants used to indicate the signature hash type for SignRawTransaction.
const (
	// SigHashAll indicates ALL of the outputs should be signed.
	SigHashAll SigHashType = "ALL"

	// SigHashNone indicates NONE of the outputs should be signed.  This
	// can be thought of as specifying the signer does not care where the
	// bitcoins go.
	SigHashNone SigHashType = "NONE"

	// SigHashSingle indicates that a SINGLE output should be signed.  This
	// can be thought of specifying the signer only cares about where ONE of
	// the outputs goes, but not any of the others.
	SigHashSingle SigHashType = "SINGLE"

	// SigHashAllAnyoneCanPay indicates that signer does not care where the
	// other inputs to the transaction come from, so it allows other people
	// to add inputs.  In addition, it uses the SigHashAll signing method
	// for outputs.
	SigHashAllAnyoneCanPay SigHashType = "ALL|ANYONECANPAY"

	// SigHashNoneAnyoneCanPay indicates that signer does not care where the
	// other inputs to the transaction come from, so it allows other people
	// to add inputs.  In addition, it uses the SigHashNone signing method
	// for outputs.
	SigHashNoneAnyoneCanPay SigHashType = "NONE|ANYONECANPAY"

	// SigHashSingleAnyoneCanPay indicates that signer does not care where
	// the other inputs to the transaction come from, so it allows other
	// people to add inputs.  In addition, it uses the SigHashSingle signing
	// method for outputs.
	SigHashSingleAnyoneCanPay SigHashType = "SINGLE|ANYONECANPAY"
)

// String returns the SigHashType in human-readable form.
func (s SigHashType) String() string {
	return string(s)
}

// NewSigHashTypeFromString parses the string token the RPC API uses for a
// signature hash type back into its SigHashType value.
func NewSigHashTypeFromString(s string) (SigHashType, error) {
	switch sh := SigHashType(s); sh {
	case SigHashAll, SigHashNone, SigHashSingle, SigHashAllAnyoneCanPay,
		SigHashNoneAnyoneCanPay, SigHashSingleAnyoneCanPay:

		return sh, nil
	}
	return "", fmt.Errorf("invalid signature hash type %q", s)
}

// RawTxInput models the data needed for a raw transaction input that is used
// in the SignRawTransaction family of functions.  It describes an input
// transaction the RPC server does not already know about.
type RawTxInput struct {
	Txid         string `json:"txid"`
	Vout         uint32 `json:"vout"`
	ScriptPubKey string `json:"scriptPubKey"`
	RedeemScript string `json:"redeemScript"`
}

// notFound reports whether the server answered a lookup with the error code
// bitcoind uses for transactions it has no record of.  Absence is a
// legitimate outcome for those lookups, not a failure.
func notFound(err error) bool {
	var rpcErr *RPCError
	return errors.As(err, &rpcErr) && rpcErr.Code == ErrRPCInvalidAddressOrKey
}

// GetRawTransaction returns a transaction given its hash, searching the
// block with the given hash when one is provided.  A transaction unknown to
// the server yields a nil transaction and a nil error.
//
// See GetRawTransactionVerbose to obtain additional information about the
// transaction.
func (c *Client) GetRawTransaction(txHash *chainhash.Hash,
	blockHash *chainhash.Hash) (*btcutil.Tx, error) {

	var blockHashStr *string
	if blockHash != nil {
		blockHashStr = String(blockHash.String())
	}

	res, err := c.call("getrawtransaction", required(txHash.String()),
		required(false), optional(blockHashStr, ""))
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, err
	}

	// Deserialize the transaction and return it.
	var msgTx wire.MsgTx
	ok, err := unmarshalOptionalConsensus(res, &msgTx)
	if err != nil || !ok {
		return nil, err
	}
	return btcutil.NewTx(&msgTx), nil
}

// GetRawTransactionVerbose returns information about a transaction given its
// hash, searching the block with the given hash when one is provided.  A
// transaction unknown to the server yields a nil result and a nil error.
//
// See GetRawTransaction to obtain only the transaction already deserialized.
func (c *Client) GetRawTransactionVerbose(txHash *chainhash.Hash,
	blockHash *chainhash.Hash) (*TxRawResult, error) {

	var blockHashStr *string
	if blockHash != nil {
		blockHashStr = String(blockHash.String())
	}

	res, err := c.call("getrawtransaction", required(txHash.String()),
		required(true), optional(blockHashStr, ""))
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return unmarshalOptionalResult[TxRawResult](res)
}

// GetTxOut returns the transaction output info if it's unspent and nil,
// otherwise.  The includeMempool parameter controls whether outputs spent by
// unconfirmed transactions count as spent; the server defaults it to true
// when it is not provided.
func (c *Client) GetTxOut(txHash *chainhash.Hash, index uint32,
	includeMempool *bool) (*GetTxOutResult, error) {

	res, err := c.call("gettxout", required(txHash.String()),
		required(index), optional(includeMempool, true))
	if err != nil {
		return nil, err
	}

	return unmarshalOptionalResult[GetTxOutResult](res)
}

// signRawTransaction handles the argument construction shared by the
// SignRawTransaction variants.  Optional arguments left nil are trimmed from
// the tail of the call; those followed by a set argument are sent as the
// defaults the daemon documents (empty lists).
func (c *Client) signRawTransaction(tx *wire.MsgTx, inputs []RawTxInput,
	privKeysWIF []string, hashType *SigHashType) (*wire.MsgTx, bool, error) {

	txHex := ""
	if tx != nil {
		// Serialize the transaction and convert to hex string.
		buf := bytes.NewBuffer(make([]byte, 0, tx.SerializeSize()))
		if err := tx.Serialize(buf); err != nil {
			return nil, false, &SerializationError{Err: err}
		}
		txHex = hex.EncodeToString(buf.Bytes())
	}

	res, err := c.call("signrawtransaction",
		required(txHex),
		optionalSlice(inputs, []RawTxInput{}),
		optionalSlice(privKeysWIF, []string{}),
		optional(hashType, ""))
	if err != nil {
		return nil, false, err
	}

	signResult, err := unmarshalResult[SignRawTransactionResult](res)
	if err != nil {
		return nil, false, err
	}

	// Decode and deserialize the signed transaction.
	serializedTx, err := hex.DecodeString(signResult.Hex)
	if err != nil {
		return nil, false, &HexError{Err: err}
	}
	var msgTx wire.MsgTx
	if err := msgTx.Deserialize(bytes.NewReader(serializedTx)); err != nil {
		return nil, false, &ConsensusDecodeError{Err: err}
	}

	return &msgTx, signResult.Complete, nil
}

// SignRawTransaction signs inputs for the passed transaction and returns the
// signed transaction as well as whether or not all inputs are now signed.
//
// This function assumes the RPC server already knows the input transactions
// and private keys for the passed transaction which needs to be signed and
// uses the default signature hash type.  Use one of the SignRawTransaction#
// variants to specify that information if needed.
func (c *Client) SignRawTransaction(tx *wire.MsgTx) (*wire.MsgTx, bool, error) {
	return c.signRawTransaction(tx, nil, nil, nil)
}

// SignRawTransaction2 signs inputs for the passed transaction given the list
// of information about the input transactions needed to perform the signing
// process.
//
// This only input transactions that need to be specified are ones the RPC
// server does not already know.  Already known input transactions will be
// merged with the specified transactions.
//
// This function assumes the RPC server already knows the private keys.
func (c *Client) SignRawTransaction2(tx *wire.MsgTx,
	inputs []RawTxInput) (*wire.MsgTx, bool, error) {

	return c.signRawTransaction(tx, inputs, nil, nil)
}

// SignRawTransaction3 signs inputs for the passed transaction given the list
// of information about extra input transactions and a list of private keys
// needed to perform the signing process.  The private keys must be in wallet
// import format (WIF).
//
// This only input transactions that need to be specified are ones the RPC
// server does not already know.  Already known input transactions will be
// merged with the specified transactions.
//
// NOTE: Unlike the merging functionality of the input transactions, ONLY the
// specified private keys will be used, so even if the server already knows
// some of the private keys, they will NOT be used.
func (c *Client) SignRawTransaction3(tx *wire.MsgTx, inputs []RawTxInput,
	privKeysWIF []string) (*wire.MsgTx, bool, error) {

	return c.signRawTransaction(tx, inputs, privKeysWIF, nil)
}

// SignRawTransaction4 signs inputs for the passed transaction using the
// specified signature hash type given the list of information about extra
// input transactions and a potential list of private keys needed to perform
// the signing process.  The private keys, if specified, must be in wallet
// import format (WIF).
//
// This function should only be used if a non-default signature hash type is
// desired.  Otherwise, see SignRawTransaction if the RPC server already
// knows the input transactions and private keys, SignRawTransaction2 if it
// already knows the private keys, or SignRawTransaction3 if it does not know
// both.
func (c *Client) SignRawTransaction4(tx *wire.MsgTx, inputs []RawTxInput,
	privKeysWIF []string, hashType SigHashType) (*wire.MsgTx, bool, error) {

	return c.signRawTransaction(tx, inputs, privKeysWIF, &hashType)
}
