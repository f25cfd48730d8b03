// Copyright (c) 2025 The coinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitcoindrpc

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// GetBlock returns a raw block from the server given its hash.
//
// See GetBlockVerbose to retrieve a data structure with information about the
// block instead.
func (c *Client) GetBlock(blockHash *chainhash.Hash) (*wire.MsgBlock, error) {
	res, err := c.call("getblock", required(blockHash.String()), required(0))
	if err != nil {
		return nil, err
	}

	// Deserialize the block and return it.
	var msgBlock wire.MsgBlock
	if err := unmarshalConsensus(res, &msgBlock); err != nil {
		return nil, err
	}
	return &msgBlock, nil
}

// GetBlockVerbose returns a data structure from the server with information
// about a block given its hash.
//
// See GetBlock to retrieve a raw block instead.
func (c *Client) GetBlockVerbose(blockHash *chainhash.Hash) (*GetBlockVerboseResult, error) {
	res, err := c.call("getblock", required(blockHash.String()), required(1))
	if err != nil {
		return nil, err
	}

	blockResult, err := unmarshalResult[GetBlockVerboseResult](res)
	if err != nil {
		return nil, err
	}
	return &blockResult, nil
}

// GetBlockCount returns the number of blocks in the longest block chain.
func (c *Client) GetBlockCount() (int64, error) {
	res, err := c.call("getblockcount")
	if err != nil {
		return 0, err
	}
	return unmarshalResult[int64](res)
}

// GetBlockHash returns the hash of the block in the best block chain at the
// given height.
func (c *Client) GetBlockHash(blockHeight int64) (*chainhash.Hash, error) {
	res, err := c.call("getblockhash", required(blockHeight))
	if err != nil {
		return nil, err
	}

	hashStr, err := unmarshalResult[string](res)
	if err != nil {
		return nil, err
	}
	hash, err := chainhash.NewHashFromStr(hashStr)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return hash, nil
}

// GetBlockHeader returns the raw block header from the server given its
// hash.
//
// See GetBlockHeaderVerbose to retrieve a data structure with information
// about the block header instead.
func (c *Client) GetBlockHeader(blockHash *chainhash.Hash) (*wire.BlockHeader, error) {
	res, err := c.call("getblockheader", required(blockHash.String()),
		required(false))
	if err != nil {
		return nil, err
	}

	// Deserialize the block header and return it.
	var bh wire.BlockHeader
	if err := unmarshalConsensus(res, &bh); err != nil {
		return nil, err
	}
	return &bh, nil
}

// GetBlockHeaderVerbose returns a data structure of the block header from
// the server given its hash.
//
// See GetBlockHeader to retrieve a raw block header instead.
func (c *Client) GetBlockHeaderVerbose(blockHash *chainhash.Hash) (*GetBlockHeaderVerboseResult, error) {
	res, err := c.call("getblockheader", required(blockHash.String()),
		required(true))
	if err != nil {
		return nil, err
	}

	bh, err := unmarshalResult[GetBlockHeaderVerboseResult](res)
	if err != nil {
		return nil, err
	}
	return &bh, nil
}
