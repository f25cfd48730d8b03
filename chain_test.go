// Copyright (c) 2025 The coinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitcoindrpc

import (
	"encoding/json"
	"testing"

	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

// TestGetBlockCount ensures the call carries no parameters at all and that
// the bare integer result decodes.
func TestGetBlockCount(t *testing.T) {
	t.Parallel()

	tc := newTestClient(t, staticResult(`712000`))

	count, err := tc.GetBlockCount()
	require.NoError(t, err)
	require.Equal(t, int64(712000), count)

	req := tc.lastRequest(t)
	require.Equal(t, "getblockcount", req.Method)
	require.Empty(t, req.Params)
}

// TestGetBlockHash checks decoding of the string-encoded hash result.
func TestGetBlockHash(t *testing.T) {
	t.Parallel()

	const genesisHash = "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"
	tc := newTestClient(t, staticResult(`"`+genesisHash+`"`))

	hash, err := tc.GetBlockHash(0)
	require.NoError(t, err)
	require.Equal(t, genesisHash, hash.String())

	req := tc.lastRequest(t)
	require.Equal(t, "getblockhash", req.Method)
	require.Len(t, req.Params, 1)
	require.JSONEq(t, `0`, string(req.Params[0]))
}

// TestGetBlock round-trips a block through the raw decode path and checks
// the fixed verbosity argument.
func TestGetBlock(t *testing.T) {
	t.Parallel()

	block := wire.MsgBlock{Header: *testBlockHeader()}
	blockHash := block.BlockHash()

	tc := newTestClient(t, func(*Request) (json.RawMessage, *RPCError) {
		return hexResult(t, block.Serialize), nil
	})

	got, err := tc.GetBlock(&blockHash)
	require.NoError(t, err)
	require.Equal(t, blockHash, got.BlockHash())

	req := tc.lastRequest(t)
	require.Equal(t, "getblock", req.Method)
	require.Len(t, req.Params, 2)
	require.JSONEq(t, `"`+blockHash.String()+`"`, string(req.Params[0]))
	require.JSONEq(t, `0`, string(req.Params[1]))
}

// TestGetBlockBadPayloads ensures a malformed raw result never yields a
// partially populated block.
func TestGetBlockBadPayloads(t *testing.T) {
	t.Parallel()

	hash := testBlockHeader().BlockHash()

	tc := newTestClient(t, staticResult(`"zzzz"`))
	_, err := tc.GetBlock(&hash)
	var hexErr *HexError
	require.ErrorAs(t, err, &hexErr)

	tc = newTestClient(t, staticResult(`"deadbeef"`))
	_, err = tc.GetBlock(&hash)
	var consensusErr *ConsensusDecodeError
	require.ErrorAs(t, err, &consensusErr)
}

// TestGetBlockVerbose checks the structured getblock variant and its fixed
// verbosity argument.
func TestGetBlockVerbose(t *testing.T) {
	t.Parallel()

	tc := newTestClient(t, staticResult(`{
		"hash": "00000000000000000002f1c7b6f09bc6c0d8dbab311c4fa4f3d5c118b34e0d07",
		"confirmations": 10,
		"height": 712000,
		"tx": ["aa", "bb"],
		"bits": "170e2632",
		"difficulty": 22674148233453.1
	}`))

	hash := testBlockHeader().BlockHash()
	block, err := tc.GetBlockVerbose(&hash)
	require.NoError(t, err)
	require.Equal(t, int64(712000), block.Height)
	require.Equal(t, uint64(10), block.Confirmations)
	require.Equal(t, []string{"aa", "bb"}, block.Tx)

	req := tc.lastRequest(t)
	require.Equal(t, "getblock", req.Method)
	require.Len(t, req.Params, 2)
	require.JSONEq(t, `1`, string(req.Params[1]))
}

// TestGetBlockHeader round-trips a header through the raw decode path and
// checks the verbose flag is off for it.
func TestGetBlockHeader(t *testing.T) {
	t.Parallel()

	header := testBlockHeader()
	headerHash := header.BlockHash()

	tc := newTestClient(t, func(*Request) (json.RawMessage, *RPCError) {
		return hexResult(t, header.Serialize), nil
	})

	got, err := tc.GetBlockHeader(&headerHash)
	require.NoError(t, err)
	require.Equal(t, headerHash, got.BlockHash())

	req := tc.lastRequest(t)
	require.Equal(t, "getblockheader", req.Method)
	require.Len(t, req.Params, 2)
	require.JSONEq(t, `false`, string(req.Params[1]))
}

// TestGetBlockHeaderVerbose checks the structured getblockheader variant
// and that the verbose flag is on for it.
func TestGetBlockHeaderVerbose(t *testing.T) {
	t.Parallel()

	tc := newTestClient(t, staticResult(`{
		"hash": "00000000000000000002f1c7b6f09bc6c0d8dbab311c4fa4f3d5c118b34e0d07",
		"height": 712000,
		"version": 536870912,
		"bits": "170e2632",
		"previousblockhash": "00000000000000000001a1be8d05e576bdd82372ea2455cba1a51fa59e3d4b33"
	}`))

	hash := testBlockHeader().BlockHash()
	header, err := tc.GetBlockHeaderVerbose(&hash)
	require.NoError(t, err)
	require.Equal(t, int32(712000), header.Height)
	require.Equal(t, int32(536870912), header.Version)
	require.NotEmpty(t, header.PreviousHash)

	req := tc.lastRequest(t)
	require.Equal(t, "getblockheader", req.Method)
	require.Len(t, req.Params, 2)
	require.JSONEq(t, `true`, string(req.Params[1]))
}
