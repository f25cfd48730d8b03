// Copyright (c) 2025 The coinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitcoindrpc

import (
	"github.com/btcsuite/btcd/btcutil"
)

// ListUnspentQueryOptions models the optional query_options argument to the
// listunspent command.  Zero-valued fields are omitted from the request so
// the daemon applies its own behavior for them.
//
// Whether these options take precedence over the include-unsafe argument is
// daemon-defined; consult the daemon's own documentation.
type ListUnspentQueryOptions struct {
	// MinimumAmount is the minimum value of each output in BTC.
	MinimumAmount float64 `json:"minimumAmount,omitempty"`

	// MaximumAmount is the maximum value of each output in BTC.
	MaximumAmount float64 `json:"maximumAmount,omitempty"`

	// MaximumCount is the maximum number of outputs to return.
	MaximumCount int `json:"maximumCount,omitempty"`

	// MinimumSumAmount stops the listing once the sum of the returned
	// outputs reaches this value in BTC.
	MinimumSumAmount float64 `json:"minimumSumAmount,omitempty"`
}

// listUnspent handles the argument construction shared by the ListUnspent
// variants.  Arguments left nil are sent as their documented defaults only
// when a later argument was set; a trailing run of nil arguments is trimmed
// from the call entirely.
func (c *Client) listUnspent(minConf, maxConf *int, addrs []btcutil.Address,
	includeUnsafe *bool, queryOptions *ListUnspentQueryOptions) ([]ListUnspentResult, error) {

	var addrStrs []string
	if addrs != nil {
		addrStrs = make([]string, 0, len(addrs))
		for _, a := range addrs {
			addrStrs = append(addrStrs, a.EncodeAddress())
		}
	}

	res, err := c.call("listunspent",
		optional(minConf, 0),
		optional(maxConf, 9999999),
		optionalSlice(addrStrs, []string{}),
		optional(includeUnsafe, true),
		optional(queryOptions, ""))
	if err != nil {
		return nil, err
	}

	return unmarshalResult[[]ListUnspentResult](res)
}

// ListUnspent returns all unspent transaction outputs known to a wallet,
// using the daemon's default confirmation range.
func (c *Client) ListUnspent() ([]ListUnspentResult, error) {
	return c.listUnspent(nil, nil, nil, nil, nil)
}

// ListUnspentMin returns all unspent transaction outputs known to a wallet,
// using the specified number of minimum confirmations.
func (c *Client) ListUnspentMin(minConf int) ([]ListUnspentResult, error) {
	return c.listUnspent(&minConf, nil, nil, nil, nil)
}

// ListUnspentMinMax returns all unspent transaction outputs known to a
// wallet, using the specified number of minimum and maximum number of
// confirmations as a filter.
func (c *Client) ListUnspentMinMax(minConf, maxConf int) ([]ListUnspentResult, error) {
	return c.listUnspent(&minConf, &maxConf, nil, nil, nil)
}

// ListUnspentMinMaxAddresses returns all unspent transaction outputs that
// pay to any of the specified addresses, using the specified number of
// minimum and maximum number of confirmations as a filter.
func (c *Client) ListUnspentMinMaxAddresses(minConf, maxConf int,
	addrs []btcutil.Address) ([]ListUnspentResult, error) {

	return c.listUnspent(&minConf, &maxConf, addrs, nil, nil)
}

// ListUnspentQuery returns unspent transaction outputs according to the full
// set of filters the listunspent command accepts.  Any parameter may be left
// nil to let the daemon apply its default for it.
func (c *Client) ListUnspentQuery(minConf, maxConf *int,
	addrs []btcutil.Address, includeUnsafe *bool,
	queryOptions *ListUnspentQueryOptions) ([]ListUnspentResult, error) {

	return c.listUnspent(minConf, maxConf, addrs, includeUnsafe, queryOptions)
}
