// Copyright (c) 2025 The coinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitcoindrpc

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync/atomic"

	"github.com/btcsuite/go-socks/socks"
)

// ConnConfig describes the connection configuration parameters for the
// client.
type ConnConfig struct {
	// Host is the IP address and port of the RPC server you want to
	// connect to.
	Host string

	// User is the username to use to authenticate to the RPC server.
	User string

	// Pass is the passphrase to use to authenticate to the RPC server.
	Pass string

	// CookiePath is the path to a cookie file containing the username and
	// passphrase to use to authenticate to the RPC server.  It is used
	// instead of User and Pass if non-empty.
	CookiePath string

	// ExtraHeaders specifies the extra headers when performing a request.
	ExtraHeaders map[string]string

	// DisableTLS specifies whether transport layer security should be
	// disabled.  It is recommended to always use TLS if the RPC server
	// supports it as otherwise your username and password is sent across
	// the wire in cleartext.
	DisableTLS bool

	// Certificates are the bytes for a PEM-encoded certificate chain used
	// for the TLS connection.  It has no effect if the DisableTLS
	// parameter is true.
	Certificates []byte

	// Proxy specifies to connect through a SOCKS 5 proxy server.  It may
	// be an empty string if a proxy is not required.
	Proxy string

	// ProxyUser is an optional username to use for the proxy server if it
	// requires authentication.  It has no effect if the Proxy parameter
	// is not set.
	ProxyUser string

	// ProxyPass is an optional password to use for the proxy server if it
	// requires authentication.  It has no effect if the Proxy parameter
	// is not set.
	ProxyPass string
}

// Client represents a Bitcoin RPC client which allows easy access to the
// various RPC methods available on a Bitcoin-protocol-compatible daemon.
// Each call is a single synchronous HTTP POST exchange; the client keeps no
// state between calls beyond the underlying HTTP connection cache.
//
// The client does not implement any internal locking.  Callers that want to
// issue requests from several goroutines at once must either coordinate
// access themselves or use one client per goroutine.
type Client struct {
	// id is the next request id to use and must only be accessed
	// atomically.
	id uint64

	// config holds the connection configuration associated with this
	// client.
	config *ConnConfig

	// retrieveCookie loads fresh credentials from the configured cookie
	// file.  It is nil when cookie authentication is not in use.
	retrieveCookie func() (username, password string, err error)

	// httpClient is the underlying HTTP client to use when running in
	// HTTP POST mode.
	httpClient *http.Client
}

// NextID returns the next id to be used when sending a JSON-RPC message.
// This ID allows responses to be associated with particular requests per the
// JSON-RPC specification.
func (c *Client) NextID() uint64 {
	return atomic.AddUint64(&c.id, 1)
}

// New returns a new instance of an RPC client for the specified connection
// configuration.
func New(config *ConnConfig) (*Client, error) {
	httpClient, err := newHTTPClient(config)
	if err != nil {
		return nil, err
	}

	client := &Client{
		config:     config,
		httpClient: httpClient,
	}
	if config.CookiePath != "" {
		client.retrieveCookie = cookieRetriever(config.CookiePath)
	}

	log.Infof("Created RPC client for %s", config.Host)
	return client, nil
}

// Shutdown releases the connections held idle by the client's underlying
// transport.  The client remains usable afterwards; new calls simply dial
// fresh connections.
func (c *Client) Shutdown() {
	log.Tracef("Shutting down RPC client %s", c.config.Host)
	c.httpClient.CloseIdleConnections()
}

// newHTTPClient returns a new http client that is configured according to
// the proxy and TLS settings in the associated connection configuration.
func newHTTPClient(config *ConnConfig) (*http.Client, error) {
	// Configure proxy if needed.
	var dial func(network, addr string) (net.Conn, error)
	if config.Proxy != "" {
		proxy := &socks.Proxy{
			Addr:     config.Proxy,
			Username: config.ProxyUser,
			Password: config.ProxyPass,
		}
		dial = func(network, addr string) (net.Conn, error) {
			c, err := proxy.Dial(network, addr)
			if err != nil {
				return nil, err
			}
			return c, nil
		}
	}

	// Configure TLS if needed.
	var tlsConfig *tls.Config
	if !config.DisableTLS {
		tlsConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
		if len(config.Certificates) > 0 {
			pool := x509.NewCertPool()
			pool.AppendCertsFromPEM(config.Certificates)
			tlsConfig.RootCAs = pool
		}
	}

	return &http.Client{
		Transport: &http.Transport{
			Dial:            dial,
			TLSClientConfig: tlsConfig,
		},
	}, nil
}

// credentials returns the username and passphrase to authenticate with,
// reading the cookie file when one is configured.
func (c *Client) credentials() (username, password string, err error) {
	if c.retrieveCookie != nil {
		return c.retrieveCookie()
	}
	return c.config.User, c.config.Pass, nil
}

// call builds the positional parameter list for the given argument
// descriptors, trimming the trailing run of unset optional arguments, and
// issues the request.  It returns the raw result payload for the facade
// method to decode.
func (c *Client) call(method string, args ...arg) (json.RawMessage, error) {
	params, err := marshalArgs(args)
	if err != nil {
		return nil, err
	}
	return c.RawRequest(method, params)
}

// RawRequest allows the caller to send a request to the connected server
// using custom commands not covered by the exported methods of this package.
// The method name and parameter list are passed along verbatim and the raw
// result payload is returned for the caller to interpret.
func (c *Client) RawRequest(method string, params []json.RawMessage) (json.RawMessage, error) {
	if method == "" {
		return nil, errors.New("no method")
	}
	if params == nil {
		params = []json.RawMessage{}
	}

	req := &Request{
		Jsonrpc: "1.0",
		ID:      c.NextID(),
		Method:  method,
		Params:  params,
	}
	marshalledJSON, err := json.Marshal(req)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}

	protocol := "http"
	if !c.config.DisableTLS {
		protocol = "https"
	}
	url := protocol + "://" + c.config.Host

	httpReq, err := http.NewRequest(http.MethodPost, url,
		bytes.NewReader(marshalledJSON))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	httpReq.Close = true
	httpReq.Header.Set("Content-Type", "application/json")
	for key, value := range c.config.ExtraHeaders {
		httpReq.Header.Set(key, value)
	}

	user, pass, err := c.credentials()
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	httpReq.SetBasicAuth(user, pass)

	log.Tracef("Sending command [%s] to %s", method, c.config.Host)
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	respBytes, err := io.ReadAll(httpResp.Body)
	httpResp.Body.Close()
	if err != nil {
		return nil, &TransportError{
			Err: fmt.Errorf("error reading json reply: %w", err),
		}
	}

	var resp Response
	if err := json.Unmarshal(respBytes, &resp); err != nil {
		// When the response itself isn't a valid JSON-RPC response,
		// return an error which includes the HTTP status code and raw
		// response bytes.  The body frequently is an HTML error page
		// in that situation.
		if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
			return nil, &TransportError{
				Err: fmt.Errorf("status code: %d, response: %q",
					httpResp.StatusCode, string(respBytes)),
			}
		}
		return nil, &TransportError{Err: err}
	}

	if resp.Error != nil {
		return nil, resp.Error
	}

	log.Tracef("Received %d byte result for command [%s]",
		len(resp.Result), method)
	return resp.Result, nil
}
