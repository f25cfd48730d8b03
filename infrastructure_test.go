// Copyright (c) 2025 The coinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitcoindrpc

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// rpcHandler produces the result payload or RPC error to reply with for a
// decoded request.
type rpcHandler func(req *Request) (json.RawMessage, *RPCError)

// staticResult returns a handler that replies to every request with the
// given result payload.
func staticResult(result string) rpcHandler {
	return func(*Request) (json.RawMessage, *RPCError) {
		return json.RawMessage(result), nil
	}
}

// testClient wires a Client to an httptest server driven by handler and
// records every request the server decodes.
type testClient struct {
	*Client
	requests []*Request
}

func newTestClient(t *testing.T, handler rpcHandler) *testClient {
	t.Helper()

	tc := &testClient{}
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)

			var req Request
			require.NoError(t, json.Unmarshal(body, &req))
			tc.requests = append(tc.requests, &req)

			result, rpcErr := handler(&req)
			resp, err := json.Marshal(&Response{
				Result: result,
				Error:  rpcErr,
			})
			require.NoError(t, err)

			w.Header().Set("Content-Type", "application/json")
			_, err = w.Write(resp)
			require.NoError(t, err)
		}))
	t.Cleanup(server.Close)

	client, err := New(&ConnConfig{
		Host:       strings.TrimPrefix(server.URL, "http://"),
		User:       "user",
		Pass:       "pass",
		DisableTLS: true,
	})
	require.NoError(t, err)
	t.Cleanup(client.Shutdown)

	tc.Client = client
	return tc
}

// lastRequest returns the most recent request the test server decoded.
func (tc *testClient) lastRequest(t *testing.T) *Request {
	t.Helper()
	require.NotEmpty(t, tc.requests)
	return tc.requests[len(tc.requests)-1]
}

// TestRawRequestBasicAuth ensures the configured username and password are
// sent as HTTP basic auth.
func TestRawRequestBasicAuth(t *testing.T) {
	t.Parallel()

	var gotUser, gotPass string
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			gotUser, gotPass = user, pass
			_, err := w.Write([]byte(`{"result":1,"error":null,"id":1}`))
			require.NoError(t, err)
		}))
	defer server.Close()

	client, err := New(&ConnConfig{
		Host:       strings.TrimPrefix(server.URL, "http://"),
		User:       "jsonrpcuser",
		Pass:       "jsonrpcpass",
		DisableTLS: true,
	})
	require.NoError(t, err)
	defer client.Shutdown()

	_, err = client.RawRequest("getblockcount", nil)
	require.NoError(t, err)
	require.Equal(t, "jsonrpcuser", gotUser)
	require.Equal(t, "jsonrpcpass", gotPass)
}

// TestRawRequestCookieAuth ensures credentials are loaded from a bitcoind
// auth cookie file when one is configured.
func TestRawRequestCookieAuth(t *testing.T) {
	t.Parallel()

	cookiePath := filepath.Join(t.TempDir(), ".cookie")
	err := os.WriteFile(cookiePath, []byte("__cookie__:abc123\n"), 0600)
	require.NoError(t, err)

	var gotUser, gotPass string
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			gotUser, gotPass = user, pass
			_, err := w.Write([]byte(`{"result":1,"error":null,"id":1}`))
			require.NoError(t, err)
		}))
	defer server.Close()

	client, err := New(&ConnConfig{
		Host:       strings.TrimPrefix(server.URL, "http://"),
		CookiePath: cookiePath,
		DisableTLS: true,
	})
	require.NoError(t, err)
	defer client.Shutdown()

	_, err = client.RawRequest("getblockcount", nil)
	require.NoError(t, err)
	require.Equal(t, "__cookie__", gotUser)
	require.Equal(t, "abc123", gotPass)
}

// TestReadCookieFile checks parsing of well-formed and malformed cookie
// files.
func TestReadCookieFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	good := filepath.Join(dir, "good")
	require.NoError(t, os.WriteFile(good, []byte("user:pass:with:colons\n"), 0600))
	user, pass, err := readCookieFile(good)
	require.NoError(t, err)
	require.Equal(t, "user", user)
	require.Equal(t, "pass:with:colons", pass)

	bad := filepath.Join(dir, "bad")
	require.NoError(t, os.WriteFile(bad, []byte("nocolonhere\n"), 0600))
	_, _, err = readCookieFile(bad)
	require.Error(t, err)

	_, _, err = readCookieFile(filepath.Join(dir, "missing"))
	require.Error(t, err)
}

// TestRawRequestRPCError ensures an error reported by the daemon surfaces as
// an *RPCError with the daemon's code and message intact.
func TestRawRequestRPCError(t *testing.T) {
	t.Parallel()

	tc := newTestClient(t, func(*Request) (json.RawMessage, *RPCError) {
		return nil, &RPCError{Code: -32601, Message: "Method not found"}
	})

	_, err := tc.RawRequest("bogusmethod", nil)
	require.Error(t, err)

	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	require.Equal(t, RPCErrorCode(-32601), rpcErr.Code)
	require.Equal(t, "Method not found", rpcErr.Message)
}

// TestRawRequestNoMethod ensures an empty method name is rejected before any
// network activity.
func TestRawRequestNoMethod(t *testing.T) {
	t.Parallel()

	tc := newTestClient(t, staticResult("1"))
	_, err := tc.RawRequest("", nil)
	require.Error(t, err)
	require.Empty(t, tc.requests)
}

// TestRawRequestMalformedEnvelope ensures a reply that is not a valid
// JSON-RPC response surfaces as a TransportError, including the HTTP status
// when the server reported a failure.
func TestRawRequestMalformedEnvelope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		body       string
		wantInMsg  string
	}{
		{
			name:       "html error page",
			statusCode: http.StatusForbidden,
			body:       "<html>Forbidden</html>",
			wantInMsg:  "status code: 403",
		},
		{
			name:       "garbage with ok status",
			statusCode: http.StatusOK,
			body:       "not json at all",
			wantInMsg:  "invalid character",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(test.statusCode)
					_, err := w.Write([]byte(test.body))
					require.NoError(t, err)
				}))
			defer server.Close()

			client, err := New(&ConnConfig{
				Host:       strings.TrimPrefix(server.URL, "http://"),
				DisableTLS: true,
			})
			require.NoError(t, err)
			defer client.Shutdown()

			_, err = client.RawRequest("getblockcount", nil)
			require.Error(t, err)

			var transportErr *TransportError
			require.ErrorAs(t, err, &transportErr)
			require.Contains(t, err.Error(), test.wantInMsg)
		})
	}
}

// TestRawRequestExtraHeaders ensures configured extra headers are attached
// to every request.
func TestRawRequestExtraHeaders(t *testing.T) {
	t.Parallel()

	var gotHeader string
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotHeader = r.Header.Get("X-Forwarded-For")
			_, err := w.Write([]byte(`{"result":1,"error":null,"id":1}`))
			require.NoError(t, err)
		}))
	defer server.Close()

	client, err := New(&ConnConfig{
		Host:         strings.TrimPrefix(server.URL, "http://"),
		DisableTLS:   true,
		ExtraHeaders: map[string]string{"X-Forwarded-For": "10.0.0.1"},
	})
	require.NoError(t, err)
	defer client.Shutdown()

	_, err = client.RawRequest("getblockcount", nil)
	require.NoError(t, err)
	require.Equal(t, "10.0.0.1", gotHeader)
}

// TestRequestIDsIncrement ensures each request carries a fresh id.
func TestRequestIDsIncrement(t *testing.T) {
	t.Parallel()

	tc := newTestClient(t, staticResult("1"))
	for i := 0; i < 3; i++ {
		_, err := tc.RawRequest("getblockcount", nil)
		require.NoError(t, err)
	}

	require.Len(t, tc.requests, 3)
	for i, req := range tc.requests {
		// Numbers decode as float64 through the interface field.
		require.Equal(t, float64(i+1), req.ID)
		require.Equal(t, "1.0", req.Jsonrpc)
	}
}
