// Copyright (c) 2025 The coinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitcoindrpc

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// readCookieFile parses a bitcoind-style RPC auth cookie of the form
// "username:password".
func readCookieFile(path string) (username, password string, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return
	}

	s := strings.TrimSpace(string(b))
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		err = fmt.Errorf("malformed cookie file")
		return
	}

	username, password = parts[0], parts[1]
	return
}

// cookieRetriever returns a function that fetches the current contents of
// the cookie file at path.  The daemon rewrites the cookie on restart, so
// the file is re-read whenever its modification time changes, checked at
// most every 30 seconds.
func cookieRetriever(path string) func() (username, password string, err error) {
	lastCheckTime := time.Time{}
	lastModTime := time.Time{}

	curUsername, curPassword := "", ""
	var curError error

	doUpdate := func() {
		if !lastCheckTime.IsZero() && time.Now().Before(lastCheckTime.Add(30*time.Second)) {
			return
		}

		lastCheckTime = time.Now()

		st, err := os.Stat(path)
		if err != nil {
			curError = err
			return
		}

		modTime := st.ModTime()
		if !modTime.Equal(lastModTime) {
			lastModTime = modTime
			curUsername, curPassword, curError = readCookieFile(path)
		}
	}

	return func() (username, password string, err error) {
		doUpdate()
		return curUsername, curPassword, curError
	}
}
