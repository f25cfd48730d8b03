// Copyright (c) 2025 The coinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitcoindrpc

import (
	"encoding/json"
)

// argKind identifies how the caller populated a positional argument slot.
type argKind int

const (
	// argRequired is an argument the RPC method cannot be invoked
	// without.
	argRequired argKind = iota

	// argOptionalSet is an optional argument the caller explicitly set.
	argOptionalSet

	// argOptionalDefault is an optional argument the caller left unset.
	// It carries the default value the daemon documents for the slot so
	// the slot can still be filled when a later argument requires it.
	argOptionalDefault
)

// arg pairs one positional RPC argument value with how the caller supplied
// it.  The distinction between set and defaulted optionals only affects the
// trailing trim performed by marshalArgs.
type arg struct {
	kind  argKind
	value interface{}
}

// required returns an argument descriptor for a mandatory parameter.
func required(value interface{}) arg {
	return arg{kind: argRequired, value: value}
}

// optional returns an argument descriptor for an optional parameter.  A
// non-nil value counts as explicitly set.  A nil value carries the
// documented default def instead, which is only ever sent when an argument
// after it forces the slot to be filled.
func optional[T any](value *T, def interface{}) arg {
	if value != nil {
		return arg{kind: argOptionalSet, value: *value}
	}
	return arg{kind: argOptionalDefault, value: def}
}

// optionalSlice is the variant of optional for slice-valued parameters,
// where a nil slice rather than a nil pointer marks the argument as unset.
func optionalSlice[T any](value []T, def interface{}) arg {
	if value != nil {
		return arg{kind: argOptionalSet, value: value}
	}
	return arg{kind: argOptionalDefault, value: def}
}

// marshalArgs converts a sequence of argument descriptors into the
// positional parameter list to send.  The maximal trailing run of unset
// optional arguments is dropped so the daemon applies its own defaults,
// which avoids surprises should the daemon ever change them.  Any unset
// optional argument before that run is sent as its documented default
// because positional calls cannot skip a slot.
//
// Values are marshalled here, before any network activity, so a parameter
// that cannot be represented as JSON aborts the call with a
// SerializationError.
func marshalArgs(args []arg) ([]json.RawMessage, error) {
	for len(args) > 0 && args[len(args)-1].kind == argOptionalDefault {
		args = args[:len(args)-1]
	}

	params := make([]json.RawMessage, 0, len(args))
	for _, a := range args {
		marshalled, err := json.Marshal(a.value)
		if err != nil {
			return nil, &SerializationError{Err: err}
		}
		params = append(params, marshalled)
	}
	return params, nil
}

// Bool is a helper routine that allocates a new bool value to store v and
// returns a pointer to it.  This is useful when assigning optional
// parameters.
func Bool(v bool) *bool {
	return &v
}

// Int is a helper routine that allocates a new int value to store v and
// returns a pointer to it.  This is useful when assigning optional
// parameters.
func Int(v int) *int {
	return &v
}

// String is a helper routine that allocates a new string value to store v
// and returns a pointer to it.  This is useful when assigning optional
// parameters.
func String(v string) *string {
	return &v
}
