// Copyright (C) 2026 The jsonerr Authors. All Rights Reserved.

// Package canon renders structured errors as RFC 8785 canonical JSON,
// giving byte-stable output for logs and error fingerprinting.
package canon

import (
	"encoding/json"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"

	"github.com/cdumay/jsonerr"
)

// Render serializes e and canonicalizes the result. It fails only when a
// context value cannot be serialized as JSON.
func Render(e *jsonerr.Error) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return jsoncanonicalizer.Transform(data)
}

// MustRender is Render for call sites whose context values are known to
// be serializable, typically log emission. It panics if e cannot be
// rendered.
func MustRender(e *jsonerr.Error) []byte {
	data, err := Render(e)
	if err != nil {
		panic("canon: " + err.Error())
	}
	return data
}
