// Copyright (C) 2026 The jsonerr Authors. All Rights Reserved.

// Package hujsonerr classifies failures from standardizing HuJSON (JSON
// with comments and trailing commas) into the structured error form
// defined by the jsonerr package.
package hujsonerr

import (
	"net/http"
	"strings"

	"github.com/tailscale/hujson"

	"github.com/cdumay/jsonerr"
)

// Codes assigned to HuJSON standardization failures.
const (
	CodeSyntax  jsonerr.Code = "HUJSON-ERR-SYNTAX"
	CodeEOF     jsonerr.Code = "HUJSON-ERR-EOF"
	CodeUnknown jsonerr.Code = "HUJSON-ERR-UNKNOWN"
)

// Kinds for the known HuJSON failure categories. Standardization works on
// a byte slice already in memory, so no IO category arises here.
var (
	KindSyntax  = jsonerr.Kind{Code: CodeSyntax, HTTPStatus: http.StatusBadRequest, Message: "Invalid HuJSON syntax"}
	KindEOF     = jsonerr.Kind{Code: CodeEOF, HTTPStatus: http.StatusBadRequest, Message: "Unexpected end of HuJSON input"}
	KindUnknown = jsonerr.Kind{Code: CodeUnknown, HTTPStatus: http.StatusInternalServerError, Message: "Unknown HuJSON error"}
)

// Classify tags err with its failure category. All hujson failures are
// syntactic; truncated input is distinguished by the reported
// description.
func Classify(err error) jsonerr.Failure {
	f := jsonerr.Failure{Category: jsonerr.Syntax, Detail: err.Error(), Err: err}
	if strings.Contains(f.Detail, "EOF") || strings.Contains(f.Detail, "end of input") {
		f.Category = jsonerr.EOF
	}
	return f
}

// KindOf returns the HuJSON kind bound to c. Categories outside the known
// set resolve to KindUnknown.
func KindOf(c jsonerr.Category) jsonerr.Kind {
	switch c {
	case jsonerr.Syntax:
		return KindSyntax
	case jsonerr.EOF:
		return KindEOF
	}
	return KindUnknown
}

// Convert builds the structured form of a HuJSON failure. The semantics
// match jsonerr.Convert.
func Convert(failure jsonerr.Failure, message string, context *jsonerr.Fields) *jsonerr.Error {
	return jsonerr.Build(KindOf(failure.Category), failure, message, context)
}

// ErrorConverter converts tagged HuJSON failures. It is stateless; the
// zero value is ready for use.
type ErrorConverter struct{}

// Convert implements the jsonerr.Converter contract for HuJSON failures.
func (ErrorConverter) Convert(failure jsonerr.Failure, message string, context *jsonerr.Fields) *jsonerr.Error {
	return Convert(failure, message, context)
}

// Standardize converts HuJSON input to standard JSON, reporting a
// malformed document as a converted structured error.
func Standardize(data []byte) ([]byte, *jsonerr.Error) {
	out, err := hujson.Standardize(data)
	if err != nil {
		return nil, Convert(Classify(err), "", nil)
	}
	return out, nil
}
