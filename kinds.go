// Copyright (C) 2026 The jsonerr Authors. All Rights Reserved.

package jsonerr

import (
	"cmp"
	"net/http"
)

// A Code is a stable identifier for one class of failure, suitable for
// machine matching and log correlation.
type Code string

// Codes assigned to JSON parse failures.
const (
	CodeSyntax  Code = "JSON-ERR-SYNTAX"
	CodeEOF     Code = "JSON-ERR-EOF"
	CodeData    Code = "JSON-ERR-DATA"
	CodeIO      Code = "JSON-ERR-IO"
	CodeUnknown Code = "JSON-ERR-UNKNOWN"
)

// A Kind binds a code to the HTTP-equivalent status and default message of
// a failure class. The kind tables of the sibling adapter packages reuse
// this type with their own codes.
type Kind struct {
	Code       Code
	HTTPStatus int
	Message    string
}

// Kinds for the known JSON failure categories. KindUnknown covers any
// category outside the known set, so conversion stays total if the
// underlying decoder grows new failure modes.
var (
	KindSyntax  = Kind{CodeSyntax, http.StatusBadRequest, "Invalid JSON syntax"}
	KindEOF     = Kind{CodeEOF, http.StatusBadRequest, "Unexpected end of JSON input"}
	KindData    = Kind{CodeData, http.StatusBadRequest, "JSON data type mismatch"}
	KindIO      = Kind{CodeIO, http.StatusInternalServerError, "I/O error while reading JSON"}
	KindUnknown = Kind{CodeUnknown, http.StatusInternalServerError, "Unknown JSON error"}
)

// New constructs an Error of kind k. An empty message selects the kind's
// default message. The context is attached as given; use Convert or Build
// when the reserved diagnostic keys should be merged in.
func (k Kind) New(message string, context *Fields) *Error {
	return &Error{
		Code:       k.Code,
		HTTPStatus: k.HTTPStatus,
		Message:    cmp.Or(message, k.Message),
		Context:    context,
	}
}
