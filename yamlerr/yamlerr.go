// Copyright (C) 2026 The jsonerr Authors. All Rights Reserved.

// Package yamlerr classifies YAML decoding failures into the structured
// error form defined by the jsonerr package.
package yamlerr

import (
	"errors"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cdumay/jsonerr"
)

// Codes assigned to YAML parse failures.
const (
	CodeSyntax  jsonerr.Code = "YAML-ERR-SYNTAX"
	CodeEOF     jsonerr.Code = "YAML-ERR-EOF"
	CodeData    jsonerr.Code = "YAML-ERR-DATA"
	CodeIO      jsonerr.Code = "YAML-ERR-IO"
	CodeUnknown jsonerr.Code = "YAML-ERR-UNKNOWN"
)

// Kinds for the known YAML failure categories.
var (
	KindSyntax  = jsonerr.Kind{Code: CodeSyntax, HTTPStatus: http.StatusBadRequest, Message: "Invalid YAML syntax"}
	KindEOF     = jsonerr.Kind{Code: CodeEOF, HTTPStatus: http.StatusBadRequest, Message: "Unexpected end of YAML input"}
	KindData    = jsonerr.Kind{Code: CodeData, HTTPStatus: http.StatusBadRequest, Message: "YAML data type mismatch"}
	KindIO      = jsonerr.Kind{Code: CodeIO, HTTPStatus: http.StatusInternalServerError, Message: "I/O error while reading YAML"}
	KindUnknown = jsonerr.Kind{Code: CodeUnknown, HTTPStatus: http.StatusInternalServerError, Message: "Unknown YAML error"}
)

// lineRE matches the position prefix yaml.v3 puts on syntax failures.
var lineRE = regexp.MustCompile(`^yaml: line (\d+):`)

// Classify tags err with its failure category. A *yaml.TypeError is a
// Data failure; any other error carrying the "yaml:" description prefix
// is a Syntax failure, with the line number recovered from the
// description when the decoder reported one. Errors without the prefix
// were surfaced from the underlying reader.
func Classify(err error) jsonerr.Failure {
	f := jsonerr.Failure{Category: jsonerr.IO, Detail: err.Error(), Err: err}

	var terr *yaml.TypeError
	switch {
	case errors.As(err, &terr):
		f.Category = jsonerr.Data
	case errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF):
		f.Category = jsonerr.EOF
	case strings.HasPrefix(f.Detail, "yaml:"):
		f.Category = jsonerr.Syntax
		if m := lineRE.FindStringSubmatch(f.Detail); m != nil {
			f.Line, _ = strconv.Atoi(m[1])
		}
	}
	return f
}

// KindOf returns the YAML kind bound to c. Categories outside the known
// set resolve to KindUnknown.
func KindOf(c jsonerr.Category) jsonerr.Kind {
	switch c {
	case jsonerr.Syntax:
		return KindSyntax
	case jsonerr.EOF:
		return KindEOF
	case jsonerr.IO:
		return KindIO
	case jsonerr.Data:
		return KindData
	}
	return KindUnknown
}

// Convert builds the structured form of a YAML failure. The semantics
// match jsonerr.Convert.
func Convert(failure jsonerr.Failure, message string, context *jsonerr.Fields) *jsonerr.Error {
	return jsonerr.Build(KindOf(failure.Category), failure, message, context)
}

// ErrorConverter converts tagged YAML parse failures. It is stateless;
// the zero value is ready for use.
type ErrorConverter struct{}

// Convert implements the jsonerr.Converter contract for YAML failures.
func (ErrorConverter) Convert(failure jsonerr.Failure, message string, context *jsonerr.Fields) *jsonerr.Error {
	return Convert(failure, message, context)
}

// Wrap adapts a (value, error) pair from a YAML decode in a single call,
// as jsonerr.Wrap does for JSON.
func Wrap[T any](v T, err error) (T, error) {
	return WrapMessage(v, err, nil, "")
}

// WrapContext is Wrap with a caller-supplied context mapping.
func WrapContext[T any](v T, err error, context *jsonerr.Fields) (T, error) {
	return WrapMessage(v, err, context, "")
}

// WrapMessage is Wrap with a caller-supplied context mapping and message.
func WrapMessage[T any](v T, err error, context *jsonerr.Fields, message string) (T, error) {
	if err == nil {
		return v, nil
	}
	return v, Convert(Classify(err), message, context)
}
