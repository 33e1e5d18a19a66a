// Copyright (C) 2026 The jsonerr Authors. All Rights Reserved.

package jsonerr

import (
	"encoding/json"
	"errors"
	"io"

	"go4.org/mem"

	"github.com/cdumay/jsonerr/internal/linecol"
)

// A Category identifies the kind of problem a JSON parse ran into.
type Category int

// Constants defining the known failure categories. Values outside this
// set resolve to the fallback kind during conversion.
const (
	Unknown Category = iota // unrecognized failure
	Syntax                  // malformed syntax
	EOF                     // truncated or empty input
	IO                      // the underlying reader failed
	Data                    // well-formed JSON, wrong shape for the target
)

var categoryStr = [...]string{
	Unknown: "unknown",
	Syntax:  "syntax",
	EOF:     "eof",
	IO:      "io",
	Data:    "data",
}

func (c Category) String() string {
	v := int(c)
	if v < 0 || v >= len(categoryStr) {
		return categoryStr[Unknown]
	}
	return categoryStr[v]
}

// Kind returns the JSON kind bound to c. Categories outside the known set
// resolve to KindUnknown.
func (c Category) Kind() Kind {
	switch c {
	case Syntax:
		return KindSyntax
	case EOF:
		return KindEOF
	case IO:
		return KindIO
	case Data:
		return KindData
	}
	return KindUnknown
}

// A Failure is the tagged form of a parse failure: its category plus the
// source position and description carried by the original error. Line is
// 1-based and Column is a 0-based byte offset in the line; a zero Line
// means the position is unknown. Offset is the 1-based byte offset
// reported by the decoder, or 0 when not available.
type Failure struct {
	Category Category
	Line     int
	Column   int
	Offset   int64
	Detail   string
	Err      error // the original parse error
}

// endOfInput is the description encoding/json gives a syntax error caused
// by input that ends mid-value.
const endOfInput = "unexpected end of JSON input"

// Classify tags err with its failure category. Position information is
// limited to the byte offset the error itself carries; use ClassifyInput
// when the source text is available.
//
// Classification is exhaustive: a *json.UnmarshalTypeError is a Data
// failure, truncated or empty input is an EOF failure, any other
// *json.SyntaxError is a Syntax failure, and every remaining error must
// have been surfaced from the underlying reader, an IO failure.
func Classify(err error) Failure { return ClassifyInput(err, nil) }

// ClassifyInput tags err with its failure category, deriving the line and
// column of the failure in src from the error's byte offset.
func ClassifyInput(err error, src []byte) Failure {
	f := Failure{Category: IO, Detail: err.Error(), Err: err}

	var terr *json.UnmarshalTypeError
	var serr *json.SyntaxError
	switch {
	case errors.As(err, &terr):
		f.Category = Data
		f.Offset = terr.Offset
	case errors.As(err, &serr):
		f.Category = Syntax
		f.Offset = serr.Offset
		if serr.Error() == endOfInput {
			f.Category = EOF
		}
	case errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF):
		f.Category = EOF
	}

	if f.Offset > 0 && len(src) > 0 {
		pos := linecol.Locate(mem.B(src), int(f.Offset)-1)
		f.Line, f.Column = pos.Line, pos.Column
	}
	return f
}
