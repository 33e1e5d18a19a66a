// Copyright (C) 2026 The jsonerr Authors. All Rights Reserved.

// Package jsonerr converts JSON parsing failures into structured errors
// carrying a stable machine-matchable code, an HTTP-equivalent status, a
// human-readable message, and an ordered context mapping suitable for
// deterministic serialization into logs and API responses.
//
// # Classification
//
// The Classify function tags an error reported by a JSON decode with its
// failure category: malformed syntax, truncated input, a failure of the
// underlying reader, or a mismatch between well-formed JSON and the target
// type. Convert turns a tagged failure into an Error:
//
//	var v map[string]any
//	if err := json.Unmarshal(data, &v); err != nil {
//	   return jsonerr.Convert(jsonerr.ClassifyInput(err, data), "", nil)
//	}
//
// When the source text is available, ClassifyInput derives the line and
// column of the failure from the error's byte offset, and Convert records
// them in the error context under the reserved keys "line" and "column".
// Keys already set by the caller are never overwritten.
//
// # Result helpers
//
// Wrap adapts a (value, error) pair in a single call, converting the error
// branch and passing the value through untouched:
//
//	v, err := jsonerr.Wrap(parse(input))
//
// WrapContext and WrapMessage accept a caller context mapping and an
// explicit message. Because they take additional arguments, the result
// being adapted must be unpacked first:
//
//	v, perr := parse(input)
//	v, err := jsonerr.WrapMessage(v, perr, ctx, "parsing config failed")
//
// # Adapters
//
// The Converter interface is the contract shared by all failure adapters.
// This package implements it for encoding/json; the yamlerr and hujsonerr
// packages implement it for YAML and HuJSON input, and the jsonfile
// package applies it to documents loaded from disk. All adapters produce
// the same Error shape, so downstream consumers need only one code path.
package jsonerr
