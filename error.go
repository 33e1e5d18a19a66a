// Copyright (C) 2026 The jsonerr Authors. All Rights Reserved.

package jsonerr

import "fmt"

// An Error is the structured form of a classified parse failure. A value
// is created fresh by each conversion and must not be modified after
// construction; it is safe to share across goroutines.
type Error struct {
	Code       Code    `json:"code"`
	HTTPStatus int     `json:"http_status"`
	Message    string  `json:"message"`
	Context    *Fields `json:"context,omitempty"`

	cause error
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the parse failure the error was converted from, if any.
func (e *Error) Unwrap() error { return e.cause }
