// Copyright (C) 2026 The jsonerr Authors. All Rights Reserved.

package jsonerr

// A Converter turns a tagged failure of type F into a structured Error.
// It is the contract shared by all failure adapters, so code that
// consumes structured errors does not depend on which format produced
// them.
type Converter[F any] interface {
	Convert(failure F, message string, context *Fields) *Error
}

// ErrorConverter converts tagged JSON parse failures. It is stateless;
// the zero value is ready for use.
type ErrorConverter struct{}

// Convert implements the Converter contract for JSON failures.
func (ErrorConverter) Convert(failure Failure, message string, context *Fields) *Error {
	return Convert(failure, message, context)
}

// Convert builds the structured form of failure. An empty message selects
// the default message of the failure's kind. Conversion is total: it
// never fails, never logs, and does not modify its arguments.
func Convert(failure Failure, message string, context *Fields) *Error {
	return Build(failure.Category.Kind(), failure, message, context)
}

// Build assembles an Error of kind k from a tagged failure. It carries
// the message-defaulting and context-merge policy shared by the sibling
// adapter packages: the caller's context is copied verbatim, and the
// failure's position and description are recorded under the reserved keys
// "line", "column", "offset" and "detail" only where the caller left them
// unset. An error whose merged context is empty carries no context at
// all, so minimal errors serialize without an empty object.
func Build(k Kind, failure Failure, message string, context *Fields) *Error {
	ctx := context.Clone()
	if failure.Line > 0 {
		setDefault(ctx, "line", failure.Line)
		setDefault(ctx, "column", failure.Column)
	}
	if failure.Offset > 0 {
		setDefault(ctx, "offset", failure.Offset)
	}
	if failure.Detail != "" {
		setDefault(ctx, "detail", failure.Detail)
	}
	if ctx.Len() == 0 {
		ctx = nil
	}
	e := k.New(message, ctx)
	e.cause = failure.Err
	return e
}

func setDefault(f *Fields, key string, value any) {
	if !f.Has(key) {
		f.Set(key, value)
	}
}

// Wrap adapts a (value, error) pair in a single call: a nil error passes v
// through untouched, any other error is classified and converted. The
// result of a fallible parse can be passed directly:
//
//	v, err := jsonerr.Wrap(parse(input))
func Wrap[T any](v T, err error) (T, error) {
	return WrapMessage(v, err, nil, "")
}

// WrapContext is Wrap with a caller-supplied context mapping.
func WrapContext[T any](v T, err error, context *Fields) (T, error) {
	return WrapMessage(v, err, context, "")
}

// WrapMessage is Wrap with a caller-supplied context mapping and message.
func WrapMessage[T any](v T, err error, context *Fields, message string) (T, error) {
	if err == nil {
		return v, nil
	}
	return v, Convert(Classify(err), message, context)
}
