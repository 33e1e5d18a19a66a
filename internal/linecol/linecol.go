// Copyright (C) 2026 The jsonerr Authors. All Rights Reserved.

// Package linecol derives human-readable source positions from the byte
// offsets reported by JSON decoders.
package linecol

import "go4.org/mem"

// A Pos describes the line number and column offset of a location in
// source text.
type Pos struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

// Locate returns the position of the byte at offset in src. An offset
// past the end of src locates the position just after the final byte.
func Locate(src mem.RO, offset int) Pos {
	if offset > src.Len() {
		offset = src.Len()
	}
	p := Pos{Line: 1}
	for i := 0; i < offset; i++ {
		if src.At(i) == '\n' {
			p.Line++
			p.Column = 0
		} else {
			p.Column++
		}
	}
	return p
}

// LineText returns the text of the line of src containing offset, without
// its line terminator.
func LineText(src mem.RO, offset int) string {
	if offset > src.Len() {
		offset = src.Len()
	}
	start := offset
	for start > 0 && src.At(start-1) != '\n' {
		start--
	}
	end := offset
	for end < src.Len() && src.At(end) != '\n' {
		end++
	}
	return src.SliceFrom(start).SliceTo(end - start).StringCopy()
}
