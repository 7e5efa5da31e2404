// Package reader implements a byte-accurate cursor over a source buffer,
// used by the parser to track line/column position without decoding the
// input. It never panics; Peek looks at the current byte and PeekAt at any
// byte further ahead, neither consuming input.
package reader

import "osyris/bstring"

// EOF is returned by Peek and Advance once the cursor has consumed every
// byte of the source.
const EOF = -1

// Location pins a single point in a source file for error reporting and
// stack traces.
type Location struct {
	File   bstring.BString
	Line   int
	Column int
}

// Reader is a cursor over a byte slice, tracking 1-based line/column
// position. Line feeds bump the line counter and reset the column.
type Reader struct {
	source []byte
	file   bstring.BString
	pos    int
	line   int
	column int
}

// New creates a Reader over source, attributed to file for error messages.
func New(source []byte, file bstring.BString) *Reader {
	return &Reader{
		source: source,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

// Peek returns the byte at the cursor without consuming it, or EOF.
func (r *Reader) Peek() int {
	if r.pos >= len(r.source) {
		return EOF
	}
	return int(r.source[r.pos])
}

// PeekAt returns the byte offset bytes ahead of the cursor without
// consuming anything, or EOF if that offset runs past the source.
func (r *Reader) PeekAt(offset int) int {
	idx := r.pos + offset
	if idx < 0 || idx >= len(r.source) {
		return EOF
	}
	return int(r.source[idx])
}

// Advance consumes and returns the current byte, updating line/column. It
// returns EOF without advancing if the cursor is already exhausted.
func (r *Reader) Advance() int {
	if r.pos >= len(r.source) {
		return EOF
	}
	c := r.source[r.pos]
	r.pos++
	if c == '\n' {
		r.line++
		r.column = 1
	} else {
		r.column++
	}
	return int(c)
}

// AtEOF reports whether the cursor has consumed the entire source.
func (r *Reader) AtEOF() bool {
	return r.pos >= len(r.source)
}

// Location returns the cursor's current source position.
func (r *Reader) Location() Location {
	return Location{File: r.file, Line: r.line, Column: r.column}
}
