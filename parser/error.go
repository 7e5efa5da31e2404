package parser

import (
	"fmt"

	"osyris/bstring"
)

// SyntaxError carries the file/line/column of a parse failure alongside a
// human-readable message, mirroring the {line, col, msg} triple the
// specification requires every parse error to expose.
type SyntaxError struct {
	File    bstring.BString
	Line    int
	Column  int
	Message string
}

func newSyntaxError(file bstring.BString, line, column int, message string) SyntaxError {
	return SyntaxError{File: file, Line: line, Column: column, Message: message}
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File.String(), e.Line, e.Column, e.Message)
}
