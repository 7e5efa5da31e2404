// Package ioport implements value.Port for real operating-system streams:
// the standard input/output/error handles and ordinary files. The evaluator
// and stdlib packages never import this package directly — a host program
// wires these ports into the root scope as stdin/stdout/stderr, keeping the
// language core free of any dependency on concrete I/O.
package ioport

import (
	"bufio"
	"io"
	"os"

	"osyris/bstring"
	"osyris/value"
)

// StreamPort adapts an io.Reader/io.Writer pair (no seeking) to value.Port —
// the shape stdin/stdout/stderr take.
type StreamPort struct {
	value.PortBase
	r *bufio.Reader
	w io.Writer
}

// NewStreamPort wraps r and w. Either may be nil if the stream is one-way
// (stdout/stderr have no reader).
func NewStreamPort(r io.Reader, w io.Writer) *StreamPort {
	sp := &StreamPort{w: w}
	if r != nil {
		sp.r = bufio.NewReader(r)
	}
	return sp
}

// Stdin, Stdout, and Stderr build the three ports every root scope is
// populated with.
func Stdin() *value.PortHandle  { return value.NewPort(NewStreamPort(os.Stdin, nil)) }
func Stdout() *value.PortHandle { return value.NewPort(NewStreamPort(nil, os.Stdout)) }
func Stderr() *value.PortHandle { return value.NewPort(NewStreamPort(nil, os.Stderr)) }

func (p *StreamPort) Read() (value.Value, *value.StackTrace) {
	if p.r == nil {
		return nil, value.ErrNotSupported("read")
	}
	b, err := p.r.ReadByte()
	if err == io.EOF {
		return value.Nil(), nil
	}
	if err != nil {
		return nil, value.NewError(err.Error())
	}
	return value.NewString(bstring.New([]byte{b})), nil
}

// ReadChunk reads up to n bytes, returning fewer on EOF and None (not an
// error) when it hits EOF having read nothing.
func (p *StreamPort) ReadChunk(n int) (value.Value, *value.StackTrace) {
	if p.r == nil {
		return nil, value.ErrNotSupported("read_chunk")
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(p.r, buf)
	if read == 0 && err != nil {
		return value.Nil(), nil
	}
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, value.NewError(err.Error())
	}
	return value.NewString(bstring.New(buf[:read])), nil
}

func (p *StreamPort) Write(v value.Value) *value.StackTrace {
	if p.w == nil {
		return value.ErrNotSupported("write")
	}
	var raw []byte
	if s, isStr := v.(value.String); isStr {
		raw = s.Bytes.Bytes()
	} else {
		raw = []byte(v.Display())
	}
	if _, err := p.w.Write(raw); err != nil {
		return value.NewError(err.Error())
	}
	return nil
}
