package ioport

import (
	"bytes"
	"strings"
	"testing"

	"osyris/bstring"
	"osyris/value"
)

func TestStreamPortWriteWritesRawStringBytes(t *testing.T) {
	var buf bytes.Buffer
	p := NewStreamPort(nil, &buf)
	if err := p.Write(value.NewString(bstring.FromString("hello\n"))); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if buf.String() != "hello\n" {
		t.Errorf("wrote %q, want %q", buf.String(), "hello\n")
	}
}

func TestStreamPortWriteDisplaysNonStrings(t *testing.T) {
	var buf bytes.Buffer
	p := NewStreamPort(nil, &buf)
	if err := p.Write(value.Number(6)); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if buf.String() != "6" {
		t.Errorf("wrote %q, want %q", buf.String(), "6")
	}
}

func TestStreamPortReadChunkReturnsNoneAtImmediateEOF(t *testing.T) {
	p := NewStreamPort(strings.NewReader(""), nil)
	v, err := p.ReadChunk(4)
	if err != nil {
		t.Fatalf("ReadChunk returned error: %v", err)
	}
	if _, isNone := v.(value.None); !isNone {
		t.Errorf("got %v, want None at EOF", v)
	}
}

func TestStreamPortReadChunkReturnsPartialOnShortRead(t *testing.T) {
	p := NewStreamPort(strings.NewReader("ab"), nil)
	v, err := p.ReadChunk(10)
	if err != nil {
		t.Fatalf("ReadChunk returned error: %v", err)
	}
	s, ok := v.(value.String)
	if !ok || s.Bytes.String() != "ab" {
		t.Errorf("got %v, want String(ab)", v)
	}
}

func TestStreamPortWriteWithoutWriterIsUnsupported(t *testing.T) {
	p := NewStreamPort(strings.NewReader("x"), nil)
	if err := p.Write(value.Nil()); err == nil {
		t.Errorf("expected ErrNotSupported for a read-only port")
	}
}
