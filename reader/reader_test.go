package reader

import (
	"testing"

	"osyris/bstring"
)

func TestAdvanceTracksLineAndColumn(t *testing.T) {
	r := New([]byte("ab\ncd"), bstring.FromString("test.osy"))

	want := []struct {
		b    int
		line int
		col  int
	}{
		{'a', 1, 1},
		{'b', 1, 2},
		{'\n', 1, 3},
		{'c', 2, 1},
		{'d', 2, 2},
	}

	for i, w := range want {
		loc := r.Location()
		if loc.Line != w.line || loc.Column != w.col {
			t.Fatalf("step %d: location = %+v, want line=%d col=%d", i, loc, w.line, w.col)
		}
		if got := r.Advance(); got != w.b {
			t.Fatalf("step %d: Advance() = %v, want %v", i, got, w.b)
		}
	}

	if !r.AtEOF() {
		t.Fatalf("expected AtEOF after consuming all bytes")
	}
	if got := r.Advance(); got != EOF {
		t.Fatalf("Advance() past EOF = %v, want EOF", got)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	r := New([]byte("xy"), bstring.FromString("t"))
	if got := r.Peek(); got != 'x' {
		t.Fatalf("Peek() = %v, want 'x'", got)
	}
	if got := r.Peek(); got != 'x' {
		t.Fatalf("second Peek() = %v, want 'x' (no consumption)", got)
	}
	if got := r.PeekAt(1); got != 'y' {
		t.Fatalf("PeekAt(1) = %v, want 'y'", got)
	}
	if got := r.PeekAt(5); got != EOF {
		t.Fatalf("PeekAt(5) = %v, want EOF", got)
	}
}

func TestEmptySourceIsImmediatelyEOF(t *testing.T) {
	r := New(nil, bstring.FromString("empty"))
	if !r.AtEOF() {
		t.Fatalf("expected empty source to be at EOF")
	}
	if got := r.Peek(); got != EOF {
		t.Fatalf("Peek() on empty = %v, want EOF", got)
	}
}
