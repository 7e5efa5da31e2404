package parser

import (
	"testing"

	"osyris/ast"
	"osyris/bstring"
	"osyris/reader"
)

func parseOne(t *testing.T, src string) ast.Expression {
	t.Helper()
	r := reader.New([]byte(src), bstring.FromString("test"))
	expr, ok, err := New(r).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if !ok {
		t.Fatalf("expected an expression, got EOF")
	}
	return expr
}

func TestParseNumber(t *testing.T) {
	expr := parseOne(t, "42")
	n, ok := expr.(ast.Number)
	if !ok || n.Value != 42 {
		t.Errorf("got %#v, want Number(42)", expr)
	}
}

func TestParseNegativeNumber(t *testing.T) {
	expr := parseOne(t, "-3.5")
	n, ok := expr.(ast.Number)
	if !ok || n.Value != -3.5 {
		t.Errorf("got %#v, want Number(-3.5)", expr)
	}
}

func TestParseStringEscapes(t *testing.T) {
	expr := parseOne(t, `"a\nb\x41\""`)
	s, ok := expr.(ast.String)
	if !ok {
		t.Fatalf("got %#v, want String", expr)
	}
	if got := s.Value.String(); got != "a\nbA\"" {
		t.Errorf("got %q, want %q", got, "a\nbA\"")
	}
}

func TestParseQuotedIdentifier(t *testing.T) {
	expr := parseOne(t, "'foo")
	s, ok := expr.(ast.String)
	if !ok || s.Value.String() != "foo" {
		t.Errorf("got %#v, want String(foo)", expr)
	}
}

func TestParseCall(t *testing.T) {
	expr := parseOne(t, "(+ 1 2)")
	c, ok := expr.(ast.Call)
	if !ok || len(c.Children) != 3 {
		t.Fatalf("got %#v, want a 3-child Call", expr)
	}
	if _, ok := c.Children[0].(ast.Lookup); !ok {
		t.Errorf("callee should be a Lookup, got %#v", c.Children[0])
	}
}

func TestParseBlock(t *testing.T) {
	expr := parseOne(t, "{ 1 2 }")
	q, ok := expr.(ast.Quote)
	if !ok || len(q.Children) != 2 {
		t.Fatalf("got %#v, want a 2-child Quote", expr)
	}
}

func TestParseInfixReassociates(t *testing.T) {
	expr := parseOne(t, "[n <= 1]")
	c, ok := expr.(ast.Call)
	if !ok || len(c.Children) != 3 {
		t.Fatalf("got %#v, want Call(<=, n, 1)", expr)
	}
	op, ok := c.Children[0].(ast.Lookup)
	if !ok || op.Name.String() != "<=" {
		t.Errorf("callee should be Lookup(<=), got %#v", c.Children[0])
	}
}

func TestParseInfixRequiresMatchingOperators(t *testing.T) {
	r := reader.New([]byte("[1 + 2 - 3]"), bstring.FromString("test"))
	_, _, err := New(r).Parse()
	if err == nil {
		t.Errorf("expected an error from mismatched infix operators")
	}
}

func TestParseDotCallTreatsBareAtomAsKey(t *testing.T) {
	expr := parseOne(t, "d.a")
	c, ok := expr.(ast.Call)
	if !ok || len(c.Children) != 2 {
		t.Fatalf("got %#v, want Call(d, a)", expr)
	}
	key, ok := c.Children[1].(ast.String)
	if !ok || key.Value.String() != "a" {
		t.Errorf("dot-call RHS should be String(a), got %#v", c.Children[1])
	}
}

func TestParseDotCallChains(t *testing.T) {
	expr := parseOne(t, "a.b.c")
	outer, ok := expr.(ast.Call)
	if !ok || len(outer.Children) != 2 {
		t.Fatalf("got %#v, want Call(Call(a,b), c)", expr)
	}
	inner, ok := outer.Children[0].(ast.Call)
	if !ok || len(inner.Children) != 2 {
		t.Fatalf("inner callee should be Call(a,b), got %#v", outer.Children[0])
	}
}

func TestParseAllStopsAtEOF(t *testing.T) {
	r := reader.New([]byte("1 2 3"), bstring.FromString("test"))
	exprs, err := ParseAll(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exprs) != 3 {
		t.Fatalf("got %d expressions, want 3", len(exprs))
	}
}

func TestParseSkipsComments(t *testing.T) {
	r := reader.New([]byte("; a comment\n42"), bstring.FromString("test"))
	expr, ok, err := New(r).Parse()
	if err != nil || !ok {
		t.Fatalf("parse failed: ok=%v err=%v", ok, err)
	}
	if n, ok := expr.(ast.Number); !ok || n.Value != 42 {
		t.Errorf("got %#v, want Number(42)", expr)
	}
}
