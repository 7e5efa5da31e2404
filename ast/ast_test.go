package ast

import (
	"testing"

	"osyris/bstring"
	"osyris/reader"
)

func loc() reader.Location { return reader.Location{File: bstring.FromString("test"), Line: 1, Column: 1} }

func TestNumberDisplayRoundTrips(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{0, "0"},
		{3, "3"},
		{-2.5, "-2.5"},
		{100, "100"},
	}
	for _, c := range cases {
		got := Number{Value: c.value, Loc: loc()}.Display()
		if got != c.want {
			t.Errorf("Number{%v}.Display() = %q, want %q", c.value, got, c.want)
		}
	}
}

func TestStringDisplayQuotesAndEscapes(t *testing.T) {
	s := String{Value: bstring.FromString("a\nb"), Loc: loc()}
	got := s.Display()
	want := `"a\nb"`
	if got != want {
		t.Errorf("String.Display() = %q, want %q", got, want)
	}
}

func TestLookupDisplayIsBareName(t *testing.T) {
	l := Lookup{Name: bstring.FromString("x"), Loc: loc()}
	if got := l.Display(); got != "x" {
		t.Errorf("Lookup.Display() = %q, want %q", got, "x")
	}
}

func TestCallDisplayParenthesizesChildren(t *testing.T) {
	c := Call{Children: []Expression{
		Lookup{Name: bstring.FromString("+"), Loc: loc()},
		Number{Value: 1, Loc: loc()},
		Number{Value: 2, Loc: loc()},
	}, Loc: loc()}
	if got := c.Display(); got != "(+ 1 2)" {
		t.Errorf("Call.Display() = %q, want %q", got, "(+ 1 2)")
	}
}

func TestQuoteDisplayBraces(t *testing.T) {
	q := Quote{Children: []Expression{
		Lookup{Name: bstring.FromString("x"), Loc: loc()},
	}, Loc: loc()}
	if got := q.Display(); got != "{x}" {
		t.Errorf("Quote.Display() = %q, want %q", got, "{x}")
	}
}

func TestCallNestsQuoteDisplay(t *testing.T) {
	c := Call{Children: []Expression{
		Lookup{Name: bstring.FromString("lambda"), Loc: loc()},
		String{Value: bstring.FromString("n"), Loc: loc()},
		Quote{Children: []Expression{Lookup{Name: bstring.FromString("n"), Loc: loc()}}, Loc: loc()},
	}, Loc: loc()}
	want := `(lambda "n" {n})`
	if got := c.Display(); got != want {
		t.Errorf("Call.Display() = %q, want %q", got, want)
	}
}

// recordingVisitor checks Accept dispatches to the one matching Visit method.
type recordingVisitor struct {
	calls []string
}

func (r *recordingVisitor) VisitString(expr String) any { r.calls = append(r.calls, "string"); return nil }
func (r *recordingVisitor) VisitNumber(expr Number) any { r.calls = append(r.calls, "number"); return nil }
func (r *recordingVisitor) VisitLookup(expr Lookup) any { r.calls = append(r.calls, "lookup"); return nil }
func (r *recordingVisitor) VisitCall(expr Call) any     { r.calls = append(r.calls, "call"); return nil }
func (r *recordingVisitor) VisitQuote(expr Quote) any   { r.calls = append(r.calls, "quote"); return nil }

func TestAcceptDispatchesToMatchingVisitMethod(t *testing.T) {
	nodes := []Expression{
		String{Value: bstring.FromString("s"), Loc: loc()},
		Number{Value: 1, Loc: loc()},
		Lookup{Name: bstring.FromString("x"), Loc: loc()},
		Call{Loc: loc()},
		Quote{Loc: loc()},
	}
	want := []string{"string", "number", "lookup", "call", "quote"}

	rv := &recordingVisitor{}
	for _, n := range nodes {
		n.Accept(rv)
	}
	if len(rv.calls) != len(want) {
		t.Fatalf("got %d calls, want %d", len(rv.calls), len(want))
	}
	for i := range want {
		if rv.calls[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, rv.calls[i], want[i])
		}
	}
}
