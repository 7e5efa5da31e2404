// expressions.go contains all five Expression AST node kinds Osyris'
// grammar produces. Unlike a statement-oriented language, every node here
// evaluates to a Value — Osyris has no statement/expression split.

package ast

import (
	"strconv"
	"strings"

	"osyris/bstring"
	"osyris/reader"
)

// String is a string literal, or an identifier captured via the `'name`
// quoted-identifier sugar. Its Value is the raw bytes, unescaped.
type String struct {
	Value bstring.BString
	Loc   reader.Location
}

func (s String) Accept(v Visitor) any      { return v.VisitString(s) }
func (s String) Location() reader.Location { return s.Loc }
func (s String) Display() string           { return s.Value.DebugString() }

// Number is an IEEE-754 double literal.
type Number struct {
	Value float64
	Loc   reader.Location
}

func (n Number) Accept(v Visitor) any      { return v.VisitNumber(n) }
func (n Number) Location() reader.Location { return n.Loc }
func (n Number) Display() string           { return strconv.FormatFloat(n.Value, 'f', -1, 64) }

// Lookup is a bare identifier reference, resolved against a Scope at
// evaluation time.
type Lookup struct {
	Name bstring.BString
	Loc  reader.Location
}

func (l Lookup) Accept(v Visitor) any      { return v.VisitLookup(l) }
func (l Lookup) Location() reader.Location { return l.Loc }
func (l Lookup) Display() string           { return l.Name.String() }

// Call applies the first child to the remaining children. It is produced by
// `(...)` calls, `[...]` infix calls, and `a.b` dot-call sugar.
type Call struct {
	Children []Expression
	Loc      reader.Location
}

func (c Call) Accept(v Visitor) any      { return v.VisitCall(c) }
func (c Call) Location() reader.Location { return c.Loc }
func (c Call) Display() string {
	parts := make([]string, len(c.Children))
	for i, child := range c.Children {
		parts[i] = child.Display()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Quote captures a sequence of expressions as data rather than evaluating
// them — the body of a `{...}` block.
type Quote struct {
	Children []Expression
	Loc      reader.Location
}

func (q Quote) Accept(v Visitor) any      { return v.VisitQuote(q) }
func (q Quote) Location() reader.Location { return q.Loc }
func (q Quote) Display() string {
	parts := make([]string, len(q.Children))
	for i, child := range q.Children {
		parts[i] = child.Display()
	}
	return "{" + strings.Join(parts, " ") + "}"
}
