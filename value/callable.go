package value

import (
	"strings"

	"osyris/ast"
	"osyris/bstring"
)

// Block is a quoted, callable sequence of expressions capturing no
// environment of its own — calling it with zero args evaluates the body in
// the caller's current scope.
type Block struct {
	Body []ast.Expression
}

func NewBlock(body []ast.Expression) *Block { return &Block{Body: body} }

func (b *Block) Kind() Kind { return KindBlock }

func (b *Block) Display() string {
	parts := make([]string, len(b.Body))
	for i, e := range b.Body {
		parts[i] = e.Display()
	}
	return "{" + strings.Join(parts, " ") + "}"
}
func (b *Block) DebugDisplay() string { return b.Display() }

// NativeFunc is the Go function signature backing every Func Value: a
// native operator receiving already-evaluated arguments and the calling
// scope.
type NativeFunc func(args []Value, scope *Scope) (Value, *StackTrace)

// Func wraps a native standard-library operator. Mutator marks the handful
// of list-*/dict-* operators that, when called with a plain variable
// reference as their container argument, write a cloned/mutated result
// back into that variable's scope slot (see eval's Call dispatch).
type Func struct {
	Name    string
	Fn      NativeFunc
	Mutator bool
}

func NewFunc(name string, fn NativeFunc) *Func {
	return &Func{Name: name, Fn: fn}
}

func (f *Func) Kind() Kind           { return KindFunc }
func (f *Func) Display() string      { return "<func " + f.Name + ">" }
func (f *Func) DebugDisplay() string { return f.Display() }

// Lambda is a user-defined function: named parameters bound in a fresh
// child of Captured each call, evaluating Body in order.
type Lambda struct {
	Params    []bstring.BString
	Body      []ast.Expression
	Captured  *Scope
}

func NewLambda(params []bstring.BString, body []ast.Expression, captured *Scope) *Lambda {
	return &Lambda{Params: params, Body: body, Captured: captured}
}

func (l *Lambda) Kind() Kind { return KindLambda }

func (l *Lambda) Display() string {
	names := make([]string, len(l.Params))
	for i, p := range l.Params {
		names[i] = p.String()
	}
	return "<lambda (" + strings.Join(names, " ") + ")>"
}
func (l *Lambda) DebugDisplay() string { return l.Display() }

// BoundArg is one argument captured by `bind`: a plain positional value
// (Name == "") or a value bound to a named Lambda parameter.
type BoundArg struct {
	Name  string
	Value Value
}

// Binding is a partial application: calling it supplies Bound ahead of
// whatever arguments the caller passes, then calls Callee. An unnamed Bound
// entry is always prepended positionally; a named one is matched against
// Callee's parameter name when Callee is a Lambda (see eval's Call
// dispatch for both cases).
type Binding struct {
	Bound  []BoundArg
	Callee Value
}

func NewBinding(bound []BoundArg, callee Value) *Binding {
	return &Binding{Bound: bound, Callee: callee}
}

func (b *Binding) Kind() Kind           { return KindBinding }
func (b *Binding) Display() string      { return "<binding>" }
func (b *Binding) DebugDisplay() string { return b.Display() }
