// Package osyris wires the language core (bstring, reader, parser, ast,
// value, eval, stdlib) into a ready-to-use embeddable interpreter: a root
// scope populated with the standard operators, the three standard ports,
// and the none/true/false constants §6 requires, plus convenience
// Parse/Run entry points. cmd/osyris builds the command-line front end on
// top of this package.
package osyris

import (
	"osyris/ast"
	"osyris/bstring"
	"osyris/eval"
	"osyris/ioport"
	"osyris/parser"
	"osyris/reader"
	"osyris/stdlib"
	"osyris/value"
)

// NewRootScope builds a fresh root scope with every standard operator
// registered and stdin/stdout/stderr/none/true/false bound, ready to
// evaluate a program against.
func NewRootScope() *value.Scope {
	scope := value.NewScope()
	stdlib.Register(scope)

	scope.Insert("stdin", ioport.Stdin())
	scope.Insert("stdout", ioport.Stdout())
	scope.Insert("stderr", ioport.Stderr())

	scope.Insert("none", value.Nil())
	scope.Insert("true", value.Bool(true))
	scope.Insert("false", value.Bool(false))

	return scope
}

// Parse reads every top-level expression out of source, tagging locations
// with file.
func Parse(source []byte, file string) ([]ast.Expression, error) {
	r := reader.New(source, bstring.FromOSPath(file))
	return parser.ParseAll(r)
}

// Run parses source and evaluates every expression against scope in order,
// returning the last value produced (or None for an empty program) and
// stopping at the first error — a parse SyntaxError or an evaluation
// StackTrace.
func Run(source []byte, file string, scope *value.Scope) (value.Value, error) {
	exprs, err := Parse(source, file)
	if err != nil {
		return nil, err
	}
	v, stackErr := eval.EvalAll(exprs, scope)
	if stackErr != nil {
		return nil, stackErr
	}
	return v, nil
}
