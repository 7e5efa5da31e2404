// Package eval implements the Osyris evaluator: a recursive walk over an
// ast.Expression tree against a value.Scope, producing a value.Value or a
// value.StackTrace. It implements ast.Visitor so each Expression variant
// dispatches to exactly one Visit method, in the spirit of the teacher
// repo's tree-walk interpreter.
package eval

import (
	"osyris/ast"
	"osyris/value"
)

// outcome is the (Value, error) pair threaded through ast.Visitor's `any`
// return type, since the Accept/Visit protocol only allows a single
// interface{} result per node.
type outcome struct {
	value value.Value
	err   *value.StackTrace
}

func ok(v value.Value) any               { return outcome{value: v} }
func fail(err *value.StackTrace) any     { return outcome{err: err} }

// evaluator is constructed fresh for every Eval call, bound to the scope
// that call should run in — recursive sub-evaluations thread their own
// scope explicitly through further Eval calls rather than mutating shared
// state, so nested Lambda/Block scopes never leak into each other.
type evaluator struct {
	scope *value.Scope
}

var _ ast.Visitor = (*evaluator)(nil)

// Eval walks expr against scope, returning its Value or the StackTrace
// that aborted evaluation.
func Eval(expr ast.Expression, scope *value.Scope) (value.Value, *value.StackTrace) {
	ev := &evaluator{scope: scope}
	out := expr.Accept(ev).(outcome)
	return out.value, out.err
}

// EvalAll evaluates a sequence of expressions in order against scope,
// returning the last value (or None if exprs is empty) and short-
// circuiting on the first error.
func EvalAll(exprs []ast.Expression, scope *value.Scope) (value.Value, *value.StackTrace) {
	result := value.Nil()
	for _, e := range exprs {
		v, err := Eval(e, scope)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func (ev *evaluator) VisitString(expr ast.String) any {
	return ok(value.NewString(expr.Value))
}

func (ev *evaluator) VisitNumber(expr ast.Number) any {
	return ok(value.Number(expr.Value))
}

func (ev *evaluator) VisitQuote(expr ast.Quote) any {
	return ok(value.NewBlock(expr.Children))
}

func (ev *evaluator) VisitLookup(expr ast.Lookup) any {
	name := expr.Name.String()
	v, found := ev.scope.Lookup(name)
	if !found {
		return fail(value.NewError("Variable '%s' doesn't exist", name))
	}
	forced, err := forceLazy(v, ev.scope)
	if err != nil {
		return fail(err)
	}
	return ok(forced)
}

func (ev *evaluator) VisitCall(expr ast.Call) any {
	if len(expr.Children) == 0 {
		return fail(value.NewError("Call list has no elements").WithLocation(expr.Loc))
	}

	calleeExpr := expr.Children[0]
	argExprs := expr.Children[1:]

	callee, err := Eval(calleeExpr, ev.scope)
	if err != nil {
		return fail(err.WithLocation(expr.Loc))
	}

	args := make([]value.Value, 0, len(argExprs))
	for _, argExpr := range argExprs {
		v, err := Eval(argExpr, ev.scope)
		if err != nil {
			return fail(err.WithLocation(expr.Loc))
		}
		args = append(args, v)
	}

	result, err := Call(callee, args, ev.scope)
	if err != nil {
		return fail(err.WithLocation(expr.Loc))
	}

	rebindMutatedContainer(callee, args, argExprs, result, ev.scope)

	return ok(result)
}

// rebindMutatedContainer implements the write-back half of the copy-on-
// share protocol for list-*/dict-* mutators: when such an operator is
// called with a bare variable as its first (container) argument and
// returns a different handle than it was given — meaning it had to clone
// because the container was shared — the new handle replaces the old one
// in the variable's owning scope frame. Without this, `(list-push l 4)`
// would only ever be visible through `l` when `l` happened to be the
// container's sole holder.
func rebindMutatedContainer(callee value.Value, args []value.Value, argExprs []ast.Expression, result value.Value, scope *value.Scope) {
	fn, isFunc := callee.(*value.Func)
	if !isFunc || !fn.Mutator || len(args) == 0 || len(argExprs) == 0 {
		return
	}
	lookup, isLookup := argExprs[0].(ast.Lookup)
	if !isLookup {
		return
	}
	if result == args[0] {
		return // mutated in place; the existing binding already sees it.
	}
	if _, frame, found := scope.RLookup(lookup.Name.String()); found {
		_ = frame.Replace(lookup.Name.String(), result)
	}
}

// forceLazy auto-dereferences a Lazy or ProtectedLazy value as required at
// identifier lookup sites (§4.3: "if the looked-up value is a Lazy, it is
// invoked ... recursively"). A ProtectedLazy's "resists being dereferenced
// at binding sites" protection (§3) means it never force-unwraps implicitly
// when merely passed around as an argument or stored as a container
// element — only a direct Lookup of the name holding it does. VisitLookup
// is the only caller that hands this function a ProtectedLazy; Call's Lazy
// arm uses it for a *value.Lazy callee only.
func forceLazy(v value.Value, scope *value.Scope) (value.Value, *value.StackTrace) {
	var cell *value.LazyCell
	switch lz := v.(type) {
	case *value.Lazy:
		cell = lz.Cell
	case *value.ProtectedLazy:
		cell = lz.Cell
	default:
		return v, nil
	}
	if cell.Forced() {
		return cell.Cached(), nil
	}
	forced, err := Call(cell.Thunk, nil, scope)
	if err != nil {
		return nil, err
	}
	forced, err = forceLazy(forced, scope)
	if err != nil {
		return nil, err
	}
	cell.Memoize(forced)
	return forced, nil
}
