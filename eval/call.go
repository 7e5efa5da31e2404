package eval

import "osyris/value"

// Call is the single "apply any callable to a value list" routine shared
// by the evaluator's Call dispatch and every standard operator that needs
// to invoke a callback (if/while/match bodies, list-map's function, …).
func Call(callee value.Value, args []value.Value, scope *value.Scope) (value.Value, *value.StackTrace) {
	switch c := callee.(type) {
	case *value.Func:
		return c.Fn(args, scope)

	case *value.Lambda:
		if len(args) < len(c.Params) {
			return nil, value.NewError("Not enough arguments")
		}
		if len(args) > len(c.Params) {
			return nil, value.NewError("Too many arguments")
		}
		frame := value.NewChildScope(c.Captured)
		for i, p := range c.Params {
			frame.Insert(p.String(), args[i])
		}
		return EvalAll(c.Body, frame)

	case *value.Block:
		// Nonzero arguments are accepted and ignored — the evaluator
		// takes the "ignore extras" option the spec leaves open.
		return EvalAll(c.Body, scope)

	case *value.List:
		if len(args) != 1 {
			return nil, value.NewError("Not enough arguments")
		}
		n, isNum := args[0].(value.Number)
		if !isNum {
			return nil, value.NewError("Expected number")
		}
		return c.At(float64(n)), nil

	case *value.Dict:
		if len(args) != 1 {
			return nil, value.NewError("Not enough arguments")
		}
		s, isStr := args[0].(value.String)
		if !isStr {
			return nil, value.NewError("Expected string")
		}
		return c.Get(s.Bytes.String()), nil

	case *value.Binding:
		return callBinding(c, args, scope)

	case *value.Lazy:
		forced, err := forceLazy(c, scope)
		if err != nil {
			return nil, err
		}
		return Call(forced, args, scope)

	case *value.ProtectedLazy:
		return nil, value.NewError("Attempt to call a protected lazy value")

	default:
		return nil, value.NewError("Attempt to call non-function")
	}
}

// CallZero invokes callee with no arguments — the convention `if`, `while`,
// and `match` use for their condition/body blocks.
func CallZero(callee value.Value, scope *value.Scope) (value.Value, *value.StackTrace) {
	return Call(callee, nil, scope)
}

// callBinding resolves a partial application (§4.3: "recurse with args' =
// bound ++ args"). Against a non-Lambda callee, every Bound entry is simply
// prepended in order. Against a Lambda, a named Bound entry fills the
// parameter slot of the matching name instead of a position, so `bind`
// callers can bind an argument out of declaration order; unnamed Bound
// entries and the caller's own args fill whatever parameter slots are left,
// in order.
func callBinding(b *value.Binding, args []value.Value, scope *value.Scope) (value.Value, *value.StackTrace) {
	lambda, isLambda := b.Callee.(*value.Lambda)
	if !isLambda {
		positional := make([]value.Value, 0, len(b.Bound)+len(args))
		for _, bound := range b.Bound {
			positional = append(positional, bound.Value)
		}
		positional = append(positional, args...)
		return Call(b.Callee, positional, scope)
	}

	filled := make([]value.Value, len(lambda.Params))
	set := make([]bool, len(lambda.Params))
	var leftover []value.Value
	for _, bound := range b.Bound {
		if bound.Name == "" {
			leftover = append(leftover, bound.Value)
			continue
		}
		idx := -1
		for i, p := range lambda.Params {
			if p.String() == bound.Name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, value.NewError("'%s' is not a parameter of this lambda", bound.Name)
		}
		filled[idx] = bound.Value
		set[idx] = true
	}

	rest := append(leftover, args...)
	ri := 0
	for i := range filled {
		if set[i] {
			continue
		}
		if ri >= len(rest) {
			return nil, value.NewError("Not enough arguments")
		}
		filled[i] = rest[ri]
		ri++
	}
	if ri < len(rest) {
		return nil, value.NewError("Too many arguments")
	}
	return Call(lambda, filled, scope)
}
