package stdlib

import (
	"osyris/bstring"
	"osyris/value"
)

// buildLambda implements the shared params…+body parsing that both `lambda`
// and `func` use: every argument but the last must be a String naming a
// parameter, the last must be a Block supplying the body.
func buildLambda(args []value.Value, captured *value.Scope) (*value.Lambda, *value.StackTrace) {
	if len(args) == 0 {
		return nil, value.NewError("Not enough arguments")
	}
	body, isBlock := args[len(args)-1].(*value.Block)
	if !isBlock {
		return nil, value.NewError("Expected block")
	}
	params := make([]bstring.BString, 0, len(args)-1)
	for _, a := range args[:len(args)-1] {
		s, isStr := a.(value.String)
		if !isStr {
			return nil, value.NewError("Expected string")
		}
		params = append(params, s.Bytes)
	}
	return value.NewLambda(params, body.Body, captured), nil
}

func registerCallables(scope *value.Scope) {
	scope.Insert("lambda", value.NewFunc("lambda", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		return buildLambda(args, s)
	}))

	scope.Insert("func", value.NewFunc("func", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) < 2 {
			return nil, value.NewError("Not enough arguments")
		}
		name, err := nameOf(args[0])
		if err != nil {
			return nil, err
		}
		lambda, err := buildLambda(args[1:], s)
		if err != nil {
			return nil, err
		}
		s.Insert(name, lambda)
		return lambda, nil
	}))

	scope.Insert("bind", value.NewFunc("bind", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) == 0 {
			return nil, value.NewError("Not enough arguments")
		}
		callee := args[0]
		rest := args[1:]

		// Consume leading (key value) pairs whose key is a String as named
		// bindings; the first argument that can't start such a pair, and
		// everything after it, is bound positionally.
		var bound []value.BoundArg
		i := 0
		for i+1 < len(rest) {
			name, isStr := rest[i].(value.String)
			if !isStr {
				break
			}
			bound = append(bound, value.BoundArg{Name: name.Bytes.String(), Value: rest[i+1]})
			i += 2
		}
		for ; i < len(rest); i++ {
			bound = append(bound, value.BoundArg{Value: rest[i]})
		}
		return value.NewBinding(bound, callee), nil
	}))
}
