package stdlib

import (
	"strings"

	"osyris/bstring"
	"osyris/eval"
	"osyris/value"
)

func registerControl(scope *value.Scope) {
	scope.Insert("if", value.NewFunc("if", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) < 2 {
			return nil, value.NewError("Not enough arguments")
		}
		if value.Truthy(args[0]) {
			return eval.CallZero(args[1], s)
		}
		if len(args) >= 3 {
			return eval.CallZero(args[2], s)
		}
		return value.Nil(), nil
	}))

	scope.Insert("match", value.NewFunc("match", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		for _, a := range args {
			block, isBlock := a.(*value.Block)
			if !isBlock || len(block.Body) == 0 {
				return nil, value.NewError("Expected block")
			}
			pred, err := eval.Eval(block.Body[0], s)
			if err != nil {
				return nil, err
			}
			if value.Truthy(pred) {
				return eval.EvalAll(block.Body[1:], s)
			}
		}
		return value.Nil(), nil
	}))

	scope.Insert("while", value.NewFunc("while", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) == 0 {
			return nil, value.NewError("Not enough arguments")
		}
		cond := args[0]
		var body value.Value
		if len(args) >= 2 {
			body = args[1]
		}
		result := value.Nil()
		for {
			c, err := eval.CallZero(cond, s)
			if err != nil {
				return nil, err
			}
			if !value.Truthy(c) {
				return result, nil
			}
			if body != nil {
				v, err := eval.CallZero(body, s)
				if err != nil {
					return nil, err
				}
				result = v
			}
		}
	}))

	scope.Insert("do", value.NewFunc("do", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) == 0 {
			return value.Nil(), nil
		}
		return args[len(args)-1], nil
	}))

	scope.Insert("with", value.NewFunc("with", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) == 0 || len(args)%2 != 1 {
			return nil, value.NewError("Not enough arguments")
		}
		body := args[len(args)-1]
		pairs := args[:len(args)-1]
		frame := value.NewChildScope(s)
		for i := 0; i < len(pairs); i += 2 {
			name, err := nameOf(pairs[i])
			if err != nil {
				return nil, err
			}
			frame.Insert(name, pairs[i+1])
		}
		return eval.CallZero(body, frame)
	}))

	scope.Insert("lazy", value.NewFunc("lazy", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) != 1 {
			return nil, value.NewError("Not enough arguments")
		}
		return value.NewProtectedLazy(args[0]), nil
	}))

	scope.Insert("error", value.NewFunc("error", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		switch len(args) {
		case 0:
			return nil, value.NewErrorValue(value.Nil())
		case 1:
			return nil, value.NewErrorValue(args[0])
		default:
			parts := make([]string, len(args))
			for i, a := range args {
				parts[i] = a.Display()
			}
			return nil, value.NewErrorValue(value.NewString(bstring.FromString(strings.Join(parts, " "))))
		}
	}))

	scope.Insert("try", value.NewFunc("try", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) != 2 {
			return nil, value.NewError("Not enough arguments")
		}
		frame := value.NewChildScope(s)
		result, err := eval.CallZero(args[0], frame)
		if err == nil {
			return result, nil
		}
		return eval.Call(args[1], []value.Value{err.Message}, s)
	}))
}
