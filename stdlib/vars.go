package stdlib

import (
	"osyris/eval"
	"osyris/value"
)

func nameOf(v value.Value) (string, *value.StackTrace) {
	s, ok := v.(value.String)
	if !ok {
		return "", value.NewError("Expected string")
	}
	return s.Bytes.String(), nil
}

func registerVars(scope *value.Scope) {
	scope.Insert("def", value.NewFunc("def", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) == 0 || len(args)%2 != 0 {
			return nil, value.NewError("Not enough arguments")
		}
		var last value.Value = value.Nil()
		for i := 0; i < len(args); i += 2 {
			name, err := nameOf(args[i])
			if err != nil {
				return nil, err
			}
			s.Insert(name, args[i+1])
			last = args[i+1]
		}
		return last, nil
	}))

	scope.Insert("set", value.NewFunc("set", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) == 0 || len(args)%2 != 0 {
			return nil, value.NewError("Not enough arguments")
		}
		var last value.Value = value.Nil()
		for i := 0; i < len(args); i += 2 {
			name, err := nameOf(args[i])
			if err != nil {
				return nil, err
			}
			if replaceErr := s.Replace(name, args[i+1]); replaceErr != nil {
				return nil, value.NewError("cannot set undefined variable '%s'", name)
			}
			last = args[i+1]
		}
		return last, nil
	}))

	// mutate name f args… ≡ set name (f (lookup name) args…), but name's
	// binding is removed from its owning frame for the duration of the
	// call so that a refcount-1 container can be mutated in place instead
	// of copy-on-share cloning.
	scope.Insert("mutate", value.NewFunc("mutate", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) < 2 {
			return nil, value.NewError("Not enough arguments")
		}
		name, err := nameOf(args[0])
		if err != nil {
			return nil, err
		}
		current, frame, found := s.RLookup(name)
		if !found {
			return nil, value.NewError("Variable '%s' doesn't exist", name)
		}
		frame.Remove(name)

		callArgs := append([]value.Value{current}, args[2:]...)
		result, callErr := eval.Call(args[1], callArgs, s)
		if callErr != nil {
			frame.Insert(name, current)
			return nil, callErr
		}
		frame.Insert(name, result)
		return result, nil
	}))
}
