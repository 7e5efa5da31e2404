package stdlib

import "osyris/value"

func registerComparison(scope *value.Scope) {
	chain := func(name string, pred func(a, b float64) bool) {
		scope.Insert(name, value.NewFunc(name, func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
			if len(args) < 2 {
				return value.Bool(true), nil
			}
			prev := value.ToNumber(args[0])
			for _, a := range args[1:] {
				cur := value.ToNumber(a)
				if !pred(prev, cur) {
					return value.Bool(false), nil
				}
				prev = cur
			}
			return value.Bool(true), nil
		}))
	}

	chain("<", func(a, b float64) bool { return a < b })
	chain("<=", func(a, b float64) bool { return a <= b })
	chain(">", func(a, b float64) bool { return a > b })
	chain(">=", func(a, b float64) bool { return a >= b })

	scope.Insert("==", value.NewFunc("==", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) < 2 {
			return value.Bool(true), nil
		}
		for i := 1; i < len(args); i++ {
			if !value.Equal(args[i-1], args[i]) {
				return value.Bool(false), nil
			}
		}
		return value.Bool(true), nil
	}))

	scope.Insert("!=", value.NewFunc("!=", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) < 2 {
			return value.Bool(false), nil
		}
		for i := 1; i < len(args); i++ {
			if !value.Equal(args[i-1], args[i]) {
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	}))
}

func registerLogic(scope *value.Scope) {
	scope.Insert("&&", value.NewFunc("&&", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) == 0 {
			return value.Bool(true), nil
		}
		for _, a := range args {
			if !value.Truthy(a) {
				return value.Bool(false), nil
			}
		}
		return value.Bool(true), nil
	}))

	scope.Insert("||", value.NewFunc("||", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		for _, a := range args {
			if value.Truthy(a) {
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	}))

	scope.Insert("??", value.NewFunc("??", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		for _, a := range args {
			if _, isNone := a.(value.None); !isNone {
				return a, nil
			}
		}
		return value.Nil(), nil
	}))

	scope.Insert("not", value.NewFunc("not", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) != 1 {
			return nil, value.NewError("Not enough arguments")
		}
		return value.Bool(!value.Truthy(args[0])), nil
	}))
}
