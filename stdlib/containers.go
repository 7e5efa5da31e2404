package stdlib

import (
	"osyris/eval"
	"osyris/value"
)

func asList(v value.Value) (*value.List, *value.StackTrace) {
	l, ok := v.(*value.List)
	if !ok {
		return nil, value.NewError("Expected list")
	}
	return l, nil
}

func asDict(v value.Value) (*value.Dict, *value.StackTrace) {
	d, ok := v.(*value.Dict)
	if !ok {
		return nil, value.NewError("Expected dict")
	}
	return d, nil
}

func asIndex(v value.Value) (int, *value.StackTrace) {
	n, ok := v.(value.Number)
	if !ok {
		return 0, value.NewError("Expected number")
	}
	return int(n), nil
}

// mutator registers a list-*/dict-* operator and flags it as a mutator so
// the evaluator's write-back step can rebind a bare-variable first argument
// when fn returns a different handle than it was given.
func mutator(scope *value.Scope, name string, fn value.NativeFunc) {
	scope.Insert(name, &value.Func{Name: name, Fn: fn, Mutator: true})
}

func registerContainers(scope *value.Scope) {
	scope.Insert("list", value.NewFunc("list", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		items := make([]value.Value, len(args))
		copy(items, args)
		return value.NewList(items), nil
	}))

	scope.Insert("list-last", value.NewFunc("list-last", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) != 1 {
			return nil, value.NewError("Not enough arguments")
		}
		l, err := asList(args[0])
		if err != nil {
			return nil, err
		}
		if len(l.Items) == 0 {
			return value.Nil(), nil
		}
		return l.Items[len(l.Items)-1], nil
	}))

	scope.Insert("list-len", value.NewFunc("list-len", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) != 1 {
			return nil, value.NewError("Not enough arguments")
		}
		l, err := asList(args[0])
		if err != nil {
			return nil, err
		}
		return value.Number(len(l.Items)), nil
	}))

	mutator(scope, "list-push", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) < 2 {
			return nil, value.NewError("Not enough arguments")
		}
		l, err := asList(args[0])
		if err != nil {
			return nil, err
		}
		out := value.MutableList(l)
		out.Append(args[1:]...)
		return out, nil
	})

	mutator(scope, "list-pop", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) != 1 {
			return nil, value.NewError("Not enough arguments")
		}
		l, err := asList(args[0])
		if err != nil {
			return nil, err
		}
		if len(l.Items) == 0 {
			return nil, value.NewError("Index out of bounds")
		}
		out := value.MutableList(l)
		out.Truncate(len(out.Items) - 1)
		return out, nil
	})

	// list-insert and list-remove clamp out-of-range indices into bounds
	// rather than raising, matching the richest stdlib draft; an empty
	// list-pop is the op that still surfaces "Index out of bounds".
	mutator(scope, "list-insert", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) < 3 {
			return nil, value.NewError("Not enough arguments")
		}
		l, err := asList(args[0])
		if err != nil {
			return nil, err
		}
		idx, err := asIndex(args[1])
		if err != nil {
			return nil, err
		}
		out := value.MutableList(l)
		if idx < 0 {
			idx = 0
		} else if idx > len(out.Items) {
			idx = len(out.Items)
		}
		out.InsertAt(idx, args[2:]...)
		return out, nil
	})

	mutator(scope, "list-remove", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) < 2 {
			return nil, value.NewError("Not enough arguments")
		}
		l, err := asList(args[0])
		if err != nil {
			return nil, err
		}
		start, err := asIndex(args[1])
		if err != nil {
			return nil, err
		}
		if start < 0 {
			start = 0
		}
		end := start + 1
		if len(args) >= 3 {
			end, err = asIndex(args[2])
			if err != nil {
				return nil, err
			}
		}
		out := value.MutableList(l)
		if end < 0 {
			end = 0
		}
		if end > len(out.Items) {
			end = len(out.Items)
		}
		if start > end {
			start = end
		}
		out.RemoveRange(start, end)
		return out, nil
	})

	scope.Insert("list-map", value.NewFunc("list-map", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) != 2 {
			return nil, value.NewError("Not enough arguments")
		}
		l, err := asList(args[0])
		if err != nil {
			return nil, err
		}
		result := make([]value.Value, len(l.Items))
		for i, item := range l.Items {
			// Lift the element out for the duration of the callback so a
			// refcount-1 container nested inside it can be mutated in place,
			// then restore l's own element once the callback returns — l is
			// not itself a Mutator, only the freshly built result list is
			// returned.
			l.SetAt(i, value.Nil())
			mapped, callErr := eval.Call(args[1], []value.Value{item}, s)
			l.SetAt(i, item)
			if callErr != nil {
				return nil, callErr
			}
			result[i] = mapped
		}
		return value.NewList(result), nil
	}))

	scope.Insert("list-for", value.NewFunc("list-for", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) != 2 {
			return nil, value.NewError("Not enough arguments")
		}
		l, err := asList(args[0])
		if err != nil {
			return nil, err
		}
		result := value.Nil()
		for _, item := range l.Items {
			v, callErr := eval.Call(args[1], []value.Value{item}, s)
			if callErr != nil {
				return nil, callErr
			}
			result = v
		}
		return result, nil
	}))

	scope.Insert("list-reduce", value.NewFunc("list-reduce", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) != 3 {
			return nil, value.NewError("Not enough arguments")
		}
		l, err := asList(args[0])
		if err != nil {
			return nil, err
		}
		acc := args[1]
		for _, item := range l.Items {
			v, callErr := eval.Call(args[2], []value.Value{acc, item}, s)
			if callErr != nil {
				return nil, callErr
			}
			acc = v
		}
		return acc, nil
	}))

	scope.Insert("dict", value.NewFunc("dict", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args)%2 != 0 {
			return nil, value.NewError("Not enough arguments")
		}
		d := value.NewDict()
		for i := 0; i < len(args); i += 2 {
			name, err := nameOf(args[i])
			if err != nil {
				return nil, err
			}
			d.Set(name, args[i+1])
		}
		return d, nil
	}))

	mutator(scope, "dict-set", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) < 3 || len(args)%2 != 1 {
			return nil, value.NewError("Not enough arguments")
		}
		d, err := asDict(args[0])
		if err != nil {
			return nil, err
		}
		out := value.MutableDict(d)
		for i := 1; i < len(args); i += 2 {
			name, err := nameOf(args[i])
			if err != nil {
				return nil, err
			}
			out.Set(name, args[i+1])
		}
		return out, nil
	})

	mutator(scope, "dict-mutate", func(args []value.Value, s *value.Scope) (value.Value, *value.StackTrace) {
		if len(args) < 3 {
			return nil, value.NewError("Not enough arguments")
		}
		d, err := asDict(args[0])
		if err != nil {
			return nil, err
		}
		key, err := nameOf(args[1])
		if err != nil {
			return nil, err
		}
		out := value.MutableDict(d)
		current := out.Get(key)
		out.Set(key, value.Nil())
		callArgs := append([]value.Value{current}, args[3:]...)
		result, callErr := eval.Call(args[2], callArgs, s)
		if callErr != nil {
			out.Set(key, current)
			return nil, callErr
		}
		out.Set(key, result)
		return out, nil
	})
}
